// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/boskacoin/boskad/chaincfg"
	"github.com/btcsuite/btclog"
	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "boskaparams.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "boskaparams.log"
	defaultLogLevel       = "info"
	defaultNetwork        = "main"
)

var (
	defaultAppDataDir = btcutil.AppDataDir("boskaparams", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultAppDataDir, defaultLogDirname)
)

// config defines the configuration options for boskaparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile        string   `short:"C" long:"configfile" description:"Path to configuration file"`
	AppDataDir        string   `short:"A" long:"appdata" description:"Application data directory"`
	LogDir            string   `long:"logdir" description:"Directory to log output"`
	NoLogFile         bool     `long:"nologfile" description:"Only log to standard error"`
	DebugLevel        string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	Network           string   `short:"n" long:"network" description:"Network to select {main, test, regtest}"`
	Heights           []uint32 `long:"height" description:"Block height to resolve the consensus rules for (may be repeated)"`
	DeploymentWindows []string `long:"deploymentwindow" description:"Reschedule a regtest soft-fork deployment in the form '<name>:<start>:<timeout>' (may be repeated)"`
	Dump              bool     `long:"dump" description:"Dump every resolved rule set in full"`

	deploymentWindows []deploymentWindow
}

// deploymentWindow is a parsed --deploymentwindow option.
type deploymentWindow struct {
	id      chaincfg.DeploymentID
	start   int64
	timeout int64
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultAppDataDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// parseDeploymentWindow parses a deployment window in the
// '<name>:<start>:<timeout>' format.  Times are unix timestamps.
func parseDeploymentWindow(s string) (deploymentWindow, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return deploymentWindow{}, fmt.Errorf("unable to parse "+
			"deployment window %q -- use the syntax "+
			"<name>:<start>:<timeout>", s)
	}

	id, err := chaincfg.ParseDeploymentID(parts[0])
	if err != nil {
		return deploymentWindow{}, fmt.Errorf("unable to parse "+
			"deployment window %q: %v", s, err)
	}

	start, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return deploymentWindow{}, fmt.Errorf("unable to parse "+
			"deployment window %q due to malformed start time", s)
	}

	timeout, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return deploymentWindow{}, fmt.Errorf("unable to parse "+
			"deployment window %q due to malformed timeout", s)
	}

	return deploymentWindow{id: id, start: start, timeout: timeout}, nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// The above results in boskaparams functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		AppDataDir: defaultAppDataDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		Network:    defaultNetwork,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or application data directory was specified.  Any errors aside
	// from the help message error can be ignored here since they will be
	// caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, err
		}
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	// A changed application data directory moves the default config file
	// and log directory along with it.
	appDataDir := cleanAndExpandPath(preCfg.AppDataDir)
	configFile := preCfg.ConfigFile
	if appDataDir != defaultAppDataDir {
		if configFile == defaultConfigFile {
			configFile = filepath.Join(appDataDir,
				defaultConfigFilename)
		}
		if cfg.LogDir == defaultLogDir {
			cfg.LogDir = filepath.Join(appDataDir, defaultLogDirname)
		}
	}
	cfg.AppDataDir = appDataDir

	// Load additional config from file.
	var configFileError error
	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(cleanAndExpandPath(configFile))
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n",
				err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
		configFileError = err
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, nil, err
	}

	cfg.AppDataDir = cleanAndExpandPath(cfg.AppDataDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("loadConfig: %v", err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Deployment windows can only be moved on the regression test network.
	if len(cfg.DeploymentWindows) > 0 && cfg.Network != "regtest" {
		str := "loadConfig: the --deploymentwindow option is only " +
			"allowed on the regtest network, not %q"
		err := fmt.Errorf(str, cfg.Network)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}
	for _, s := range cfg.DeploymentWindows {
		w, err := parseDeploymentWindow(s)
		if err != nil {
			err := fmt.Errorf("loadConfig: %v", err)
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
		cfg.deploymentWindows = append(cfg.deploymentWindows, w)
	}

	// Warn about missing config file only after all other configuration is
	// done.  This prevents the warning on help messages and invalid
	// options.  Note this should go directly before the return.
	if configFileError != nil {
		bprmLog.Debugf("%v", configFileError)
	}

	return &cfg, remainingArgs, nil
}
