// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/boskacoin/boskad/chaincfg"
	"github.com/davecgh/go-spew/spew"
)

// boskaParamsMain is the real main function for boskaparams.  It is necessary
// to work around the fact that deferred functions do not run when os.Exit()
// is called.
func boskaParamsMain() error {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if !cfg.NoLogFile {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// A registry that cannot be built means the compiled-in chain
	// configuration is corrupt.  Nothing may run on top of it.
	registry, err := chaincfg.NewRegistry()
	if err != nil {
		bprmLog.Criticalf("Refusing to start: %v", err)
		return err
	}

	// Deployment windows are moved before the network is published so
	// readers never see them change.
	for _, w := range cfg.deploymentWindows {
		err := registry.RegTest().OverrideDeploymentWindow(w.id, w.start,
			w.timeout)
		if err != nil {
			bprmLog.Errorf("Unable to reschedule deployment %s: %v",
				w.id, err)
			return err
		}
	}

	params, err := registry.Select(cfg.Network)
	if err != nil {
		bprmLog.Errorf("%v", err)
		return err
	}

	writeSummary(os.Stdout, params, cfg.Heights, cfg.Dump)
	return nil
}

// writeSummary writes the identity of the network, its rule sets and the
// rules resolved for every height in heights to w.
func writeSummary(w io.Writer, params *chaincfg.Params, heights []uint32,
	dump bool) {

	magic := params.MessageStart()
	fmt.Fprintf(w, "Network:      %s\n", params.Name)
	fmt.Fprintf(w, "Magic:        %x\n", magic[:])
	fmt.Fprintf(w, "Port:         %s\n", params.DefaultPort)
	fmt.Fprintf(w, "Genesis:      %v\n", params.GenesisHash)
	fmt.Fprintf(w, "Merkle root:  %v\n", params.GenesisBlock.Header.MerkleRoot)
	fmt.Fprintf(w, "Prefixes:     pubkeyhash %d, scripthash %d, "+
		"privkey %d, xpub %x, xprv %x\n", params.PubKeyHashAddrID,
		params.ScriptHashAddrID, params.PrivateKeyID,
		params.HDPublicKeyID[:], params.HDPrivateKeyID[:])
	for _, seed := range params.DNSSeeds {
		fmt.Fprintf(w, "DNS seed:     %v\n", seed)
	}
	for _, cp := range params.Checkpoints {
		fmt.Fprintf(w, "Checkpoint:   %d %v\n", cp.Height, cp.Hash)
	}

	fmt.Fprintln(w, "Rule sets:")
	for _, s := range params.Consensus.Snapshots() {
		fmt.Fprintf(w, "  %-12s %s\n", s.Name,
			activation(s.HeightEffective))
	}

	fmt.Fprintln(w, "Deployments:")
	base := params.Consensus.Base()
	for id := chaincfg.DeploymentID(0); id < chaincfg.DefinedDeployments; id++ {
		d := base.Deployments[id]
		fmt.Fprintf(w, "  %-12s bit %-2d start %d timeout %d\n", id,
			d.BitNumber, d.StartTime, d.ExpireTime)
	}

	for _, h := range heights {
		c := params.ConsensusAt(h)
		bprmLog.Debugf("Height %d resolves to rule set %s", h, c.Name)
		fmt.Fprintf(w, "Height %d: %s (timespan %v, spacing %v, "+
			"maturity %d, digishield %v, chain id %#x)\n", h, c.Name,
			c.TargetTimespan, c.TargetTimePerBlock,
			c.CoinbaseMaturity, c.DigishieldDifficultyCalculation,
			c.AuxpowChainID)
		if dump {
			spew.Fdump(w, c)
		}
	}
}

// activation describes when a rule set takes effect.
func activation(height uint32) string {
	if height == chaincfg.NeverActive {
		return "never active"
	}
	return fmt.Sprintf("from height %d", height)
}

func main() {
	if err := boskaParamsMain(); err != nil {
		os.Exit(1)
	}
}
