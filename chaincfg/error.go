// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of configuration error.
type ErrorCode int

// These constants are used to identify a specific ConfigError.
const (
	// ErrUnknownNetwork indicates a network name that is not one of the
	// canonical networks.
	ErrUnknownNetwork ErrorCode = iota

	// ErrAlreadySelected indicates an attempt to select a second, different
	// network after one has already been published.
	ErrAlreadySelected

	// ErrDuplicateNet indicates two network definitions share a name.
	ErrDuplicateNet

	// ErrActivationOrder indicates the consensus snapshots of a network do
	// not have a base at height zero followed by strictly increasing
	// activation heights.
	ErrActivationOrder

	// ErrInvalidDeploymentBit indicates a deployment signals on a version
	// bit outside the usable range.
	ErrInvalidDeploymentBit

	// ErrDeploymentConflict indicates two deployments with overlapping
	// signalling windows share a version bit.
	ErrDeploymentConflict

	// ErrUnknownDeployment indicates a deployment id or name that is not
	// defined.
	ErrUnknownDeployment

	// ErrCheckpointOrder indicates checkpoints that are not strictly
	// increasing by height.
	ErrCheckpointOrder

	// ErrGenesisHashMismatch indicates the constructed genesis block does
	// not hash to the pinned value for its network.
	ErrGenesisHashMismatch

	// ErrGenesisMerkleMismatch indicates the merkle root of the constructed
	// genesis block does not equal the pinned value for its network.
	ErrGenesisMerkleMismatch

	// ErrGenesisTemplate indicates the genesis template could not be turned
	// into a block.
	ErrGenesisTemplate

	// ErrUnknownHDKeyID indicates extended private key version bytes that
	// no network uses.
	ErrUnknownHDKeyID

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnknownNetwork:        "ErrUnknownNetwork",
	ErrAlreadySelected:       "ErrAlreadySelected",
	ErrDuplicateNet:          "ErrDuplicateNet",
	ErrActivationOrder:       "ErrActivationOrder",
	ErrInvalidDeploymentBit:  "ErrInvalidDeploymentBit",
	ErrDeploymentConflict:    "ErrDeploymentConflict",
	ErrUnknownDeployment:     "ErrUnknownDeployment",
	ErrCheckpointOrder:       "ErrCheckpointOrder",
	ErrGenesisHashMismatch:   "ErrGenesisHashMismatch",
	ErrGenesisMerkleMismatch: "ErrGenesisMerkleMismatch",
	ErrGenesisTemplate:       "ErrGenesisTemplate",
	ErrUnknownHDKeyID:        "ErrUnknownHDKeyID",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// ConfigError identifies a chain configuration problem.  The caller can use
// type assertions (or IsErrorCode) to determine the specific kind of failure
// via the ErrorCode field.
type ConfigError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e ConfigError) Error() string {
	return e.Description
}

// Invariant reports whether the error means the built-in configuration
// itself is corrupt, as opposed to bad caller input.  A node must refuse to
// start on such an error.
func (e ConfigError) Invariant() bool {
	switch e.ErrorCode {
	case ErrGenesisHashMismatch, ErrGenesisMerkleMismatch,
		ErrGenesisTemplate, ErrActivationOrder, ErrCheckpointOrder,
		ErrDuplicateNet:
		return true
	}
	return false
}

// configError creates a ConfigError given a set of arguments.
func configError(c ErrorCode, desc string) ConfigError {
	return ConfigError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is a ConfigError carrying the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	var cerr ConfigError
	return errors.As(err, &cerr) && cerr.ErrorCode == c
}
