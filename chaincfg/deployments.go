// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math"
	"strings"
)

// MaxDeploymentBit is the highest block version bit a deployment may signal
// on.  Versions with the top three bits set to 001 leave 29 usable bits.
const MaxDeploymentBit = 28

// DeploymentNeverExpires is used as the ExpireTime of deployments which stay
// open for signalling forever.
const DeploymentNeverExpires = math.MaxInt64

// DeploymentID identifies a soft-fork deployment.  The values double as the
// offset of the deployment in a DeploymentTable.
type DeploymentID int

// Constants that define the deployment offset in the deployments field of the
// consensus parameters for each deployment.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy DeploymentID = iota

	// DeploymentBIP0034 defines the deployment ID for height in coinbase.
	DeploymentBIP0034

	// DeploymentBIP0066 defines the deployment ID for strict DER
	// signatures.
	DeploymentBIP0066

	// DeploymentBIP0065 defines the deployment ID for
	// OP_CHECKLOCKTIMEVERIFY.
	DeploymentBIP0065

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// DeploymentSegwit defines the rule change deployment ID for the
	// Segregated Witness (segwit) soft-fork package. The segwit package
	// includes the deployment of BIPS 141, 143 and 147.
	DeploymentSegwit

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentBIP0034:   "bip34",
	DeploymentBIP0066:   "bip66",
	DeploymentBIP0065:   "bip65",
	DeploymentCSV:       "csv",
	DeploymentSegwit:    "segwit",
}

// String returns the short name of the deployment.
func (d DeploymentID) String() string {
	if d.valid() {
		return deploymentNames[d]
	}
	return fmt.Sprintf("unknown deployment (%d)", int(d))
}

func (d DeploymentID) valid() bool {
	return d >= 0 && d < DefinedDeployments
}

// ParseDeploymentID returns the deployment with the given short name, such as
// "csv" or "segwit".  The match is case-insensitive.
func ParseDeploymentID(name string) (DeploymentID, error) {
	name = strings.ToLower(name)
	for id, n := range deploymentNames {
		if n == name {
			return DeploymentID(id), nil
		}
	}
	str := fmt.Sprintf("unknown deployment %q", name)
	return 0, configError(ErrUnknownDeployment, str)
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime int64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime int64
}

// overlaps reports whether the [StartTime, ExpireTime) windows of the two
// deployments intersect.
func (d ConsensusDeployment) overlaps(o ConsensusDeployment) bool {
	return d.StartTime < o.ExpireTime && o.StartTime < d.ExpireTime
}

// DeploymentTable holds the signalling metadata of every defined deployment,
// indexed by DeploymentID.  It is plain data consumed by a versionbits
// threshold tracker.
type DeploymentTable [DefinedDeployments]ConsensusDeployment

// NewDeploymentTable validates entries and returns them as a table.  No
// deployment may use a bit above MaxDeploymentBit, and two deployments whose
// signalling windows overlap may not share a bit.
func NewDeploymentTable(entries [DefinedDeployments]ConsensusDeployment) (DeploymentTable, error) {
	t := DeploymentTable(entries)
	if err := t.Validate(); err != nil {
		return DeploymentTable{}, err
	}
	return t, nil
}

// Validate checks the table for out-of-range bits and for ambiguous
// signalling.
func (t *DeploymentTable) Validate() error {
	for i := range t {
		if t[i].BitNumber > MaxDeploymentBit {
			str := fmt.Sprintf("deployment %s uses bit %d, max is %d",
				DeploymentID(i), t[i].BitNumber, MaxDeploymentBit)
			return configError(ErrInvalidDeploymentBit, str)
		}
		for j := i + 1; j < len(t); j++ {
			if t[i].BitNumber != t[j].BitNumber || !t[i].overlaps(t[j]) {
				continue
			}
			str := fmt.Sprintf("deployments %s and %s both signal on "+
				"bit %d during overlapping windows", DeploymentID(i),
				DeploymentID(j), t[i].BitNumber)
			return configError(ErrDeploymentConflict, str)
		}
	}
	return nil
}

// Deployment returns the entry for id.
func (t *DeploymentTable) Deployment(id DeploymentID) (ConsensusDeployment, error) {
	if !id.valid() {
		str := fmt.Sprintf("no deployment with id %d", int(id))
		return ConsensusDeployment{}, configError(ErrUnknownDeployment, str)
	}
	return t[id], nil
}
