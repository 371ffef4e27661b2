// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// NeverActive is the activation height of an override that is defined but
// not scheduled to activate.  Only a query for the maximum height resolves to
// such an override.
const NeverActive = math.MaxUint32

// ConsensusParams is one immutable set of consensus rules.  It governs block
// heights from HeightEffective up to, but excluding, the HeightEffective of
// the next set in the same ConsensusResolver.
type ConsensusParams struct {
	// Name is a short label for the rule set, such as "base" or
	// "digishield".
	Name string

	// HeightEffective is the first block height this rule set applies to.
	HeightEffective uint32

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins (coinbase transactions) can be spent.
	CoinbaseMaturity uint16

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyHalvingInterval int32

	// Legacy super-majority upgrade rules.  A new block version is enforced
	// once MajorityEnforceBlockUpgrade of the last MajorityWindow blocks
	// carry it, and older versions are rejected once
	// MajorityRejectBlockOutdated do.
	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// These fields define the block heights at which the specified softfork
	// BIP became active.  BIP0034Hash is the hash of the block at
	// BIP0034Height.
	BIP0034Hash   chainhash.Hash
	BIP0034Height int32
	BIP0065Height int32
	BIP0066Height int32

	// SimplifiedRewards selects the flat post-digishield block reward.
	SimplifiedRewards bool

	// DigishieldDifficultyCalculation selects the per-block digishield
	// retarget instead of the interval based one.
	DigishieldDifficultyCalculation bool

	// PowAllowMinDifficultyBlocks allows minimum difficulty blocks after a
	// long enough gap without a block.  Test networks only.
	PowAllowMinDifficultyBlocks bool

	// PowAllowDigishieldMinDifficultyBlocks is the digishield variant of
	// PowAllowMinDifficultyBlocks.
	PowAllowDigishieldMinDifficultyBlocks bool

	// PowNoRetargeting disables difficulty adjustment altogether.
	PowNoRetargeting bool

	// Merged mining.  AuxpowChainID is the chain id carried in the upper
	// half of the block version of merge-mined blocks, and is required to
	// match when StrictChainID is set.  Merge-mined blocks are accepted from
	// AuxpowStartHeight on.  BlockAfterAuxpowRewardThreshold is the number
	// of blocks after AuxpowStartHeight that still earn the legacy reward.
	AuxpowChainID                   int32
	StrictChainID                   bool
	AuxpowStartHeight               int32
	BlockAfterAuxpowRewardThreshold int32

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   DeploymentTable

	// MinimumChainWork is the least total work the best chain must have
	// before the node considers itself synced.
	MinimumChainWork *big.Int

	// AssumeValid specifies all blocks before this will not have the
	// signatures checked.
	AssumeValid chainhash.Hash

	// GenesisHash is the hash of the network's genesis block.  It is set on
	// every rule set of a network once the genesis block is verified.
	GenesisHash chainhash.Hash
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets under this rule set.
func (p *ConsensusParams) DifficultyAdjustmentInterval() int64 {
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// Derive returns a copy of p named name and effective from height, with
// apply run on the copy to set the fields that differ.  p is not modified.
func (p *ConsensusParams) Derive(name string, height uint32,
	apply func(*ConsensusParams)) *ConsensusParams {

	derived := *p
	derived.Name = name
	derived.HeightEffective = height
	if apply != nil {
		apply(&derived)
	}
	return &derived
}

// ConsensusResolver maps block heights to the rule set governing them.  It
// owns an ordered list of rule sets: a base set effective from height zero
// followed by overrides with strictly increasing activation heights.
type ConsensusResolver struct {
	snapshots []*ConsensusParams
}

// NewConsensusResolver returns a resolver over base and overrides.  The base
// must be effective from height zero and the overrides must be given in
// strictly increasing order of HeightEffective.
func NewConsensusResolver(base *ConsensusParams,
	overrides ...*ConsensusParams) (*ConsensusResolver, error) {

	if base == nil {
		return nil, configError(ErrActivationOrder, "no base consensus "+
			"parameters")
	}
	if base.HeightEffective != 0 {
		str := fmt.Sprintf("base consensus parameters %q effective at "+
			"height %d instead of 0", base.Name, base.HeightEffective)
		return nil, configError(ErrActivationOrder, str)
	}

	snapshots := make([]*ConsensusParams, 0, len(overrides)+1)
	snapshots = append(snapshots, base)
	for i, o := range overrides {
		if o == nil {
			str := fmt.Sprintf("consensus override %d is nil", i)
			return nil, configError(ErrActivationOrder, str)
		}

		// An override at height zero shadows the base entirely, which is
		// allowed.  After that each override must come strictly later
		// than its predecessor.
		if i > 0 && o.HeightEffective <= overrides[i-1].HeightEffective {
			str := fmt.Sprintf("consensus override %q at height %d "+
				"does not follow %q at height %d", o.Name,
				o.HeightEffective, overrides[i-1].Name,
				overrides[i-1].HeightEffective)
			return nil, configError(ErrActivationOrder, str)
		}
		snapshots = append(snapshots, o)
	}

	return &ConsensusResolver{snapshots: snapshots}, nil
}

// Resolve returns the rule set governing the block at height: the override
// with the greatest HeightEffective not above height, or the base rule set
// when no override qualifies.  It never returns nil.
func (r *ConsensusResolver) Resolve(height uint32) *ConsensusParams {
	overrides := r.snapshots[1:]
	i := sort.Search(len(overrides), func(i int) bool {
		return overrides[i].HeightEffective > height
	})
	if i == 0 {
		return r.snapshots[0]
	}
	return overrides[i-1]
}

// Base returns the rule set effective from height zero.
func (r *ConsensusResolver) Base() *ConsensusParams {
	return r.snapshots[0]
}

// Snapshots returns every rule set in activation order, base first.  The
// returned slice is a copy; the rule sets are shared and must not be
// modified.
func (r *ConsensusResolver) Snapshots() []*ConsensusParams {
	s := make([]*ConsensusParams, len(r.snapshots))
	copy(s, r.snapshots)
	return s
}

// setGenesisHash records the network genesis hash on every rule set.
func (r *ConsensusResolver) setGenesisHash(hash *chainhash.Hash) {
	for _, s := range r.snapshots {
		s.GenesisHash = *hash
	}
}
