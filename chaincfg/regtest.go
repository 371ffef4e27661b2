// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// RegTestParams is the regression test network.  Besides the usual
// parameters it can reschedule soft-fork deployments so a test harness can
// drive activation scenarios.  The other networks have no such capability.
type RegTestParams struct {
	*Params
}

// OverrideDeploymentWindow moves the signalling window of deployment id to
// [start, timeout) on every consensus rule set of the network.  The bit of
// the deployment is left alone.  When the new window would make the
// deployment share a bit with an overlapping one, an ErrDeploymentConflict
// error is returned and no rule set is changed.
//
// This function is NOT safe for concurrent access.  Callers must not resolve
// or read consensus rules of this network while it runs.
func (r *RegTestParams) OverrideDeploymentWindow(id DeploymentID, start, timeout int64) error {
	snapshots := r.Consensus.snapshots
	updated := make([]DeploymentTable, len(snapshots))
	for i, s := range snapshots {
		t := s.Deployments
		d, err := t.Deployment(id)
		if err != nil {
			return err
		}
		d.StartTime = start
		d.ExpireTime = timeout
		t[id] = d
		if err := t.Validate(); err != nil {
			return err
		}
		updated[i] = t
	}

	for i, s := range snapshots {
		s.Deployments = updated[i]
	}
	log.Warnf("Deployment %s on %s rescheduled to start %d, timeout %d",
		id, r.Name, start, timeout)
	return nil
}

// regTestParams defines the network parameters for the regression test
// network.
func regTestParams() (*RegTestParams, error) {
	base, overrides, err := testConsensus(4*time.Hour, 0x2021)
	if err != nil {
		return nil, err
	}

	params, err := newParams(&Params{
		Name:             "regtest",
		Net:              boskaNet,
		DefaultPort:      "19817",
		PruneAfterHeight: 100000,
		DNSSeeds:         []DNSSeed{},

		// The regression test network reuses the main network peers.
		FixedSeeds:  mainNetFixedSeeds,
		PoWFunction: ScryptPoWHash,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: testNetCheckpoints,
		ChainTxData: ChainTxData{},

		MiningRequiresPeers:      false,
		DefaultConsistencyChecks: true,
		RequireStandard:          false,
		MineBlocksOnDemand:       true,

		// Address encoding magics
		PubKeyHashAddrID: 47,
		ScriptHashAddrID: 5,
		PrivateKeyID:     153,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x02, 0xfa, 0xc3, 0x98},
		HDPublicKeyID:  [4]byte{0x02, 0xfa, 0xca, 0xfd},
	}, base, overrides, newGenesisTemplate(testNetGenesisTime),
		testNetGenesisHash)
	if err != nil {
		return nil, err
	}
	return &RegTestParams{Params: params}, nil
}
