// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// testNetGenesisHash is the hash of the first block in the block chain for the
// test network.  The regression test network shares it.
var testNetGenesisHash = newHashFromStr("a4b307b180c90221f1688d4f1fd03ff5970394098e6183525b0bf9a94efce25e")

// testNetGenesisTime is the timestamp of the test and regression test network
// genesis blocks.
const testNetGenesisTime = 1374378315

// testNetCheckpoints is shared by the test and regression test networks.
// Its height 0 entry does not match their genesis hash.
var testNetCheckpoints = []Checkpoint{
	{0, newHashFromStr("bfe98ccd4064069fdbd98e6fbc464683872fabd1659e06e9c02b2705d5f32bd3")},
}

// testNetDeployments returns the deployment table of the test and regression
// test networks.
func testNetDeployments() (DeploymentTable, error) {
	return NewDeploymentTable(DeploymentTable{
		DeploymentTestDummy: {
			BitNumber:  28,
			StartTime:  1199145601, // January 1, 2008 UTC
			ExpireTime: 1230767999, // December 31, 2008 UTC
		},
		DeploymentBIP0034: {
			BitNumber:  0,
			StartTime:  1703462400, // December 25, 2023 UTC
			ExpireTime: 1735084800, // December 25, 2024 UTC
		},
		DeploymentBIP0066: {
			BitNumber:  1,
			StartTime:  1703462400, // December 25, 2023 UTC
			ExpireTime: 1735084800, // December 25, 2024 UTC
		},
		DeploymentBIP0065: {
			BitNumber:  2,
			StartTime:  1703462400, // December 25, 2023 UTC
			ExpireTime: 1735084800, // December 25, 2024 UTC
		},
		DeploymentCSV: {
			BitNumber:  3,
			StartTime:  1703462400, // December 25, 2023 UTC
			ExpireTime: 1735084800, // December 25, 2024 UTC
		},
		DeploymentSegwit: {
			BitNumber:  4,
			StartTime:  1703462400, // December 25, 2023 UTC
			ExpireTime: 1735084800, // December 25, 2024 UTC
		},
	})
}

// testConsensus returns the consensus rules shared by the test and
// regression test networks, which differ only in the pre-digishield target
// timespan and the merged mining chain id.
func testConsensus(timespan time.Duration, chainID int32) (*ConsensusParams, []*ConsensusParams, error) {
	deployments, err := testNetDeployments()
	if err != nil {
		return nil, nil, err
	}

	base := &ConsensusParams{
		Name:                        "base",
		HeightEffective:             0,
		PowLimit:                    powLimit,
		PowLimitBits:                powLimitBits,
		TargetTimespan:              timespan, // pre-digishield
		TargetTimePerBlock:          time.Minute,
		CoinbaseMaturity:            30,
		SubsidyHalvingInterval:      100000,
		MajorityEnforceBlockUpgrade: 1500,
		MajorityRejectBlockOutdated: 1900,
		MajorityWindow:              2000,
		BIP0065Height:               99999999,
		BIP0066Height:               99999999,
		PowNoRetargeting:            false,

		AuxpowChainID:                   chainID,
		StrictChainID:                   true,
		AuxpowStartHeight:               0,
		BlockAfterAuxpowRewardThreshold: 5,

		RuleChangeActivationThreshold: 9576,  // 95% of MinerConfirmationWindow
		MinerConfirmationWindow:       10080, // 60 * 24 * 7
		Deployments:                   deployments,

		MinimumChainWork: new(big.Int),
		AssumeValid:      *newHashFromStr("9e1049be395301b8c71dbfc0f18555e45506439a4ae25b50beea8217537c8ca1"),
	}

	digishield := base.Derive("digishield", NeverActive,
		func(p *ConsensusParams) {
			p.SimplifiedRewards = true
			p.DigishieldDifficultyCalculation = true
			p.TargetTimespan = time.Minute // post-digishield
			p.CoinbaseMaturity = 240
		})

	return base, []*ConsensusParams{digishield}, nil
}

// testNetParams defines the network parameters for the test network.
func testNetParams() (*Params, error) {
	base, overrides, err := testConsensus(2*time.Hour, 0x2032)
	if err != nil {
		return nil, err
	}

	return newParams(&Params{
		Name:             "test",
		Net:              boskaNet,
		DefaultPort:      "18105",
		PruneAfterHeight: 100000,
		DNSSeeds:         []DNSSeed{},
		FixedSeeds:       testNetFixedSeeds,
		PoWFunction:      ScryptPoWHash,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: testNetCheckpoints,
		ChainTxData: ChainTxData{},

		MiningRequiresPeers:      false,
		DefaultConsistencyChecks: true,
		RequireStandard:          false,
		MineBlocksOnDemand:       true,

		// Address encoding magics
		PubKeyHashAddrID: 13,
		ScriptHashAddrID: 9,
		PrivateKeyID:     141,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x02, 0xfa, 0xc3, 0x98},
		HDPublicKeyID:  [4]byte{0x02, 0xfa, 0xca, 0xfd},
	}, base, overrides, newGenesisTemplate(testNetGenesisTime),
		testNetGenesisHash)
}
