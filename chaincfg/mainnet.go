// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// mainNetGenesisHash is the hash of the first block in the block chain for the
// main network (genesis block).
var mainNetGenesisHash = newHashFromStr("8f5166226ea5b4d565b57e99bd9a71a456244084a8ec9876a73cbf1dceb505c9")

// genesisMerkleRoot is the merkle root of the genesis block of every
// network.  All networks share the same coinbase transaction.
var genesisMerkleRoot = newHashFromStr("c5da1bc5a3a341a5df5779cc2d44c9f48ce95817df14436feb653891f1cce264")

// mainNetGenesisTime is the timestamp of the main network genesis block.
const mainNetGenesisTime = 1769506935

// mainNetConsensus returns the base consensus rules of the main network and
// the overrides that follow them.
func mainNetConsensus() (*ConsensusParams, []*ConsensusParams, error) {
	deployments, err := NewDeploymentTable(DeploymentTable{
		DeploymentTestDummy: {
			BitNumber:  28,
			StartTime:  1199145601, // January 1, 2008 UTC
			ExpireTime: 1230767999, // December 31, 2008 UTC
		},
		DeploymentBIP0034: {
			BitNumber:  0,
			StartTime:  1534490155, // August 17, 2018 UTC
			ExpireTime: 1764490155, // November 30, 2025 UTC
		},
		DeploymentBIP0066: {
			BitNumber:  1,
			StartTime:  1534490155, // August 17, 2018 UTC
			ExpireTime: 1764490155, // November 30, 2025 UTC
		},
		DeploymentBIP0065: {
			BitNumber:  2,
			StartTime:  1534490155, // August 17, 2018 UTC
			ExpireTime: 1764490155, // November 30, 2025 UTC
		},
		DeploymentCSV: {
			BitNumber:  3,
			StartTime:  1724732207, // August 27, 2024 UTC
			ExpireTime: 1764490155, // November 30, 2025 UTC
		},
		DeploymentSegwit: {
			BitNumber:  4,
			StartTime:  1724732207, // August 27, 2024 UTC
			ExpireTime: 1764490155, // November 30, 2025 UTC
		},
	})
	if err != nil {
		return nil, nil, err
	}

	base := &ConsensusParams{
		Name:                        "base",
		HeightEffective:             0,
		PowLimit:                    powLimit,
		PowLimitBits:                powLimitBits,
		TargetTimespan:              time.Minute * 30, // pre-digishield
		TargetTimePerBlock:          time.Minute,
		CoinbaseMaturity:            70,
		SubsidyHalvingInterval:      100000,
		MajorityEnforceBlockUpgrade: 1500,
		MajorityRejectBlockOutdated: 1900,
		MajorityWindow:              2000,
		BIP0034Hash:                 *newHashFromStr("bfe98ccd4064069fdbd98e6fbc464683872fabd1659e06e9c02b2705d5f32bd3"),
		BIP0065Height:               8460,
		BIP0066Height:               8460,
		PowNoRetargeting:            false,

		AuxpowChainID:                   0x2040,
		StrictChainID:                   true,
		AuxpowStartHeight:               24000,
		BlockAfterAuxpowRewardThreshold: 5,

		// Consensus rule change deployments.
		//
		// The miner confirmation window is one week of blocks.
		RuleChangeActivationThreshold: 9576,  // 95% of MinerConfirmationWindow
		MinerConfirmationWindow:       10080, // 60 * 24 * 7
		Deployments:                   deployments,

		MinimumChainWork: new(big.Int),
		AssumeValid:      *newHashFromStr("9e1049be395301b8c71dbfc0f18555e45506439a4ae25b50beea8217537c8ca1"),
	}

	// Digishield is defined but not scheduled on the main network.
	digishield := base.Derive("digishield", NeverActive,
		func(p *ConsensusParams) {
			p.SimplifiedRewards = true
			p.DigishieldDifficultyCalculation = true
			p.TargetTimespan = time.Minute // post-digishield
			p.CoinbaseMaturity = 70
		})

	return base, []*ConsensusParams{digishield}, nil
}

// mainNetParams defines the network parameters for the main network.
func mainNetParams() (*Params, error) {
	base, overrides, err := mainNetConsensus()
	if err != nil {
		return nil, err
	}

	return newParams(&Params{
		Name:             "main",
		Net:              boskaNet,
		DefaultPort:      "8035",
		PruneAfterHeight: 100000,
		DNSSeeds: []DNSSeed{
			{"cavesystem.net", false},
			{"pyrrhocorisapterus.org", false},
			{"seed.boskacoin.org", false},
		},
		FixedSeeds:  mainNetFixedSeeds,
		PoWFunction: ScryptPoWHash,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("8f5166226ea5b4d565b57e99bd9a71a456244084a8ec9876a73cbf1dceb505c9")},
			{120, newHashFromStr("de493b4880c283298c6fc098eccdbb012aae863a41894f2928421874b700048e")},
		},
		ChainTxData: ChainTxData{},

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		MineBlocksOnDemand:       false,

		// Address encoding magics
		PubKeyHashAddrID: 12,
		ScriptHashAddrID: 8,
		PrivateKeyID:     140,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
	}, base, overrides, newGenesisTemplate(mainNetGenesisTime),
		mainNetGenesisHash)
}
