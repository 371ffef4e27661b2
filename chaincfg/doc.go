// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters.

Three networks are defined: the main network, the test network and the
regression test network.  A Registry builds all of them, verifies each
genesis block against its pinned hash and merkle root, and lets a process
select the one network it runs on.

The consensus rules of a network change at fixed block heights.  Each
network owns a ConsensusResolver holding a base rule set effective from
height zero followed by overrides with strictly increasing activation
heights.  Resolve returns the rule set governing a height:

	reg, err := chaincfg.NewRegistry()
	if err != nil {
		// The built-in configuration is corrupt.
		return err
	}
	params, err := reg.Select("main")
	if err != nil {
		return err
	}
	rules := params.ConsensusAt(height)
	fmt.Println(rules.Name, rules.TargetTimespan)

Every rule set carries a DeploymentTable describing the BIP0009 soft-fork
deployments signalled through block version bits.  Tables are checked when
built so that no two deployments signal on the same bit at the same time.
Only the regression test network, through RegTestParams, allows moving a
deployment window after construction.
*/
package chaincfg
