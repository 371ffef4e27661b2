// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// mainNetFixedSeeds are the hard-coded peers of the main network.  The list
// is currently empty; peers are found through DNSSeeds.
var mainNetFixedSeeds = []FixedSeed{}

// testNetFixedSeeds are the hard-coded peers of the test network.
var testNetFixedSeeds = []FixedSeed{}
