// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestNetworkValues checks the literal values each network hands to peer,
// address and storage code.
func TestNetworkValues(t *testing.T) {
	tests := []struct {
		name       string
		port       string
		pubKeyHash byte
		scriptHash byte
		privKey    byte
		hdPub      [4]byte
		hdPriv     [4]byte
		dnsSeeds   int
		requirePeers,
		consistencyChecks,
		requireStandard,
		mineOnDemand bool
	}{
		{"main", "8035", 12, 8, 140,
			[4]byte{0x04, 0x88, 0xb2, 0x1e}, [4]byte{0x04, 0x88, 0xad, 0xe4},
			3, true, false, true, false},
		{"test", "18105", 13, 9, 141,
			[4]byte{0x02, 0xfa, 0xca, 0xfd}, [4]byte{0x02, 0xfa, 0xc3, 0x98},
			0, false, true, false, true},
		{"regtest", "19817", 47, 5, 153,
			[4]byte{0x02, 0xfa, 0xca, 0xfd}, [4]byte{0x02, 0xfa, 0xc3, 0x98},
			0, false, true, false, true},
	}

	reg := newTestRegistry(t)
	for _, test := range tests {
		p, err := reg.Get(test.name)
		if err != nil {
			t.Fatalf("Get(%q): %v", test.name, err)
		}

		want := [4]byte{0xf3, 0xe5, 0xf4, 0xd8}
		if got := p.MessageStart(); got != want {
			t.Errorf("%s: message start %x, want %x", test.name, got,
				want)
		}
		if p.DefaultPort != test.port {
			t.Errorf("%s: port %s, want %s", test.name, p.DefaultPort,
				test.port)
		}
		if p.PruneAfterHeight != 100000 {
			t.Errorf("%s: prune after %d", test.name,
				p.PruneAfterHeight)
		}
		if p.PubKeyHashAddrID != test.pubKeyHash ||
			p.ScriptHashAddrID != test.scriptHash ||
			p.PrivateKeyID != test.privKey ||
			p.HDPublicKeyID != test.hdPub ||
			p.HDPrivateKeyID != test.hdPriv {

			t.Errorf("%s: unexpected prefixes: %s", test.name,
				spew.Sdump(p.PubKeyHashAddrID, p.ScriptHashAddrID,
					p.PrivateKeyID, p.HDPublicKeyID,
					p.HDPrivateKeyID))
		}
		if len(p.DNSSeeds) != test.dnsSeeds {
			t.Errorf("%s: %d dns seeds, want %d", test.name,
				len(p.DNSSeeds), test.dnsSeeds)
		}
		if p.MiningRequiresPeers != test.requirePeers ||
			p.DefaultConsistencyChecks != test.consistencyChecks ||
			p.RequireStandard != test.requireStandard ||
			p.MineBlocksOnDemand != test.mineOnDemand {

			t.Errorf("%s: unexpected behavior flags", test.name)
		}
		if p.ChainTxData != (ChainTxData{}) {
			t.Errorf("%s: unexpected chain tx data %+v", test.name,
				p.ChainTxData)
		}
	}
}

// TestPrefixesDistinct ensures no two networks share an address prefix pair,
// so an address of one network is never accepted on another.
func TestPrefixesDistinct(t *testing.T) {
	type pair struct{ pubKeyHash, scriptHash byte }

	reg := newTestRegistry(t)
	seen := make(map[pair]string)
	for _, name := range reg.Networks() {
		p, _ := reg.Get(name)
		k := pair{p.PubKeyHashAddrID, p.ScriptHashAddrID}
		if other, ok := seen[k]; ok {
			t.Errorf("%s and %s share address prefixes %+v", name,
				other, k)
		}
		seen[k] = name
	}
	if len(seen) != 3 {
		t.Errorf("got %d prefix pairs, want 3", len(seen))
	}
}

// TestMainNetCheckpoints ensures the first main network checkpoint is the
// genesis block and the lookups work on the real table.
func TestMainNetCheckpoints(t *testing.T) {
	reg := newTestRegistry(t)
	main, _ := reg.Get("main")

	genesis := main.CheckpointByHeight(0)
	if genesis == nil || !genesis.Hash.IsEqual(main.GenesisHash) {
		t.Fatalf("checkpoint 0 is %s", spew.Sdump(genesis))
	}

	latest := main.LatestCheckpoint()
	if latest == nil || latest.Height != 120 {
		t.Fatalf("latest checkpoint is %s", spew.Sdump(latest))
	}
	want := "de493b4880c283298c6fc098eccdbb012aae863a41894f2928421874b700048e"
	if latest.Hash.String() != want {
		t.Errorf("checkpoint 120 hash %v, want %s", latest.Hash, want)
	}

	if main.CheckpointByHeight(1) != nil {
		t.Errorf("found a checkpoint at height 1")
	}
}

// TestCheckpointLookups exercises FindPreviousCheckpoint and
// FindNextCheckpoint.
func TestCheckpointLookups(t *testing.T) {
	hash := newHashFromStr("00")
	checkpoints := []Checkpoint{
		{10, hash},
		{20, hash},
		{30, hash},
	}

	tests := []struct {
		height   int32
		previous int32 // -1 for none
		next     int32 // -1 for none
	}{
		{0, -1, 10},
		{10, -1, 20},
		{11, 10, 20},
		{20, 10, 30},
		{25, 20, 30},
		{30, 20, -1},
		{31, 30, -1},
	}

	check := func(what string, height int32, got *Checkpoint, want int32) {
		t.Helper()
		switch {
		case want == -1 && got != nil:
			t.Errorf("%s(%d): got %d, want none", what, height,
				got.Height)
		case want != -1 && got == nil:
			t.Errorf("%s(%d): got none, want %d", what, height, want)
		case want != -1 && got.Height != want:
			t.Errorf("%s(%d): got %d, want %d", what, height,
				got.Height, want)
		}
	}

	for _, test := range tests {
		check("FindPreviousCheckpoint", test.height,
			FindPreviousCheckpoint(test.height, checkpoints),
			test.previous)
		check("FindNextCheckpoint", test.height,
			FindNextCheckpoint(test.height, checkpoints), test.next)
	}

	if FindPreviousCheckpoint(5, nil) != nil ||
		FindNextCheckpoint(5, nil) != nil {

		t.Errorf("found checkpoints in an empty table")
	}
}

// TestValidateCheckpoints ensures checkpoint tables must be strictly
// increasing.
func TestValidateCheckpoints(t *testing.T) {
	hash := newHashFromStr("00")

	err := validateCheckpoints("test", []Checkpoint{{0, hash}, {5, hash}})
	if err != nil {
		t.Errorf("ordered checkpoints: unexpected error: %v", err)
	}

	for _, cps := range [][]Checkpoint{
		{{5, hash}, {5, hash}},
		{{5, hash}, {0, hash}},
	} {
		err := validateCheckpoints("test", cps)
		if !IsErrorCode(err, ErrCheckpointOrder) {
			t.Errorf("%v: got error %v, want %v", cps, err,
				ErrCheckpointOrder)
		}
	}
}

// TestTestNetCheckpoint documents that the test networks carry a height 0
// checkpoint which differs from their genesis hash.
func TestTestNetCheckpoint(t *testing.T) {
	reg := newTestRegistry(t)
	for _, name := range []string{"test", "regtest"} {
		p, _ := reg.Get(name)
		cp := p.CheckpointByHeight(0)
		if cp == nil {
			t.Fatalf("%s: no checkpoint at height 0", name)
		}
		if cp.Hash.IsEqual(p.GenesisHash) {
			t.Errorf("%s: checkpoint 0 unexpectedly matches genesis",
				name)
		}
	}
}
