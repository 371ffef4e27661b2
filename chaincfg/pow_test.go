// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
)

// TestScryptPoWHash ensures the proof of work hash is deterministic, depends
// on the header, and differs from the block hash.
func TestScryptPoWHash(t *testing.T) {
	block, err := BuildGenesisBlock(newGenesisTemplate(mainNetGenesisTime))
	if err != nil {
		t.Fatalf("BuildGenesisBlock: %v", err)
	}
	header := block.Header

	a := ScryptPoWHash(&header)
	b := ScryptPoWHash(&header)
	if a != b {
		t.Fatalf("proof of work hash is not deterministic: %v, %v", a, b)
	}
	if a == header.BlockHash() {
		t.Fatal("proof of work hash equals the block hash")
	}

	header.Nonce++
	if c := ScryptPoWHash(&header); c == a {
		t.Fatal("nonce does not affect the proof of work hash")
	}
}

// TestPoWFunction ensures every network hashes proof of work with scrypt.
func TestPoWFunction(t *testing.T) {
	reg := newTestRegistry(t)
	for _, name := range reg.Networks() {
		params, _ := reg.Get(name)
		header := params.GenesisBlock.Header
		if params.PoWFunction(&header) != ScryptPoWHash(&header) {
			t.Errorf("%s: unexpected proof of work function", name)
		}
	}
}
