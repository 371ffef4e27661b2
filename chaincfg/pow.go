// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters used for proof of work.
const (
	scryptN      = 1024
	scryptR      = 1
	scryptP      = 1
	scryptKeyLen = chainhash.HashSize
)

// ScryptPoWHash returns the scrypt proof of work hash of header.  The
// serialized header is used as both password and salt.  This is distinct
// from the block hash, which stays double SHA-256.
func ScryptPoWHash(header *wire.BlockHeader) chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)
	// Writing to a bytes.Buffer cannot fail.
	_ = header.Serialize(&buf)

	b := buf.Bytes()
	key, err := scrypt.Key(b, b, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		// The cost parameters are constant and valid.
		panic(err)
	}

	var hash chainhash.Hash
	copy(hash[:], key)
	return hash
}
