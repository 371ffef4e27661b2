// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
)

const (
	// genesisCoinbaseBits is pushed first in every genesis coinbase script.
	// It is the compact difficulty of the first bitcoin block, kept for
	// compatibility regardless of the genesis block's own bits.
	genesisCoinbaseBits = 486604799

	// genesisForkMarker is pushed as a one byte data push right after
	// genesisCoinbaseBits.
	genesisForkMarker = 4
)

// genesisMessage is embedded in the coinbase of every network's genesis
// block.
const genesisMessage = "Jestes boska ale gorzka. 1/27/2026 Novixx"

// genesisPubKey is the key the genesis coinbase output pays to.
var genesisPubKey = mustDecodeHex("040184710fa689ad5023690c80f3a49c8f13f8d4" +
	"5b8c857fbcbc8bc4a8e4d3eb4b10f4d4604fa08dce601aaf0f470216fe1b51850b" +
	"4acf21b179c45070ac7b03a9")

// genesisReward is the value of the genesis coinbase output.
const genesisReward = 20 * btcutil.SatoshiPerBitcoin

// GenesisTemplate holds the literal inputs a genesis block is built from.
type GenesisTemplate struct {
	// Message is embedded in the coinbase input script.
	Message []byte

	// OutputScript is the public key script of the single coinbase
	// output.
	OutputScript []byte

	Timestamp time.Time
	Nonce     uint32
	Bits      uint32
	Version   int32

	// Reward is the value of the coinbase output.
	Reward btcutil.Amount
}

// PayToPubKeyScript returns the script paying to the serialized public key
// pubKey.
func PayToPubKeyScript(pubKey []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// genesisCoinbaseScript returns the signature script of a genesis coinbase
// carrying message.
func genesisCoinbaseScript(message []byte) ([]byte, error) {
	// The fork marker is written as an explicit one byte push.  The
	// builder would otherwise encode it as OP_4 and change the hash.
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, genesisForkMarker}).
		AddData(message).
		Script()
}

// BuildGenesisBlock creates the genesis block described by t.  The result
// depends on nothing but t.
func BuildGenesisBlock(t *GenesisTemplate) (*wire.MsgBlock, error) {
	sigScript, err := genesisCoinbaseScript(t.Message)
	if err != nil {
		str := fmt.Sprintf("unable to build genesis coinbase script: %v",
			err)
		return nil, configError(ErrGenesisTemplate, str)
	}
	if txscript.GetScriptClass(t.OutputScript) == txscript.NonStandardTy {
		return nil, configError(ErrGenesisTemplate, "genesis output "+
			"script is non-standard")
	}

	coinbase := wire.NewMsgTx(1)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	coinbase.AddTxIn(wire.NewTxIn(prevOut, sigScript, nil))
	coinbase.AddTxOut(wire.NewTxOut(int64(t.Reward), t.OutputScript))

	merkles := blockchain.BuildMerkleTreeStore(
		[]*btcutil.Tx{btcutil.NewTx(coinbase)}, false)

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    t.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: *merkles[len(merkles)-1],
			Timestamp:  t.Timestamp,
			Bits:       t.Bits,
			Nonce:      t.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	return block, nil
}

// VerifyGenesisBlock checks that block hashes to hash and commits to
// merkleRoot.  A mismatch means the built-in configuration of the named
// network is corrupt.
func VerifyGenesisBlock(net string, block *wire.MsgBlock, hash,
	merkleRoot *chainhash.Hash) error {

	if got := block.Header.MerkleRoot; !got.IsEqual(merkleRoot) {
		str := fmt.Sprintf("%s genesis merkle root is %v, expected %v",
			net, got, merkleRoot)
		return configError(ErrGenesisMerkleMismatch, str)
	}
	if got := block.BlockHash(); !got.IsEqual(hash) {
		str := fmt.Sprintf("%s genesis block hash is %v, expected %v",
			net, got, hash)
		return configError(ErrGenesisHashMismatch, str)
	}
	return nil
}

// newGenesisTemplate returns the template shared by all networks, which
// differ only in timestamp.
func newGenesisTemplate(timestamp int64) *GenesisTemplate {
	script, err := PayToPubKeyScript(genesisPubKey)
	if err != nil {
		// Only reachable if the hard-coded key is malformed.
		panic(err)
	}
	return &GenesisTemplate{
		Message:      []byte(genesisMessage),
		OutputScript: script,
		Timestamp:    time.Unix(timestamp, 0),
		Nonce:        1369296945,
		Bits:         0x1e0ffff0,
		Version:      1,
		Reward:       genesisReward,
	}
}

// buildVerifiedGenesis builds the genesis block from t and checks it against
// the pinned values.
func buildVerifiedGenesis(net string, t *GenesisTemplate, hash,
	merkleRoot *chainhash.Hash) (*wire.MsgBlock, error) {

	block, err := BuildGenesisBlock(t)
	if err != nil {
		return nil, err
	}
	if err := VerifyGenesisBlock(net, block, hash, merkleRoot); err != nil {
		return nil, err
	}
	log.Debugf("Verified %s genesis block %v", net, hash)
	return block, nil
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
