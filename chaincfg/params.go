// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"net"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// powLimit is the highest proof of work value a block can have on
	// any of the networks.  It is the value 2^236 - 1.
	powLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)
)

// powLimitBits is powLimit in compact form.
const powLimitBits = 0x1e0fffff

// boskaNet is the network magic shared by all networks.  It is sent on the
// wire as f3 e5 f4 d8.
const boskaNet wire.BitcoinNet = 0xd8f4e5f3

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// FixedSeed is a hard-coded peer address used when DNS seeding yields
// nothing.
type FixedSeed struct {
	IP   net.IP
	Port uint16
}

// String returns the seed as host:port.
func (s FixedSeed) String() string {
	return net.JoinHostPort(s.IP.String(), fmt.Sprint(s.Port))
}

// ChainTxData summarizes the transaction history up to the last checkpoint.
// It is used to estimate verification progress.
type ChainTxData struct {
	// Time is the UNIX timestamp of the last checkpoint block.
	Time int64

	// TxCount is the total number of transactions between genesis and
	// the last checkpoint.
	TxCount int64

	// TxRate is the estimated number of transactions per second after the
	// last checkpoint.
	TxRate float64
}

// Params defines a network by its parameters.  These parameters may be used
// by applications to differentiate networks as well as addresses and keys for
// one network from those intended for use on another network.
//
// Params values are built by NewRegistry and are immutable once returned.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PruneAfterHeight is the height below which block files are never
	// pruned.
	PruneAfterHeight uint64

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are peers to try when no DNS seed answers.
	FixedSeeds []FixedSeed

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// Consensus resolves the consensus rules in force at a block height.
	Consensus *ConsensusResolver

	// PoWFunction computes the proof of work hash of a block header.
	PoWFunction func(header *wire.BlockHeader) chainhash.Hash

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// ChainTxData describes the chain history up to the last checkpoint.
	ChainTxData ChainTxData

	// MiningRequiresPeers specifies whether mining waits for at least one
	// connected peer.
	MiningRequiresPeers bool

	// DefaultConsistencyChecks enables expensive internal consistency
	// checks by default.
	DefaultConsistencyChecks bool

	// RequireStandard specifies whether only standard transactions are
	// relayed and mined.
	RequireStandard bool

	// MineBlocksOnDemand specifies whether blocks are only mined when
	// explicitly requested.
	MineBlocksOnDemand bool

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// MessageStart returns the network magic in the byte order it is sent on
// the wire.
func (p *Params) MessageStart() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(p.Net))
	return b
}

// ConsensusAt returns the consensus rules in force at height.
func (p *Params) ConsensusAt(height uint32) *ConsensusParams {
	return p.Consensus.Resolve(height)
}

// LatestCheckpoint returns the most recent checkpoint, or nil if the network
// has none.
func (p *Params) LatestCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	return &p.Checkpoints[len(p.Checkpoints)-1]
}

// CheckpointByHeight returns the checkpoint at exactly height, or nil.
func (p *Params) CheckpointByHeight(height int32) *Checkpoint {
	for i := range p.Checkpoints {
		if p.Checkpoints[i].Height == height {
			return &p.Checkpoints[i]
		}
	}
	return nil
}

// FindPreviousCheckpoint returns the last checkpoint strictly below height.
func FindPreviousCheckpoint(height int32, checkpoints []Checkpoint) *Checkpoint {
	if len(checkpoints) == 0 {
		return nil
	}

	// There is no previous checkpoint if the height is not past the first
	// one.
	first := &checkpoints[0]
	if height <= first.Height {
		return nil
	}

	// Find the previous checkpoint.
	previous := first
	for i := 1; i < len(checkpoints); i++ {
		if height <= checkpoints[i].Height {
			break
		}
		previous = &checkpoints[i]
	}
	return previous
}

// FindNextCheckpoint returns the first checkpoint strictly above height.
func FindNextCheckpoint(height int32, checkpoints []Checkpoint) *Checkpoint {
	if len(checkpoints) == 0 {
		return nil
	}

	// There is no next checkpoint if the height is already at or after
	// the final one.
	final := &checkpoints[len(checkpoints)-1]
	if height >= final.Height {
		return nil
	}

	// Find the next checkpoint.
	next := final
	for i := len(checkpoints) - 2; i >= 0; i-- {
		if height >= checkpoints[i].Height {
			break
		}
		next = &checkpoints[i]
	}
	return next
}

// validateCheckpoints ensures checkpoints are strictly increasing by height.
func validateCheckpoints(net string, checkpoints []Checkpoint) error {
	for i := 1; i < len(checkpoints); i++ {
		if checkpoints[i].Height <= checkpoints[i-1].Height {
			str := fmt.Sprintf("%s checkpoint at height %d does not "+
				"follow height %d", net, checkpoints[i].Height,
				checkpoints[i-1].Height)
			return configError(ErrCheckpointOrder, str)
		}
	}
	return nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// newParams completes p with its consensus resolver and verified genesis
// block.  Nothing in p is observable to callers until it returns without
// error.
func newParams(p *Params, base *ConsensusParams, overrides []*ConsensusParams,
	genesis *GenesisTemplate, genesisHash *chainhash.Hash) (*Params, error) {

	if err := validateCheckpoints(p.Name, p.Checkpoints); err != nil {
		return nil, err
	}

	resolver, err := NewConsensusResolver(base, overrides...)
	if err != nil {
		return nil, err
	}

	block, err := buildVerifiedGenesis(p.Name, genesis, genesisHash,
		genesisMerkleRoot)
	if err != nil {
		return nil, err
	}
	resolver.setGenesisHash(genesisHash)

	p.GenesisBlock = block
	p.GenesisHash = genesisHash
	p.Consensus = resolver
	return p, nil
}
