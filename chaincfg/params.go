// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcdwire "github.com/btcsuite/btcd/wire"
	prwire "github.com/prux-project/pruxd/wire"
)

// ErrUnknownNet is returned by Select when asked to activate a network name
// it does not recognize. It is the only user-visible startup error the
// consensus core emits.
var ErrUnknownNet = errors.New("chaincfg: unknown network")

// Checkpoint identifies a known good point in the block chain. Every
// validator that consults checkpoints only uses them to short-circuit
// signature checks at or below DefaultAssumeValid; they carry no other
// consensus weight.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// Params bundles a network's ConsensusRegistry together with the
// non-consensus network identity data spec.md calls NetworkParams: magic
// bytes, default port, address prefixes, checkpoints, and the coarse boolean
// policy flags. One Params value is active per process.
type Params struct {
	Name        string
	Net         prwire.BitcoinNet
	DefaultPort string

	DNSSeeds []string

	Registry *ConsensusRegistry

	Checkpoints []Checkpoint

	// ChainTxDataTime/Count/Rate mirror the source's
	// ChainTxData snapshot: a rough estimate of the chain's transaction
	// volume as of the last checkpoint, used only to seed progress
	// estimation, never consensus decisions.
	ChainTxDataTime  int64
	ChainTxDataCount int64
	ChainTxDataRate  float64

	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte
	HDPublicKeyID    [4]byte
	HDPrivateKeyID   [4]byte

	MiningRequiresPeers      bool
	DefaultConsistencyChecks bool
	RequireStandard          bool
	MineBlocksOnDemand       bool

	MaxReorgDepth   int32
	MinReorgPeers   int32

	GenesisBlock *btcdwire.MsgBlock
	GenesisHash  chainhash.Hash
}

// ConsensusAt returns the consensus epoch effective at height on this
// network. Thin forwarding wrapper so callers hold a *Params, not a
// *ConsensusRegistry, matching spec.md's "NetworkParams wraps a registry".
func (p *Params) ConsensusAt(height int32) *ConsensusEpoch {
	return p.Registry.ConsensusAt(height)
}

var (
	registeredNets = map[string]*Params{
		"main":    &MainNetParams,
		"test":    &TestNetParams,
		"regtest": &RegressionNetParams,
	}

	activeParams = &MainNetParams
)

// Select activates the network with the given name and returns its Params.
// It is the sole "user-visible startup error" path named in spec.md §7: an
// unrecognized name fails with ErrUnknownNet, never a panic, since it
// reflects operator/config input, not a programming error.
func Select(name string) (*Params, error) {
	params, ok := registeredNets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNet, name)
	}
	activeParams = params
	return params, nil
}

// ActiveParams returns the Params most recently activated via Select. It
// defaults to MainNetParams so callers that never call Select still observe
// well-defined behavior. Per spec.md §5, reads are lock-free: the only
// mutation path is Select itself (called once at startup). This package
// has no hook for overriding regtest deployment windows.
func ActiveParams() *Params {
	return activeParams
}
