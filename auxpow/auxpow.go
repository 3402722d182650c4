// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auxpow implements the auxiliary proof-of-work (merged mining)
// proof: evidence that a parent-chain block's coinbase transaction commits
// to a Prux block hash, allowing a miner to secure both chains with one
// proof of work. Check is treated as an opaque verifier by the blockchain
// package per the AuxPow opaque boundary design note; its internal
// Merkle-branch and coinbase-commitment rules live entirely in this
// package.
package auxpow

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// mergedMiningMagic is the 4-byte tag merge-mining software inserts into a
// parent-chain coinbase scriptSig immediately before the committed child
// block hash, matching the de facto cross-chain merged-mining convention
// (the same tag Namecoin/Dogecoin-derived chains use).
var mergedMiningMagic = []byte{0xfa, 0xbe, 0x6d, 0x6d}

// AuxPow links a Prux block's hash to a parent-chain block via a
// Merkle-branch proof of coinbase inclusion plus the parent coinbase
// transaction itself. This is the Go rendering of spec.md's AuxPow.
type AuxPow struct {
	// ParentCoinbase is the parent-chain coinbase transaction that
	// commits to this Prux block's hash.
	ParentCoinbase *wire.MsgTx

	// CoinbaseBranch is the Merkle branch proving ParentCoinbase is
	// included in ParentBlock.
	CoinbaseBranch []chainhash.Hash

	// CoinbaseIndex is ParentCoinbase's position among the parent
	// block's transactions, needed to replay CoinbaseBranch in the
	// correct left/right order.
	CoinbaseIndex uint32

	// ChainIndex identifies which of potentially several merge-mined
	// chains this proof commits to; Prux commits at index 0.
	ChainIndex uint32

	// ParentBlock is the parent-chain header whose Merkle root
	// CoinbaseBranch proves ParentCoinbase belongs to, and whose
	// proof-of-work secures this Prux block.
	ParentBlock wire.BlockHeader
}

// ParentPowHash returns the parent header's proof-of-work hash: the
// double-SHA256 block hash of the 80-byte parent header. Callers pass this
// to blockchain.CheckProofOfWork against the child block's own bits, per
// spec.md §4.5 step 3's "check_pow(block.auxpow.parent_pow_hash(), block.bits,
// params)".
func (a *AuxPow) ParentPowHash() chainhash.Hash {
	return a.ParentBlock.BlockHash()
}

// merkleBranchRoot replays a Merkle branch starting from leaf, matching
// Bitcoin's CPartialMerkleTree/CMerkleBlock branch-combination convention:
// at each level, the branch hash is combined with the running hash in the
// order determined by the corresponding bit of index.
func merkleBranchRoot(leaf chainhash.Hash, branch []chainhash.Hash, index uint32) chainhash.Hash {
	hash := leaf
	for _, sibling := range branch {
		var buf [chainhash.HashSize * 2]byte
		if index&1 != 0 {
			copy(buf[:chainhash.HashSize], sibling[:])
			copy(buf[chainhash.HashSize:], hash[:])
		} else {
			copy(buf[:chainhash.HashSize], hash[:])
			copy(buf[chainhash.HashSize:], sibling[:])
		}
		first := sha256.Sum256(buf[:])
		second := sha256.Sum256(first[:])
		hash = chainhash.Hash(second)
		index >>= 1
	}
	return hash
}

// Check validates that this proof commits blockHash under chainID against
// the given parent chain block, per spec.md §3's
// "check(block_hash, chain_id, params) -> bool" black box. It verifies:
//
//  1. the parent coinbase's scriptSig contains the merged-mining commitment
//     tag immediately followed by blockHash and chainID (little-endian);
//  2. the coinbase's Merkle branch reproduces ParentBlock's Merkle root.
//
// It does NOT check proof-of-work sufficiency; callers obtain
// ParentPowHash and run it through blockchain.CheckProofOfWork separately,
// keeping this package free of consensus-parameter concerns beyond the
// structural commitment it owns.
func (a *AuxPow) Check(blockHash chainhash.Hash, chainID uint32) bool {
	if a.ParentCoinbase == nil || len(a.ParentCoinbase.TxIn) == 0 {
		return false
	}

	if err := a.verifyCommitment(blockHash, chainID); err != nil {
		return false
	}

	coinbaseHash := a.ParentCoinbase.TxHash()
	computedRoot := merkleBranchRoot(coinbaseHash, a.CoinbaseBranch, a.CoinbaseIndex)
	return computedRoot == a.ParentBlock.MerkleRoot
}

// verifyCommitment locates the merged-mining tag in the coinbase scriptSig
// and checks that the 32 bytes following it equal blockHash and the 4 bytes
// after that equal chainID (little-endian), the standard merged-mining
// coinbase layout.
func (a *AuxPow) verifyCommitment(blockHash chainhash.Hash, chainID uint32) error {
	script := a.ParentCoinbase.TxIn[0].SignatureScript

	tagIndex := bytes.Index(script, mergedMiningMagic)
	if tagIndex == -1 {
		return fmt.Errorf("auxpow: merged-mining tag not found in parent coinbase")
	}

	commitStart := tagIndex + len(mergedMiningMagic)
	if len(script) < commitStart+chainhash.HashSize+4 {
		return fmt.Errorf("auxpow: coinbase too short for commitment")
	}

	committed := script[commitStart : commitStart+chainhash.HashSize]
	if !bytes.Equal(committed, blockHash[:]) {
		return fmt.Errorf("auxpow: committed block hash mismatch")
	}

	idBytes := script[commitStart+chainhash.HashSize : commitStart+chainhash.HashSize+4]
	committedChainID := uint32(idBytes[0]) | uint32(idBytes[1])<<8 | uint32(idBytes[2])<<16 | uint32(idBytes[3])<<24
	if committedChainID != chainID {
		return fmt.Errorf("auxpow: committed chain id mismatch: got %d want %d", committedChainID, chainID)
	}

	return nil
}
