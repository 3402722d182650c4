// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/prux-project/pruxd/blockchain/standalone"
	"github.com/prux-project/pruxd/chaincfg"
	"github.com/prux-project/pruxd/wire"
)

// CheckProofOfWork is the Go rendering of spec.md §4.5's check_pow: it
// decodes bits and reports whether hash, read as a little-endian 256-bit
// unsigned integer (see hashToBig), is less than or equal to the decoded
// target. A target
// that decodes as negative, zero, overflowing, or above the network's
// pow_limit is rejected outright, matching pow.cpp's CheckProofOfWork.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, epoch *chaincfg.ConsensusEpoch) bool {
	target, negative, overflow := standalone.SetCompact(bits)
	if negative || target.Sign() == 0 || overflow {
		log.Debugf("block target is negative, zero, or overflowed: %x", bits)
		return false
	}
	if target.Cmp(epoch.PowLimit) > 0 {
		log.Debugf("block target %064x is higher than max of %064x", target, epoch.PowLimit)
		return false
	}

	hashNum := hashToBig(hash)
	return hashNum.Cmp(target) <= 0
}

// hashToBig converts a chainhash.Hash into a big.Int treating the hash as a
// little-endian encoded 256-bit unsigned integer, matching Bitcoin's
// uint256 wire convention (hashes are stored and compared in this reversed
// byte order relative to the human-readable hex string).
func hashToBig(hash chainhash.Hash) *big.Int {
	var buf chainhash.Hash
	blen := len(hash)
	for i := 0; i < blen; i++ {
		buf[i] = hash[blen-1-i]
	}
	return new(big.Int).SetBytes(buf[:])
}

// CheckAuxPowProofOfWork is the Go rendering of spec.md §4.5's
// check_auxpow_pow, grounded bit-exact on
// _examples/original_source/src/prux.cpp's CheckAuxPowProofOfWork.
//
// Caller responsibility preserved from spec.md: refusing legacy blocks
// after the merge-mining activation height is enforced by block-acceptance
// code (outside this consensus-core function), not here.
func CheckAuxPowProofOfWork(block *wire.BlockHeader, epoch *chaincfg.ConsensusEpoch) bool {
	if !block.IsLegacy() && epoch.StrictChainID && block.ChainID() != epoch.AuxPowChainID {
		log.Debugf("block does not have expected chain id (got %d, want %d)",
			block.ChainID(), epoch.AuxPowChainID)
		return false
	}

	if block.AuxPow == nil {
		if block.IsAuxPow() {
			log.Debugf("no auxpow on block flagged as auxpow")
			return false
		}
		return CheckProofOfWork(powHashOf(block), block.Bits, epoch)
	}

	if !block.IsAuxPow() {
		log.Debugf("auxpow present on block not flagged as auxpow")
		return false
	}

	if !block.AuxPow.Check(block.BlockHash(), block.ChainID()) {
		log.Debugf("auxpow commitment check failed")
		return false
	}

	return CheckProofOfWork(block.AuxPow.ParentPowHash(), block.Bits, epoch)
}

// powHashOf returns the header's proof-of-work hash. Prux's native PoW hash
// is scrypt over the 80-byte serialized header, per blockchain.ScryptPowHash;
// this stays a free function rather than a BlockHeader method so the wire
// package (which BlockHeader lives in) never needs to import blockchain,
// keeping the wire -> auxpow -> blockchain dependency direction acyclic.
func powHashOf(block *wire.BlockHeader) chainhash.Hash {
	return ScryptPowHash(block.Serialize())
}
