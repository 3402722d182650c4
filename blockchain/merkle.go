// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"io"
	"math"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// nextPowerOfTwo returns the next highest power of two from a given number
// if it is not already a power of two. Used while sizing the linear array
// backing a Merkle tree.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	exponent := uint(math.Log2(float64(n))) + 1
	return 1 << exponent
}

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the double-SHA256 hash of their concatenation.
func HashMerkleBranches(left, right *chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])

	return chainhash.DoubleHashRaw(func(w io.Writer) error {
		_, err := w.Write(buf[:])
		return err
	})
}

// BuildMerkleTreeStore creates a Merkle tree from a slice of transactions,
// stores it using a linear array, and returns a slice of the backing array.
// The merkle root is always the last element. Prux carries no witness
// commitment (there is no segregated-witness variant of this chain), so
// unlike the upstream function this builds against transaction IDs only.
func BuildMerkleTreeStore(transactions []*btcutil.Tx) []*chainhash.Hash {
	nextPoT := nextPowerOfTwo(len(transactions))
	arraySize := nextPoT*2 - 1
	merkles := make([]*chainhash.Hash, arraySize)

	for i, tx := range transactions {
		originalHash := tx.Hash()
		var h chainhash.Hash
		copy(h[:], originalHash[:])
		merkles[i] = &h
	}

	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		switch {
		case merkles[i] == nil:
			merkles[offset] = nil
		case merkles[i+1] == nil:
			newHash := HashMerkleBranches(merkles[i], merkles[i])
			merkles[offset] = &newHash
		default:
			newHash := HashMerkleBranches(merkles[i], merkles[i+1])
			merkles[offset] = &newHash
		}
		offset++
	}

	return merkles
}

// CalcMerkleRoot computes the merkle root over a slice of transactions by
// returning the last entry of BuildMerkleTreeStore's backing array.
func CalcMerkleRoot(transactions []*btcutil.Tx) chainhash.Hash {
	merkles := BuildMerkleTreeStore(transactions)
	if len(merkles) == 0 {
		return chainhash.Hash{}
	}
	return *merkles[len(merkles)-1]
}
