// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/prux-project/pruxd/blockchain/standalone"
	"github.com/prux-project/pruxd/chaincfg"
	"github.com/stretchr/testify/require"
)

func testEpoch(powLimit int64) *chaincfg.ConsensusEpoch {
	limit := big.NewInt(powLimit)
	return &chaincfg.ConsensusEpoch{
		PowLimit:      limit,
		PowLimitBits:  standalone.GetCompact(limit),
		StrictChainID: true,
		AuxPowChainID: 0x03BF,
	}
}

// TestCheckProofOfWorkAcceptsUnderTarget and its reject counterpart are
// scenario B's stub-hash acceptance/rejection check from spec.md §8.
func TestCheckProofOfWorkAcceptsUnderTarget(t *testing.T) {
	epoch := testEpoch(0x00000fff)
	bits := standalone.GetCompact(big.NewInt(0x00000500))

	var hash chainhash.Hash
	hash[0] = 0x01 // hash[0] is the least-significant byte once reversed into a big.Int, so this is a tiny value

	require.True(t, CheckProofOfWork(hash, bits, epoch))
}

func TestCheckProofOfWorkRejectsOverTarget(t *testing.T) {
	epoch := testEpoch(0x00000fff)
	bits := standalone.GetCompact(big.NewInt(0x00000010))

	var hash chainhash.Hash
	hash[31] = 0xff // hash[31] is the most-significant byte once reversed, so this is a huge value

	require.False(t, CheckProofOfWork(hash, bits, epoch))
}

// TestCheckProofOfWorkRejectsAboveLimit verifies invariant 2: a bits value
// decoding above pow_limit is always rejected regardless of the hash.
func TestCheckProofOfWorkRejectsAboveLimit(t *testing.T) {
	epoch := testEpoch(0x00000fff)
	bits := standalone.GetCompact(big.NewInt(0x7fffffff))

	var hash chainhash.Hash
	require.False(t, CheckProofOfWork(hash, bits, epoch))
}
