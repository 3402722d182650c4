// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// baseSubsidy is round(0.009595 * COIN) precomputed at compile time, per
// spec.md §4.6's requirement that the consensus-critical floating-point
// literal in the source (prux.cpp's "CAmount nSubsidy = 0.009595 * COIN;")
// be replaced with a fixed integer constant rather than recomputed at
// runtime. 959500 is the canonical value the design notes settle on.
const baseSubsidy = 959500

// subsidyHalvingInterval matches ConsensusEpoch.SubsidyHalvingInterval for
// mainnet; CalcBlockSubsidy always reads the value from the epoch passed
// in, this constant exists only to document the expected value in tests.
const subsidyHalvingInterval = 5959595

// maxHalvings is the point at which the subsidy has shifted to zero
// regardless of baseSubsidy's exact value (any shift of a 64-bit or
// narrower value by 64 or more bits is zero).
const maxHalvings = 64

// CalcBlockSubsidy computes the block reward at the given height, per
// spec.md §4.6. prevHash is accepted for interface uniformity with reward
// variants that randomize the subsidy by previous-block hash; Prux's
// subsidy ignores it, matching prux.cpp's GetPruxBlockSubsidy.
func CalcBlockSubsidy(height int32, halvingInterval uint32, prevHash chainhash.Hash) btcutil.Amount {
	halvings := uint32(height) / halvingInterval
	if halvings >= maxHalvings {
		return 0
	}
	return btcutil.Amount(baseSubsidy >> halvings)
}
