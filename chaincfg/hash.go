// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// chainhashZero is the all-zero hash, used by regtest where no minimum
// chain work or assume-valid hash is meaningful yet.
var chainhashZero = chainhash.Hash{}

// mustParseUint256Hex parses a big-endian hex literal into a *big.Int. Like
// newHashFromStr, it is only ever called with hard-coded constants, so a
// parse failure indicates a broken literal and panics rather than
// propagating a runtime error.
func mustParseUint256Hex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("chaincfg: invalid uint256 literal " + hexStr)
	}
	return n
}

// newHashFromStr converts a big-endian hash string to a chainhash.Hash.
// It only differs from chainhash.NewHashFromStr in that it does not return
// the error, since it will only (and must only) be called with hard-coded,
// and therefore known good, hashes. Any failure indicates a compile-time
// literal is wrong, so it panics rather than surfacing a runtime error.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic("chaincfg: invalid hash literal " + hexStr + ": " + err.Error())
	}
	return *hash
}
