// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/scrypt"
)

// ScryptPowHash computes the scrypt-based proof-of-work hash used by
// Litecoin/Dogecoin-lineage chains, following the parameters the ecosystem
// has standardized on (N=1024, r=1, p=1, 32-byte output). spec.md §3 treats
// "the proof-of-work hash (may be a different algorithm, e.g., scrypt)" as a
// black box the verifier receives as a parameter; this is the concrete
// default implementation Prux supplies for that black box. CheckProofOfWork
// takes the hash as a parameter and never calls this function;
// CheckAuxPowProofOfWork calls it (through powHashOf) for headers that
// carry no AuxPow payload.
func ScryptPowHash(headerBytes []byte) chainhash.Hash {
	digest, err := scrypt.Key(headerBytes, headerBytes, 1024, 1, 1, 32)
	if err != nil {
		// scrypt.Key only errors on invalid cost parameters, which are
		// fixed constants here; a failure is a programming error.
		panic("blockchain: scrypt pow hash: " + err.Error())
	}
	var hash chainhash.Hash
	copy(hash[:], digest)
	return hash
}
