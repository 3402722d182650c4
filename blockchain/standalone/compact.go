// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package standalone implements the consensus-critical, big.Int-based
// arithmetic primitives needed by the difficulty engine and PoW verifier:
// the "compact" (nBits) target encoding and its big.Int counterpart.
package standalone

import "math/big"

// CompactTarget is the 32-bit "floating point" representation of a 256-bit
// unsigned target used throughout the wire protocol for the nBits header
// field. The low 24 bits hold a mantissa and the high 8 bits hold a base-256
// exponent.
type CompactTarget = uint32

// SetCompact decodes a compact representation into its big.Int value,
// reporting whether the mantissa carried the sign bit (negative) and whether
// the decoded value overflows 256 bits.
//
// The low 24 bits of the compact value are a mantissa and the top byte is
// the number of bytes needed to represent the full value using the
// mantissa's most significant byte as the sign byte. This is the exact
// encoding used by bitcoind's arith_uint256::SetCompact.
func SetCompact(compact uint32) (value *big.Int, negative bool, overflow bool) {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number. So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly.
	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	// The mantissa is truly zero if the sign bit is set and no bits of the
	// mantissa remain, which bitcoind treats identically to a zero target
	// (neither negative nor overflowing).
	negative = isNegative && mantissa != 0

	// A target overflows when more than 256 bits would be required to
	// hold it.
	overflow = mantissa != 0 && bn.BitLen() > 256

	return bn, negative, overflow
}

// GetCompact is the exact inverse of SetCompact for non-negative values: it
// returns the compact encoding with the smallest exponent such that the
// 24-bit mantissa's sign bit is clear, inserting a leading zero byte when
// the most significant byte of the mantissa would otherwise set that bit.
func GetCompact(value *big.Int) uint32 {
	if value.Sign() == 0 {
		return 0
	}

	// bitLen rounded up to the nearest byte gives the number of bytes
	// needed to hold the magnitude, i.e. the exponent.
	bn := new(big.Int).Set(value)
	size := (bn.BitLen() + 7) / 8

	var compact uint32
	if size <= 3 {
		compact = uint32(bn.Uint64()) << (8 * uint(3-size))
	} else {
		shifted := new(big.Int).Rsh(bn, 8*uint(size-3))
		compact = uint32(shifted.Uint64())
	}

	// The mantissa's sign bit (0x00800000) must be clear for a
	// non-negative value. If the natural top byte would set it, shift the
	// mantissa right by one byte and bump the exponent to compensate,
	// padding with an implicit leading zero byte.
	if compact&0x00800000 != 0 {
		compact >>= 8
		size++
	}

	compact |= uint32(size) << 24
	return compact
}

// BigToCompact is an alias of GetCompact kept for callers familiar with the
// decred/btcsuite naming convention used elsewhere in this module.
func BigToCompact(n *big.Int) uint32 {
	return GetCompact(n)
}

// CompactToBig is an alias of SetCompact's value return, for callers that
// only care about the magnitude and are certain the target is well-formed
// (e.g. a pow_limit literal). Consensus code MUST use SetCompact directly so
// it can observe negative/overflow.
func CompactToBig(compact uint32) *big.Int {
	value, _, _ := SetCompact(compact)
	return value
}
