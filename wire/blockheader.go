// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"crypto/sha256"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/prux-project/pruxd/auxpow"
)

// Block header version bit layout for merge mining, matching the
// Namecoin/Dogecoin convention spec.md §3 describes: the chain ID occupies
// the top 16 bits, the AuxPoW flag is bit 8, and the low byte is the base
// block version.
const (
	versionAuxPowFlag = 1 << 8
	versionChainIDShift = 16
	versionBaseMask     = 0xff
)

// BlockHeader is the Go rendering of spec.md's BlockHeader: the same 80-byte
// wire layout Bitcoin uses, generalized with an optional AuxPow payload for
// merge-mined blocks.
type BlockHeader struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  time.Time
	Bits       uint32
	Nonce      uint32

	// AuxPow is present only on merge-mined (non-legacy) blocks that
	// carry a proof linking this header's BlockHash to a parent-chain
	// coinbase transaction.
	AuxPow *auxpow.AuxPow
}

// IsLegacy reports whether this header predates merge mining: version == 1,
// per spec.md §3's "version == 1 marks a legacy block".
func (h *BlockHeader) IsLegacy() bool {
	return h.Version == 1
}

// IsAuxPow reports whether the header's version flags it as a merge-mined
// block, independent of whether an AuxPow payload is actually attached
// (spec.md §4.5 step 2 treats the flag-set-but-payload-absent case as a
// rejection, not an automatic "not auxpow").
func (h *BlockHeader) IsAuxPow() bool {
	return h.Version&versionAuxPowFlag != 0
}

// ChainID extracts the merge-mining chain ID embedded in the header's
// version high bytes.
func (h *BlockHeader) ChainID() uint32 {
	return uint32(h.Version) >> versionChainIDShift
}

// BlockHash computes the double-SHA256 hash of the 80-byte serialized
// header, used as the block's identity hash (distinct from its PoW hash
// when the PoW algorithm is not the identity hash).
func (h *BlockHeader) BlockHash() chainhash.Hash {
	first := sha256.Sum256(h.Serialize())
	second := sha256.Sum256(first[:])
	return chainhash.Hash(second)
}

// Serialize returns the fixed 80-byte wire encoding of the header, exposed
// so packages that compute an alternate PoW hash (e.g. blockchain's scrypt
// implementation) can hash the exact same bytes BlockHash does.
func (h *BlockHeader) Serialize() []byte {
	return appendHeaderBytes(make([]byte, 0, 80), h)
}

// appendHeaderBytes serializes the fixed 80-byte header fields in wire
// order: version, prev block, merkle root, time, bits, nonce.
func appendHeaderBytes(buf []byte, h *BlockHeader) []byte {
	var tmp [4]byte

	putUint32LE(tmp[:], uint32(h.Version))
	buf = append(buf, tmp[:]...)

	buf = append(buf, h.PrevBlock[:]...)
	buf = append(buf, h.MerkleRoot[:]...)

	putUint32LE(tmp[:], uint32(h.Timestamp.Unix()))
	buf = append(buf, tmp[:]...)

	putUint32LE(tmp[:], h.Bits)
	buf = append(buf, tmp[:]...)

	putUint32LE(tmp[:], h.Nonce)
	buf = append(buf, tmp[:]...)

	return buf
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
