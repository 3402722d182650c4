// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBlockHeaderVersionBits(t *testing.T) {
	legacy := &BlockHeader{Version: 1}
	require.True(t, legacy.IsLegacy())
	require.False(t, legacy.IsAuxPow())

	auxpowVersion := int32(0x03BF<<16) | versionAuxPowFlag | 2
	merged := &BlockHeader{Version: auxpowVersion}
	require.False(t, merged.IsLegacy())
	require.True(t, merged.IsAuxPow())
	require.EqualValues(t, 0x03BF, merged.ChainID())
}

func TestBlockHeaderSerializeLength(t *testing.T) {
	h := &BlockHeader{
		Version:   1,
		Timestamp: time.Unix(1406496258, 0).UTC(),
		Bits:      0x1e0ffff0,
		Nonce:     2984499,
	}
	require.Len(t, h.Serialize(), 80)
}

func TestBlockHeaderBlockHashDeterministic(t *testing.T) {
	h := &BlockHeader{
		Version:   1,
		Timestamp: time.Unix(1406496258, 0).UTC(),
		Bits:      0x1e0ffff0,
		Nonce:     2984499,
	}
	require.Equal(t, h.BlockHash(), h.BlockHash())
}
