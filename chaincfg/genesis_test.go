// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMainNetGenesis is the literal genesis-construction scenario: building
// the main network genesis block from its fixed inputs must reproduce the
// compiled-in reference block hash and merkle root exactly.
func TestMainNetGenesis(t *testing.T) {
	genesis := CreateGenesisBlock(genesisTimestamp, genesisOutputScript, 1406496258, 2984499, 0x1e0ffff0, 1, 0)

	wantHash := newHashFromStr("32dca787cfb73d50595a599b6fd72afce9a7c52ead22b8f15dfd8aabc5eaac32")
	wantMerkle := newHashFromStr("275a35ac6f6d4a6f7a60ee3ca38a90fe98e43646b6535cf3f99f6b004a4016b6")

	require.Equal(t, wantHash, genesis.Header.BlockHash())
	require.Equal(t, wantMerkle, genesis.Header.MerkleRoot)
}

// TestMainNetParamsGenesisWired confirms mainnet's init() wiring reproduces
// the same genesis hash reachable directly from MainNetParams and from
// every epoch's HashGenesisBlock.
func TestMainNetParamsGenesisWired(t *testing.T) {
	wantHash := newHashFromStr("32dca787cfb73d50595a599b6fd72afce9a7c52ead22b8f15dfd8aabc5eaac32")

	require.Equal(t, wantHash, MainNetParams.GenesisHash)
	require.Equal(t, wantHash, mainBaseEpoch.HashGenesisBlock)
	require.Equal(t, wantHash, mainDigishieldEpoch.HashGenesisBlock)
	require.Equal(t, wantHash, mainAuxPowEpoch.HashGenesisBlock)
}
