// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"

	"github.com/prux-project/pruxd/blockchain/standalone"
	prwire "github.com/prux-project/pruxd/wire"
)

// mainPowLimit is ~uint256(0) >> 20, the lowest difficulty (highest target)
// ever permitted on mainnet.
var mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 236), big.NewInt(1))

// mainBaseEpoch, mainDigishieldEpoch, and mainAuxPowEpoch reproduce
// CMainParams's consensus / digishieldConsensus / auxpowConsensus triple
// from original_source/src/chainparams.cpp verbatim, expressed as three
// ConsensusEpoch values rather than a hand-built binary search tree (see
// SPEC_FULL.md §9 and the "BST of consensus epochs" design note).
var (
	mainBaseEpoch = &ConsensusEpoch{
		PowLimit:                mainPowLimit,
		PowLimitBits:            standalone.GetCompact(mainPowLimit),
		PowTargetTimespan:       60 * 6,
		PowTargetSpacing:        3,
		CoinbaseMaturity:        259,
		SubsidyHalvingInterval:  5959595,
		AuxPowChainID:           0x03BF,
		StrictChainID:           true,
		AllowLegacyBlocks:       true,
		HeightEffective:         0,
		RuleChangeActivationThreshold: 9576,
		MinerConfirmationWindow:       10080,
		BIP34Height: 99324612,
		BIP65Height: 99324613,
		BIP66Height: 99324613,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {BitNumber: 28, StartTime: 1199145601, Timeout: 1230767999},
		},
		MinChainWork:       mustParseUint256Hex("00000000000000000000000000000000000000000000000000c1c51ec1c038ae"),
		DefaultAssumeValid: newHashFromStr("46805d5f7074a6e3dde019127b82499e43f27317a08833b8d36eb92d1257d8a1"),
	}

	mainDigishieldEpoch = &ConsensusEpoch{}
	mainAuxPowEpoch      = &ConsensusEpoch{}
)

func init() {
	// Blocks 15,615,200 and up set the Digishield and SimplifiedRewards
	// flags but do not yet enable AuxPoW. NextRequiredBits does not read
	// the Digishield flag; retargeting follows its height table alone.
	digishield := *mainBaseEpoch
	digishield.HeightEffective = 15615200
	digishield.SimplifiedRewards = true
	digishield.Digishield = true
	digishield.PowTargetTimespan = 60 * 6
	digishield.CoinbaseMaturity = 259
	*mainDigishieldEpoch = digishield

	// Blocks 15,615,201 and up enable AuxPoW (legacy, non-AuxPoW blocks
	// are no longer accepted).
	auxpow := digishield
	auxpow.HeightEffective = 15615201
	auxpow.AllowLegacyBlocks = false
	*mainAuxPowEpoch = auxpow

	genesis := CreateGenesisBlock(genesisTimestamp, genesisOutputScript, 1406496258, 2984499, 0x1e0ffff0, 1, 0)
	genesisHash := genesis.Header.BlockHash()

	mainBaseEpoch.HashGenesisBlock = genesisHash
	mainDigishieldEpoch.HashGenesisBlock = genesisHash
	mainAuxPowEpoch.HashGenesisBlock = genesisHash

	MainNetParams.GenesisBlock = genesis
	MainNetParams.GenesisHash = genesisHash
	MainNetParams.Registry = NewConsensusRegistry([]*ConsensusEpoch{
		mainBaseEpoch, mainDigishieldEpoch, mainAuxPowEpoch,
	})
}

// mainCheckpoints reproduces CMainParams::checkpointData verbatim from
// original_source/src/chainparams.cpp.
var mainCheckpoints = []Checkpoint{
	{0, newHashFromStr("32dca787cfb73d50595a599b6fd72afce9a7c52ead22b8f15dfd8aabc5eaac32")},
	{1, newHashFromStr("0646dc498ecdfb38e2ac8857c73f6dde6f6ac8f020e33f11e233915e1618327a")},
	{20, newHashFromStr("28b84136c8331f9c62275526fae2dc74b6dfdb51a73cb20ade122373af3f7bac")},
	{100, newHashFromStr("e95e5a541c965f85892bff681c9403925eb8321c92e24832fcb5dc27103cb39d")},
	{1000, newHashFromStr("71a44adce38c8930d7aeb80a3af187ea5f901b5f4c4f408f9ed599d7a3a815d0")},
	{20000, newHashFromStr("1008f379d4a8f170210f8c282f7b1ff70a4c1d62e123300e7c28b36a0d8afb3e")},
	{100000, newHashFromStr("2bc3ff8e8344d319f237be6ba3bc9a4c0a8ffb2e22caf40efa4d935ecc44b57f")},
	{500000, newHashFromStr("d60cd87bd932251cde2151144af26652836cd184f99ac0c0f83a82ec6258905a")},
	{1000000, newHashFromStr("ce439d8e0a980ad3b34eb9fdef17baaec60062ca7173799d741b02c06dd2acc5")},
	{2000000, newHashFromStr("e7984e478da979989290a8e29a4a0054c5fff129f2890ebbf4b38bde47a31acd")},
	{3000000, newHashFromStr("d7f0c99a9a6d331797314284ca55a2b5b56a893e10eed7641a7d1b5514c4ed62")},
	{4000000, newHashFromStr("a8c2b6b7ec104320ac552ea364abcd2c2091db1b9cc00a14c79d95523cb1c66f")},
	{5000000, newHashFromStr("723bd02efaf388698d2f36d0c5a20bfb79ed60e16018b4d4c63c036f34a41d64")},
	{6000000, newHashFromStr("184b159847c6e00dc6d03977d8dc311e7f756e23e9e72bd3efb2858a86ab7e01")},
	{7000000, newHashFromStr("458c49b767aac277b326b8ea3fafee189f059d9a5507f84d2ee1b45975ce338d")},
	{8000000, newHashFromStr("e043e3e91f2b06f50f5fab9f7dcd134df720c3c0ca1f6b58194e0620f375b164")},
	{9000000, newHashFromStr("a2641f838c6fdb933b5c38c457386099cbeb810db59ded64caf8c912350ea7bf")},
	{10000000, newHashFromStr("56f43abdd3de28ddf9de47826ec859c7afce22871e425c6f0775820bb6d9b6e4")},
	{11000000, newHashFromStr("9ecdd73d2e129795a53541ea68248d3bb75f5ab2c1e08b6f5aa2031e787701b0")},
	{12000000, newHashFromStr("8fd44d1994fa0b0e6f20a86993264f56def42a4bcd43316722b92d4da21b175f")},
	{13000000, newHashFromStr("73ce5fae93a114aafa14ef8d6140f80bb2a62085dfdc595f1abd139c2ad392e2")},
	{14000000, newHashFromStr("953bd93a9d9fe442e971c243778894ecbb9d649907b2a066a03994aaef2c3640")},
	{15000000, newHashFromStr("516bc4385902843d2d24ba0944b7e1388bce6803ac22ba5593f085de959df334")},
	{16000000, newHashFromStr("209d5b71eeca63db0b31d66761464750a43feea308ad49702d31bf02a960eccd")},
	{17000000, newHashFromStr("ee0c1dce907b20a0c4df97f8f51daefb41d4557a31c90071f876cf1557314df7")},
	{17408069, newHashFromStr("b1a12207838b0c6c24d20e76a39b2b621aed136f97823af14090f7a071a75395")},
	{17408071, newHashFromStr("48b2c520b23f723966ab9df8d78596d52e8e5306aa562c4b6a5580f42bf507b4")},
	{17408600, newHashFromStr("46805d5f7074a6e3dde019127b82499e43f27317a08833b8d36eb92d1257d8a1")},
}

// MainNetParams defines the network parameters for the main Prux network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         prwire.PruxMainNet,
	DefaultPort: "9595",

	Checkpoints: mainCheckpoints,

	ChainTxDataTime:  1645106645,
	ChainTxDataCount: 18686334,
	ChainTxDataRate:  1.0,

	PubKeyHashAddrID: 55,
	ScriptHashAddrID: 117,
	PrivateKeyID:     183,
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xb2, 0x1e},
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xad, 0xe4},

	MiningRequiresPeers:      true,
	DefaultConsistencyChecks: false,
	RequireStandard:          true,
	MineBlocksOnDemand:       false,

	MaxReorgDepth: 8,
	MinReorgPeers: 3,
}
