// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"

	"github.com/prux-project/pruxd/blockchain/standalone"
	prwire "github.com/prux-project/pruxd/wire"
)

// testPowLimit is ~uint256(0) >> 20, identical in shape to mainnet's limit
// but kept as its own value since the two networks' epoch tables diverge
// independently going forward.
var testPowLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 236), big.NewInt(1))

// testBaseEpoch, testDigishieldEpoch, testMinDifficultyEpoch, and
// testAuxPowEpoch reproduce CTestNetParams's consensus / digishieldConsensus
// / minDifficultyConsensus / auxpowConsensus quadruple from
// original_source/src/chainparams.cpp verbatim.
var (
	testBaseEpoch = &ConsensusEpoch{
		PowLimit:               testPowLimit,
		PowLimitBits:           standalone.GetCompact(testPowLimit),
		PowTargetTimespan:      4 * 60 * 60,
		PowTargetSpacing:       60,
		CoinbaseMaturity:       30,
		SubsidyHalvingInterval: 100000,
		AllowMinDifficulty:     true,
		AuxPowChainID:          0x0062,
		StrictChainID:          false,
		AllowLegacyBlocks:      true,
		HeightEffective:        0,
		RuleChangeActivationThreshold: 2880,
		MinerConfirmationWindow:       10080,
		BIP34Height: 708658,
		BIP65Height: 1854705,
		BIP66Height: 708658,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {BitNumber: 28, StartTime: 1199145601, Timeout: 1230767999},
		},
		MinChainWork:       mustParseUint256Hex("00000000000000000000000000000000000000000000000000001030d1382ade"),
		DefaultAssumeValid: newHashFromStr("6943eaeaba98dc7d09f7e73398daccb4abcabb18b66c8c875e52b07638d93951"),
	}

	testDigishieldEpoch    = &ConsensusEpoch{}
	testMinDifficultyEpoch = &ConsensusEpoch{}
	testAuxPowEpoch        = &ConsensusEpoch{}
)

func init() {
	// Blocks 145,000 - 157,499: Digishield flag set (NextRequiredBits does
	// not read it), no minimum-difficulty shortcut.
	digishield := *testBaseEpoch
	digishield.HeightEffective = 145000
	digishield.PowTargetTimespan = 60
	digishield.Digishield = true
	digishield.SimplifiedRewards = true
	digishield.AllowMinDifficulty = false
	digishield.CoinbaseMaturity = 240
	*testDigishieldEpoch = digishield

	// Blocks 157,500 - 158,099: Digishield with the minimum-difficulty
	// shortcut restored. NextRequiredBits applies it at non-interval
	// heights only and does not read AllowDigishieldMinDifficulty.
	minDifficulty := digishield
	minDifficulty.HeightEffective = 157500
	minDifficulty.AllowDigishieldMinDifficulty = true
	minDifficulty.AllowMinDifficulty = true
	*testMinDifficultyEpoch = minDifficulty

	// Blocks 158,100 and up: AuxPoW enabled, legacy blocks no longer
	// accepted.
	auxpow := minDifficulty
	auxpow.HeightEffective = 158100
	auxpow.AllowDigishieldMinDifficulty = true
	auxpow.AllowLegacyBlocks = false
	*testAuxPowEpoch = auxpow

	genesis := CreateGenesisBlock(genesisTimestamp, genesisOutputScript, 1391503289, 997879, 0x1e0ffff0, 1, 88*1e8)
	genesisHash := genesis.Header.BlockHash()

	testBaseEpoch.HashGenesisBlock = genesisHash
	testDigishieldEpoch.HashGenesisBlock = genesisHash
	testMinDifficultyEpoch.HashGenesisBlock = genesisHash
	testAuxPowEpoch.HashGenesisBlock = genesisHash

	TestNetParams.GenesisBlock = genesis
	TestNetParams.GenesisHash = genesisHash
	TestNetParams.Registry = NewConsensusRegistry([]*ConsensusEpoch{
		testBaseEpoch, testDigishieldEpoch, testMinDifficultyEpoch, testAuxPowEpoch,
	})
}

// testCheckpoints reproduces CTestNetParams::checkpointData verbatim.
var testCheckpoints = []Checkpoint{
	{0, newHashFromStr("bb0a78264637406b6360aad926284d544d7049f45189db5664f3c4d07350559e")},
	{483173, newHashFromStr("a804201ca0aceb7e937ef7a3c613a9b7589245b10cc095148c4ce4965b0b73b5")},
	{591117, newHashFromStr("5f6b93b2c28cedf32467d900369b8be6700f0649388a7dbfd3ebd4a01b1ffad8")},
	{658924, newHashFromStr("ed6c8324d9a77195ee080f225a0fca6346495e08ded99bcda47a8eea5a8a620b")},
	{703635, newHashFromStr("839fa54617adcd582d53030a37455c14a87a806f6615aa8213f13e196230ff7f")},
	{1000000, newHashFromStr("1fe4d44ea4d1edb031f52f0d7c635db8190dc871a190654c41d2450086b8ef0e")},
	{1202214, newHashFromStr("a2179767a87ee4e95944703976fee63578ec04fa3ac2fc1c9c2c83587d096977")},
	{1250000, newHashFromStr("b46affb421872ca8efa30366b09694e2f9bf077f7258213be14adb05a9f41883")},
	{1500000, newHashFromStr("0caa041b47b4d18a4f44bdc05cef1a96d5196ce7b2e32ad3e4eb9ba505144917")},
	{1750000, newHashFromStr("8042462366d854ad39b8b95ed2ca12e89a526ceee5a90042d55ebb24d5aab7e9")},
	{2000000, newHashFromStr("d6acde73e1b42fc17f29dcc76f63946d378ae1bd4eafab44d801a25be784103c")},
	{2250000, newHashFromStr("c4342ae6d9a522a02e5607411df1b00e9329563ef844a758d762d601d42c86dc")},
	{2500000, newHashFromStr("3a66ec4933fbb348c9b1889aaf2f732fe429fd9a8f74fee6895eae061ac897e2")},
	{2750000, newHashFromStr("473ea9f625d59f534ffcc9738ffc58f7b7b1e0e993078614f5484a9505885563")},
	{3062910, newHashFromStr("113c41c00934f940a41f99d18b2ad9aefd183a4b7fe80527e1e6c12779bd0246")},
}

// TestNetParams defines the network parameters for the test Prux network.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         prwire.PruxTestNet,
	DefaultPort: "44556",

	DNSSeeds: []string{"testseed.jrn.me.uk"},

	Checkpoints: testCheckpoints,

	ChainTxDataTime:  1613217942,
	ChainTxDataCount: 4186373,
	ChainTxDataRate:  0.05,

	PubKeyHashAddrID: 113,
	ScriptHashAddrID: 196,
	PrivateKeyID:     241,
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},

	MiningRequiresPeers:      true,
	DefaultConsistencyChecks: false,
	RequireStandard:          false,
	MineBlocksOnDemand:       false,
}
