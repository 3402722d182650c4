// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"

	"github.com/prux-project/pruxd/blockchain/standalone"
	prwire "github.com/prux-project/pruxd/wire"
)

// regtestPowLimit is ~uint256(0) >> 1, the lowest-difficulty target
// regtest allows -- deliberately almost the entire 256-bit space, so test
// miners never have to do real work.
var regtestPowLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))

// regtestBaseEpoch and regtestAuxPowEpoch reproduce CRegTestParams's
// consensus / digishieldConsensus / auxpowConsensus triple from
// original_source/src/chainparams.cpp verbatim. Regtest names its second
// tier "digishieldConsensus" in the original but activates it at height 10
// immediately followed by AuxPoW at height 20, so only two externally
// distinct behaviors exist; both are still modeled as their own epoch to
// keep the three-tier shape visible for anyone diffing the epoch tables
// across networks.
var (
	regtestBaseEpoch = &ConsensusEpoch{
		PowLimit:               regtestPowLimit,
		PowLimitBits:           standalone.GetCompact(regtestPowLimit),
		PowTargetTimespan:      4 * 60 * 60,
		PowTargetSpacing:       1,
		CoinbaseMaturity:       60,
		SubsidyHalvingInterval: 150,
		AllowMinDifficulty:     true,
		NoRetargeting:          true,
		SimplifiedRewards:      true,
		AuxPowChainID:          0x0062,
		StrictChainID:          true,
		AllowLegacyBlocks:      true,
		HeightEffective:        0,
		RuleChangeActivationThreshold: 540,
		MinerConfirmationWindow:       720,
		BIP34Height: 100000000,
		BIP65Height: 1351,
		BIP66Height: 1251,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {BitNumber: 28, StartTime: 0, Timeout: 999999999999},
		},
		MinChainWork:       big.NewInt(0),
		DefaultAssumeValid: chainhashZero,
	}

	regtestDigishieldEpoch = &ConsensusEpoch{}
	regtestAuxPowEpoch     = &ConsensusEpoch{}
)

func init() {
	digishield := *regtestBaseEpoch
	digishield.HeightEffective = 10
	digishield.PowTargetTimespan = 1
	digishield.Digishield = true
	*regtestDigishieldEpoch = digishield

	auxpow := digishield
	auxpow.HeightEffective = 20
	auxpow.AllowLegacyBlocks = false
	*regtestAuxPowEpoch = auxpow

	genesis := CreateGenesisBlock(genesisTimestamp, genesisOutputScript, 1296688602, 2, 0x207fffff, 1, 88*1e8)
	genesisHash := genesis.Header.BlockHash()

	regtestBaseEpoch.HashGenesisBlock = genesisHash
	regtestDigishieldEpoch.HashGenesisBlock = genesisHash
	regtestAuxPowEpoch.HashGenesisBlock = genesisHash

	RegressionNetParams.GenesisBlock = genesis
	RegressionNetParams.GenesisHash = genesisHash
	regtestCheckpoints[0].Hash = genesisHash
	RegressionNetParams.Registry = NewConsensusRegistry([]*ConsensusEpoch{
		regtestBaseEpoch, regtestDigishieldEpoch, regtestAuxPowEpoch,
	})
}

// regtestCheckpoints reproduces CRegTestParams::checkpointData verbatim:
// regtest only ever checkpoints its own genesis block, whose hash init
// fills in once the block is built.
var regtestCheckpoints = []Checkpoint{
	{0, chainhashZero},
}

// RegressionNetParams defines the network parameters for the regression
// test Prux network.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         prwire.PruxRegTestNet,
	DefaultPort: "18444",

	Checkpoints: regtestCheckpoints,

	PubKeyHashAddrID: 111,
	ScriptHashAddrID: 196,
	PrivateKeyID:     239,
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},

	MiningRequiresPeers:      false,
	DefaultConsistencyChecks: true,
	RequireStandard:          false,
	MineBlocksOnDemand:       true,
}
