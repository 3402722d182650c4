// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DeploymentID identifies a specific consensus deployment slot within a
// ConsensusEpoch's Deployments array, mirroring the teacher's
// DeploymentTestDummy/... iota block.
type DeploymentID int

const (
	// DeploymentTestDummy is a reserved deployment slot used only for
	// testing purposes, matching the well-known bit 28 convention shared
	// across the btcsuite/bitcoin-derived ecosystem.
	DeploymentTestDummy DeploymentID = iota

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in. This is trimmed from the teacher's
// chaincfg/params.go ConsensusDeployment to the fields ConsensusEpoch's
// deployments map needs: activation bookkeeping, no BIP9 state-machine
// evaluation (out of scope, see SPEC_FULL.md §6.3).
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// Timeout is the median block time after which the deployment is
	// considered failed if it has not yet locked in.
	Timeout uint64
}

// ConsensusEpoch is an immutable bundle of consensus rule constants that
// apply from HeightEffective until the next epoch's HeightEffective (or
// forever, for the last epoch in a registry). It is the Go rendering of
// spec.md's ConsensusEpoch.
type ConsensusEpoch struct {
	// PowLimit is the highest proof-of-work target permitted on the
	// network; any decoded target above this is rejected.
	PowLimit *big.Int

	// PowLimitBits is PowLimit pre-encoded in compact form, returned
	// directly by NextRequiredBits when tip is nil (genesis).
	PowLimitBits uint32

	PowTargetTimespan int64
	PowTargetSpacing  int64

	CoinbaseMaturity       uint32
	SubsidyHalvingInterval uint32

	AllowMinDifficulty          bool
	AllowDigishieldMinDifficulty bool
	NoRetargeting               bool
	Digishield                  bool
	SimplifiedRewards           bool

	AuxPowChainID      uint32
	StrictChainID      bool
	AllowLegacyBlocks  bool

	// HeightEffective is the height at or above which this epoch applies;
	// the registry invariant (strictly increasing, smallest <= 0) is
	// established by NewConsensusRegistry.
	HeightEffective int32

	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32

	BIP34Height int32
	BIP65Height int32
	BIP66Height int32

	Deployments [DefinedDeployments]ConsensusDeployment

	MinChainWork       *big.Int
	DefaultAssumeValid chainhash.Hash
	HashGenesisBlock   chainhash.Hash
}

// ConsensusRegistry is a fixed, ordered collection of ConsensusEpochs for one
// network. Per the "BST of consensus epochs" design note, this replaces the
// source's hand-built binary search tree with an immutable sorted slice and
// a binary-search lookup: identical height -> epoch semantics, no internal
// pointers.
type ConsensusRegistry struct {
	epochs []*ConsensusEpoch
}

// NewConsensusRegistry builds a registry from epochs in any order, sorting
// them by HeightEffective and validating the registry invariant: epochs have
// strictly increasing, non-overlapping HeightEffective values and the
// smallest is <= 0. It panics on violation since a malformed registry is a
// caller bug caught at process start, not a runtime condition.
func NewConsensusRegistry(epochs []*ConsensusEpoch) *ConsensusRegistry {
	sorted := make([]*ConsensusEpoch, len(epochs))
	copy(sorted, epochs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].HeightEffective < sorted[j].HeightEffective
	})

	if len(sorted) == 0 {
		panic("chaincfg: consensus registry must contain at least one epoch")
	}
	if sorted[0].HeightEffective > 0 {
		panic("chaincfg: consensus registry's earliest epoch must have height_effective <= 0")
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].HeightEffective <= sorted[i-1].HeightEffective {
			panic("chaincfg: consensus registry epochs must have strictly increasing height_effective")
		}
	}

	return &ConsensusRegistry{epochs: sorted}
}

// ConsensusAt returns the epoch with the greatest HeightEffective <= height.
// If height precedes every epoch (only possible if the registry's earliest
// epoch has a positive HeightEffective, which NewConsensusRegistry forbids),
// the earliest epoch is returned. Implements spec.md's get_consensus with a
// partition-point binary search rather than the source's binary search tree.
func (r *ConsensusRegistry) ConsensusAt(height int32) *ConsensusEpoch {
	// sort.Search finds the smallest index i such that epochs[i].HeightEffective > height;
	// the epoch one before that is the greatest with HeightEffective <= height.
	idx := sort.Search(len(r.epochs), func(i int) bool {
		return r.epochs[i].HeightEffective > height
	})
	if idx == 0 {
		return r.epochs[0]
	}
	return r.epochs[idx-1]
}

// Epochs returns the registry's epochs in ascending HeightEffective order.
// Callers MUST NOT mutate the returned slice or its elements.
func (r *ConsensusRegistry) Epochs() []*ConsensusEpoch {
	return r.epochs
}
