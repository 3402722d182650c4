// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"

	"github.com/prux-project/pruxd/blockchain/standalone"
	"github.com/prux-project/pruxd/chaincfg"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestNextRequiredBitsGenesis covers NextRequiredBits' tip == nil case:
// the candidate is genesis, so the network's pow_limit_bits is returned
// directly.
func TestNextRequiredBitsGenesis(t *testing.T) {
	epoch := testEpoch(0x1e0ffff0)
	require.Equal(t, epoch.PowLimitBits, NextRequiredBits(nil, 0, epoch))
}

// TestNextRequiredBitsNoRetargetGate verifies invariant 5: outside a
// retarget interval, with the min-difficulty shortcut disabled,
// next_required_bits equals the tip's own bits.
func TestNextRequiredBitsNoRetargetGate(t *testing.T) {
	epoch := testEpoch(0x1e0ffff0)
	epoch.AllowMinDifficulty = false

	// selectRegime(height=0) has target_spacing=3, target_timespan=360,
	// so interval = 120; height+1=1 is not a multiple of 120.
	tip := NewChainIndexNode(nil, 0, 1000, 0x1d00ffff)
	require.Equal(t, tip.Bits(), NextRequiredBits(tip, 1003, epoch))
}

// TestNextRequiredBitsNoRetargeting verifies the NoRetargeting epoch
// shortcut (regtest's fPowNoRetargeting): bits never change.
func TestNextRequiredBitsNoRetargeting(t *testing.T) {
	epoch := testEpoch(0x207fffff)
	epoch.NoRetargeting = true

	tip := NewChainIndexNode(nil, 500, 1000, 0x1d00ffff)
	require.Equal(t, tip.Bits(), NextRequiredBits(tip, 1500, epoch))
}

// TestNextRequiredBitsMinDifficultyShortcut verifies the testnet-style
// min-difficulty shortcut: a candidate arriving more than twice the
// target spacing after the tip gets the network's easiest target.
func TestNextRequiredBitsMinDifficultyShortcut(t *testing.T) {
	epoch := testEpoch(0x1e0ffff0)
	epoch.AllowMinDifficulty = true

	tip := NewChainIndexNode(nil, 1, 1000, 0x1d00ffff)
	candidateTime := uint32(1000 + 2*3 + 1) // regime.targetSpacing == 3 at height 1
	require.Equal(t, epoch.PowLimitBits, NextRequiredBits(tip, candidateTime, epoch))
}

// TestCalculateNextWorkClampsLow verifies the lower half of invariant 6:
// actual timespan is clamped up to target_timespan/4 before scaling the new
// target. The upper clamp (target_timespan*4) is driven by
// TestCalculateNextWorkCapsAtPowLimit below.
func TestCalculateNextWorkClampsLow(t *testing.T) {
	epoch := testEpoch(0x7fffffff)
	tip := NewChainIndexNode(nil, 0, 1000, standalone.GetCompact(big.NewInt(1_000_000)))

	// firstTime == tip.Timestamp() forces actual == 0, which must clamp
	// up to target_timespan/4 (90 for height 0's regime).
	clamped := calculateNextWork(tip, tip.Timestamp(), epoch)

	unclamped := calculateNextWork(tip, tip.Timestamp()-90, epoch)
	require.Equal(t, unclamped, clamped)
}

func TestCalculateNextWorkCapsAtPowLimit(t *testing.T) {
	epoch := testEpoch(0x00000fff)
	tip := NewChainIndexNode(nil, 0, 100_000, standalone.GetCompact(big.NewInt(0x00000fff)))

	// An enormous actual timespan (clamped to 4x target) still must not
	// push the new target above pow_limit.
	got := calculateNextWork(tip, 0, epoch)
	target, _, _ := standalone.SetCompact(got)
	require.LessOrEqual(t, target.Cmp(epoch.PowLimit), 0)
}

// TestCalculateNextWorkPropertyStaysWithinLimit is a property-based
// rendering of invariant 7: for arbitrary actual timespans and tip bits,
// the recomputed target never exceeds pow_limit.
func TestCalculateNextWorkPropertyStaysWithinLimit(t *testing.T) {
	epoch := testEpoch(0x1e0ffff0)

	rapid.Check(t, func(t *rapid.T) {
		tipTime := rapid.Uint32Range(1_000_000, 2_000_000).Draw(t, "tipTime")
		delta := rapid.Int64Range(-1_000_000, 1_000_000).Draw(t, "delta")
		firstTime := uint32(int64(tipTime) - delta)
		tipTargetSeed := rapid.Int64Range(1, 0x0fffff00).Draw(t, "tipTargetSeed")
		tipBits := standalone.GetCompact(big.NewInt(tipTargetSeed))

		tip := NewChainIndexNode(nil, 0, tipTime, tipBits)
		got := calculateNextWork(tip, firstTime, epoch)

		newTarget, negative, overflow := standalone.SetCompact(got)
		require.False(t, negative)
		require.False(t, overflow)
		require.LessOrEqual(t, newTarget.Cmp(epoch.PowLimit), 0)
	})
}

// TestSelectRegimeBoundaries exercises the height table spec.md §4.4 step
// 2 fixes.
func TestSelectRegimeBoundaries(t *testing.T) {
	require.Equal(t, retargetRegime{targetTimespan: 60 * 6, targetSpacing: 3, historyFactor: 2}, selectRegime(0))
	require.Equal(t, retargetRegime{targetTimespan: 60 * 6, targetSpacing: 3, historyFactor: 2}, selectRegime(7331699))
	require.Equal(t, retargetRegime{targetTimespan: 5 * 3600, targetSpacing: 9, historyFactor: 6}, selectRegime(7331700))
	require.Equal(t, retargetRegime{targetTimespan: 5 * 3600, targetSpacing: 9, historyFactor: 6}, selectRegime(7769999))
	require.Equal(t, retargetRegime{targetTimespan: 15 * 60, targetSpacing: 9, historyFactor: 2}, selectRegime(7770000))
}
