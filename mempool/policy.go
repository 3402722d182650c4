// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool implements the relay-fee and dust policy spec.md §4.7
// names: the minimum fee a transaction must pay to be relayed or mined,
// and the per-output dust surcharge that discourages spam outputs.
package mempool

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// DefaultBlockPrioritySize is the number of bytes, out of a generated
// block, reserved for high-priority/low-fee transactions regardless of
// their fee, grounded on prux.cpp's DEFAULT_BLOCK_PRIORITY_SIZE usage.
const DefaultBlockPrioritySize = 50000

// dustRelayFeeMultiple is how many times the minimum relay fee rate an
// output's own spend cost must reach before it stops being considered
// dust, matching CTxOut::IsDust's literal "3 *" factor.
const dustRelayFeeMultiple = 3

// dustSpendCostBytes estimates the additional bytes a typical spending
// input adds beyond an output's own serialized size, matching the
// literal 148-byte constant CTxOut::IsDust was written against (a
// compressed-pubkey P2PKH input).
const dustSpendCostBytes = 148

// FeeRate expresses a fee as satoshis per 1000 bytes, mirroring
// CFeeRate. A zero FeeRate means "free relay policy disabled" is not
// represented here; policy code treats a zero rate as "no fee required".
type FeeRate struct {
	SatoshisPerKB int64
}

// Fee returns the fee, in satoshis, for a transaction of the given
// serialized size at this rate. Matches CFeeRate::GetFee: proportional,
// rounded down, except that any positive size at a positive rate always
// costs at least one satoshi.
func (r FeeRate) Fee(nBytes int64) btcutil.Amount {
	if nBytes <= 0 {
		return 0
	}
	fee := r.SatoshisPerKB * nBytes / 1000
	if fee == 0 && r.SatoshisPerKB > 0 {
		fee = 1
	}
	return btcutil.Amount(fee)
}

// IsDust reports whether txOut's value is too small relative to the cost
// of spending it later, at the given base relay fee rate. Grounded on
// CTxOut::IsDust: an output below dustRelayFeeMultiple times the fee of
// (its own serialized size plus the estimated spend overhead) is dust.
func IsDust(txOut *wire.TxOut, baseFeeRate FeeRate) bool {
	size := txOut.SerializeSize() + dustSpendCostBytes
	threshold := baseFeeRate.Fee(int64(size)) * dustRelayFeeMultiple
	return btcutil.Amount(txOut.Value) < threshold
}

// DustFee sums, over every output in vout, one base-fee-rate-per-KB
// surcharge for each output IsDust flags. This is the Go rendering of
// prux.cpp's GetPruxDustFee.
func DustFee(vout []*wire.TxOut, baseFeeRate FeeRate) btcutil.Amount {
	var fee btcutil.Amount
	for _, txOut := range vout {
		if IsDust(txOut, baseFeeRate) {
			fee += btcutil.Amount(baseFeeRate.SatoshisPerKB)
		}
	}
	return fee
}

// DeltaSource supplies a transaction's mempool priority/fee deltas, the
// Go counterpart of CTxMemPool::ApplyDeltas. Implementations must guard
// their own internal locking; MinRelayFee calls this once per
// evaluation, matching the source's LOCK(mempool.cs) scope exactly
// rather than holding a lock across the whole fee computation.
type DeltaSource interface {
	ApplyDeltas(txHash [32]byte) (priorityDelta float64, feeDelta btcutil.Amount)
}

// MinRelayFee computes the minimum fee a transaction must pay to be
// relayed, the Go rendering of prux.cpp's GetPruxMinRelayFee. A
// transaction whose mempool deltas already grant it priority or a fee
// bonus is exempted outright. allowFree mirrors the "fAllowFree" legacy
// knob: transactions small enough to fit the free-relay carve-out pay
// nothing regardless of the computed fee.
func MinRelayFee(txHash [32]byte, vout []*wire.TxOut, nBytes int64, allowFree bool, baseFeeRate FeeRate, deltas DeltaSource) btcutil.Amount {
	if deltas != nil {
		priorityDelta, feeDelta := deltas.ApplyDeltas(txHash)
		if priorityDelta > 0 || feeDelta > 0 {
			return 0
		}
	}

	fee := baseFeeRate.Fee(nBytes) + DustFee(vout, baseFeeRate)

	if allowFree && nBytes < (DefaultBlockPrioritySize-1000) {
		fee = 0
	}

	if fee < 0 || fee > btcutil.MaxSatoshi {
		fee = btcutil.MaxSatoshi
	}
	return fee
}
