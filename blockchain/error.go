// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorCode identifies a kind of error returned as the reason a consensus
// validator rejected a block or header. Consensus functions never surface
// these as their return value (spec.md's validators return plain booleans).
// The validators in this package log plain-text reasons and do not construct
// RuleError values; the codes and ruleError are available to callers that
// want a typed reason without it influencing accept/reject behavior.
type ErrorCode int

const (
	// ErrNoTransactions indicates a block has no transactions at all.
	ErrNoTransactions ErrorCode = iota

	// ErrMissingAncestor indicates ChainIndexNode.Ancestor was asked for a
	// height that does not exist on the node's branch.
	ErrMissingAncestor

	// ErrBadCompact indicates a compact-encoded target decoded as
	// negative, zero, or overflowing.
	ErrBadCompact

	// ErrDifficultyTooHigh indicates a decoded target exceeds the active
	// network's pow_limit.
	ErrDifficultyTooHigh

	// ErrUnexpectedDifficulty indicates a candidate header's bits do not
	// match the value next_required_bits computed.
	ErrUnexpectedDifficulty

	// ErrInvalidAuxPow indicates AuxPow.Check rejected the proof.
	ErrInvalidAuxPow

	// ErrBadChainID indicates a non-legacy block's chain ID does not match
	// the active network's auxpow_chain_id under strict_chain_id.
	ErrBadChainID

	// ErrMissingAuxPow indicates a block flagged is_auxpow carries no
	// AuxPow payload.
	ErrMissingAuxPow

	// ErrUnexpectedAuxPow indicates a block carries an AuxPow payload but
	// is not flagged is_auxpow.
	ErrUnexpectedAuxPow
)

var errorCodeStrings = map[ErrorCode]string{
	ErrNoTransactions:        "ErrNoTransactions",
	ErrMissingAncestor:       "ErrMissingAncestor",
	ErrBadCompact:            "ErrBadCompact",
	ErrDifficultyTooHigh:     "ErrDifficultyTooHigh",
	ErrUnexpectedDifficulty:  "ErrUnexpectedDifficulty",
	ErrInvalidAuxPow:         "ErrInvalidAuxPow",
	ErrBadChainID:            "ErrBadChainID",
	ErrMissingAuxPow:         "ErrMissingAuxPow",
	ErrUnexpectedAuxPow:      "ErrUnexpectedAuxPow",
}

// String returns the ErrorCode in human-readable form.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation along with a human-readable
// description. It implements the error interface.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
