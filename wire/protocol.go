// Copyright (c) 2013-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// BitcoinNet represents which network a message belongs to, carried as the
// magic bytes that prefix every message on the wire. P2P message framing
// itself is out of scope here (see SPEC_FULL.md §10); this type exists so
// chaincfg.Params can identify a network unambiguously the same way the
// wider Bitcoin-derived ecosystem does.
type BitcoinNet uint32

// Constants used to indicate the network a block or parameter set belongs
// to. They can also be used to seek to the next message when a stream's
// state is unknown, but this package does not provide that functionality
// since it's generally a better idea to simply disconnect clients that are
// misbehaving over TCP.
const (
	// PruxMainNet represents the main Prux network. The wire value is the
	// little-endian uint32 whose byte sequence on the wire is
	// fc d9 b7 dd, per the network magic bytes fixed in the external
	// interfaces: the first byte transmitted is 0xfc, so as a
	// little-endian uint32 it reads 0xddb7d9fc.
	PruxMainNet BitcoinNet = 0xddb7d9fc

	// PruxTestNet represents the Prux test network, wire bytes
	// fc c1 b7 dc.
	PruxTestNet BitcoinNet = 0xdcb7c1fc

	// PruxRegTestNet represents the Prux regression test network, wire
	// bytes fa bf b5 da. This is numerically identical to upstream
	// Bitcoin's own regtest magic (0xdab5bffa) -- Prux reuses it
	// verbatim for regtest, since regtest magic is never expected to
	// cross a real network boundary.
	PruxRegTestNet BitcoinNet = 0xdab5bffa
)

// bnStrings is a map of bitcoin networks back to their constant names for
// pretty printing.
var bnStrings = map[BitcoinNet]string{
	PruxMainNet:    "PruxMainNet",
	PruxTestNet:    "PruxTestNet",
	PruxRegTestNet: "PruxRegTestNet",
}

// String returns the BitcoinNet in human-readable form.
func (n BitcoinNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown BitcoinNet (%d)", uint32(n))
}
