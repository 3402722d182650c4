// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command pruxd exercises the Prux consensus core: selecting a network,
// loading its parameter registry, and reporting the genesis-height epoch
// and genesis hash. It intentionally stops short of a full node -- no P2P
// networking, block database, or RPC server -- since those are out of
// scope (see SPEC_FULL.md §10).
package main

import (
	"fmt"
	"os"
)

func pruxdMain() error {
	_, params, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	pruxLog.Infof("Prux consensus core starting (network: %s)", params.Name)
	pruxLog.Infof("genesis hash: %s", params.GenesisHash)

	epoch := params.ConsensusAt(0)
	pruxLog.Infof("genesis epoch: pow_limit_bits=%08x target_spacing=%ds",
		epoch.PowLimitBits, epoch.PowTargetSpacing)

	return nil
}

func main() {
	if err := pruxdMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
