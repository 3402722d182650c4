// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
	"github.com/prux-project/pruxd/chaincfg"
)

const (
	defaultDataDirname  = "data"
	defaultLogFilename  = "pruxd.log"
	defaultLogLevel     = "info"
	defaultConfigFile   = "pruxd.conf"
)

// config defines the command-line and config-file options pruxd accepts.
// Its shape follows the teacher's flags-struct-with-struct-tags
// convention: one field per option, parsed by jessevdk/go-flags.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir     string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	RegressionTest bool `long:"regtest" description:"Use the regression test network"`
}

// defaultHomeDir returns the default application data directory, following
// the XDG-lite ~/.pruxd convention real btcsuite daemons use.
func defaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".pruxd")
}

// loadConfig reads command-line arguments into a config value, applies the
// network
// selection and logging setup side effects, and returns the active
// chaincfg.Params for the selected network. The --configfile option is
// accepted but no config file is read.
func loadConfig() (*config, *chaincfg.Params, error) {
	homeDir := defaultHomeDir()

	cfg := config{
		DataDir:    filepath.Join(homeDir, defaultDataDirname),
		LogDir:     homeDir,
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return nil, nil, err
	}

	if cfg.TestNet && cfg.RegressionTest {
		return nil, nil, fmt.Errorf("testnet and regtest cannot be used together")
	}

	netName := "main"
	switch {
	case cfg.TestNet:
		netName = "test"
	case cfg.RegressionTest:
		netName = "regtest"
	}

	params, err := chaincfg.Select(netName)
	if err != nil {
		return nil, nil, err
	}

	initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	setLogLevels(cfg.DebugLevel)

	return &cfg, params, nil
}
