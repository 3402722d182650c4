// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"github.com/prux-project/pruxd/blockchain"
)

// logWriter implements an io.Writer that outputs to both standard output
// and the rotating log file.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	logRotator.Write(p)
	return len(p), nil
}

var (
	backendLog = btclog.NewBackend(logWriter{})

	logRotator *rotator.Rotator

	pruxLog = backendLog.Logger("PRUX")
	chanLog = backendLog.Logger("CHAN")
)

// subsystemLoggers maps each subsystem tag accepted by --debuglevel to the
// btclog.Logger it controls. blockchain.UseLogger's ambient "var log =
// btclog.Disabled" pattern means packages stay silent until this map wires
// a real backend into them at startup.
var subsystemLoggers = map[string]btclog.Logger{
	"PRUX": pruxLog,
	"CHAN": chanLog,
}

func init() {
	blockchain.UseLogger(chanLog)
}

// initLogRotator initializes the logging rotator to write logs to logFile
// and create roll files in the same directory. It must be called before
// the package-level log variables are used.
func initLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create log directory:", err)
		os.Exit(1)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create file rotator:", err)
		os.Exit(1)
	}
	logRotator = r
}

// setLogLevel sets the logging level for provided subsystem. Subsystems
// not present in subsystemLoggers are ignored.
func setLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// setLogLevels sets the log level for every registered subsystem.
func setLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		setLogLevel(subsystemID, logLevel)
	}
}
