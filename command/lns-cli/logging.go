// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/logger"
)

// true while the logger is running
var loggingInitialised = false

// commands that open a database need the logger running; only
// critical messages are kept, in the temporary directory
func startLogging(m *metadata) (func(), error) {
	if loggingInitialised {
		return func() {}, nil
	}

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "lns-cli.log",
		Size:      1048576,
		Count:     10,
		Console:   m.verbose,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		return nil, err
	}
	loggingInitialised = true

	return func() {
		logger.Finalise()
		loggingInitialised = false
	}, nil
}
