// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc package tests
package fixtures

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

// LogCategory - logger channel used by tests
const LogCategory = "testing"

var testingDirName string

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "lnsd-rpc-")
	if nil != err {
		panic(err)
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its directory
func TeardownTestLogger() {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

// CertificatePair - PEM certificate and key for 127.0.0.1
func CertificatePair() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("lnsd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}
