// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/lnsd/data", util.EnsureAbsolute("/var/lib/lnsd", "data"), "relative")
	assert.Equal(t, "/tmp/data", util.EnsureAbsolute("/var/lib/lnsd", "/tmp/./data"), "absolute")
	assert.Equal(t, "/var/lib/data", util.EnsureAbsolute("/var/lib/lnsd", "../data"), "parent")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "lnsd-util-")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	target := filepath.Join(dir, "a", "b")
	assert.False(t, util.EnsureFileExists(target), "not yet present")
	assert.Nil(t, util.EnsureDirectory(target), "create")
	assert.True(t, util.EnsureFileExists(target), "present")
}
