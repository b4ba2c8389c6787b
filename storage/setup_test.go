// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/storage"
)

var testingDirName string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "lnsd-storage-")
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

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func openTestDatabase(t *testing.T) (*storage.Database, string) {
	name, err := ioutil.TempDir(testingDirName, "db-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	db, err := storage.Open(name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	return db, name
}

func TestOpenVersion(t *testing.T) {
	db, name := openTestDatabase(t)
	assert.Nil(t, db.Close(), "close")
	assert.Equal(t, fault.ErrNotInitialised, db.Close(), "second close")

	db, err := storage.Open(name, storage.ReadOnly)
	assert.Nil(t, err, "reopen read only")
	assert.True(t, db.IsReadOnly(), "read only")
	db.Close()

	// overwrite the version with a future one
	ldb, err := leveldb.OpenFile(name, nil)
	assert.Nil(t, err, "raw open")
	assert.Nil(t, ldb.Put([]byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}, []byte{0, 0, 0, 9}, nil), "raw put")
	ldb.Close()

	_, err = storage.Open(name, storage.ReadWrite)
	assert.Equal(t, fault.ErrDatabaseVersion, err, "future version")
}

func TestOpenMissingReadOnly(t *testing.T) {
	_, err := storage.Open(filepath.Join(testingDirName, "does-not-exist"), storage.ReadOnly)
	assert.NotNil(t, err, "missing database")
}

func TestPools(t *testing.T) {
	db, _ := openTestDatabase(t)
	defer db.Close()

	prefixes := ""
	db.ForEachPool(func(pool *storage.PoolHandle) {
		prefixes += string(pool.Prefix())
	})
	assert.Equal(t, "OKNMHWS", prefixes, "pool prefixes")
	assert.Equal(t, "Mappings", db.Pool.Mappings.Name(), "pool name")
}
