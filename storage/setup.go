// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/loki-project/lnsd/fault"
)

// Pools - the tables of the ledger
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	OwnerKeys  *PoolHandle `prefix:"O"`
	OwnerIDs   *PoolHandle `prefix:"K"`
	OwnerNext  *PoolHandle `prefix:"N"`
	Mappings   *PoolHandle `prefix:"M"`
	Heights    *PoolHandle `prefix:"H"`
	OwnerIndex *PoolHandle `prefix:"W"`
	Settings   *PoolHandle `prefix:"S"`
}

// CurrentVersion - schema version written to new databases
const CurrentVersion = 1

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open ledger database
type Database struct {
	sync.Mutex
	Pool     Pools
	log      *logger.L
	ldb      *leveldb.DB
	inUse    bool
	readOnly bool
}

// Open - open or create the database and prepare the pools
func Open(name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}
	ldb, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			ldb.Close()
		}
	}()

	version, err := getVersion(ldb)
	if nil != err {
		return nil, err
	}
	switch version {
	case CurrentVersion:
	case 0:
		if readOnly {
			log.Criticalf("database: %q has no version", name)
			return nil, fault.ErrDatabaseVersion
		}
		if err := putVersion(ldb, CurrentVersion); nil != err {
			return nil, err
		}
		log.Infof("created database: %q", name)
	default:
		log.Criticalf("database version: %d  expected: %d", version, CurrentVersion)
		return nil, fault.ErrDatabaseVersion
	}

	db := &Database{
		log:      log,
		ldb:      ldb,
		readOnly: readOnly,
	}
	if err := db.setupPools(); nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return db, nil
}

// fill in each pool handle from the struct tags
func (db *Database) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(db.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&db.Pool).Elem()

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s has same prefix as: %s", fieldInfo.Name, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			name:   fieldInfo.Name,
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database
func (db *Database) Close() error {
	db.Lock()
	defer db.Unlock()
	if nil == db.ldb {
		return fault.ErrNotInitialised
	}
	err := db.ldb.Close()
	db.ldb = nil
	return err
}

// IsReadOnly - true if opened ReadOnly
func (db *Database) IsReadOnly() bool {
	return db.readOnly
}

// ForEachPool - call f with every pool in prefix order of declaration
func (db *Database) ForEachPool(f func(pool *PoolHandle)) {
	poolValue := reflect.ValueOf(db.Pool)
	for i := 0; i < poolValue.NumField(); i += 1 {
		f(poolValue.Field(i).Interface().(*PoolHandle))
	}
}

// return version number, zero if not set
func getVersion(ldb *leveldb.DB) (int, error) {
	versionValue, err := ldb.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(ldb *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))
	return ldb.Put(versionKey, currentVersion, nil)
}
