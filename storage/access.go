// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/loki-project/lnsd/fault"
)

// Reader - pool reads shared by a snapshot View and an open Transaction
type Reader interface {
	Get(pool *PoolHandle, key []byte) ([]byte, error)
	GetN(pool *PoolHandle, key []byte) (uint64, bool, error)
	Has(pool *PoolHandle, key []byte) (bool, error)
	NewFetchCursor(pool *PoolHandle) *FetchCursor
}

// the read methods common to leveldb DB, Snapshot and Transaction
type leveldbReader interface {
	Get(key []byte, ro *ldb_opt.ReadOptions) ([]byte, error)
	Has(key []byte, ro *ldb_opt.ReadOptions) (bool, error)
	NewIterator(slice *ldb_util.Range, ro *ldb_opt.ReadOptions) iterator.Iterator
}

type access struct {
	r leveldbReader
}

// Get - read a value for a given key, nil if not found
func (a access) Get(pool *PoolHandle, key []byte) ([]byte, error) {
	value, err := a.r.Get(pool.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (a access) GetN(pool *PoolHandle, key []byte) (uint64, bool, error) {
	buffer, err := a.Get(pool, key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fault.ErrNotMappingPack
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// Has - check if a key exists
func (a access) Has(pool *PoolHandle, key []byte) (bool, error) {
	return a.r.Has(pool.prefixKey(key), nil)
}

// NewFetchCursor - initialise a cursor to the whole of a pool
func (a access) NewFetchCursor(pool *PoolHandle) *FetchCursor {
	return &FetchCursor{
		pool:     pool,
		reader:   a.r,
		maxRange: pool.fullRange(),
	}
}

// View - a consistent read only image of the database
type View struct {
	access
	snapshot *leveldb.Snapshot
}

// NewView - capture the committed state; open transactions are not visible
func (db *Database) NewView() (*View, error) {
	db.Lock()
	ldb := db.ldb
	db.Unlock()
	if nil == ldb {
		return nil, fault.ErrNotInitialised
	}
	snapshot, err := ldb.GetSnapshot()
	if nil != err {
		return nil, err
	}
	return &View{
		access:   access{r: snapshot},
		snapshot: snapshot,
	}, nil
}

// Release - end of use of the view
func (v *View) Release() {
	v.snapshot.Release()
}
