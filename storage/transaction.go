// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/loki-project/lnsd/fault"
)

// Transaction - the single writer's view of the database
//
// reads see the transaction's own writes; nothing is visible to
// other readers until Commit
type Transaction struct {
	access
	db   *Database
	trx  *leveldb.Transaction
	err  error
	done bool
}

// Begin - start the only write transaction
func (db *Database) Begin() (*Transaction, error) {
	db.Lock()
	defer db.Unlock()

	if nil == db.ldb {
		return nil, fault.ErrNotInitialised
	}
	if db.inUse {
		return nil, fault.ErrTransactionInUse
	}

	trx, err := db.ldb.OpenTransaction()
	if nil != err {
		return nil, err
	}
	db.inUse = true

	return &Transaction{
		access: access{r: trx},
		db:     db,
		trx:    trx,
	}, nil
}

// InUse - true while a write transaction is open
func (db *Database) InUse() bool {
	db.Lock()
	defer db.Unlock()
	return db.inUse
}

// Put - store a key/value bytes pair
//
// errors are held until Commit
func (t *Transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	if t.done {
		t.setError(fault.ErrTransactionNotInUse)
		return
	}
	t.setError(t.trx.Put(pool.prefixKey(key), value, nil))
}

// PutN - store a big endian uint64
func (t *Transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(pool, key, buffer)
}

// Delete - remove a key
func (t *Transaction) Delete(pool *PoolHandle, key []byte) {
	if t.done {
		t.setError(fault.ErrTransactionNotInUse)
		return
	}
	t.setError(t.trx.Delete(pool.prefixKey(key), nil))
}

// first error wins
func (t *Transaction) setError(err error) {
	if nil == t.err {
		t.err = err
	}
}

// Commit - write all changes atomically
//
// if any Put or Delete failed nothing is written and that error is returned
func (t *Transaction) Commit() error {
	if t.done {
		return fault.ErrTransactionNotInUse
	}
	defer t.release()

	if nil != t.err {
		t.trx.Discard()
		return t.err
	}
	err := t.trx.Commit()
	if nil != err {
		t.trx.Discard()
	}
	return err
}

// Abort - discard all changes; no-op after Commit
func (t *Transaction) Abort() {
	if t.done {
		return
	}
	t.trx.Discard()
	t.release()
}

func (t *Transaction) release() {
	t.done = true
	t.db.Lock()
	t.db.inUse = false
	t.db.Unlock()
}
