// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/loki-project/lnsd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	reader   leveldbReader
	maxRange ldb_util.Range
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Limit - stop before key (excluded)
func (cursor *FetchCursor) Limit(key []byte) *FetchCursor {
	cursor.maxRange.Limit = cursor.pool.prefixKey(key)
	return cursor
}

// Prefix - restrict the cursor to keys beginning with prefix
func (cursor *FetchCursor) Prefix(prefix []byte) *FetchCursor {
	cursor.maxRange = *ldb_util.BytesPrefix(cursor.pool.prefixKey(prefix))
	return cursor
}

// Fetch - return up to count elements, advancing the cursor
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	iter := cursor.reader.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		results = append(results, newElement(iter.Key(), iter.Value()))
		if len(results) >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	// the next start is the smallest key after the last one returned
	if n := len(results); n > 0 {
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	iter := cursor.reader.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {
		e := newElement(iter.Key(), iter.Value())
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

// Last - the element with the greatest key in the range
func (cursor *FetchCursor) Last() (Element, bool, error) {
	if nil == cursor {
		return Element{}, false, fault.ErrInvalidCursor
	}

	iter := cursor.reader.NewIterator(&cursor.maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {
		result = newElement(iter.Key(), iter.Value())
		found = true
	}
	iter.Release()
	return result, found, iter.Error()
}
