// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/storage"
)

func fillTestPool(t *testing.T, db *storage.Database) {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	for _, k := range []string{"a1", "a2", "a3", "b1", "b2", "c1"} {
		trx.Put(db.Pool.Heights, []byte(k), []byte("v-"+k))
	}

	// neighbouring pools must not leak into the cursor
	trx.Put(db.Pool.Mappings, []byte("a0"), []byte("other"))
	trx.Put(db.Pool.OwnerIndex, []byte("a0"), []byte("other"))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func keys(elements []storage.Element) []string {
	result := make([]string, 0, len(elements))
	for _, e := range elements {
		result = append(result, string(e.Key))
	}
	return result
}

func TestFetch(t *testing.T) {
	db, _ := openTestDatabase(t)
	defer db.Close()
	fillTestPool(t, db)

	view, _ := db.NewView()
	defer view.Release()

	cursor := view.NewFetchCursor(db.Pool.Heights)
	first, err := cursor.Fetch(4)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, []string{"a1", "a2", "a3", "b1"}, keys(first), "first page")

	second, err := cursor.Fetch(4)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, []string{"b2", "c1"}, keys(second), "second page")
	assert.Equal(t, []byte("v-c1"), second[1].Value, "value")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestPrefixAndLimit(t *testing.T) {
	db, _ := openTestDatabase(t)
	defer db.Close()
	fillTestPool(t, db)

	view, _ := db.NewView()
	defer view.Release()

	var seen []string
	err := view.NewFetchCursor(db.Pool.Heights).Prefix([]byte("b")).Map(func(key []byte, value []byte) error {
		seen = append(seen, string(key))
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, []string{"b1", "b2"}, seen, "prefix")

	last, found, err := view.NewFetchCursor(db.Pool.Heights).Prefix([]byte("a")).Limit([]byte("a3")).Last()
	assert.Nil(t, err, "last")
	assert.True(t, found, "found")
	assert.Equal(t, "a2", string(last.Key), "limit excluded")

	_, found, err = view.NewFetchCursor(db.Pool.Heights).Prefix([]byte("z")).Last()
	assert.Nil(t, err, "last")
	assert.False(t, found, "empty")

	elements, err := view.NewFetchCursor(db.Pool.Heights).Seek([]byte("b2")).Fetch(10)
	assert.Nil(t, err, "seek")
	assert.Equal(t, []string{"b2", "c1"}, keys(elements), "from seek")
}
