// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/chain"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/ownership"
)

func makeMapping(t mapping.Type, height uint64) *ownership.Mapping {
	value, _ := mapping.NewValue(bytes.Repeat([]byte{0xab}, t.EncryptedLength()))
	return &ownership.Mapping{
		Type:           t,
		NameHash:       mapping.NameToHash("alice"),
		EncryptedValue: value,
		RegisterHeight: height,
		TxIndex:        3,
		OwnerID:        7,
		TxId:           digest.NewDigest([]byte("tx")),
		PrevTxId:       digest.NewDigest([]byte("prev")),
	}
}

func TestMappingPack(t *testing.T) {
	m := makeMapping(mapping.Session, 12345)
	back, err := m.Pack().Unpack(m.Key())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, m, back, "round trip")

	_, err = ownership.PackedMapping([]byte{1, 2, 3}).Unpack(m.Key())
	assert.Equal(t, fault.ErrNotMappingPack, err, "short data")
	_, err = m.Pack().Unpack(ownership.MappingKey([]byte{1}))
	assert.Equal(t, fault.ErrNotMappingPack, err, "short key")
}

func TestKeyOrder(t *testing.T) {
	a := makeMapping(mapping.Session, 255)
	b := makeMapping(mapping.Session, 256)
	c := makeMapping(mapping.Session, 256)
	c.TxIndex = 4

	assert.True(t, bytes.Compare(a.Key(), b.Key()) < 0, "height order")
	assert.True(t, bytes.Compare(b.Key(), c.Key()) < 0, "index order")
	assert.True(t, bytes.HasPrefix(a.Key(), ownership.MappingPrefix(a.NameHash, a.Type)), "prefix")
	assert.True(t, bytes.Compare(a.HeightKey(), b.HeightKey()) < 0, "height index order")
}

func TestIndexKeys(t *testing.T) {
	m := makeMapping(mapping.Lokinet2Years, 99)

	key, height, err := m.HeightKey().MappingKey()
	assert.Nil(t, err, "height key")
	assert.Equal(t, uint64(99), height, "height")
	assert.Equal(t, m.Key(), key, "from height key")

	key, id, err := m.OwnerIndexKey().MappingKey(m.OwnerIndexData())
	assert.Nil(t, err, "owner key")
	assert.Equal(t, int64(7), id, "owner id")
	assert.Equal(t, m.Key(), key, "from owner key")
	assert.True(t, bytes.HasPrefix(m.OwnerIndexKey(), ownership.OwnerPrefix(7)), "owner prefix")

	id, err = ownership.OwnerIDFromBytes(ownership.OwnerIDBytes(1 << 40))
	assert.Nil(t, err, "id")
	assert.Equal(t, int64(1<<40), id, "id value")
}

func TestSettingsPack(t *testing.T) {
	s := &ownership.Settings{
		TopHeight: 500,
		TopHash:   digest.NewDigest([]byte("block")),
		Version:   1,
	}
	back, err := s.Pack().Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, s, back, "round trip")

	_, err = ownership.PackedSettings([]byte{0}).Unpack()
	assert.Equal(t, fault.ErrNotSettingsPack, err, "short")
}

func TestLease(t *testing.T) {
	m := makeMapping(mapping.Lokinet1Year, 100)
	assert.True(t, m.Active(chain.Fakechain, 109), "active")
	assert.False(t, m.Active(chain.Fakechain, 110), "expired")
	h, ok := m.ExpiryHeight(chain.Fakechain)
	assert.True(t, ok, "leased")
	assert.Equal(t, uint64(110), h, "expiry height")

	s := makeMapping(mapping.Session, 100)
	assert.True(t, s.Renewable(chain.Fakechain, 1<<40), "perpetual")
	assert.False(t, s.IsFresh(), "superseding")
	s.PrevTxId = digest.Zero
	assert.True(t, s.IsFresh(), "fresh")
}
