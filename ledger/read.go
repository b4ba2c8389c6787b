// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/loki-project/lnsd/account"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/ownership"
	"github.com/loki-project/lnsd/storage"
	"github.com/loki-project/lnsd/transactionrecord"
)

// stateReader - ledger reads over a view or an open transaction
//
// it satisfies consensus.Reader
type stateReader struct {
	r    storage.Reader
	pool *storage.Pools
}

// MappingAt - greatest surviving (height, index) at or below height, nil if none
func (s stateReader) MappingAt(t mapping.Type, nameHash digest.Digest, height uint64) (*ownership.Mapping, error) {
	prefix := ownership.MappingPrefix(nameHash, t)
	cursor := s.r.NewFetchCursor(s.pool.Mappings).Prefix(prefix)
	if height < math.MaxUint64 {
		limit := append(prefix, ownership.HeightPrefix(height+1)...)
		cursor.Limit(limit)
	}

	element, found, err := cursor.Last()
	if nil != err || !found {
		return nil, err
	}
	return s.unpack(element.Key, element.Value)
}

// rebuild a row and attach its owner key
func (s stateReader) unpack(key []byte, value []byte) (*ownership.Mapping, error) {
	m, err := ownership.PackedMapping(value).Unpack(ownership.MappingKey(key))
	if nil != err {
		return nil, err
	}
	owner, err := s.ownerByID(m.OwnerID)
	if nil != err {
		return nil, err
	}
	m.OwnerKey = owner.Key
	return m, nil
}

func (s stateReader) ownerByID(id int64) (*ownership.Owner, error) {
	packed, err := s.r.Get(s.pool.OwnerKeys, ownership.OwnerIDBytes(id))
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, fault.ErrOwnerNotFound
	}
	key, err := account.PublicKeyFromBytes(packed)
	if nil != err {
		return nil, err
	}
	return &ownership.Owner{ID: id, Key: key}, nil
}

func (s stateReader) ownerByKey(key account.PublicKey) (*ownership.Owner, error) {
	packed, err := s.r.Get(s.pool.OwnerIDs, key[:])
	if nil != err {
		return nil, err
	}
	if nil == packed {
		return nil, fault.ErrOwnerNotFound
	}
	id, err := ownership.OwnerIDFromBytes(packed)
	if nil != err {
		return nil, err
	}
	return &ownership.Owner{ID: id, Key: key}, nil
}

// every revision registered by owner id, oldest first
func (s stateReader) mappingsByOwnerID(id int64, key account.PublicKey) ([]*ownership.Mapping, error) {
	result := make([]*ownership.Mapping, 0)
	cursor := s.r.NewFetchCursor(s.pool.OwnerIndex).Prefix(ownership.OwnerPrefix(id))
	err := cursor.Map(func(indexKey []byte, data []byte) error {
		mk, _, err := ownership.OwnerIndexKey(indexKey).MappingKey(data)
		if nil != err {
			return err
		}
		packed, err := s.r.Get(s.pool.Mappings, mk)
		if nil != err {
			return err
		}
		if nil == packed {
			return fault.ErrMappingNotFound
		}
		m, err := ownership.PackedMapping(packed).Unpack(mk)
		if nil != err {
			return err
		}
		m.OwnerKey = key
		result = append(result, m)
		return nil
	})
	return result, err
}

// run f on a fresh snapshot of committed state
func (l *Ledger) withView(f func(s stateReader) error) error {
	view, err := l.db.NewView()
	if nil != err {
		return err
	}
	defer view.Release()
	return f(stateReader{r: view, pool: l.pool})
}

// Settings - the checkpoint
func (l *Ledger) Settings() (*ownership.Settings, error) {
	var settings *ownership.Settings
	err := l.withView(func(s stateReader) error {
		var err error
		settings, err = readSettings(s.r, l.pool)
		if nil == err && nil == settings {
			err = fault.ErrNotInitialised
		}
		return err
	})
	return settings, err
}

// Height - height of the last ingested block
func (l *Ledger) Height() uint64 {
	settings, err := l.Settings()
	if nil != err {
		return 0
	}
	return settings.TopHeight
}

// OwnerByKey - owner record of a public key
func (l *Ledger) OwnerByKey(key account.PublicKey) (*ownership.Owner, error) {
	if id, ok := l.owners.Get(key.String()); ok {
		return &ownership.Owner{ID: id.(int64), Key: key}, nil
	}
	generation := l.ownerGeneration()
	var owner *ownership.Owner
	err := l.withView(func(s stateReader) error {
		var err error
		owner, err = s.ownerByKey(key)
		return err
	})
	if nil == err {
		l.cacheOwner(key, owner.ID, generation)
	}
	return owner, err
}

// OwnerByID - owner record of an id
func (l *Ledger) OwnerByID(id int64) (*ownership.Owner, error) {
	var owner *ownership.Owner
	err := l.withView(func(s stateReader) error {
		var err error
		owner, err = s.ownerByID(id)
		return err
	})
	return owner, err
}

// Mapping - current revision of a name and type
func (l *Ledger) Mapping(t mapping.Type, nameHash digest.Digest) (*ownership.Mapping, error) {
	return l.MappingAt(t, nameHash, math.MaxUint64)
}

// MappingAt - revision of a name and type that was current at height
func (l *Ledger) MappingAt(t mapping.Type, nameHash digest.Digest, height uint64) (*ownership.Mapping, error) {
	var m *ownership.Mapping
	err := l.withView(func(s stateReader) error {
		var err error
		m, err = s.MappingAt(t, nameHash, height)
		if nil == err && nil == m {
			err = fault.ErrMappingNotFound
		}
		return err
	})
	return m, err
}

// Mappings - current revision for each of types, absent types are skipped
func (l *Ledger) Mappings(types []mapping.Type, nameHash digest.Digest) ([]*ownership.Mapping, error) {
	result := make([]*ownership.Mapping, 0, len(types))
	err := l.withView(func(s stateReader) error {
		for _, t := range types {
			m, err := s.MappingAt(t, nameHash, math.MaxUint64)
			if nil != err {
				return err
			}
			if nil != m {
				result = append(result, m)
			}
		}
		return nil
	})
	return result, err
}

// MappingsByOwner - every surviving revision registered to key
func (l *Ledger) MappingsByOwner(key account.PublicKey) ([]*ownership.Mapping, error) {
	return l.MappingsByOwners([]account.PublicKey{key})
}

// MappingsByOwners - as MappingsByOwner for several keys; unknown keys
// contribute nothing
func (l *Ledger) MappingsByOwners(keys []account.PublicKey) ([]*ownership.Mapping, error) {
	result := make([]*ownership.Mapping, 0)
	err := l.withView(func(s stateReader) error {
		for _, key := range keys {
			owner, err := s.ownerByKey(key)
			if fault.ErrOwnerNotFound == err {
				continue
			}
			if nil != err {
				return err
			}
			mappings, err := s.mappingsByOwnerID(owner.ID, key)
			if nil != err {
				return err
			}
			result = append(result, mappings...)
		}
		return nil
	})
	return result, err
}

// Active - record is within its lease at height and is the current
// revision of its name at that height
func (l *Ledger) Active(record *ownership.Mapping, height uint64) (bool, error) {
	if !record.Active(l.network, height) {
		return false, nil
	}
	current, err := l.MappingAt(record.Type, record.NameHash, height)
	if fault.ErrMappingNotFound == err {
		return false, nil
	}
	if nil != err {
		return false, err
	}
	return current.TxId == record.TxId, nil
}

// ValidateTransaction - check tx against committed state as if it
// were included at height
func (l *Ledger) ValidateTransaction(hfVersion uint8, height uint64, tx *transactionrecord.Transaction) (*transactionrecord.Entry, error) {
	var entry *transactionrecord.Entry
	err := l.withView(func(s stateReader) error {
		var err error
		entry, err = l.gate.ValidateTransaction(s, hfVersion, height, tx)
		return err
	})
	return entry, err
}
