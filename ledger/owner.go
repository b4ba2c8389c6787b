// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/loki-project/lnsd/account"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/ownership"
	"github.com/loki-project/lnsd/storage"
)

// owner id allocated inside an open transaction
type pendingOwners map[account.PublicKey]int64

// resolveOwner - id for key, allocating the next id if key is new
//
// the cache only holds committed owners; ids created by trx are kept
// in pending until it commits
func (l *Ledger) resolveOwner(trx *storage.Transaction, key account.PublicKey, pending pendingOwners) (int64, error) {
	if id, ok := pending[key]; ok {
		return id, nil
	}
	if id, ok := l.owners.Get(key.String()); ok {
		return id.(int64), nil
	}

	packed, err := trx.Get(l.pool.OwnerIDs, key[:])
	if nil != err {
		return 0, err
	}
	if nil != packed {
		id, err := ownership.OwnerIDFromBytes(packed)
		if nil != err {
			return 0, err
		}
		l.cacheOwner(key, id, l.ownerGeneration())
		return id, nil
	}

	next, found, err := trx.GetN(l.pool.OwnerNext, nextOwnerKey)
	if nil != err {
		return 0, err
	}
	if !found {
		next = 1
	}
	id := int64(next)

	idBytes := ownership.OwnerIDBytes(id)
	trx.Put(l.pool.OwnerKeys, idBytes, key[:])
	trx.Put(l.pool.OwnerIDs, key[:], idBytes)
	trx.PutN(l.pool.OwnerNext, nextOwnerKey, next+1)

	pending[key] = id
	l.log.Debugf("new owner: %d  key: %s", id, key)
	return id, nil
}

// publish committed owners to the cache
func (l *Ledger) cacheOwners(pending pendingOwners) {
	l.ownersLock.Lock()
	defer l.ownersLock.Unlock()
	for key, id := range pending {
		l.owners.SetDefault(key.String(), id)
	}
}

// ownerGeneration - read before taking the snapshot a cache fill comes from
func (l *Ledger) ownerGeneration() uint64 {
	l.ownersLock.Lock()
	defer l.ownersLock.Unlock()
	return l.ownersGeneration
}

// cacheOwner - fill the cache unless owners changed since generation
func (l *Ledger) cacheOwner(key account.PublicKey, id int64, generation uint64) bool {
	l.ownersLock.Lock()
	defer l.ownersLock.Unlock()
	if generation != l.ownersGeneration {
		return false
	}
	l.owners.SetDefault(key.String(), id)
	return true
}

// ownersChanged - call after committing a prune; ids of swept owners
// may be reallocated to other keys
func (l *Ledger) ownersChanged() {
	l.ownersLock.Lock()
	defer l.ownersLock.Unlock()
	l.ownersGeneration += 1
	l.owners.Flush()
}

// sweepOwners - delete owners with no owner index rows and reset the
// id allocator to one past the greatest survivor
func (l *Ledger) sweepOwners(trx *storage.Transaction) (int, error) {
	cursor := trx.NewFetchCursor(l.pool.OwnerKeys)

	deleted := 0
	maxID := int64(0)
	for {
		owners, err := cursor.Fetch(maximumOwnerScan)
		if nil != err {
			return deleted, err
		}
		if 0 == len(owners) {
			break
		}
		for _, owner := range owners {
			id, err := ownership.OwnerIDFromBytes(owner.Key)
			if nil != err {
				return deleted, err
			}
			rows, err := trx.NewFetchCursor(l.pool.OwnerIndex).Prefix(ownership.OwnerPrefix(id)).Fetch(1)
			if nil != err {
				return deleted, err
			}
			if 0 != len(rows) {
				if id > maxID {
					maxID = id
				}
				continue
			}
			if len(owner.Value) != len(account.PublicKey{}) {
				return deleted, fault.ErrInvalidPublicKey
			}
			trx.Delete(l.pool.OwnerKeys, owner.Key)
			trx.Delete(l.pool.OwnerIDs, owner.Value)
			deleted += 1
		}
	}

	if deleted > 0 {
		trx.PutN(l.pool.OwnerNext, nextOwnerKey, uint64(maxID+1))
	}
	return deleted, nil
}
