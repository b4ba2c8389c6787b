// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/loki-project/lnsd/blockrecord"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/ownership"
	"github.com/loki-project/lnsd/storage"
)

// rows read per cursor batch while pruning
const (
	maximumPruneScan = 1000
	maximumOwnerScan = 1000
)

// AddBlock - ingest a finalized block
//
// blocks at or below the checkpoint are ignored, so a block is applied
// exactly once; entries that fail validation are skipped; the rows and
// the new checkpoint commit together
func (l *Ledger) AddBlock(block *blockrecord.Block) error {
	if err := block.Validate(); nil != err {
		return err
	}
	header := &block.Header

	trx, err := l.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	settings, err := readSettings(trx, l.pool)
	if nil != err {
		return err
	}
	if nil == settings {
		return fault.ErrNotInitialised
	}

	if header.Height <= settings.TopHeight {
		l.log.Debugf("ignore block: %d  checkpoint: %d", header.Height, settings.TopHeight)
		return nil
	}
	if header.Height != settings.TopHeight+1 {
		l.log.Errorf("block: %d  expected: %d", header.Height, settings.TopHeight+1)
		return fault.ErrBlockOutOfSequence
	}

	reader := stateReader{r: trx, pool: l.pool}
	pending := make(pendingOwners)
	accepted := 0

	for i := range block.Transactions {
		tx := &block.Transactions[i]

		entry, err := l.gate.ValidateTransaction(reader, header.MajorVersion, header.Height, tx)
		if nil == entry && nil == err {
			continue
		}
		if nil != err {
			if !fault.IsValidationFailure(err) {
				return err
			}
			l.log.Warnf("block: %d  tx: %s  rejected: %s", header.Height, tx.TxId, err)
			continue
		}

		current, err := reader.MappingAt(entry.Type, entry.NameHash, header.Height)
		if nil != err {
			return err
		}

		ownerID, err := l.resolveOwner(trx, entry.Owner, pending)
		if nil != err {
			return err
		}

		m := &ownership.Mapping{
			Type:           entry.Type,
			NameHash:       entry.NameHash,
			EncryptedValue: entry.EncryptedValue,
			RegisterHeight: header.Height,
			TxIndex:        uint32(i),
			OwnerID:        ownerID,
			OwnerKey:       entry.Owner,
			TxId:           tx.TxId,
		}
		if nil != current {
			m.PrevTxId = current.TxId
		}

		key := m.Key()
		trx.Put(l.pool.Mappings, key, m.Pack())
		trx.Put(l.pool.Heights, m.HeightKey(), []byte{})
		trx.Put(l.pool.OwnerIndex, m.OwnerIndexKey(), m.OwnerIndexData())
		accepted += 1
	}

	writeSettings(trx, l.pool, &ownership.Settings{
		TopHeight: header.Height,
		TopHash:   header.Hash,
		Version:   storage.CurrentVersion,
	})

	if err := trx.Commit(); nil != err {
		l.log.Errorf("block: %d  commit error: %s", header.Height, err)
		return err
	}
	l.cacheOwners(pending)

	l.log.Debugf("block: %d  hash: %s  mappings: %d", header.Height, header.Hash, accepted)
	return nil
}

// BlockDetach - rewind the ledger to newHeight after a reorganisation
//
// the new checkpoint hash is read from chain; nothing is done when
// newHeight is not below the checkpoint
func (l *Ledger) BlockDetach(chain Blockchain, newHeight uint64) error {
	trx, err := l.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	settings, err := readSettings(trx, l.pool)
	if nil != err {
		return err
	}
	if nil == settings {
		return fault.ErrNotInitialised
	}
	if newHeight >= settings.TopHeight {
		return nil
	}

	hash, err := chain.BlockHash(newHeight)
	if nil != err {
		return err
	}

	count, err := l.prune(trx, newHeight)
	if nil != err {
		return err
	}

	writeSettings(trx, l.pool, &ownership.Settings{
		TopHeight: newHeight,
		TopHash:   hash,
		Version:   storage.CurrentVersion,
	})

	if err := trx.Commit(); nil != err {
		return err
	}
	l.ownersChanged()

	l.log.Infof("detached from: %d  to: %d  removed mappings: %d", settings.TopHeight, newHeight, count)
	return nil
}

// Prune - delete mappings registered above height and their orphaned
// owners; the checkpoint is not changed
func (l *Ledger) Prune(height uint64) error {
	trx, err := l.begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	count, err := l.prune(trx, height)
	if nil != err {
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}
	l.ownersChanged()
	l.log.Infof("pruned above: %d  removed mappings: %d", height, count)
	return nil
}

// prune - the two deletion passes inside trx
//
// callers must call ownersChanged after trx commits since swept ids
// may be reallocated
func (l *Ledger) prune(trx *storage.Transaction, height uint64) (int, error) {
	if height == ^uint64(0) {
		return 0, nil
	}
	cursor := trx.NewFetchCursor(l.pool.Heights).Seek(ownership.HeightPrefix(height + 1))

	// collect first: the same keys are deleted from the pool being read
	keys := make([][]byte, 0)
	for {
		rows, err := cursor.Fetch(maximumPruneScan)
		if nil != err {
			return 0, err
		}
		if 0 == len(rows) {
			break
		}
		for _, row := range rows {
			keys = append(keys, row.Key)
		}
	}

	for _, heightKey := range keys {
		mk, _, err := ownership.HeightKey(heightKey).MappingKey()
		if nil != err {
			return 0, err
		}
		packed, err := trx.Get(l.pool.Mappings, mk)
		if nil != err {
			return 0, err
		}
		if nil == packed {
			return 0, fault.ErrMappingNotFound
		}
		m, err := ownership.PackedMapping(packed).Unpack(mk)
		if nil != err {
			return 0, err
		}
		trx.Delete(l.pool.OwnerIndex, m.OwnerIndexKey())
		trx.Delete(l.pool.Mappings, mk)
		trx.Delete(l.pool.Heights, heightKey)
	}

	owners, err := l.sweepOwners(trx)
	if nil != err {
		return 0, err
	}
	if len(keys) > 0 || owners > 0 {
		l.log.Debugf("prune above: %d  mappings: %d  owners: %d", height, len(keys), owners)
	}
	return len(keys), nil
}
