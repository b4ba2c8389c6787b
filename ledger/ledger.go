// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the persistent name mapping ledger
//
// blocks are ingested once and in order by AddBlock; a reorganisation
// is undone by BlockDetach; all reads see committed state only
package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/loki-project/lnsd/consensus"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/ownership"
	"github.com/loki-project/lnsd/storage"
)

// Blockchain - the host chain as seen during rollback
type Blockchain interface {
	BlockHash(height uint64) (digest.Digest, error)
}

// owner cache timing
const (
	ownerCacheExpiration = 10 * time.Minute
	ownerCacheCleanup    = 20 * time.Minute
)

// fixed keys of the single row pools
var (
	settingsKey  = []byte("settings")
	nextOwnerKey = []byte("next")
)

// Ledger - name ledger bound to an open database
type Ledger struct {
	log     *logger.L
	network string
	db      *storage.Database
	pool    *storage.Pools
	gate    *consensus.Gate
	owners  *cache.Cache // owner key (hex) → owner id, committed rows only

	// bumped after every commit that may delete owners; a cache fill
	// from a snapshot older than the bump is discarded
	ownersLock       sync.Mutex
	ownersGeneration uint64
}

// New - bind to db, check it against the host chain and load the checkpoint
//
// a database without settings adopts chainHeight and chainHash as its
// checkpoint; one ahead of the chain is rewound to chainHeight
func New(network string, db *storage.Database, chainHeight uint64, chainHash digest.Digest) (*Ledger, error) {
	return NewWithGate(consensus.New(network), db, chainHeight, chainHash)
}

// NewWithGate - as New with a specific validation gate
func NewWithGate(gate *consensus.Gate, db *storage.Database, chainHeight uint64, chainHash digest.Digest) (*Ledger, error) {
	l := &Ledger{
		log:     logger.New("ledger"),
		network: gate.Network(),
		db:      db,
		pool:    &db.Pool,
		gate:    gate,
		owners:  cache.New(ownerCacheExpiration, ownerCacheCleanup),
	}

	if err := l.checkConsistency(chainHeight, chainHash); nil != err {
		return nil, err
	}

	settings, err := l.Settings()
	if nil != err {
		return nil, err
	}
	l.log.Infof("network: %s  checkpoint: %d  hash: %s", l.network, settings.TopHeight, settings.TopHash)
	return l, nil
}

func (l *Ledger) checkConsistency(chainHeight uint64, chainHash digest.Digest) error {
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
		rows, err := trx.NewFetchCursor(l.pool.Mappings).Fetch(1)
		if nil != err {
			return err
		}
		if 0 != len(rows) {
			l.log.Critical("mapping rows exist without settings")
			return fault.ErrCheckpointMismatch
		}
		writeSettings(trx, l.pool, &ownership.Settings{
			TopHeight: chainHeight,
			TopHash:   chainHash,
			Version:   storage.CurrentVersion,
		})
		l.log.Infof("new ledger at height: %d", chainHeight)
		return trx.Commit()
	}

	if storage.CurrentVersion != settings.Version {
		l.log.Criticalf("settings version: %d  expected: %d", settings.Version, storage.CurrentVersion)
		return fault.ErrDatabaseVersion
	}

	// no row may claim a block beyond the checkpoint
	rows, err := trx.NewFetchCursor(l.pool.Heights).Seek(ownership.HeightPrefix(settings.TopHeight + 1)).Fetch(1)
	if nil != err {
		return err
	}
	if 0 != len(rows) {
		l.log.Criticalf("mapping rows above checkpoint: %d", settings.TopHeight)
		return fault.ErrCheckpointMismatch
	}

	switch {
	case settings.TopHeight == chainHeight && settings.TopHash != chainHash:
		l.log.Criticalf("checkpoint hash: %s  chain hash: %s  at height: %d", settings.TopHash, chainHash, chainHeight)
		return fault.ErrCheckpointMismatch

	case settings.TopHeight > chainHeight:
		l.log.Warnf("ledger at: %d is ahead of chain at: %d, rewinding", settings.TopHeight, chainHeight)
		if _, err := l.prune(trx, chainHeight); nil != err {
			return err
		}
		writeSettings(trx, l.pool, &ownership.Settings{
			TopHeight: chainHeight,
			TopHash:   chainHash,
			Version:   storage.CurrentVersion,
		})
		if err := trx.Commit(); nil != err {
			return err
		}
		l.ownersChanged()
	}
	return nil
}

// Close - release ledger resources; the database stays open
func (l *Ledger) Close() {
	l.owners.Flush()
	l.log.Info("closed")
	l.log.Flush()
}

// Network - chain of this ledger
func (l *Ledger) Network() string {
	return l.network
}

// begin the single write transaction; a nested call is a defect
func (l *Ledger) begin() (*storage.Transaction, error) {
	trx, err := l.db.Begin()
	if fault.ErrTransactionInUse == err {
		fault.Panicf("ledger: mutating call while another is open: %s", err)
	}
	return trx, err
}

func readSettings(r storage.Reader, pool *storage.Pools) (*ownership.Settings, error) {
	packed, err := r.Get(pool.Settings, settingsKey)
	if nil != err || nil == packed {
		return nil, err
	}
	return ownership.PackedSettings(packed).Unpack()
}

func writeSettings(trx *storage.Transaction, pool *storage.Pools, settings *ownership.Settings) {
	trx.Put(pool.Settings, settingsKey, settings.Pack())
}
