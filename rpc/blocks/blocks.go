// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blocks - ingestion RPC for the host block pipeline
//
// calls are serialised here, the ledger itself does not lock writers
package blocks

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/loki-project/lnsd/blockrecord"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/ledger"
)

// Writer - the mutating ledger calls
type Writer interface {
	AddBlock(block *blockrecord.Block) error
	BlockDetach(chain ledger.Blockchain, newHeight uint64) error
	Height() uint64
}

// Blocks - type for the RPC
type Blocks struct {
	sync.Mutex
	Log    *logger.L
	Ledger Writer
}

// New - create the RPC handler
func New(log *logger.L, writer Writer) *Blocks {
	return &Blocks{
		Log:    log,
		Ledger: writer,
	}
}

// Blocks add
// ----------

// AddArguments - one finalized block
type AddArguments struct {
	Block blockrecord.Block `json:"block"`
}

// HeightReply - ledger height after the call
type HeightReply struct {
	Height uint64 `json:"height"`
}

// Add - ingest a block; already ingested heights are ignored
func (blocks *Blocks) Add(arguments *AddArguments, reply *HeightReply) error {
	blocks.Lock()
	defer blocks.Unlock()

	block := &arguments.Block
	blocks.Log.Debugf("Blocks.Add: %d  transactions: %d", block.Header.Height, len(block.Transactions))

	if err := blocks.Ledger.AddBlock(block); nil != err {
		blocks.Log.Errorf("add block: %d  error: %s", block.Header.Height, err)
		return err
	}
	reply.Height = blocks.Ledger.Height()
	return nil
}

// Blocks detach
// -------------

// DetachArguments - the new top block, which must be on the host chain
type DetachArguments struct {
	Height uint64        `json:"height"`
	Hash   digest.Digest `json:"hash"`
}

// Detach - rewind the ledger to a block
func (blocks *Blocks) Detach(arguments *DetachArguments, reply *HeightReply) error {
	if arguments.Hash.IsZero() {
		return fault.ErrMissingParameters
	}

	blocks.Lock()
	defer blocks.Unlock()

	blocks.Log.Infof("Blocks.Detach: %d  hash: %s", arguments.Height, arguments.Hash)

	chain := knownBlock{height: arguments.Height, hash: arguments.Hash}
	if err := blocks.Ledger.BlockDetach(chain, arguments.Height); nil != err {
		blocks.Log.Errorf("detach to: %d  error: %s", arguments.Height, err)
		return err
	}
	reply.Height = blocks.Ledger.Height()
	return nil
}

// the host chain as far as the caller described it
type knownBlock struct {
	height uint64
	hash   digest.Digest
}

func (k knownBlock) BlockHash(height uint64) (digest.Digest, error) {
	if height != k.height {
		return digest.Zero, fault.ErrBlockNotFound
	}
	return k.hash, nil
}
