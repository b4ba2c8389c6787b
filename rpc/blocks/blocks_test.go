// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocks_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/blockrecord"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/ledger"
	"github.com/loki-project/lnsd/rpc/blocks"
	"github.com/loki-project/lnsd/rpc/fixtures"
	"github.com/loki-project/lnsd/rpc/mocks"
)

func TestAdd(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWriter(ctl)
	b := blocks.New(logger.New(fixtures.LogCategory), w)

	args := blocks.AddArguments{
		Block: blockrecord.Block{
			Header: blockrecord.Header{
				Height:       100,
				Hash:         digest.NewDigest([]byte("block-100")),
				MajorVersion: 15,
			},
		},
	}

	w.EXPECT().AddBlock(&args.Block).Return(nil)
	w.EXPECT().Height().Return(uint64(100))

	var reply blocks.HeightReply
	err := b.Add(&args, &reply)
	assert.Nil(t, err, "add")
	assert.Equal(t, uint64(100), reply.Height, "height")

	w.EXPECT().AddBlock(gomock.Any()).Return(fault.ErrBlockOutOfSequence)
	err = b.Add(&args, &reply)
	assert.Equal(t, fault.ErrBlockOutOfSequence, err, "gap")
}

func TestDetach(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWriter(ctl)
	b := blocks.New(logger.New(fixtures.LogCategory), w)

	hash := digest.NewDigest([]byte("block-90"))
	w.EXPECT().BlockDetach(gomock.Any(), uint64(90)).DoAndReturn(
		func(chain ledger.Blockchain, height uint64) error {
			h, err := chain.BlockHash(height)
			assert.Nil(t, err, "known block")
			assert.Equal(t, hash, h, "hash")

			_, err = chain.BlockHash(height + 1)
			assert.Equal(t, fault.ErrBlockNotFound, err, "other block")
			return nil
		})
	w.EXPECT().Height().Return(uint64(90))

	var reply blocks.HeightReply
	err := b.Detach(&blocks.DetachArguments{Height: 90, Hash: hash}, &reply)
	assert.Nil(t, err, "detach")
	assert.Equal(t, uint64(90), reply.Height, "height")

	err = b.Detach(&blocks.DetachArguments{Height: 90}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "no hash")
}
