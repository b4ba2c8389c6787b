// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"io/ioutil"
	"net"
	"net/rpc"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/chain"
	"github.com/loki-project/lnsd/counter"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/ledger"
	"github.com/loki-project/lnsd/rpc/blocks"
	"github.com/loki-project/lnsd/rpc/fixtures"
	"github.com/loki-project/lnsd/rpc/names"
	"github.com/loki-project/lnsd/rpc/server"
	"github.com/loki-project/lnsd/storage"
)

func dial(t *testing.T, ingest bool) (*rpc.Client, func()) {
	dir, err := ioutil.TempDir("", "lnsd-server-db-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	db, err := storage.Open(dir, storage.ReadWrite)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	l, err := ledger.New(chain.Testnet, db, 10, digest.NewDigest([]byte("block-10")))
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}

	c := counter.Counter(0)
	r, n := server.Create(logger.New(fixtures.LogCategory), "1.0", l, ingest, &c)
	assert.NotNil(t, n, "names handler")

	local, remote := net.Pipe()
	go r.ServeConn(remote)
	client := rpc.NewClient(local)

	return client, func() {
		_ = client.Close()
		l.Close()
		db.Close()
		os.RemoveAll(dir)
	}
}

func TestCreateRegistersNames(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	client, done := dial(t, false)
	defer done()

	var info names.InfoReply
	err := client.Call("Names.Info", names.InfoArguments{}, &info)
	assert.Nil(t, err, "Names.Info")
	assert.Equal(t, chain.Testnet, info.Chain, "chain")
	assert.Equal(t, "1.0", info.Version, "version")
}

func TestCreateWithoutIngest(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	client, done := dial(t, false)
	defer done()

	var reply blocks.HeightReply
	err := client.Call("Blocks.Detach", blocks.DetachArguments{Height: 5, Hash: digest.NewDigest([]byte("block-5"))}, &reply)
	assert.NotNil(t, err, "Blocks registered")
	assert.True(t, strings.Contains(err.Error(), "can't find service"), "wrong error: %s", err)
}

func TestCreateWithIngest(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	client, done := dial(t, true)
	defer done()

	var reply blocks.HeightReply
	err := client.Call("Blocks.Detach", blocks.DetachArguments{Height: 5, Hash: digest.NewDigest([]byte("block-5"))}, &reply)
	assert.Nil(t, err, "Blocks.Detach")
	assert.Equal(t, uint64(5), reply.Height, "rewound")
}
