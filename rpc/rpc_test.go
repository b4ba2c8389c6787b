// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/http"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/chain"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/ledger"
	"github.com/loki-project/lnsd/rpc"
	"github.com/loki-project/lnsd/rpc/blocks"
	"github.com/loki-project/lnsd/rpc/fixtures"
	"github.com/loki-project/lnsd/rpc/listeners"
	"github.com/loki-project/lnsd/rpc/names"
	"github.com/loki-project/lnsd/storage"
)

func newLedger(t *testing.T) (*ledger.Ledger, *storage.Database, string) {
	dir, err := ioutil.TempDir("", "lnsd-rpc-db-")
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
	return l, db, dir
}

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, db, dir := newLedger(t)
	defer os.RemoveAll(dir)
	defer db.Close()
	defer l.Close()

	cer, key := fixtures.CertificatePair()
	port := 30000 + rand.Intn(30000)
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	httpsListen := fmt.Sprintf("127.0.0.1:%d", port+1)

	config := listeners.RPCConfiguration{
		MaximumConnections: 10,
		Listen:             []string{listen},
		Certificate:        cer,
		PrivateKey:         key,
	}
	httpsConfig := listeners.HTTPSConfiguration{
		MaximumConnections: 10,
		Listen:             []string{httpsListen},
		Certificate:        cer,
		PrivateKey:         key,
	}

	err := rpc.Initialise(&config, &httpsConfig, l, true, "1.0")
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&config, &httpsConfig, l, true, "1.0")
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second Initialise")

	var conn *tls.Conn
	for i := 0; i < 10; i += 1 {
		conn, err = tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
		if nil == err {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var info names.InfoReply
	err = client.Call("Names.Info", names.InfoArguments{}, &info)
	assert.Nil(t, err, "Names.Info")
	assert.Equal(t, chain.Testnet, info.Chain, "chain")
	assert.Equal(t, uint64(10), info.Height, "height")

	var reply blocks.HeightReply
	err = client.Call("Blocks.Detach", blocks.DetachArguments{Height: 5, Hash: digest.NewDigest([]byte("block-5"))}, &reply)
	assert.Nil(t, err, "Blocks.Detach")
	assert.Equal(t, uint64(5), reply.Height, "rewound")

	_ = client.Close()

	httpClient := &http.Client{
		Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
		Timeout:   5 * time.Second,
	}
	resp, err := httpClient.Get("https://" + httpsListen + "/lns/details")
	if nil != err {
		t.Fatalf("https get error: %s", err)
	}
	var details names.InfoReply
	err = json.NewDecoder(resp.Body).Decode(&details)
	_ = resp.Body.Close()
	assert.Nil(t, err, "details decode")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "details status")
	assert.Equal(t, uint64(5), details.Height, "details height after detach")

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong Finalise")

	err = rpc.Finalise()
	assert.Equal(t, fault.ErrNotInitialised, err, "second Finalise")
}

func TestInitialiseBadConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, db, dir := newLedger(t)
	defer os.RemoveAll(dir)
	defer db.Close()
	defer l.Close()

	cer, key := fixtures.CertificatePair()

	config := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
		Certificate:        cer,
		PrivateKey:         key,
	}
	err := rpc.Initialise(&config, nil, l, false, "1.0")
	assert.Equal(t, fault.ErrMissingParameters, err, "no connections")

	config.MaximumConnections = 1
	config.Listen = []string{"localhost:2130"}
	err = rpc.Initialise(&config, nil, l, false, "1.0")
	assert.Equal(t, fault.ErrInvalidIPAddress, err, "bad address")

	config.PrivateKey = "junk"
	err = rpc.Initialise(&config, nil, l, false, "1.0")
	assert.NotNil(t, err, "bad key")
}
