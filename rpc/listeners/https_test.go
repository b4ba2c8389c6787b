// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/rpc/certificate"
	"github.com/loki-project/lnsd/rpc/fixtures"
	"github.com/loki-project/lnsd/rpc/listeners"
)

type testHandler struct{}

func (h testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h testHandler) Resolve(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Resolve"))
}

func (h testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h testHandler) SetAllow(_ map[string][]*net.IPNet) {}

var client *http.Client

func init() {
	customTransport := http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // ignore certificate verification

	client = &http.Client{
		Transport: customTransport,
		Timeout:   5 * time.Second,
	}
}

func setupHTTPS(t *testing.T) (int, listeners.Listener) {
	port := rand.Intn(30000) + 30000

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Allow: map[string][]string{
			"details": {"127.0.0.1/32"},
		},
	}

	cer, key := fixtures.CertificatePair()
	tlsConf, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if nil != err {
		t.Fatalf("get certificate with error: %s", err)
	}

	h, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), tlsConf, testHandler{})
	if nil != err {
		t.Fatalf("NewHTTPS with error: %s", err)
	}
	return port, h
}

func get(t *testing.T, port int, route string) string {
	url := fmt.Sprintf("https://127.0.0.1:%d/lns/%s", port, route)
	var resp *http.Response
	var err error
	for i := 0; i < 10; i += 1 {
		resp, err = client.Get(url)
		if nil == err {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if nil != err {
		t.Fatalf("client get with error: %s", err)
	}
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	return string(content)
}

func TestHttpsListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port, h := setupHTTPS(t)
	err := h.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer h.Stop()

	assert.Equal(t, "RPC", get(t, port, "rpc"), "wrong RPC call")
	assert.Equal(t, "Details", get(t, port, "details"), "wrong Details call")
	assert.Equal(t, "Resolve", get(t, port, "resolve"), "wrong Resolve call")
	assert.Equal(t, "Root", get(t, port, "other"), "wrong Root call")
}

func TestHttpsListenerStop(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port, h := setupHTTPS(t)
	assert.Nil(t, h.Serve(), "wrong Serve")
	assert.Equal(t, "RPC", get(t, port, "rpc"), "serving")

	h.Stop()

	_, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d/lns/rpc", port))
	assert.NotNil(t, err, "stopped")
}

func TestNewHTTPSConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	tlsConf := &tls.Config{}

	h, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, log, tlsConf, testHandler{})
	assert.Nil(t, err, "disabled")
	assert.Nil(t, h, "no listener")

	_, err = listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		Listen: []string{"127.0.0.1:1234"},
	}, log, tlsConf, testHandler{})
	assert.Equal(t, fault.ErrMissingParameters, err, "no connections")

	_, err = listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:1234"},
		Allow:              map[string][]string{"details": {"not-a-cidr"}},
	}, log, tlsConf, testHandler{})
	assert.NotNil(t, err, "bad allow")
}
