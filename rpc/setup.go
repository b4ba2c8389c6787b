// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS front end of the ledger
package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/loki-project/lnsd/counter"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/ledger"
	"github.com/loki-project/lnsd/rpc/certificate"
	"github.com/loki-project/lnsd/rpc/handler"
	"github.com/loki-project/lnsd/rpc/listeners"
	"github.com/loki-project/lnsd/rpc/server"
)

const (
	tlsName      = "client_rpc"
	httpsTLSName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	listener      listeners.Listener
	httpsListener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connections across all listeners
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
//
// Blocks.Add and Blocks.Detach are only served when ingest is set;
// the HTTPS listener is optional and is skipped when it has no listen
// addresses
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	l *ledger.Ledger,
	ingest bool,
	version string,
) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcServer, querier := server.Create(log, version, l, ingest, &connectionCountRPC)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		rpcServer,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	var httpsListener listeners.Listener
	if nil != httpsConfiguration && 0 != len(httpsConfiguration.Listen) {
		httpsTLSConfig, _, err := certificate.Get(log, httpsTLSName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		hdlr := handler.New(log, rpcServer, querier, httpsConfiguration.MaximumConnections)
		httpsListener, err = listeners.NewHTTPS(httpsConfiguration, log, httpsTLSConfig, hdlr)
		if nil != err {
			return err
		}
	}

	if err := rpcListener.Serve(); nil != err {
		rpcListener.Stop()
		return err
	}
	globalData.listener = rpcListener

	if nil != httpsListener {
		if err := httpsListener.Serve(); nil != err {
			httpsListener.Stop()
			rpcListener.Stop()
			globalData.listener = nil
			return err
		}
		globalData.httpsListener = httpsListener
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.listener.Stop()
	globalData.listener = nil
	if nil != globalData.httpsListener {
		globalData.httpsListener.Stop()
		globalData.httpsListener = nil
	}

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
