// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the net/rpc server with all handlers registered
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/loki-project/lnsd/counter"
	"github.com/loki-project/lnsd/ledger"
	"github.com/loki-project/lnsd/rpc/blocks"
	"github.com/loki-project/lnsd/rpc/names"
)

// Create - register the query handlers, and the ingestion handler
// unless ingest is false
//
// the query handler is also returned for the HTTPS front end
func Create(log *logger.L, version string, l *ledger.Ledger, ingest bool, rpcCount *counter.Counter) (*rpc.Server, *names.Names) {
	start := time.Now().UTC()

	server := rpc.NewServer()

	n := names.New(log, l, start, version, rpcCount)
	_ = server.Register(n)
	if ingest {
		_ = server.Register(blocks.New(log, l))
	}

	return server, n
}
