// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles of the RPC handlers' collaborators
package mocks

//go:generate mockgen -destination=ledger.go -package=mocks github.com/loki-project/lnsd/rpc/names Ledger
//go:generate mockgen -destination=writer.go -package=mocks github.com/loki-project/lnsd/rpc/blocks Writer
