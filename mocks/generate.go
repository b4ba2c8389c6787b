// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles of the ledger's collaborators
package mocks

//go:generate mockgen -destination=reader.go -package=mocks github.com/loki-project/lnsd/consensus Reader
//go:generate mockgen -destination=blockchain.go -package=mocks github.com/loki-project/lnsd/ledger Blockchain
//go:generate mockgen -destination=source.go -package=mocks github.com/loki-project/lnsd/resolver Source
