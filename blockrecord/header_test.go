// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/blockrecord"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/transactionrecord"
)

func TestValidate(t *testing.T) {
	block := &blockrecord.Block{
		Header: blockrecord.Header{
			Height:       100,
			Hash:         digest.NewDigest([]byte("block 100")),
			MajorVersion: 15,
		},
		Transactions: []transactionrecord.Transaction{
			{TxId: digest.NewDigest([]byte("a"))},
			{TxId: digest.NewDigest([]byte("b"))},
		},
	}
	assert.Nil(t, block.Validate(), "valid")

	block.Transactions = append(block.Transactions, block.Transactions[0])
	assert.Equal(t, fault.ErrDuplicateTransaction, block.Validate(), "duplicate")

	block.Header.Hash = digest.Zero
	assert.Equal(t, fault.ErrNotDigest, block.Validate(), "zero hash")
}

func TestJSON(t *testing.T) {
	text := `{"header":{"height":7,"hash":"` + digest.NewDigest([]byte("7")).String() + `","major_version":15,"timestamp":1580000000},` +
		`"transactions":[{"txid":"` + digest.NewDigest([]byte("tx")).String() + `","version":4,"type":4,"extra":"740100"}]}`

	var block blockrecord.Block
	assert.Nil(t, json.Unmarshal([]byte(text), &block), "unmarshal")
	assert.Equal(t, uint64(7), block.Header.Height, "height")
	assert.Equal(t, uint8(15), block.Header.MajorVersion, "version")
	assert.Equal(t, transactionrecord.TxTypeNameSystem, block.Transactions[0].Type, "type")
	assert.Equal(t, transactionrecord.Extra{0x74, 0x01, 0x00}, block.Transactions[0].Extra, "extra")
}
