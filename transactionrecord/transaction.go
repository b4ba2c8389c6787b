// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/util"
)

// TxType - type code for host chain transactions
type TxType uint16

// host transaction types; only the name system type carries an entry
const (
	TxTypeStandard       = TxType(0)
	TxTypeState          = TxType(1)
	TxTypeKeyImageUnlock = TxType(2)
	TxTypeStake          = TxType(3)
	TxTypeNameSystem     = TxType(4)
)

// CurrentVersion - transaction version written by the tools
const CurrentVersion = 4

// Extra - the tagged extra field, hex in JSON
type Extra []byte

// Transaction - the parts of a host transaction the ledger reads
type Transaction struct {
	TxId    digest.Digest `json:"txid"`
	Version uint16        `json:"version"`
	Type    TxType        `json:"type"`
	Extra   Extra         `json:"extra"`
}

// MarshalText - hex text
func (extra Extra) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(extra)))
	hex.Encode(b, extra)
	return b, nil
}

// UnmarshalText - hex text
func (extra *Extra) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(b, s)
	if nil != err {
		return fault.ErrInvalidHex
	}
	*extra = b[:n]
	return nil
}

// ComputeTxId - identifier of a transaction built by NewNameSystemTransaction
func ComputeTxId(version uint16, txType TxType, extra []byte) digest.Digest {
	header := util.ToVarint64(uint64(version))
	header = util.AppendVarint64(header, uint64(txType))
	return digest.NewDigestOf(header, extra)
}

// NewNameSystemTransaction - wrap a signed entry in a transaction
func NewNameSystemTransaction(version uint16, entry *Entry) (*Transaction, error) {
	packed, err := entry.Pack()
	if nil != err {
		return nil, err
	}
	extra := AppendExtraField(nil, NameSystemTag, packed)
	return &Transaction{
		TxId:    ComputeTxId(version, TxTypeNameSystem, extra),
		Version: version,
		Type:    TxTypeNameSystem,
		Extra:   extra,
	}, nil
}

// NameSystemEntry - locate and decode the entry in the extra field
func (tx *Transaction) NameSystemEntry() (*Entry, error) {
	field, err := FindExtraField(tx.Extra, NameSystemTag)
	if nil != err {
		return nil, err
	}
	entry, n, err := Packed(field).Unpack()
	if nil != err {
		return nil, err
	}
	if n != len(field) {
		return nil, fault.ErrNotEntryPack
	}
	return entry, nil
}
