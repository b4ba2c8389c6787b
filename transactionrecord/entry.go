// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/loki-project/lnsd/account"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/namecrypt"
	"github.com/loki-project/lnsd/util"
)

// Packed - packed records are just a byte slice
type Packed []byte

// flag bits
const (
	flagHasPrev = 0x01
	flagMask    = flagHasPrev
)

// Entry - the unpacked name system entry
//
// a zero PrevTxId is a fresh registration, otherwise the entry
// supersedes the current mapping with that txid
type Entry struct {
	Type           mapping.Type      `json:"type"`
	Owner          account.PublicKey `json:"owner"`
	NameHash       digest.Digest     `json:"name_hash"`
	PrevTxId       digest.Digest     `json:"prev_txid"`
	EncryptedValue mapping.Value     `json:"encrypted_value"`
	Signature      account.Signature `json:"signature"`
}

// SigningBlob - the signed part of the entry: everything up to and
// including the value, without flags or prev txid
func (entry *Entry) SigningBlob() []byte {
	buffer := util.ToVarint64(uint64(entry.Type))
	buffer = append(buffer, entry.Owner[:]...)
	buffer = append(buffer, entry.NameHash[:]...)
	return appendBytes(buffer, entry.EncryptedValue.Bytes())
}

// SigningHash - message the signature covers
func (entry *Entry) SigningHash() digest.Digest {
	return namecrypt.SigningHash(entry.SigningBlob(), entry.PrevTxId)
}

// Sign - set the signature; keyPair is the entry owner for a fresh
// registration or the current owner when superseding
func (entry *Entry) Sign(keyPair *account.KeyPair) {
	h := entry.SigningHash()
	entry.Signature = keyPair.Sign(h[:])
}

// Pack - the byte form carried in the extra field
func (entry *Entry) Pack() (Packed, error) {
	if !entry.Type.Valid() {
		return nil, fault.ErrInvalidType
	}
	buffer := util.ToVarint64(uint64(entry.Type))
	buffer = append(buffer, entry.Owner[:]...)
	buffer = append(buffer, entry.NameHash[:]...)
	if entry.PrevTxId.IsZero() {
		buffer = append(buffer, 0)
	} else {
		buffer = append(buffer, flagHasPrev)
		buffer = append(buffer, entry.PrevTxId[:]...)
	}
	buffer = appendBytes(buffer, entry.EncryptedValue.Bytes())
	return appendBytes(buffer, entry.Signature[:]), nil
}

// Unpack - turn a byte slice into an entry, also returning the bytes consumed
func (record Packed) Unpack() (entry *Entry, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			entry = nil
			n = 0
			e = fault.ErrNotEntryPack
		}
	}()

	// limit capacity so reading past the end panics
	record = record[:len(record):len(record)]

	// unknown types decode; the allow-list rejects them
	t, n := util.FromVarint64(record)
	if 0 == n || t > 0xffff {
		return nil, 0, fault.ErrNotEntryPack
	}
	entry = &Entry{
		Type: mapping.Type(t),
	}

	n += copy(entry.Owner[:], record[n:n+account.PublicKeyLength])
	n += copy(entry.NameHash[:], record[n:n+digest.Length])

	flags := record[n]
	n += 1
	if 0 != flags&^flagMask {
		return nil, 0, fault.ErrNotEntryPack
	}
	if 0 != flags&flagHasPrev {
		n += copy(entry.PrevTxId[:], record[n:n+digest.Length])
		if entry.PrevTxId.IsZero() {
			return nil, 0, fault.ErrNotEntryPack
		}
	}

	valueLength, count := util.ClippedVarint64(record[n:], 0, mapping.MaxValueLength)
	if 0 == count {
		return nil, 0, fault.ErrNotEntryPack
	}
	n += count
	entry.EncryptedValue, e = mapping.NewValue(record[n : n+valueLength])
	if nil != e {
		return nil, 0, e
	}
	n += valueLength

	signatureLength, count := util.ClippedVarint64(record[n:], 0, 8192)
	if 0 == count || account.SignatureLength != signatureLength {
		return nil, 0, fault.ErrNotEntryPack
	}
	n += count
	n += copy(entry.Signature[:], record[n:n+account.SignatureLength])

	return entry, n, nil
}

// append a byte field to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}
