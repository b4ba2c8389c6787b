// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consensus - decide whether a name system entry may enter the ledger
package consensus

import (
	"github.com/loki-project/lnsd/account"
	"github.com/loki-project/lnsd/chain"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/ownership"
	"github.com/loki-project/lnsd/transactionrecord"
)

// Reader - the ledger state a decision depends on
type Reader interface {
	// the current revision at or below height, nil if there is none;
	// OwnerKey must be filled in
	MappingAt(t mapping.Type, nameHash digest.Digest, height uint64) (*ownership.Mapping, error)
}

// AllowList - true if type t may be registered at hard fork hfVersion
type AllowList func(t mapping.Type, hfVersion uint8) bool

// DefaultAllowList - the mapping types accepted once the name system is active
func DefaultAllowList(t mapping.Type, hfVersion uint8) bool {
	return t.AllowedAt(hfVersion)
}

// Gate - validation rules for one network
type Gate struct {
	network string
	allowed AllowList
}

// New - gate with the default allow-list
func New(network string) *Gate {
	return NewWithAllowList(network, DefaultAllowList)
}

// NewWithAllowList - gate with a replacement allow-list
func NewWithAllowList(network string, allowed AllowList) *Gate {
	return &Gate{
		network: network,
		allowed: allowed,
	}
}

// Network - chain the gate validates for
func (g *Gate) Network() string {
	return g.network
}

// ValidateTransaction - as Gate.ValidateTransaction with the default allow-list
func ValidateTransaction(reader Reader, network string, hfVersion uint8, height uint64, tx *transactionrecord.Transaction) (*transactionrecord.Entry, error) {
	return New(network).ValidateTransaction(reader, hfVersion, height, tx)
}

// ValidateTransaction - check the entry of tx for inclusion at height
//
// transactions of other types carry no entry and return nil, nil;
// otherwise the decoded entry is returned or the first failing rule
func (g *Gate) ValidateTransaction(reader Reader, hfVersion uint8, height uint64, tx *transactionrecord.Transaction) (*transactionrecord.Entry, error) {
	if transactionrecord.TxTypeNameSystem != tx.Type {
		return nil, nil
	}

	entry, err := tx.NameSystemEntry()
	if nil != err {
		return nil, err
	}

	if hfVersion < chain.NameSystemVersion {
		return nil, fault.ErrNameSystemNotActive
	}
	if !g.allowed(entry.Type, hfVersion) {
		return nil, fault.ErrTypeNotAllowed
	}

	if entry.NameHash.IsZero() {
		return nil, fault.ErrZeroNameHash
	}
	if entry.Owner.IsZero() {
		return nil, fault.ErrInvalidPublicKey
	}
	err = mapping.ValidateEncryptedValue(entry.Type, entry.EncryptedValue.Bytes())
	if nil != err {
		return nil, err
	}

	// damaged or unreadable state must fail the caller, not reject the entry
	current, err := reader.MappingAt(entry.Type, entry.NameHash, height)
	if nil != err {
		return nil, fault.StateFailure(err)
	}

	var signer account.PublicKey
	if entry.PrevTxId.IsZero() {
		if nil != current && current.Renewable(g.network, height) {
			return nil, fault.ErrNameAlreadyRegistered
		}
		signer = entry.Owner
	} else {
		if nil == current {
			return nil, fault.ErrMappingNotFound
		}
		if current.TxId != entry.PrevTxId {
			return nil, fault.ErrPrevTxIdMismatch
		}
		if !current.Renewable(g.network, height) {
			return nil, fault.ErrMappingExpired
		}
		signer = current.OwnerKey
	}

	h := entry.SigningHash()
	if err := signer.CheckSignature(h[:], entry.Signature); nil != err {
		return nil, err
	}
	return entry, nil
}
