// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/account"
	"github.com/loki-project/lnsd/chain"
	"github.com/loki-project/lnsd/consensus"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/mocks"
	"github.com/loki-project/lnsd/ownership"
	"github.com/loki-project/lnsd/transactionrecord"
)

const (
	activeVersion = chain.NameSystemVersion
	testHeight    = 100
)

var (
	aliceHash = mapping.NameToHash("alice")
	priorTxId = digest.NewDigest([]byte("prior"))
)

func keyPair(t *testing.T, b byte) *account.KeyPair {
	kp, err := account.KeyPairFromSeed(bytes.Repeat([]byte{b}, account.SeedLength))
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	return kp
}

// build a transaction carrying an entry owned by owner and signed by signer
func entryTx(t *testing.T, typ mapping.Type, owner *account.KeyPair, signer *account.KeyPair, prev digest.Digest) *transactionrecord.Transaction {
	value, _ := mapping.NewValue(bytes.Repeat([]byte{0x33}, typ.EncryptedLength()))
	entry := &transactionrecord.Entry{
		Type:           typ,
		Owner:          owner.PublicKey,
		NameHash:       aliceHash,
		PrevTxId:       prev,
		EncryptedValue: value,
	}
	entry.Sign(signer)
	tx, err := transactionrecord.NewNameSystemTransaction(transactionrecord.CurrentVersion, entry)
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	return tx
}

func currentRecord(typ mapping.Type, owner *account.KeyPair, height uint64) *ownership.Mapping {
	return &ownership.Mapping{
		Type:           typ,
		NameHash:       aliceHash,
		RegisterHeight: height,
		OwnerID:        1,
		OwnerKey:       owner.PublicKey,
		TxId:           priorTxId,
	}
}

func TestOtherTransactionTypes(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	reader := mocks.NewMockReader(ctl)

	tx := &transactionrecord.Transaction{Type: transactionrecord.TxTypeStandard}
	entry, err := consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Nil(t, err, "standard")
	assert.Nil(t, entry, "no entry")
}

func TestDecodeFirst(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	reader := mocks.NewMockReader(ctl)

	tx := &transactionrecord.Transaction{Type: transactionrecord.TxTypeNameSystem}
	_, err := consensus.ValidateTransaction(reader, chain.Mainnet, 0, testHeight, tx)
	assert.Equal(t, fault.ErrMissingEntry, err, "missing entry beats version")

	tx.Extra = transactionrecord.AppendExtraField(nil, transactionrecord.NameSystemTag, []byte{0x00, 0x01})
	_, err = consensus.ValidateTransaction(reader, chain.Mainnet, 0, testHeight, tx)
	assert.Equal(t, fault.ErrNotEntryPack, err, "malformed entry")
}

func TestVersionAndAllowList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	reader := mocks.NewMockReader(ctl)

	owner := keyPair(t, 1)

	tx := entryTx(t, mapping.Session, owner, owner, digest.Zero)
	_, err := consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion-1, testHeight, tx)
	assert.Equal(t, fault.ErrNameSystemNotActive, err, "before activation")

	tx = entryTx(t, mapping.Wallet, owner, owner, digest.Zero)
	_, err = consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Equal(t, fault.ErrTypeNotAllowed, err, "wallet")

	tx = entryTx(t, mapping.Lokinet2Years, owner, owner, digest.Zero)
	_, err = consensus.ValidateTransaction(reader, chain.Mainnet, 255, testHeight, tx)
	assert.Equal(t, fault.ErrTypeNotAllowed, err, "lokinet")
}

func TestCodecChecks(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	reader := mocks.NewMockReader(ctl)

	owner := keyPair(t, 1)

	entry := &transactionrecord.Entry{
		Type:  mapping.Session,
		Owner: owner.PublicKey,
	}
	entry.EncryptedValue, _ = mapping.NewValue(make([]byte, mapping.Session.EncryptedLength()))
	entry.Sign(owner)
	tx, _ := transactionrecord.NewNameSystemTransaction(transactionrecord.CurrentVersion, entry)
	_, err := consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Equal(t, fault.ErrZeroNameHash, err, "zero name hash")

	entry.NameHash = aliceHash
	entry.EncryptedValue, _ = mapping.NewValue(make([]byte, mapping.SessionValueLength))
	entry.Sign(owner)
	tx, _ = transactionrecord.NewNameSystemTransaction(transactionrecord.CurrentVersion, entry)
	_, err = consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Equal(t, fault.ErrInvalidEncryptedValueLength, err, "unencrypted length")
}

func TestFreshRegistration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	reader := mocks.NewMockReader(ctl)

	owner := keyPair(t, 1)
	other := keyPair(t, 2)

	reader.EXPECT().MappingAt(mapping.Session, aliceHash, uint64(testHeight)).Return(nil, nil).Times(2)

	tx := entryTx(t, mapping.Session, owner, owner, digest.Zero)
	entry, err := consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Nil(t, err, "fresh")
	assert.Equal(t, owner.PublicKey, entry.Owner, "owner")
	assert.True(t, entry.PrevTxId.IsZero(), "prev null")

	tx = entryTx(t, mapping.Session, owner, other, digest.Zero)
	_, err = consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Equal(t, fault.ErrInvalidSignature, err, "signed by another key")
}

func TestFreshOverExisting(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	reader := mocks.NewMockReader(ctl)

	owner := keyPair(t, 1)
	reader.EXPECT().MappingAt(mapping.Session, aliceHash, uint64(testHeight)).Return(currentRecord(mapping.Session, owner, 50), nil)

	tx := entryTx(t, mapping.Session, owner, owner, digest.Zero)
	_, err := consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Equal(t, fault.ErrNameAlreadyRegistered, err, "already registered")
}

func TestSupersede(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	reader := mocks.NewMockReader(ctl)

	owner := keyPair(t, 1)
	buyer := keyPair(t, 2)
	current := currentRecord(mapping.Session, owner, 50)

	gomock.InOrder(
		reader.EXPECT().MappingAt(mapping.Session, aliceHash, uint64(testHeight)).Return(nil, nil),
		reader.EXPECT().MappingAt(mapping.Session, aliceHash, uint64(testHeight)).Return(current, nil).Times(3),
	)

	tx := entryTx(t, mapping.Session, owner, owner, priorTxId)
	_, err := consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Equal(t, fault.ErrMappingNotFound, err, "nothing to supersede")

	tx = entryTx(t, mapping.Session, owner, owner, digest.NewDigest([]byte("wrong")))
	_, err = consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Equal(t, fault.ErrPrevTxIdMismatch, err, "mismatched prev")

	// transfer must be signed by the current owner, not the new one
	tx = entryTx(t, mapping.Session, buyer, buyer, priorTxId)
	_, err = consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Equal(t, fault.ErrInvalidSignature, err, "signed by new owner")

	tx = entryTx(t, mapping.Session, buyer, owner, priorTxId)
	entry, err := consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.Nil(t, err, "transfer")
	assert.Equal(t, buyer.PublicKey, entry.Owner, "new owner")
	assert.Equal(t, priorTxId, entry.PrevTxId, "prev")
}

func TestExpiredLease(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	reader := mocks.NewMockReader(ctl)

	permissive := func(mapping.Type, uint8) bool { return true }
	gate := consensus.NewWithAllowList(chain.Fakechain, permissive)
	assert.Equal(t, chain.Fakechain, gate.Network(), "network")

	owner := keyPair(t, 1)
	current := currentRecord(mapping.Lokinet1Year, owner, 10)

	// lease of 10 blocks: active 10..19
	reader.EXPECT().MappingAt(mapping.Lokinet1Year, aliceHash, uint64(19)).Return(current, nil)
	reader.EXPECT().MappingAt(mapping.Lokinet1Year, aliceHash, uint64(21)).Return(current, nil).Times(2)

	tx := entryTx(t, mapping.Lokinet1Year, owner, owner, priorTxId)
	_, err := gate.ValidateTransaction(reader, activeVersion, 19, tx)
	assert.Nil(t, err, "renew in lease")

	_, err = gate.ValidateTransaction(reader, activeVersion, 21, tx)
	assert.Equal(t, fault.ErrMappingExpired, err, "renew after lease")

	other := keyPair(t, 3)
	tx = entryTx(t, mapping.Lokinet1Year, other, other, digest.Zero)
	_, err = gate.ValidateTransaction(reader, activeVersion, 21, tx)
	assert.Nil(t, err, "fresh after lease")
}

func TestReaderError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	reader := mocks.NewMockReader(ctl)

	failure := errors.New("disk on fire")
	gomock.InOrder(
		reader.EXPECT().MappingAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, failure),
		reader.EXPECT().MappingAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fault.ErrOwnerNotFound),
		reader.EXPECT().MappingAt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fault.ErrNotMappingPack),
	)

	owner := keyPair(t, 1)
	tx := entryTx(t, mapping.Session, owner, owner, digest.Zero)
	_, err := consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
	assert.True(t, fault.IsErrProcess(err), "storage error class: %v", err)
	assert.Contains(t, err.Error(), failure.Error(), "cause kept")

	// damaged rows are not rejected entries
	for _, cause := range []error{fault.ErrOwnerNotFound, fault.ErrNotMappingPack} {
		_, err = consensus.ValidateTransaction(reader, chain.Mainnet, activeVersion, testHeight, tx)
		assert.False(t, fault.IsValidationFailure(err), "%s taken for validation failure", cause)
		assert.True(t, fault.IsErrProcess(err), "%s class", cause)
	}
}
