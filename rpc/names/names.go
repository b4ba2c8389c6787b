// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package names - read only RPC over the name ledger
package names

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/loki-project/lnsd/account"
	"github.com/loki-project/lnsd/counter"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/namecrypt"
	"github.com/loki-project/lnsd/ownership"
	"github.com/loki-project/lnsd/rpc/ratelimit"
	"github.com/loki-project/lnsd/transactionrecord"
)

const (
	rateLimitNames = 200
	rateBurstNames = 100

	// MaximumOwners - keys accepted by one MappingsByOwner call
	MaximumOwners = 50
)

// Ledger - the ledger queries used by the RPC
type Ledger interface {
	Network() string
	Settings() (*ownership.Settings, error)
	Mappings(types []mapping.Type, nameHash digest.Digest) ([]*ownership.Mapping, error)
	MappingsByOwners(keys []account.PublicKey) ([]*ownership.Mapping, error)
	OwnerByKey(key account.PublicKey) (*ownership.Owner, error)
	Active(record *ownership.Mapping, height uint64) (bool, error)
	ValidateTransaction(hfVersion uint8, height uint64, tx *transactionrecord.Transaction) (*transactionrecord.Entry, error)
}

// Names - type for the RPC
type Names struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
	Start   time.Time
	Version string
	counter *counter.Counter
}

// Record - a mapping revision with its state at the ledger height
type Record struct {
	*ownership.Mapping
	Active       bool    `json:"active"`
	ExpiryHeight *uint64 `json:"expiry_height,omitempty"`
}

// New - create the RPC handler
func New(log *logger.L, ledger Ledger, start time.Time, version string, count *counter.Counter) *Names {
	return &Names{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNames, rateBurstNames),
		Ledger:  ledger,
		Start:   start,
		Version: version,
		counter: count,
	}
}

// Names mapping
// -------------

// MappingArguments - either Name or NameHash; no Types means all types
type MappingArguments struct {
	Name     string         `json:"name"`
	NameHash *digest.Digest `json:"name_hash"`
	Types    []string       `json:"types"`
}

// MappingReply - result of Names.Mapping
type MappingReply struct {
	Height   uint64   `json:"height"`
	Mappings []Record `json:"mappings"`
}

// Mapping - current revision of a name for each requested type
func (names *Names) Mapping(arguments *MappingArguments, reply *MappingReply) error {
	if err := ratelimit.Limit(names.Limiter); nil != err {
		return err
	}
	names.Log.Infof("Names.Mapping: %+v", arguments)

	nameHash, err := nameHashOf(arguments.Name, arguments.NameHash)
	if nil != err {
		return err
	}
	types, err := parseTypes(arguments.Types)
	if nil != err {
		return err
	}

	settings, err := names.Ledger.Settings()
	if nil != err {
		return err
	}
	mappings, err := names.Ledger.Mappings(types, nameHash)
	if nil != err {
		return err
	}

	records, err := names.records(mappings, settings.TopHeight)
	if nil != err {
		return err
	}
	reply.Height = settings.TopHeight
	reply.Mappings = records
	return nil
}

// Names resolve
// -------------

// ResolveArguments - the plain name is needed to decrypt
type ResolveArguments struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ResolveReply - decrypted value in its text form
type ResolveReply struct {
	Value  string `json:"value"`
	Record Record `json:"record"`
}

// Resolve - decrypt the active value of a name
func (names *Names) Resolve(arguments *ResolveArguments, reply *ResolveReply) error {
	if err := ratelimit.Limit(names.Limiter); nil != err {
		return err
	}
	names.Log.Infof("Names.Resolve: %+v", arguments)

	if "" == arguments.Name {
		return fault.ErrMissingParameters
	}
	t, err := mapping.ParseType(arguments.Type)
	if nil != err {
		return err
	}

	settings, err := names.Ledger.Settings()
	if nil != err {
		return err
	}
	mappings, err := names.Ledger.Mappings([]mapping.Type{t}, mapping.NameToHash(arguments.Name))
	if nil != err {
		return err
	}
	if 0 == len(mappings) {
		return fault.ErrMappingNotFound
	}
	m := mappings[0]

	active, err := names.Ledger.Active(m, settings.TopHeight)
	if nil != err {
		return err
	}
	if !active {
		return fault.ErrMappingExpired
	}

	value, err := namecrypt.Decrypt(arguments.Name, m.EncryptedValue)
	if nil != err {
		return err
	}
	text, err := mapping.FormatValue(names.Ledger.Network(), t, value)
	if nil != err {
		return err
	}

	reply.Value = text
	reply.Record = names.record(m, true)
	return nil
}

// Names by owner
// --------------

// OwnersArguments - public keys to list
type OwnersArguments struct {
	Owners []account.PublicKey `json:"owners"`
}

// OwnersReply - every surviving revision of the owners
type OwnersReply struct {
	Height   uint64   `json:"height"`
	Mappings []Record `json:"mappings"`
}

// MappingsByOwner - all revisions registered to any of the owners
func (names *Names) MappingsByOwner(arguments *OwnersArguments, reply *OwnersReply) error {
	if err := ratelimit.LimitN(names.Limiter, len(arguments.Owners), MaximumOwners); nil != err {
		return err
	}
	names.Log.Infof("Names.MappingsByOwner: %d owners", len(arguments.Owners))

	settings, err := names.Ledger.Settings()
	if nil != err {
		return err
	}
	mappings, err := names.Ledger.MappingsByOwners(arguments.Owners)
	if nil != err {
		return err
	}
	records, err := names.records(mappings, settings.TopHeight)
	if nil != err {
		return err
	}
	reply.Height = settings.TopHeight
	reply.Mappings = records
	return nil
}

// Names owner
// -----------

// OwnerArguments - a public key
type OwnerArguments struct {
	Key account.PublicKey `json:"key"`
}

// OwnerReply - the ledger owner record
type OwnerReply struct {
	Owner *ownership.Owner `json:"owner"`
}

// Owner - owner id of a public key
func (names *Names) Owner(arguments *OwnerArguments, reply *OwnerReply) error {
	if err := ratelimit.Limit(names.Limiter); nil != err {
		return err
	}
	owner, err := names.Ledger.OwnerByKey(arguments.Key)
	if nil != err {
		return err
	}
	reply.Owner = owner
	return nil
}

// Names info
// ----------

// InfoArguments - no arguments
type InfoArguments struct{}

// InfoReply - ledger and server state
type InfoReply struct {
	Chain       string        `json:"chain"`
	Version     string        `json:"version"`
	Height      uint64        `json:"height"`
	Hash        digest.Digest `json:"hash"`
	Uptime      string        `json:"uptime"`
	Connections uint64        `json:"connections"`
}

// Info - checkpoint and server details
func (names *Names) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(names.Limiter); nil != err {
		return err
	}
	settings, err := names.Ledger.Settings()
	if nil != err {
		return err
	}
	reply.Chain = names.Ledger.Network()
	reply.Version = names.Version
	reply.Height = settings.TopHeight
	reply.Hash = settings.TopHash
	reply.Uptime = time.Since(names.Start).String()
	if nil != names.counter {
		reply.Connections = names.counter.Uint64()
	}
	return nil
}

// Names validate
// --------------

// ValidateArguments - a transaction as it would be included
type ValidateArguments struct {
	Transaction transactionrecord.Transaction `json:"transaction"`
	HFVersion   uint8                         `json:"hf_version"`
	Height      uint64                        `json:"height"`
}

// ValidateReply - the decoded entry, nil for other transactions
type ValidateReply struct {
	Entry *transactionrecord.Entry `json:"entry"`
}

// Validate - check a transaction against committed state; Height 0
// means the block after the checkpoint
func (names *Names) Validate(arguments *ValidateArguments, reply *ValidateReply) error {
	if err := ratelimit.Limit(names.Limiter); nil != err {
		return err
	}

	tx := arguments.Transaction
	txId := transactionrecord.ComputeTxId(tx.Version, tx.Type, tx.Extra)
	if !tx.TxId.IsZero() && txId != tx.TxId {
		return fault.ErrTxIdMismatch
	}
	tx.TxId = txId

	height := arguments.Height
	if 0 == height {
		settings, err := names.Ledger.Settings()
		if nil != err {
			return err
		}
		height = settings.TopHeight + 1
	}

	entry, err := names.Ledger.ValidateTransaction(arguments.HFVersion, height, &tx)
	if nil != err {
		return err
	}
	reply.Entry = entry
	return nil
}

func (names *Names) records(mappings []*ownership.Mapping, height uint64) ([]Record, error) {
	records := make([]Record, 0, len(mappings))
	for _, m := range mappings {
		active, err := names.Ledger.Active(m, height)
		if nil != err {
			return nil, err
		}
		records = append(records, names.record(m, active))
	}
	return records, nil
}

func (names *Names) record(m *ownership.Mapping, active bool) Record {
	r := Record{
		Mapping: m,
		Active:  active,
	}
	if end, ok := m.ExpiryHeight(names.Ledger.Network()); ok {
		r.ExpiryHeight = &end
	}
	return r
}

func nameHashOf(name string, nameHash *digest.Digest) (digest.Digest, error) {
	switch {
	case "" != name:
		return mapping.NameToHash(name), nil
	case nil != nameHash && !nameHash.IsZero():
		return *nameHash, nil
	default:
		return digest.Zero, fault.ErrMissingParameters
	}
}

func parseTypes(texts []string) ([]mapping.Type, error) {
	if 0 == len(texts) {
		return mapping.All(), nil
	}
	types := make([]mapping.Type, 0, len(texts))
	for _, text := range texts {
		t, err := mapping.ParseType(text)
		if nil != err {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
