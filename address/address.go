// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"golang.org/x/crypto/sha3"

	"github.com/loki-project/lnsd/chain"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/util"
)

// sizes of the parts of a wallet address
const (
	KeyLength      = 32
	ValueLength    = 2 * KeyLength
	checksumLength = 4
)

type tags struct {
	standard   uint64
	subaddress uint64
}

// fakechain shares the mainnet tags
var networkTags = map[string]tags{
	chain.Mainnet:   {standard: 114, subaddress: 116},
	chain.Testnet:   {standard: 156, subaddress: 158},
	chain.Devnet:    {standard: 3930, subaddress: 4442},
	chain.Fakechain: {standard: 114, subaddress: 116},
}

// Address - a decoded wallet address
type Address struct {
	Network    string
	Subaddress bool
	SpendKey   [KeyLength]byte
	ViewKey    [KeyLength]byte
}

// Parse - decode a base58 wallet address and check it belongs to network
func Parse(network string, text string) (*Address, error) {
	networkTag, ok := networkTags[network]
	if !ok {
		return nil, fault.ErrInvalidChain
	}

	data, err := decodeBlocks(text)
	if nil != err {
		return nil, err
	}

	tag, n := util.FromVarint64(data)
	if 0 == n {
		return nil, fault.ErrInvalidAddress
	}
	if len(data) != n+ValueLength+checksumLength {
		return nil, fault.ErrInvalidValueLength
	}

	body := data[:len(data)-checksumLength]
	if !bytes.Equal(checksum(body), data[len(body):]) {
		return nil, fault.ErrChecksumMismatch
	}

	a := &Address{
		Network: network,
	}
	switch tag {
	case networkTag.standard:
	case networkTag.subaddress:
		a.Subaddress = true
	default:
		return nil, fault.ErrWrongNetworkForAddress
	}
	copy(a.SpendKey[:], body[n:n+KeyLength])
	copy(a.ViewKey[:], body[n+KeyLength:])
	return a, nil
}

// FromValue - rebuild an address from the 64 byte mapping value
func FromValue(network string, subaddress bool, value []byte) (*Address, error) {
	if _, ok := networkTags[network]; !ok {
		return nil, fault.ErrInvalidChain
	}
	if ValueLength != len(value) {
		return nil, fault.ErrInvalidValueLength
	}
	a := &Address{
		Network:    network,
		Subaddress: subaddress,
	}
	copy(a.SpendKey[:], value[:KeyLength])
	copy(a.ViewKey[:], value[KeyLength:])
	return a, nil
}

// Value - spend key followed by view key
func (a *Address) Value() []byte {
	value := make([]byte, 0, ValueLength)
	value = append(value, a.SpendKey[:]...)
	return append(value, a.ViewKey[:]...)
}

// String - the base58 text form
func (a *Address) String() string {
	networkTag := networkTags[a.Network]
	tag := networkTag.standard
	if a.Subaddress {
		tag = networkTag.subaddress
	}
	data := util.ToVarint64(tag)
	data = append(data, a.Value()...)
	data = append(data, checksum(data)...)
	return encodeBlocks(data)
}

// MarshalText - base58 text for JSON
func (a *Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func checksum(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)[:checksumLength]
}
