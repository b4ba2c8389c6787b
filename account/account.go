// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/loki-project/lnsd/fault"
)

// PublicKeyLength - number of bytes in an owner key
const PublicKeyLength = ed25519.PublicKeySize

// PublicKey - ed25519 key that owns name mappings
type PublicKey [PublicKeyLength]byte

// PublicKeyFromBytes - validate the length and copy a byte slice to a key
func PublicKeyFromBytes(buffer []byte) (PublicKey, error) {
	var key PublicKey
	if PublicKeyLength != len(buffer) {
		return key, fault.ErrInvalidPublicKey
	}
	copy(key[:], buffer)
	return key, nil
}

// PublicKeyFromHex - parse hex text to a key
func PublicKeyFromHex(s string) (PublicKey, error) {
	var key PublicKey
	err := key.UnmarshalText([]byte(s))
	return key, err
}

// IsZero - true for the all zero key
func (key PublicKey) IsZero() bool {
	return PublicKey{} == key
}

// CheckSignature - verify an ed25519 signature over message
func (key PublicKey) CheckSignature(message []byte, signature Signature) error {
	if !ed25519.Verify(key[:], message, signature[:]) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - hex text for the fmt package (%s)
func (key PublicKey) String() string {
	return hex.EncodeToString(key[:])
}

// GoString - hex text for the fmt package (%#v)
func (key PublicKey) GoString() string {
	return "<ed25519-public:" + hex.EncodeToString(key[:]) + ">"
}

// MarshalText - convert key to hex text
func (key PublicKey) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(PublicKeyLength))
	hex.Encode(buffer, key[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to a key
func (key *PublicKey) UnmarshalText(s []byte) error {
	if PublicKeyLength != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidPublicKey
	}
	if _, err := hex.Decode(key[:], s); nil != err {
		return fault.ErrInvalidHex
	}
	return nil
}

// Scan - read hex text for the fmt scan routines
func (key *PublicKey) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, isHex)
	if nil != err {
		return err
	}
	return key.UnmarshalText(token)
}

func isHex(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}
