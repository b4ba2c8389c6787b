// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/loki-project/lnsd/address"
	"github.com/loki-project/lnsd/fault"
)

// MaxValueLength - largest value, plain or encrypted
const MaxValueLength = 255

// EncryptionOverhead - bytes added by value encryption
const EncryptionOverhead = secretbox.Overhead

// z-base-32 uses the RFC 4648 bit order with its own alphabet
var zbase32 = base32.NewEncoding("ybndrfg8ejkmcpqxot1uwisza345h769").WithPadding(base32.NoPadding)

const lokinetValueTextLength = 52

// Value - a bounded byte string
type Value struct {
	Length int
	Buffer [MaxValueLength]byte
}

// NewValue - copy b into a value
func NewValue(b []byte) (Value, error) {
	var v Value
	if len(b) > MaxValueLength {
		return v, fault.ErrValueTooLong
	}
	v.Length = copy(v.Buffer[:], b)
	return v, nil
}

// Bytes - the used part of the buffer
func (v Value) Bytes() []byte {
	return v.Buffer[:v.Length]
}

// Equal - same length and same content
func (v Value) Equal(other Value) bool {
	return v.Length == other.Length && bytes.Equal(v.Bytes(), other.Bytes())
}

// String - hex text
func (v Value) String() string {
	return hex.EncodeToString(v.Bytes())
}

// MarshalText - hex text for JSON
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText - hex text to value
func (v *Value) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	if _, err := hex.Decode(b, s); nil != err {
		return fault.ErrInvalidHex
	}
	value, err := NewValue(b)
	if nil != err {
		return err
	}
	*v = value
	return nil
}

// ValidateValue - decode the text form of a value for type t
//
//   session: 66 hex characters beginning 05
//   lokinet: 52 z-base-32 characters with optional .loki suffix
//   wallet:  base58 address for network
func ValidateValue(network string, t Type, text string) (Value, error) {
	var decoded []byte
	switch {
	case Session == t:
		if hex.EncodedLen(SessionValueLength) != len(text) {
			return Value{}, fault.ErrInvalidValueLength
		}
		b, err := hex.DecodeString(text)
		if nil != err {
			return Value{}, fault.ErrInvalidHex
		}
		if sessionPrefix != b[0] {
			return Value{}, fault.ErrInvalidSessionPrefix
		}
		decoded = b

	case t.IsLokinet():
		s := strings.TrimSuffix(strings.ToLower(text), lokinetSuffix)
		if lokinetValueTextLength != len(s) {
			return Value{}, fault.ErrInvalidValueLength
		}
		b, err := zbase32.DecodeString(s)
		if nil != err {
			return Value{}, fault.ErrInvalidBase32z
		}
		decoded = b

	case Wallet == t:
		a, err := address.Parse(network, text)
		if nil != err {
			return Value{}, err
		}
		decoded = a.Value()

	default:
		return Value{}, fault.ErrInvalidType
	}

	if len(decoded) != t.BinaryLength() {
		return Value{}, fault.ErrInvalidValueLength
	}
	return NewValue(decoded)
}

// FormatValue - inverse of ValidateValue for a decrypted value
func FormatValue(network string, t Type, value Value) (string, error) {
	if value.Length != t.BinaryLength() {
		return "", fault.ErrInvalidValueLength
	}
	switch {
	case Session == t:
		return hex.EncodeToString(value.Bytes()), nil
	case t.IsLokinet():
		return zbase32.EncodeToString(value.Bytes()) + lokinetSuffix, nil
	case Wallet == t:
		a, err := address.FromValue(network, false, value.Bytes())
		if nil != err {
			return "", err
		}
		return a.String(), nil
	default:
		return "", fault.ErrInvalidType
	}
}

// ValidateEncryptedValue - the stored value must be exactly the
// binary length of the type plus the encryption overhead
func ValidateEncryptedValue(t Type, encrypted []byte) error {
	if !t.Valid() {
		return fault.ErrInvalidType
	}
	if len(encrypted) != t.EncryptedLength() {
		return fault.ErrInvalidEncryptedValueLength
	}
	return nil
}
