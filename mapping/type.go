// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"strings"

	"github.com/loki-project/lnsd/fault"
)

// Type - the kind of value a name maps to
type Type uint16

// all mapping types; the numbers are stored on chain
const (
	Session        Type = 0
	Wallet         Type = 1
	Lokinet1Year   Type = 2
	Lokinet2Years  Type = 3
	Lokinet5Years  Type = 4
	Lokinet10Years Type = 5

	// one greater than last item
	typeLimit = 6
)

// binary value lengths
const (
	SessionValueLength = 33
	WalletValueLength  = 64
	LokinetValueLength = 32
)

// the sole accepted first byte of a session value
const sessionPrefix = 0x05

type typeInfo struct {
	name        string
	binary      int
	years       uint64
	nameLimit   int
	allowed     bool
}

var types = [typeLimit]typeInfo{
	Session:        {name: "session", binary: SessionValueLength, nameLimit: 64, allowed: true},
	Wallet:         {name: "wallet", binary: WalletValueLength, nameLimit: 96},
	Lokinet1Year:   {name: "lokinet_1year", binary: LokinetValueLength, years: 1, nameLimit: 253},
	Lokinet2Years:  {name: "lokinet_2years", binary: LokinetValueLength, years: 2, nameLimit: 253},
	Lokinet5Years:  {name: "lokinet_5years", binary: LokinetValueLength, years: 5, nameLimit: 253},
	Lokinet10Years: {name: "lokinet_10years", binary: LokinetValueLength, years: 10, nameLimit: 253},
}

// All - every known type in numeric order
func All() []Type {
	result := make([]Type, typeLimit)
	for i := range result {
		result[i] = Type(i)
	}
	return result
}

// Valid - true for a type in the enumeration
func (t Type) Valid() bool {
	return t < typeLimit
}

// String - the text name
func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return types[t].name
}

// MarshalText - type as its text name
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fault.ErrInvalidType
	}
	return []byte(types[t].name), nil
}

// UnmarshalText - parse the text name
func (t *Type) UnmarshalText(s []byte) error {
	parsed, err := ParseType(string(s))
	if nil != err {
		return err
	}
	*t = parsed
	return nil
}

// IsLokinet - true for the lease types
func (t Type) IsLokinet() bool {
	return t >= Lokinet1Year && t <= Lokinet10Years
}

// Years - lease length, zero for types that never expire
func (t Type) Years() uint64 {
	if !t.Valid() {
		return 0
	}
	return types[t].years
}

// BinaryLength - byte length of a decoded value, zero for an invalid type
func (t Type) BinaryLength() int {
	if !t.Valid() {
		return 0
	}
	return types[t].binary
}

// EncryptedLength - byte length of a stored value
func (t Type) EncryptedLength() int {
	if !t.Valid() {
		return 0
	}
	return types[t].binary + EncryptionOverhead
}

// AllowedAt - true if the type may be registered at hard fork hfVersion
//
// no type has its own threshold; activation of the name system as a
// whole is checked by the consensus gate
func (t Type) AllowedAt(hfVersion uint8) bool {
	return t.Valid() && types[t].allowed
}

// ParseType - case insensitive parse of a type name
func ParseType(text string) (Type, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if "lokinet" == s {
		return Lokinet1Year, nil
	}
	for i, info := range types {
		if info.name == s {
			return Type(i), nil
		}
	}
	return 0, fault.ErrInvalidType
}

// ValidateType - parse a type name and check it is allowed at hfVersion
func ValidateType(text string, hfVersion uint8) (Type, error) {
	t, err := ParseType(text)
	if nil != err {
		return 0, err
	}
	if !t.AllowedAt(hfVersion) {
		return 0, fault.ErrTypeNotAllowed
	}
	return t, nil
}
