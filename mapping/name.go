// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"strings"

	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
)

const (
	lokinetSuffix  = ".loki"
	maxLabelLength = 63
)

var reservedLokinetNames = map[string]struct{}{
	"localhost.loki": {},
	"loki.loki":      {},
	"snode.loki":     {},
}

// NormalizeName - the canonical form of a name: ASCII lower case
//
// the normalized name is both the hash input and the encryption secret
func NormalizeName(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// NameToHash - blake2b-256 of the normalized name
func NameToHash(name string) digest.Digest {
	return digest.NewDigest([]byte(NormalizeName(name)))
}

// ValidateName - check length and character rules of a name for type t
func ValidateName(t Type, name string) error {
	if !t.Valid() {
		return fault.ErrInvalidType
	}
	if 0 == len(name) || len(name) > types[t].nameLimit {
		return fault.ErrInvalidNameLength
	}
	name = NormalizeName(name)

	if t.IsLokinet() {
		return validateLokinetName(name)
	}
	return validateLabel(name, true)
}

func validateLokinetName(name string) error {
	if !strings.HasSuffix(name, lokinetSuffix) || len(name) == len(lokinetSuffix) {
		return fault.ErrInvalidName
	}
	if _, reserved := reservedLokinetNames[name]; reserved {
		return fault.ErrNameReserved
	}
	for _, label := range strings.Split(strings.TrimSuffix(name, lokinetSuffix), ".") {
		if len(label) > maxLabelLength {
			return fault.ErrInvalidNameLength
		}
		if err := validateLabel(label, false); nil != err {
			return err
		}
	}
	return nil
}

// label must be non-empty, of [a-z0-9-] (plus '_' when underscore is set),
// not starting or ending with '-'
func validateLabel(label string, underscore bool) error {
	if 0 == len(label) || '-' == label[0] || '-' == label[len(label)-1] {
		return fault.ErrInvalidName
	}
	for i := 0; i < len(label); i += 1 {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case '-' == c:
		case '_' == c && underscore:
		default:
			return fault.ErrInvalidName
		}
	}
	return nil
}
