// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/loki-project/lnsd/fault"
)

// Length - number of bytes in the digest
const Length = blake2b.Size256

// Digest - 32 byte hash used for name hashes, transaction ids and block hashes
//
// stored and printed in the same byte order; to get bytes use d[:]
type Digest [Length]byte

// Zero - the null marker, e.g. the prev txid of a fresh registration
var Zero Digest

// NewDigest - blake2b-256 of a byte slice
func NewDigest(record []byte) Digest {
	return blake2b.Sum256(record)
}

// NewDigestOf - blake2b-256 of the concatenation of several slices
func NewDigestOf(parts ...[]byte) Digest {
	h, _ := blake2b.New256(nil) // only fails for a key > 64 bytes
	for _, p := range parts {
		h.Write(p)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// IsZero - true for the null marker
func (digest Digest) IsZero() bool {
	return Zero == digest
}

// String - hex text for the fmt package (%s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - hex text for the fmt package (%#v)
func (digest Digest) GoString() string {
	return "<blake2b-256:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - read hex text for the fmt scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrNotDigest
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrInvalidHex
	}
	copy(digest[:], buffer)
	return nil
}

// FromBytes - convert and validate a binary byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrNotDigest
	}
	copy(digest[:], buffer)
	return nil
}

// FromHex - parse hex text to a digest
func FromHex(s string) (Digest, error) {
	var d Digest
	err := d.UnmarshalText([]byte(s))
	return d, err
}
