// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namecrypt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/chain"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/namecrypt"
)

const sessionText = "05" + "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestRoundTrip(t *testing.T) {
	value, err := mapping.ValidateValue(chain.Mainnet, mapping.Session, sessionText)
	assert.Nil(t, err, "value")

	encrypted, err := namecrypt.Encrypt("Alice", value)
	assert.Nil(t, err, "encrypt")
	assert.Nil(t, mapping.ValidateEncryptedValue(mapping.Session, encrypted.Bytes()), "encrypted length")

	again, err := namecrypt.Encrypt("alice", value)
	assert.Nil(t, err, "encrypt again")
	assert.True(t, encrypted.Equal(again), "deterministic and case insensitive")

	plain, err := namecrypt.Decrypt("ALICE", encrypted)
	assert.Nil(t, err, "decrypt")
	assert.True(t, value.Equal(plain), "round trip")

	_, err = namecrypt.Decrypt("bob", encrypted)
	assert.Equal(t, fault.ErrDecryptFailed, err, "wrong name")
}

func TestBounds(t *testing.T) {
	long, _ := mapping.NewValue(make([]byte, mapping.MaxValueLength-namecrypt.Overhead+1))
	_, err := namecrypt.Encrypt("alice", long)
	assert.Equal(t, fault.ErrValueTooLong, err, "overflow")

	short, _ := mapping.NewValue(make([]byte, namecrypt.Overhead-1))
	_, err = namecrypt.Decrypt("alice", short)
	assert.Equal(t, fault.ErrValueTooShort, err, "short")
}

func TestSigningHash(t *testing.T) {
	blob := []byte("entry")
	prev := digest.NewDigest([]byte("tx"))

	assert.Equal(t, digest.NewDigestOf(blob, digest.Zero[:]), namecrypt.SigningHash(blob, digest.Zero), "fresh")
	assert.NotEqual(t, namecrypt.SigningHash(blob, digest.Zero), namecrypt.SigningHash(blob, prev), "prev bound")
}
