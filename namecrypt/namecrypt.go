// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package namecrypt - bind a mapping value to the name it is registered under
//
// the value is sealed with a key derived from the normalized name, so
// only someone who knows the name can read it, and the same name and
// value always produce the same ciphertext
package namecrypt

import (
	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
)

// Overhead - bytes added to a sealed value
const Overhead = mapping.EncryptionOverhead

// key derivation parameters
const (
	keyMode        = argon2.ModeArgon2d
	keyMemory      = 1 << 15 // 32 MiB
	keyParallelism = 1
	keyIterations  = 3
	keyVersion     = argon2.Version13
	keyLength      = 32
)

// fixed so every node derives the same key
var keySalt = []byte("lns-mapping-salt")

// fixed all zero nonce, encryption is deterministic
var sealNonce [24]byte

func deriveKey(name string) (*[keyLength]byte, error) {
	context := &argon2.Context{
		Iterations:  keyIterations,
		Memory:      keyMemory,
		Parallelism: keyParallelism,
		HashLen:     keyLength,
		Mode:        keyMode,
		Version:     keyVersion,
	}
	hash, err := argon2.Hash(context, []byte(mapping.NormalizeName(name)), keySalt)
	if nil != err {
		return nil, err
	}
	var key [keyLength]byte
	copy(key[:], hash)
	return &key, nil
}

// Encrypt - seal value with the key for name
func Encrypt(name string, value mapping.Value) (mapping.Value, error) {
	if value.Length+Overhead > mapping.MaxValueLength {
		return mapping.Value{}, fault.ErrValueTooLong
	}
	key, err := deriveKey(name)
	if nil != err {
		return mapping.Value{}, err
	}
	sealed := secretbox.Seal(nil, value.Bytes(), &sealNonce, key)
	return mapping.NewValue(sealed)
}

// Decrypt - open a value sealed by Encrypt under the same name
func Decrypt(name string, encrypted mapping.Value) (mapping.Value, error) {
	if encrypted.Length < Overhead {
		return mapping.Value{}, fault.ErrValueTooShort
	}
	key, err := deriveKey(name)
	if nil != err {
		return mapping.Value{}, err
	}
	plain, ok := secretbox.Open(nil, encrypted.Bytes(), &sealNonce, key)
	if !ok {
		return mapping.Value{}, fault.ErrDecryptFailed
	}
	return mapping.NewValue(plain)
}

// SigningHash - the message an owner signs for an entry
//
// prevTxId is digest.Zero for a fresh registration
func SigningHash(blob []byte, prevTxId digest.Digest) digest.Digest {
	return digest.NewDigestOf(blob, prevTxId[:])
}
