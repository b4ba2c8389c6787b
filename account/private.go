// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/loki-project/lnsd/fault"
)

// SeedLength - bytes of secret needed to rebuild a key pair
const SeedLength = ed25519.SeedSize

// KeyPair - an owner's signing key
type KeyPair struct {
	PublicKey  PublicKey
	privateKey ed25519.PrivateKey
}

// NewKeyPair - generate a fresh key pair from random
func NewKeyPair(random io.Reader) (*KeyPair, error) {
	if nil == random {
		random = rand.Reader
	}
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	keyPair := &KeyPair{privateKey: privateKey}
	copy(keyPair.PublicKey[:], publicKey)
	return keyPair, nil
}

// KeyPairFromSeed - rebuild the key pair for a 32 byte seed
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if SeedLength != len(seed) {
		return nil, fault.ErrInvalidPrivateKey
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	keyPair := &KeyPair{privateKey: privateKey}
	copy(keyPair.PublicKey[:], privateKey.Public().(ed25519.PublicKey))
	return keyPair, nil
}

// KeyPairFromHexSeed - as KeyPairFromSeed for hex text
func KeyPairFromHexSeed(s string) (*KeyPair, error) {
	seed, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHex
	}
	return KeyPairFromSeed(seed)
}

// Seed - the secret part, suitable for KeyPairFromSeed
func (keyPair *KeyPair) Seed() []byte {
	return keyPair.privateKey.Seed()
}

// Sign - ed25519 signature over message
func (keyPair *KeyPair) Sign(message []byte) Signature {
	var signature Signature
	copy(signature[:], ed25519.Sign(keyPair.privateKey, message))
	return signature
}
