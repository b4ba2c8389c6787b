// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk name ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ⧺           = concatenation of byte data
// 3. height       = big endian uint64 (8 bytes)
// 4. index        = position of the transaction in its block, big endian uint32
// 5. owner id     = big endian uint64, assigned from 1 upwards
// 6. owner key    = 32 byte ed25519 public key
// 7. name hash    = 32 byte blake2b-256 of the normalized name
// 8. type         = mapping type, big endian uint16
//
// Owners:
//
//   O ⧺ owner id                          - owner key
//                                           data: owner key
//   K ⧺ owner key                         - owner id
//                                           data: owner id
//   N ⧺ "next"                            - next owner id to assign
//                                           data: owner id
//
// Mappings:
//
//   M ⧺ name hash ⧺ type ⧺ height ⧺ index - one revision of a name
//                                           data: owner id ⧺ txId ⧺ prev txId ⧺ encrypted value
//   H ⧺ height ⧺ index ⧺ name hash ⧺ type - revisions by block, for pruning
//                                           data: (empty)
//   W ⧺ owner id ⧺ height ⧺ index         - revisions by owner
//                                           data: name hash ⧺ type
//
// Settings:
//
//   S ⧺ "settings"                        - checkpoint
//                                           data: height ⧺ block hash ⧺ version
//
// Version:
//
//   00 ⧺ "VERSION"                        - schema version, outside every pool
//                                           data: big endian uint32
package storage
