// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
)

// from storage/doc.go:
//
//   H ⧺ height ⧺ index ⧺ name hash ⧺ type  - revisions by block, for pruning
//                                            data: (empty)
//   W ⧺ owner id ⧺ height ⧺ index          - revisions by owner
//                                            data: name hash ⧺ type
//
// all integers are big endian so byte order is numeric order

// MappingKey - key of a mapping row:
// name hash ⧺ type ⧺ height ⧺ index
type MappingKey []byte

// HeightKey - key of a pruning index row:
// height ⧺ index ⧺ name hash ⧺ type
type HeightKey []byte

// OwnerIndexKey - key of an owner index row:
// owner id ⧺ height ⧺ index
type OwnerIndexKey []byte

const (
	mappingPrefixLength = digest.Length + uint16ByteSize
	mappingKeyLength    = mappingPrefixLength + uint64ByteSize + uint32ByteSize
	heightKeyLength     = uint64ByteSize + uint32ByteSize + mappingPrefixLength
	ownerIndexKeyLength = uint64ByteSize + uint64ByteSize + uint32ByteSize
)

// MappingPrefix - key prefix shared by every revision of a name and type
func MappingPrefix(nameHash digest.Digest, t mapping.Type) []byte {
	prefix := make([]byte, mappingPrefixLength)
	copy(prefix, nameHash[:])
	binary.BigEndian.PutUint16(prefix[digest.Length:], uint16(t))
	return prefix
}

// NewMappingKey - key for a revision
func NewMappingKey(nameHash digest.Digest, t mapping.Type, height uint64, index uint32) MappingKey {
	key := make(MappingKey, mappingKeyLength)
	copy(key, MappingPrefix(nameHash, t))
	binary.BigEndian.PutUint64(key[mappingPrefixLength:], height)
	binary.BigEndian.PutUint32(key[mappingPrefixLength+uint64ByteSize:], index)
	return key
}

// Key - the mapping row key of m
func (m *Mapping) Key() MappingKey {
	return NewMappingKey(m.NameHash, m.Type, m.RegisterHeight, m.TxIndex)
}

// Split - the parts of a mapping key
func (key MappingKey) Split() (nameHash digest.Digest, t mapping.Type, height uint64, index uint32, err error) {
	if mappingKeyLength != len(key) {
		return nameHash, 0, 0, 0, fault.ErrNotMappingPack
	}
	copy(nameHash[:], key[:digest.Length])
	t = mapping.Type(binary.BigEndian.Uint16(key[digest.Length:mappingPrefixLength]))
	height = binary.BigEndian.Uint64(key[mappingPrefixLength:])
	index = binary.BigEndian.Uint32(key[mappingPrefixLength+uint64ByteSize:])
	return nameHash, t, height, index, nil
}

// HeightPrefix - start of every height index row at height or above
func HeightPrefix(height uint64) []byte {
	prefix := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(prefix, height)
	return prefix
}

// HeightKey - the pruning index key of m
func (m *Mapping) HeightKey() HeightKey {
	key := make(HeightKey, 0, heightKeyLength)
	key = append(key, HeightPrefix(m.RegisterHeight)...)
	key = append(key, uint32Bytes(m.TxIndex)...)
	return append(key, MappingPrefix(m.NameHash, m.Type)...)
}

// MappingKey - convert a height index key to its mapping key
func (key HeightKey) MappingKey() (MappingKey, uint64, error) {
	if heightKeyLength != len(key) {
		return nil, 0, fault.ErrNotMappingPack
	}
	height := binary.BigEndian.Uint64(key)
	index := binary.BigEndian.Uint32(key[uint64ByteSize:])

	var nameHash digest.Digest
	copy(nameHash[:], key[uint64ByteSize+uint32ByteSize:])
	t := mapping.Type(binary.BigEndian.Uint16(key[uint64ByteSize+uint32ByteSize+digest.Length:]))
	return NewMappingKey(nameHash, t, height, index), height, nil
}

// OwnerPrefix - start of every owner index row of id
func OwnerPrefix(id int64) []byte {
	prefix := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(prefix, uint64(id))
	return prefix
}

// OwnerIndexKey - the owner index key of m
func (m *Mapping) OwnerIndexKey() OwnerIndexKey {
	key := make(OwnerIndexKey, 0, ownerIndexKeyLength)
	key = append(key, OwnerPrefix(m.OwnerID)...)
	key = append(key, HeightPrefix(m.RegisterHeight)...)
	return append(key, uint32Bytes(m.TxIndex)...)
}

// OwnerIndexData - data of the owner index row of m
func (m *Mapping) OwnerIndexData() []byte {
	return MappingPrefix(m.NameHash, m.Type)
}

// MappingKey - convert an owner index row to its mapping key
func (key OwnerIndexKey) MappingKey(data []byte) (MappingKey, int64, error) {
	if ownerIndexKeyLength != len(key) || mappingPrefixLength != len(data) {
		return nil, 0, fault.ErrNotMappingPack
	}
	id := int64(binary.BigEndian.Uint64(key))
	mk := make(MappingKey, 0, mappingKeyLength)
	mk = append(mk, data...)
	mk = append(mk, key[uint64ByteSize:]...)
	return mk, id, nil
}

// OwnerIDBytes - id as stored
func OwnerIDBytes(id int64) []byte {
	return OwnerPrefix(id)
}

// OwnerIDFromBytes - id from storage
func OwnerIDFromBytes(b []byte) (int64, error) {
	if uint64ByteSize != len(b) {
		return 0, fault.ErrOwnerNotFound
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func uint32Bytes(n uint32) []byte {
	b := make([]byte, uint32ByteSize)
	binary.BigEndian.PutUint32(b, n)
	return b
}
