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
//   M ⧺ name hash ⧺ type ⧺ height ⧺ index  - mapping revision
//                                            data: owner id ⧺ txId ⧺ prev txId ⧺ encrypted value
//   S ⧺ "settings"                         - checkpoint
//                                            data: height ⧺ hash ⧺ version

const (
	uint16ByteSize = 2
	uint32ByteSize = 4
	uint64ByteSize = 8
)

// structure of the packed mapping data
const (
	ownerIdStart  = 0
	ownerIdFinish = ownerIdStart + uint64ByteSize

	txIdStart  = ownerIdFinish
	txIdFinish = txIdStart + digest.Length

	prevTxIdStart  = txIdFinish
	prevTxIdFinish = prevTxIdStart + digest.Length

	encryptedValueStart = prevTxIdFinish

	// shortest valid pack, empty value
	mappingPackMinimum = encryptedValueStart
)

// structure of the packed settings
const (
	topHeightStart  = 0
	topHeightFinish = topHeightStart + uint64ByteSize

	topHashStart  = topHeightFinish
	topHashFinish = topHashStart + digest.Length

	versionStart  = topHashFinish
	versionFinish = versionStart + uint32ByteSize

	settingsPackLength = versionFinish
)

// PackedMapping - mapping data as stored
type PackedMapping []byte

// PackedSettings - settings as stored
type PackedSettings []byte

// Pack - the data part of a mapping row; the key carries the rest
func (m *Mapping) Pack() PackedMapping {
	packed := make(PackedMapping, mappingPackMinimum, mappingPackMinimum+m.EncryptedValue.Length)
	binary.BigEndian.PutUint64(packed[ownerIdStart:ownerIdFinish], uint64(m.OwnerID))
	copy(packed[txIdStart:txIdFinish], m.TxId[:])
	copy(packed[prevTxIdStart:prevTxIdFinish], m.PrevTxId[:])
	return append(packed, m.EncryptedValue.Bytes()...)
}

// Unpack - rebuild a mapping from its row key and data
//
// OwnerKey is not stored in the row and is left zero
func (packed PackedMapping) Unpack(key MappingKey) (*Mapping, error) {
	if len(packed) < mappingPackMinimum {
		return nil, fault.ErrNotMappingPack
	}
	nameHash, t, height, index, err := key.Split()
	if nil != err {
		return nil, err
	}
	value, err := mapping.NewValue(packed[encryptedValueStart:])
	if nil != err {
		return nil, err
	}
	m := &Mapping{
		Type:           t,
		NameHash:       nameHash,
		EncryptedValue: value,
		RegisterHeight: height,
		TxIndex:        index,
		OwnerID:        int64(binary.BigEndian.Uint64(packed[ownerIdStart:ownerIdFinish])),
	}
	digest.FromBytes(&m.TxId, packed[txIdStart:txIdFinish])
	digest.FromBytes(&m.PrevTxId, packed[prevTxIdStart:prevTxIdFinish])
	return m, nil
}

// Pack - settings as stored
func (s *Settings) Pack() PackedSettings {
	packed := make(PackedSettings, settingsPackLength)
	binary.BigEndian.PutUint64(packed[topHeightStart:topHeightFinish], s.TopHeight)
	copy(packed[topHashStart:topHashFinish], s.TopHash[:])
	binary.BigEndian.PutUint32(packed[versionStart:versionFinish], s.Version)
	return packed
}

// Unpack - settings from storage
func (packed PackedSettings) Unpack() (*Settings, error) {
	if settingsPackLength != len(packed) {
		return nil, fault.ErrNotSettingsPack
	}
	s := &Settings{
		TopHeight: binary.BigEndian.Uint64(packed[topHeightStart:topHeightFinish]),
		Version:   binary.BigEndian.Uint32(packed[versionStart:versionFinish]),
	}
	digest.FromBytes(&s.TopHash, packed[topHashStart:topHashFinish])
	return s, nil
}
