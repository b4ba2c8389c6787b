// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/util"
)

// ExtraTag - first byte of each extra field
type ExtraTag byte

// known extra field tags
const (
	PaddingTag    = ExtraTag(0x00)
	PublicKeyTag  = ExtraTag(0x01)
	NonceTag      = ExtraTag(0x02)
	NameSystemTag = ExtraTag(0x74)
)

const maxExtraFieldLength = 8192

// AppendExtraField - tag ⧺ Varint64(length) ⧺ payload
func AppendExtraField(extra []byte, tag ExtraTag, payload []byte) []byte {
	extra = append(extra, byte(tag))
	extra = util.AppendVarint64(extra, uint64(len(payload)))
	return append(extra, payload...)
}

// FindExtraField - payload of the first field with tag
func FindExtraField(extra []byte, tag ExtraTag) ([]byte, error) {
	n := 0
	for n < len(extra) {
		fieldTag := ExtraTag(extra[n])
		n += 1

		length, count := util.FromVarint64(extra[n:])
		if 0 == count || length > maxExtraFieldLength || n+count+int(length) > len(extra) {
			return nil, fault.ErrNotEntryPack
		}
		n += count

		if tag == fieldTag {
			return extra[n : n+int(length)], nil
		}
		n += int(length)
	}
	return nil, fault.ErrMissingEntry
}
