// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"strings"

	"github.com/mr-tron/base58"

	"github.com/loki-project/lnsd/fault"
)

// wallet addresses are base58 in independent blocks: each 8 byte
// block becomes exactly 11 characters and a short final block uses
// the size from encodedBlockSizes
const (
	fullBlockSize        = 8
	fullEncodedBlockSize = 11
	paddingCharacter     = "1"
)

var encodedBlockSizes = [fullBlockSize + 1]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

func decodedBlockSize(encodedSize int) int {
	for i, n := range encodedBlockSizes {
		if n == encodedSize {
			return i
		}
	}
	return -1
}

// encodeBlocks - block base58 encoding
func encodeBlocks(data []byte) string {
	var b strings.Builder
	for len(data) > 0 {
		n := fullBlockSize
		if len(data) < n {
			n = len(data)
		}
		encoded := base58.FastBase58Encoding(data[:n])
		size := encodedBlockSizes[n]
		if len(encoded) < size {
			b.WriteString(strings.Repeat(paddingCharacter, size-len(encoded)))
		}
		b.WriteString(encoded)
		data = data[n:]
	}
	return b.String()
}

// decodeBlocks - inverse of encodeBlocks
func decodeBlocks(text string) ([]byte, error) {
	result := make([]byte, 0, len(text)*fullBlockSize/fullEncodedBlockSize+fullBlockSize)
	for len(text) > 0 {
		n := fullEncodedBlockSize
		if len(text) < n {
			n = len(text)
		}
		size := decodedBlockSize(n)
		if size <= 0 {
			return nil, fault.ErrInvalidAddress
		}
		decoded, err := base58.FastBase58Decoding(text[:n])
		if nil != err {
			return nil, fault.ErrInvalidAddress
		}

		// padding decodes to extra leading zeros
		if len(decoded) > size {
			for _, z := range decoded[:len(decoded)-size] {
				if 0 != z {
					return nil, fault.ErrInvalidAddress
				}
			}
			decoded = decoded[len(decoded)-size:]
		}
		for i := len(decoded); i < size; i += 1 {
			result = append(result, 0)
		}
		result = append(result, decoded...)
		text = text[n:]
	}
	return result, nil
}
