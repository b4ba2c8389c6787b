// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/loki-project/lnsd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{114, []byte{0x72}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{3930, []byte{0xda, 0x1e}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), 0xff, 0x97, 0x23)
		value, count := util.FromVarint64(b)
		if value != item.value {
			t.Errorf("%d: FromVarint64(%x) -> %d  expected: %d", i, b, value, item.value)
		}
		if count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) used %d bytes  expected: %d", i, b, count, len(item.encoded))
		}
	}
}

func TestTruncatedVarint64(t *testing.T) {
	for i, b := range varint64TruncatedTests {
		value, count := util.FromVarint64(b)
		if 0 != value || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, b, value, count)
		}
	}
}

func TestClippedVarint64(t *testing.T) {
	b := util.ToVarint64(300)
	if v, n := util.ClippedVarint64(b, 1, 255); 0 != v || 0 != n {
		t.Errorf("300 not clipped to 1..255: %d, %d", v, n)
	}
	if v, n := util.ClippedVarint64(b, 1, 8192); 300 != v || 2 != n {
		t.Errorf("300 in 1..8192: %d, %d", v, n)
	}
	if v, n := util.ClippedVarint64([]byte{0}, 1, 10); 0 != v || 0 != n {
		t.Errorf("zero below minimum accepted: %d, %d", v, n)
	}
}
