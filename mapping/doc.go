// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mapping - the mapping types with their name and value rules
//
// a mapping binds the hash of a human readable name to an encrypted
// value; the type decides the name syntax, the binary length of the
// value and the hard fork from which the type may be registered
package mapping
