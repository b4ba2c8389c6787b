// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - load a Lua configuration file into a struct
//
// the file is a Lua chunk that returns a table; base Lua is available so
// values can be computed, read from files or taken from os.getenv
package configuration
