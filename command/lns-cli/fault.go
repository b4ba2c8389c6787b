// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/loki-project/lnsd/fault"
)

// common errors - keep in alphabetic order
var (
	ErrAmbiguousQuery = fault.InvalidError("select only one of name or owner")
	ErrMissingName    = fault.InvalidError("name is required")
	ErrMissingQuery   = fault.InvalidError("name or owner is required")
	ErrMissingValue   = fault.InvalidError("value is required")
)
