// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - network front ends of the RPC server
package listeners

// Listener - a started or startable server
type Listener interface {
	Serve() error
	Stop()
}
