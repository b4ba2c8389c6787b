// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Validation failures are InvalidError, LengthError, ExistsError or
// NotFoundError; they never change ledger state.  ProcessError marks a
// consistency failure where the current storage operation was
// abandoned.  RecordError marks an undecodable wire record.
package fault
