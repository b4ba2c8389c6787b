// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"net/rpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/loki-project/lnsd/counter"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/rpc/listeners"
	"github.com/loki-project/lnsd/rpc/fixtures"
)

func TestNewRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	var count counter.Counter
	var fingerprint [32]byte

	tests := []struct {
		listen  []string
		maximum uint64
		err     error
	}{
		{[]string{"127.0.0.1:2130"}, 10, nil},
		{[]string{"*:2130"}, 10, nil},
		{[]string{"[::1]:2130"}, 10, nil},
		{[]string{"127.0.0.1:2130"}, 0, fault.ErrMissingParameters},
		{[]string{}, 10, fault.ErrMissingParameters},
		{[]string{"localhost:2130"}, 10, fault.ErrInvalidIPAddress},
		{[]string{""}, 10, fault.ErrInvalidIPAddress},
	}

	for i, item := range tests {
		config := listeners.RPCConfiguration{
			MaximumConnections: item.maximum,
			Listen:             item.listen,
		}
		l, err := listeners.NewRPC(&config, log, &count, rpc.NewServer(), nil, fingerprint)
		assert.Equal(t, item.err, err, "%d: error", i)
		if nil == item.err {
			assert.NotNil(t, l, "%d: listener", i)
		}
	}
}
