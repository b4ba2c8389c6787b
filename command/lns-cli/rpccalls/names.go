// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/loki-project/lnsd/rpc/names"
	"github.com/loki-project/lnsd/transactionrecord"
)

// Info - checkpoint and server status
func (c *Client) Info() (*names.InfoReply, error) {
	var reply names.InfoReply
	if err := c.call("Names.Info", names.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Resolve - decrypted active value of a name
func (c *Client) Resolve(name string, mappingType string) (*names.ResolveReply, error) {
	arguments := names.ResolveArguments{
		Name: name,
		Type: mappingType,
	}
	var reply names.ResolveReply
	if err := c.call("Names.Resolve", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Mapping - current records of a name; no types means all
func (c *Client) Mapping(name string, types []string) (*names.MappingReply, error) {
	arguments := names.MappingArguments{
		Name:  name,
		Types: types,
	}
	var reply names.MappingReply
	if err := c.call("Names.Mapping", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Validate - check a transaction against committed state at the next height
func (c *Client) Validate(tx *transactionrecord.Transaction, hfVersion uint8) (*names.ValidateReply, error) {
	arguments := names.ValidateArguments{
		Transaction: *tx,
		HFVersion:   hfVersion,
	}
	var reply names.ValidateReply
	if err := c.call("Names.Validate", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
