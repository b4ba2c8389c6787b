// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/namecrypt"
)

type nameHashReply struct {
	Name       string        `json:"name"`
	Normalised string        `json:"normalised"`
	NameHash   digest.Digest `json:"name_hash"`
}

type valueReply struct {
	Type      mapping.Type   `json:"type"`
	Name      string         `json:"name,omitempty"`
	Value     string         `json:"value"`
	Binary    mapping.Value  `json:"binary"`
	Encrypted *mapping.Value `json:"encrypted,omitempty"`
}

func runHashName(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrMissingName
	}

	replies := make([]nameHashReply, 0, c.NArg())
	for _, name := range c.Args() {
		replies = append(replies, nameHashReply{
			Name:       name,
			Normalised: mapping.NormalizeName(name),
			NameHash:   mapping.NameToHash(name),
		})
	}
	return printJson(m.w, replies)
}

func runValidateValue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	t, value, err := typeAndValue(m, c)
	if nil != err {
		return err
	}

	return printJson(m.w, valueReply{
		Type:   t,
		Value:  c.String("value"),
		Binary: value,
	})
}

func runEncrypt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c)
	if nil != err {
		return err
	}
	t, value, err := typeAndValue(m, c)
	if nil != err {
		return err
	}
	if err := mapping.ValidateName(t, name); nil != err {
		return err
	}

	encrypted, err := namecrypt.Encrypt(name, value)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "name hash: %s\n", mapping.NameToHash(name))
	}

	return printJson(m.w, valueReply{
		Type:      t,
		Name:      name,
		Value:     c.String("value"),
		Binary:    value,
		Encrypted: &encrypted,
	})
}

func runDecrypt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c)
	if nil != err {
		return err
	}
	t, err := mapping.ParseType(c.String("type"))
	if nil != err {
		return err
	}

	b, err := hex.DecodeString(c.String("encrypted"))
	if nil != err {
		return fault.ErrInvalidHex
	}
	if err := mapping.ValidateEncryptedValue(t, b); nil != err {
		return err
	}
	encrypted, err := mapping.NewValue(b)
	if nil != err {
		return err
	}

	value, err := namecrypt.Decrypt(name, encrypted)
	if nil != err {
		return err
	}
	text, err := mapping.FormatValue(m.network, t, value)
	if nil != err {
		return err
	}

	return printJson(m.w, valueReply{
		Type:      t,
		Name:      name,
		Value:     text,
		Binary:    value,
		Encrypted: &encrypted,
	})
}

// the --type and --value flags decoded for the selected network
func typeAndValue(m *metadata, c *cli.Context) (mapping.Type, mapping.Value, error) {
	t, err := mapping.ParseType(c.String("type"))
	if nil != err {
		return 0, mapping.Value{}, err
	}
	text := c.String("value")
	if "" == text {
		return 0, mapping.Value{}, ErrMissingValue
	}
	value, err := mapping.ValidateValue(m.network, t, text)
	if nil != err {
		return 0, mapping.Value{}, err
	}
	return t, value, nil
}

func checkName(c *cli.Context) (string, error) {
	name := c.String("name")
	if "" == name {
		return "", ErrMissingName
	}
	return name, nil
}
