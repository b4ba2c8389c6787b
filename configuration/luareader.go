// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"sort"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/loki-project/lnsd/fault"
)

// struct tag naming the Lua table key of each field
const tagName = "gluamapper"

// ParseConfigurationFile - run a Lua file and map the table it returns
// onto config
//
// arg[0] is the file name and arg[1..n] are the extra arguments; the
// global config_directory holds the directory of the file
func ParseConfigurationFile(fileName string, config interface{}, arguments ...string) error {
	return parse(fileName, config, nil, arguments)
}

// ParseWithVariables - as ParseConfigurationFile, with each variable
// set as a global string before the file runs
func ParseWithVariables(fileName string, config interface{}, variables map[string]string) error {
	return parse(fileName, config, variables, nil)
}

func parse(fileName string, config interface{}, variables map[string]string, arguments []string) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	for _, a := range arguments {
		arg.Append(lua.LString(a))
	}
	L.SetGlobal("arg", arg)

	directory, err := filepath.Abs(filepath.Dir(fileName))
	if nil != err {
		return err
	}
	L.SetGlobal("config_directory", lua.LString(directory))

	// stable order so a bad name always fails the same way
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		L.SetGlobal(name, lua.LString(variables[name]))
	}

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: tagName,
		},
	}
	return mapper.Map(table, config)
}
