// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/loki-project/lnsd/chain"
)

type metadata struct {
	network string
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "lns-cli"
	app.Usage = "name system key, entry and query tool"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Mainnet,
			Usage: " chain `NETWORK` [mainnet|testnet|devnet|fakechain]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:22130",
			Usage: " lnsd RPC `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "keygen",
			Usage:     "generate an owner key pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " rebuild from an existing seed `HEX`",
				},
			},
			Action: runKeygen,
		},
		{
			Name:      "hash-name",
			Usage:     "display the name hash of each name",
			ArgsUsage: "NAME...",
			Action:    runHashName,
		},
		{
			Name:      "validate-value",
			Usage:     "check a value and show its binary form",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				typeFlag,
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: "*value `TEXT`",
				},
			},
			Action: runValidateValue,
		},
		{
			Name:      "encrypt",
			Usage:     "encrypt a value under a name",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				typeFlag,
				nameFlag,
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: "*value `TEXT`",
				},
			},
			Action: runEncrypt,
		},
		{
			Name:      "decrypt",
			Usage:     "decrypt a stored value with its name",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				typeFlag,
				nameFlag,
				cli.StringFlag{
					Name:  "encrypted, e",
					Value: "",
					Usage: "*encrypted value `HEX`",
				},
			},
			Action: runDecrypt,
		},
		{
			Name:      "build-entry",
			Usage:     "build a signed name system transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				typeFlag,
				nameFlag,
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: "*value `TEXT`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "*signing key seed `HEX`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " new owner public key `HEX` [default signer]",
				},
				cli.StringFlag{
					Name:  "prev, p",
					Value: "",
					Usage: " txid of the mapping being updated `TXID`",
				},
			},
			Action: runBuildEntry,
		},
		{
			Name:      "dump-db",
			Usage:     "display ledger contents from a database directory",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, d",
					Value: "",
					Usage: "*leveldb `DIRECTORY`",
				},
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "+mappings of `NAME`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "+mappings of owner public key `HEX`",
				},
			},
			Action: runDumpDB,
		},
		{
			Name:   "info",
			Usage:  "display lnsd status",
			Action: runInfo,
		},
		{
			Name:      "resolve",
			Usage:     "decrypt the active value of a name through lnsd",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				typeFlag,
				nameFlag,
			},
			Action: runResolve,
		},
		{
			Name:      "mapping",
			Usage:     "current mappings of a name through lnsd",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				nameFlag,
				cli.StringSliceFlag{
					Name:  "type, t",
					Usage: " restrict to mapping `TYPE` (repeatable)",
				},
			},
			Action: runMapping,
		},
		{
			Name:      "validate-entry",
			Usage:     "check a transaction from build-entry against lnsd state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*build-entry output `FILE`",
				},
				cli.UintFlag{
					Name:  "hf-version",
					Value: chain.NameSystemVersion,
					Usage: " hard fork `VERSION` of the including block",
				},
			},
			Action: runValidateEntry,
		},
		{
			Name:  "version",
			Usage: "display lns-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		network := strings.ToLower(c.GlobalString("network"))
		if !chain.Valid(network) {
			return fmt.Errorf("network: %q can only be mainnet/testnet/devnet/fakechain", network)
		}

		c.App.Metadata["config"] = &metadata{
			network: network,
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

// flags shared by several commands
var (
	typeFlag = cli.StringFlag{
		Name:  "type, t",
		Value: "session",
		Usage: " mapping `TYPE` [session|wallet|lokinet|lokinet_2years|...]",
	}
	nameFlag = cli.StringFlag{
		Name:  "name, N",
		Value: "",
		Usage: "*plain `NAME`",
	}
)
