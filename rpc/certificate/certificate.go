// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS material for the RPC listeners
package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/util"
)

// self signed certificates are valid for ten years
const validity = 10 * 365 * 24 * time.Hour

// Get - build a TLS configuration from PEM text and return the
// certificate fingerprint
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])
	return tlsConfiguration, fin, nil
}

// Fingerprint - SHA3-256 of a DER certificate
//
//   openssl x509 -outform DER -in lnsd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// MakeSelfSigned - write a new certificate and key pair, refusing to
// overwrite existing files
func MakeSelfSigned(name string, certificateFileName string, privateKeyFileName string, extraHosts []string) error {
	if util.EnsureFileExists(certificateFileName) {
		return fault.ErrCertificateFileAlreadyExists
	}
	if util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileAlreadyExists
	}

	org := "lnsd self signed cert for: " + name
	cert, key, err := certgen.NewTLSCertPair(org, time.Now().Add(validity), false, extraHosts)
	if nil != err {
		return err
	}

	if err := ioutil.WriteFile(certificateFileName, cert, 0o666); nil != err {
		return err
	}
	if err := ioutil.WriteFile(privateKeyFileName, key, 0o600); nil != err {
		_ = os.Remove(certificateFileName)
		return err
	}
	return nil
}
