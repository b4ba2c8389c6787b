// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package resolver - DNS front end answering for active lokinet names
//
// a query for <name>.loki is answered with a CNAME to the decrypted
// <address>.loki value; TXT queries return the same value as text
package resolver

import (
	"context"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/miekg/dns"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/namecrypt"
	"github.com/loki-project/lnsd/ownership"
)

const (
	zone            = "loki."
	defaultTTL      = 300
	shutdownTimeout = 5 * time.Second

	defaultRateLimit = 100 // queries per second
	defaultBurst     = 200

	// argon2 runs per cache miss
	maximumDecrypts = 4

	valueCacheExpiration = 10 * time.Minute
	valueCacheCleanup    = 20 * time.Minute
)

// Configuration - configuration file data for the DNS listeners
type Configuration struct {
	Listen    []string `gluamapper:"listen" json:"listen"`
	TTL       uint32   `gluamapper:"ttl" json:"ttl"`
	RateLimit float64  `gluamapper:"rate_limit" json:"rate_limit"`
	Burst     int      `gluamapper:"burst" json:"burst"`
}

// Source - the ledger queries used to answer
type Source interface {
	Network() string
	Settings() (*ownership.Settings, error)
	Mappings(types []mapping.Type, nameHash digest.Digest) ([]*ownership.Mapping, error)
	Active(record *ownership.Mapping, height uint64) (bool, error)
}

// Resolver - dns.Handler over a Source
type Resolver struct {
	log    *logger.L
	source Source
	ttl    uint32
	listen []string

	// queries over the limit are refused before any ledger work
	limiter *rate.Limiter

	// decrypted text by "txid/name"; a txid fixes the ciphertext
	values   *cache.Cache
	decrypts chan struct{}
}

// New - create a resolver; listeners start when it is run
func New(configuration *Configuration, source Source) *Resolver {
	ttl := configuration.TTL
	if 0 == ttl {
		ttl = defaultTTL
	}
	limit := configuration.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	burst := configuration.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	return &Resolver{
		log:      logger.New("resolver"),
		source:   source,
		ttl:      ttl,
		listen:   configuration.Listen,
		limiter:  rate.NewLimiter(rate.Limit(limit), burst),
		values:   cache.New(valueCacheExpiration, valueCacheCleanup),
		decrypts: make(chan struct{}, maximumDecrypts),
	}
}

// Lookup - the active lokinet address of name, "" if none
//
// when several lease types hold the name the latest registration wins
func (r *Resolver) Lookup(name string) (string, error) {
	name = mapping.NormalizeName(strings.TrimSuffix(name, "."))
	if err := mapping.ValidateName(mapping.Lokinet1Year, name); nil != err {
		return "", err
	}

	settings, err := r.source.Settings()
	if nil != err {
		return "", err
	}

	mappings, err := r.source.Mappings(lokinetTypes(), mapping.NameToHash(name))
	if nil != err {
		return "", err
	}

	var best *ownership.Mapping
	for _, m := range mappings {
		active, err := r.source.Active(m, settings.TopHeight)
		if nil != err {
			return "", err
		}
		if !active {
			continue
		}
		if nil == best || m.RegisterHeight > best.RegisterHeight ||
			(m.RegisterHeight == best.RegisterHeight && m.TxIndex > best.TxIndex) {
			best = m
		}
	}
	if nil == best {
		return "", nil
	}

	return r.decrypt(name, best)
}

// decrypt - text value of record, cached by its txid
func (r *Resolver) decrypt(name string, record *ownership.Mapping) (string, error) {
	cacheKey := record.TxId.String() + "/" + name
	if text, found := r.values.Get(cacheKey); found {
		return text.(string), nil
	}

	r.decrypts <- struct{}{}
	value, err := namecrypt.Decrypt(name, record.EncryptedValue)
	<-r.decrypts
	if nil != err {
		return "", err
	}

	text, err := mapping.FormatValue(r.source.Network(), record.Type, value)
	if nil != err {
		return "", err
	}
	r.values.SetDefault(cacheKey, text)
	return text, nil
}

// ServeDNS - answer one query
func (r *Resolver) ServeDNS(w dns.ResponseWriter, request *dns.Msg) {
	msg := &dns.Msg{}
	msg.SetReply(request)
	msg.Authoritative = true

	if !r.limiter.Allow() {
		msg.Rcode = dns.RcodeRefused
		r.write(w, msg)
		return
	}

	if 0 == len(request.Question) {
		msg.Rcode = dns.RcodeFormatError
		r.write(w, msg)
		return
	}

	question := request.Question[0]
	qname := strings.ToLower(question.Name)
	if !dns.IsSubDomain(zone, qname) || zone == qname {
		msg.Rcode = dns.RcodeRefused
		r.write(w, msg)
		return
	}

	target, err := r.Lookup(qname)
	switch {
	case nil != err && fault.IsValidationFailure(err):
		r.log.Debugf("query: %q  error: %s", qname, err)
		msg.Rcode = dns.RcodeNameError
	case nil != err:
		r.log.Errorf("query: %q  error: %s", qname, err)
		msg.Rcode = dns.RcodeServerFailure
	case "" == target:
		msg.Rcode = dns.RcodeNameError
	default:
		header := dns.RR_Header{
			Name:   question.Name,
			Class:  dns.ClassINET,
			Ttl:    r.ttl,
			Rrtype: dns.TypeCNAME,
		}
		switch question.Qtype {
		case dns.TypeTXT:
			header.Rrtype = dns.TypeTXT
			msg.Answer = append(msg.Answer, &dns.TXT{Hdr: header, Txt: []string{target}})
		case dns.TypeCNAME, dns.TypeA, dns.TypeAAAA, dns.TypeANY:
			msg.Answer = append(msg.Answer, &dns.CNAME{Hdr: header, Target: dns.Fqdn(target)})
		}
	}
	r.write(w, msg)
}

func (r *Resolver) write(w dns.ResponseWriter, msg *dns.Msg) {
	if err := w.WriteMsg(msg); nil != err {
		r.log.Warnf("write response error: %s", err)
	}
}

// Run - serve UDP and TCP on every listen address until shutdown
func (r *Resolver) Run(args interface{}, shutdown <-chan struct{}) {
	servers := make([]*dns.Server, 0, 2*len(r.listen))
	for _, listen := range r.listen {
		for _, network := range []string{"udp", "tcp"} {
			s := &dns.Server{Addr: listen, Net: network, Handler: r}
			servers = append(servers, s)
			go func(s *dns.Server) {
				r.log.Infof("starting DNS server: %s/%s", s.Addr, s.Net)
				if err := s.ListenAndServe(); nil != err {
					r.log.Errorf("DNS server: %s/%s  error: %s", s.Addr, s.Net, err)
				}
			}(s)
		}
	}

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, s := range servers {
		_ = s.ShutdownContext(ctx)
	}
	r.log.Info("stopped")
}

func lokinetTypes() []mapping.Type {
	types := make([]mapping.Type, 0, 4)
	for _, t := range mapping.All() {
		if t.IsLokinet() {
			types = append(types, t)
		}
	}
	return types
}
