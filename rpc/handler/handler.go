// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTPS endpoints in front of the RPC server
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/loki-project/lnsd/counter"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/rpc/names"
)

// Handler - the routes served by the HTTPS listener
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Resolve(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// Querier - the name queries exposed as GET requests
type Querier interface {
	Info(arguments *names.InfoArguments, reply *names.InfoReply) error
	Resolve(arguments *names.ResolveArguments, reply *names.ResolveReply) error
}

// connection to allow the rpc system to read and write an http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}

func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}

func (c *internalConnection) Close() error {
	return nil
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	querier            Querier
	maximumConnections uint64
	count              counter.Counter
	allow              map[string][]*net.IPNet
}

// New - handler for server requests; details and resolve answer from querier
func New(log *logger.L, server *rpc.Server, querier Querier, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		querier:            querier,
		maximumConnections: maximumConnections,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - per route address restrictions; a route without entries is open
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - anything not matched
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - a JSON-RPC request in a POST body
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.permitted("rpc", r, w) {
		return
	}
	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Warnf("rpc request error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// Details - GET of the Names.Info reply
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.permitted("details", r, w) {
		return
	}
	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	var reply names.InfoReply
	if err := h.querier.Info(&names.InfoArguments{}, &reply); nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, reply)
}

// Resolve - GET with query parameters:
//   name=<plain name>                 [required]
//   type=<mapping type>               [default: session]
func (h *handler) Resolve(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.permitted("resolve", r, w) {
		return
	}
	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	query := r.URL.Query()
	arguments := names.ResolveArguments{
		Name: query.Get("name"),
		Type: query.Get("type"),
	}
	if "" == arguments.Type {
		arguments.Type = "session"
	}

	var reply names.ResolveReply
	if err := h.querier.Resolve(&arguments, &reply); nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, reply)
}

// check the remote address against the route's allow list
func (h *handler) permitted(route string, r *http.Request, w http.ResponseWriter) bool {
	nets, restricted := h.allow[route]
	if !restricted {
		return true
	}

	host := r.RemoteAddr
	if last := strings.LastIndex(host, ":"); last >= 0 {
		host = host[:last]
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	if nil != ip {
		for _, n := range nets {
			if n.Contains(ip) {
				return true
			}
		}
	}

	h.log.Warnf("deny access: %q to: %s", r.RemoteAddr, route)
	sendForbidden(w)
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// map the error classes onto status codes
func sendFault(w http.ResponseWriter, err error) {
	switch {
	case fault.IsErrNotFound(err):
		sendError(w, err.Error(), http.StatusNotFound)
	case fault.IsValidationFailure(err):
		sendError(w, err.Error(), http.StatusBadRequest)
	case fault.ErrRateLimiting == err:
		sendTooManyRequests(w)
	default:
		sendInternalServerError(w)
	}
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
