// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 节点的 json rpc 服务, 基于 net/rpc 和 jsonrpc 编码
package rpc

import (
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/metrics"
	"github.com/33cn/critter/types"
	"github.com/rs/cors"
)

var rlog = log.New("module", "rpc")

// httpConn 一次http请求作为jsonrpc的连接, 关闭由http server负责
type httpConn struct {
	io.Reader
	io.Writer
}

func (httpConn) Close() error { return nil }

// JSONRPCServer  a json rpcserver object
type JSONRPCServer struct {
	cfg  *types.RPC
	jrpc *Critter
	s    *rpc.Server
	l    net.Listener

	mu        sync.RWMutex
	whitelist map[string]bool
}

// NewJSONRPCServer new json rpcserver object
func NewJSONRPCServer(cfg *types.RPC, cli ChannelClient) (*JSONRPCServer, error) {
	j := &JSONRPCServer{cfg: cfg, jrpc: &Critter{cli: cli}}
	j.s = rpc.NewServer()
	if err := j.s.RegisterName("Critter", j.jrpc); err != nil {
		return nil, err
	}
	j.initWhitelist(cfg.Whitelist)
	return j, nil
}

func (j *JSONRPCServer) initWhitelist(list []string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.whitelist = make(map[string]bool)
	for _, addr := range list {
		j.whitelist[addr] = true
	}
}

func (j *JSONRPCServer) checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.whitelist["0.0.0.0"] || j.whitelist["*"] {
		return true
	}
	return j.whitelist[addr]
}

// Listen 监听配置的地址, 返回实际的端口
func (j *JSONRPCServer) Listen() (int, error) {
	listener, err := net.Listen("tcp", j.cfg.JrpcBindAddr)
	if err != nil {
		return 0, err
	}
	j.l = listener
	mux := http.NewServeMux()
	mux.HandleFunc("/", j.handleJSONRPC)
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-type", "application/json")
		metrics.WriteJSON(w)
	})
	var handler http.Handler = mux
	if len(j.cfg.CorsOrigins) > 0 {
		handler = cors.New(cors.Options{AllowedOrigins: j.cfg.CorsOrigins}).Handler(mux)
	}
	go func() {
		err := http.Serve(listener, handler)
		if err != nil {
			rlog.Info("jsonrpc server stop", "err", err)
		}
	}()
	rlog.Info("jsonrpc listen", "addr", listener.Addr().String())
	return listener.Addr().(*net.TCPAddr).Port, nil
}

func (j *JSONRPCServer) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if !j.checkIPWhitelist(ip) {
		rlog.Error("HandleFunc", "remote ip not in whitelist", ip)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	serverCodec := jsonrpc.NewServerCodec(&httpConn{Reader: r.Body, Writer: w})
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := j.s.ServeRequest(serverCodec); err != nil {
		rlog.Debug("Error while serving JSON request", "err", err)
	}
}

// Close json rpcserver close
func (j *JSONRPCServer) Close() {
	if j.l != nil {
		if err := j.l.Close(); err != nil {
			rlog.Error("JSONRPCServer close", "err", err)
		}
	}
}
