// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonclient

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-type", "application/json")
		w.Write([]byte(body))
	}))
}

func newTestCtx(addr, method string, res interface{}) (*RPCCtx, *bytes.Buffer, *bytes.Buffer) {
	ctx := NewRPCCtx(addr, method, nil, res)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	ctx.out, ctx.errOut = out, errOut
	return ctx, out, errOut
}

func TestRPCCtxRun(t *testing.T) {
	srv := newTestServer(`{"id":1,"result":{"height":7},"error":null}`)
	defer srv.Close()

	var res struct {
		Height int64 `json:"height"`
	}
	ctx, out, errOut := newTestCtx(srv.URL, "Critter.GetLastHeader", &res)
	ctx.Run()
	assert.Equal(t, int64(7), res.Height)
	assert.Contains(t, out.String(), `"height": 7`)
	assert.Empty(t, errOut.String())
}

func TestRPCCtxResultCb(t *testing.T) {
	srv := newTestServer(`{"id":1,"result":{"height":7},"error":null}`)
	defer srv.Close()

	var res struct {
		Height int64 `json:"height"`
	}
	ctx, out, errOut := newTestCtx(srv.URL, "Critter.GetLastHeader", &res)
	ctx.SetResultCb(func(interface{}) (interface{}, error) { return nil, errors.New("bad result") })
	ctx.Run()
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "bad result")
}

func TestRPCCtxRunWithoutMarshal(t *testing.T) {
	srv := newTestServer(`{"id":1,"result":"0xabcd","error":null}`)
	defer srv.Close()

	ctx, out, _ := newTestCtx(srv.URL, "Critter.SendTransaction", nil)
	ctx.RunWithoutMarshal()
	assert.Equal(t, "0xabcd\n", out.String())

	srv2 := newTestServer(`{"id":1,"result":null,"error":"ErrNoBalance"}`)
	defer srv2.Close()
	ctx, out, errOut := newTestCtx(srv2.URL, "Critter.SendTransaction", nil)
	ctx.RunWithoutMarshal()
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "ErrNoBalance")
}
