// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/33cn/critter/common"
	"github.com/33cn/critter/common/address"
	"github.com/33cn/critter/rpc/jsonclient"
	rpctypes "github.com/33cn/critter/rpc/types"
	"github.com/33cn/critter/types"
	"github.com/33cn/critter/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) SendTx(tx *types.Transaction) ([]byte, error) {
	args := m.Called(tx)
	hash, _ := args.Get(0).([]byte)
	return hash, args.Error(1)
}

func (m *mockClient) GetTx(hash []byte) (*types.TxResult, error) {
	args := m.Called(hash)
	res, _ := args.Get(0).(*types.TxResult)
	return res, args.Error(1)
}

func (m *mockClient) LastHeader() (*types.Header, error) {
	args := m.Called()
	h, _ := args.Get(0).(*types.Header)
	return h, args.Error(1)
}

func (m *mockClient) GetBlock(height int64) (*types.BlockDetail, error) {
	args := m.Called(height)
	d, _ := args.Get(0).(*types.BlockDetail)
	return d, args.Error(1)
}

func (m *mockClient) GetBalance(addr string) *types.Account {
	return m.Called(addr).Get(0).(*types.Account)
}

func (m *mockClient) Query(execer, funcName string, params []byte) (types.Message, error) {
	args := m.Called(execer, funcName, params)
	return args.Get(0), args.Error(1)
}

func (m *mockClient) Title() string {
	return "critter"
}

func startServer(t *testing.T, cli ChannelClient) (*JSONRPCServer, string) {
	server, err := NewJSONRPCServer(&types.RPC{JrpcBindAddr: "127.0.0.1:0", CorsOrigins: []string{"*"}}, cli)
	require.NoError(t, err)
	port, err := server.Listen()
	require.NoError(t, err)
	return server, fmt.Sprintf("http://127.0.0.1:%d", port)
}

func TestJSONRPC(t *testing.T) {
	cli := &mockClient{}
	server, url := startServer(t, cli)
	defer server.Close()

	client, err := jsonclient.NewJSONClient(url)
	require.NoError(t, err)

	tx := types.NewTransaction("none", map[string]int{"ty": 1})
	tx.Sign(types.SECP256K1, util.TestPrivkeyList[0])
	cli.On("SendTx", mock.Anything).Return(tx.Hash(), nil).Once()
	var hash string
	require.NoError(t, client.Call("Critter.SendTransaction", tx, &hash))
	assert.Equal(t, common.ToHex(tx.Hash()), hash)

	cli.On("SendTx", mock.Anything).Return(nil, types.ErrTxDup).Once()
	err = client.Call("Critter.SendTransaction", tx, &hash)
	require.Error(t, err)
	assert.Equal(t, types.ErrTxDup.Error(), err.Error())

	cli.On("LastHeader").Return(&types.Header{Height: 9, Hash: []byte{1, 2}}, nil)
	var header rpctypes.Header
	require.NoError(t, client.Call("Critter.GetLastHeader", nil, &header))
	assert.Equal(t, int64(9), header.Height)
	assert.Equal(t, "0x0102", header.Hash)

	var version rpctypes.VersionInfo
	require.NoError(t, client.Call("Critter.Version", nil, &version))
	assert.Equal(t, "critter", version.Title)

	cli.On("Query", "critter", "GetGame", []byte(`{"gameId":"g"}`)).Return(map[string]string{"gameId": "g"}, nil)
	var reply map[string]string
	err = client.Call("Critter.Query", &rpctypes.Query4Jrpc{Execer: "critter", FuncName: "GetGame", Payload: []byte(`{"gameId":"g"}`)}, &reply)
	require.NoError(t, err)
	assert.Equal(t, "g", reply["gameId"])

	err = client.Call("Critter.Query", &rpctypes.Query4Jrpc{}, &reply)
	assert.Error(t, err)

	err = client.Call("Critter.NoSuchMethod", nil, &reply)
	assert.Error(t, err)

	resp, err := http.Get(url + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	cli.AssertExpectations(t)
}

func TestGetBalance(t *testing.T) {
	cli := &mockClient{}
	c := &Critter{cli: cli}
	addr := address.ExecAddress("alice")
	cli.On("GetBalance", addr).Return(&types.Account{Addr: addr, Balance: 5})

	var result interface{}
	require.NoError(t, c.GetBalance(rpctypes.ReqAddr{Addr: addr}, &result))
	assert.Equal(t, uint64(5), result.(*rpctypes.Account).Balance)

	assert.Equal(t, types.ErrInvalidAddress, c.GetBalance(rpctypes.ReqAddr{Addr: "bad"}, &result))
}

func TestQueryTransaction(t *testing.T) {
	cli := &mockClient{}
	c := &Critter{cli: cli}
	tx := types.NewTransaction("none", map[string]int{"ty": 1})
	tx.Sign(types.SECP256K1, util.TestPrivkeyList[1])
	errLog := &types.ReceiptLog{Ty: types.TyLogErr, Log: types.Encode(&types.ReceiptLogErr{Err: "boom"})}
	cli.On("GetTx", tx.Hash()).Return(&types.TxResult{
		Height:  3,
		Index:   1,
		Tx:      tx,
		Receipt: &types.ReceiptData{Ty: types.ExecErr, Logs: []*types.ReceiptLog{errLog}},
	}, nil)
	cli.On("GetTx", mock.Anything).Return(nil, types.ErrHashNotExist)

	var result interface{}
	require.NoError(t, c.QueryTransaction(rpctypes.QueryParm{Hash: common.ToHex(tx.Hash())}, &result))
	detail := result.(*rpctypes.TransactionDetail)
	assert.Equal(t, int64(3), detail.Height)
	assert.Equal(t, "ExecErr", detail.Receipt.TyName)
	assert.Equal(t, "LogErr", detail.Receipt.Logs[0].TyName)
	assert.Equal(t, "unknown", detail.ActionName)
	assert.Equal(t, util.PrivkeyToAddr(util.TestPrivkeyList[1]), detail.Tx.From)

	err := c.QueryTransaction(rpctypes.QueryParm{Hash: "0x00"}, &result)
	assert.True(t, errors.Is(err, types.ErrHashNotExist))
}

func TestGetBlockByHeight(t *testing.T) {
	cli := &mockClient{}
	c := &Critter{cli: cli}
	block := &types.Block{Height: 1, ParentHash: make([]byte, 32)}
	cli.On("GetBlock", int64(1)).Return(&types.BlockDetail{Block: block}, nil)
	cli.On("GetBlock", int64(2)).Return(nil, types.ErrHeightNotExist)

	var result interface{}
	require.NoError(t, c.GetBlockByHeight(rpctypes.ReqHeight{Height: 1}, &result))
	detail := result.(*rpctypes.BlockDetail)
	assert.Equal(t, common.ToHex(block.Hash()), detail.Header.Hash)
	assert.Equal(t, types.ErrHeightNotExist, c.GetBlockByHeight(rpctypes.ReqHeight{Height: 2}, &result))
}

func TestWhitelist(t *testing.T) {
	server, err := NewJSONRPCServer(&types.RPC{Whitelist: []string{"10.0.0.1"}}, &mockClient{})
	require.NoError(t, err)
	assert.True(t, server.checkIPWhitelist("127.0.0.1"))
	assert.True(t, server.checkIPWhitelist("10.0.0.1"))
	assert.False(t, server.checkIPWhitelist("10.0.0.2"))
}
