// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recycler

import (
	"testing"

	pty "github.com/33cn/critter/plugin/dapp/critter/types"
	"github.com/33cn/critter/types"
	"github.com/33cn/critter/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var recyclerAddr = util.PrivkeyToAddr(util.TestPrivkeyList[0])

type mockClient struct {
	mock.Mock
}

func (m *mockClient) SendTx(tx *types.Transaction) ([]byte, error) {
	ret := m.Called(tx)
	return ret.Get(0).([]byte), ret.Error(1)
}

func (m *mockClient) LastHeader() (*types.Header, error) {
	ret := m.Called()
	return ret.Get(0).(*types.Header), ret.Error(1)
}

func (m *mockClient) GetBalance(addr string) *types.Account {
	return m.Called(addr).Get(0).(*types.Account)
}

func (m *mockClient) Query(execer, funcName string, params []byte) (types.Message, error) {
	ret := m.Called(execer, funcName, params)
	return ret.Get(0), ret.Error(1)
}

func newConfig() *pty.Config {
	cfg := pty.DefaultConfig()
	cfg.Recycler = &pty.RecyclerConfig{Enable: true, Spec: pty.DefaultRecyclerSpec, PrivKey: util.TestPrivkeyHex[0], Duration: 10}
	return cfg
}

func coveredGame(id string, minEnding int64) *pty.Game {
	g := &pty.Game{GameID: id, MinEndingTick: minEnding, MinBet: pty.DefaultMinBet, CreateIndex: id}
	for i := range g.BetsPerNumber {
		g.BetsPerNumber[i] = pty.DefaultMinBet
	}
	return g
}

func actionOf(t *testing.T, tx *types.Transaction) *pty.CritterAction {
	var action pty.CritterAction
	require.NoError(t, types.Decode(tx.Payload, &action))
	return &action
}

func TestNew(t *testing.T) {
	_, err := New(&mockClient{}, pty.DefaultConfig())
	assert.Error(t, err)
	cfg := newConfig()
	cfg.Recycler.PrivKey = ""
	_, err = New(&mockClient{}, cfg)
	assert.Error(t, err)
	cfg.Recycler.PrivKey = "0xzz"
	_, err = New(&mockClient{}, cfg)
	assert.Error(t, err)
	r, err := New(&mockClient{}, newConfig())
	require.NoError(t, err)
	require.NoError(t, r.Start())
	r.Stop()
}

func TestCreateWhenNoPublicGame(t *testing.T) {
	cli := &mockClient{}
	private := coveredGame("private", 0)
	private.Participants = []string{"someone"}
	cli.On("LastHeader").Return(&types.Header{Height: 5}, nil)
	cli.On("Query", pty.CritterX, "ListGames", mock.Anything).Return(&pty.ReplyGameList{Games: []*pty.Game{private}}, nil)
	var sent []*types.Transaction
	cli.On("SendTx", mock.Anything).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(0).(*types.Transaction))
	}).Return([]byte("hash"), nil)

	r, err := New(cli, newConfig())
	require.NoError(t, err)
	require.NoError(t, r.RunOnce())
	require.Len(t, sent, 1)
	action := actionOf(t, sent[0])
	assert.Equal(t, int32(pty.CritterActionCreate), action.Ty)
	assert.Equal(t, int64(10), action.Create.Duration)
	assert.Empty(t, action.Create.Participants)
	assert.NotEmpty(t, action.Create.GameID)
	assert.Equal(t, recyclerAddr, sent[0].From())
	assert.NoError(t, sent[0].Check())

	// 同一个高度不重复创建
	require.NoError(t, r.RunOnce())
	assert.Len(t, sent, 1)
	cli.AssertNotCalled(t, "GetBalance", mock.Anything)
}

func TestPokeCoveredGame(t *testing.T) {
	cli := &mockClient{}
	games := []*pty.Game{
		coveredGame("due", 6),
		coveredGame("early", 100),
		{GameID: "uncovered", MinBet: pty.DefaultMinBet},
	}
	cli.On("LastHeader").Return(&types.Header{Height: 5}, nil)
	cli.On("Query", pty.CritterX, "ListGames", mock.Anything).Return(&pty.ReplyGameList{Games: games}, nil)
	cli.On("GetBalance", recyclerAddr).Return(&types.Account{Addr: recyclerAddr, Balance: types.Coin})
	var sent []*types.Transaction
	cli.On("SendTx", mock.Anything).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(0).(*types.Transaction))
	}).Return([]byte("hash"), nil)

	r, err := New(cli, newConfig())
	require.NoError(t, err)
	require.NoError(t, r.RunOnce())
	require.Len(t, sent, 1)
	action := actionOf(t, sent[0])
	assert.Equal(t, int32(pty.CritterActionBet), action.Ty)
	assert.Equal(t, "due", action.Bet.GameID)
	assert.Equal(t, pty.DefaultMinBet, action.Bet.Value)
	assert.True(t, action.Bet.Number >= 1 && action.Bet.Number <= pty.NumberCount)
	assert.Equal(t, recyclerAddr, sent[0].From())

	require.NoError(t, r.RunOnce())
	assert.Len(t, sent, 1)
}

func TestPokeNoBalance(t *testing.T) {
	cli := &mockClient{}
	cli.On("LastHeader").Return(&types.Header{Height: 5}, nil)
	cli.On("Query", pty.CritterX, "ListGames", mock.Anything).Return(&pty.ReplyGameList{Games: []*pty.Game{coveredGame("due", 0)}}, nil)
	cli.On("GetBalance", recyclerAddr).Return(&types.Account{Addr: recyclerAddr})

	r, err := New(cli, newConfig())
	require.NoError(t, err)
	require.NoError(t, r.RunOnce())
	cli.AssertNotCalled(t, "SendTx", mock.Anything)
	assert.Empty(t, r.poked)
}

func TestQueryError(t *testing.T) {
	cli := &mockClient{}
	cli.On("LastHeader").Return(&types.Header{Height: 5}, nil)
	cli.On("Query", pty.CritterX, "ListGames", mock.Anything).Return(nil, types.ErrNotFound)
	r, err := New(cli, newConfig())
	require.NoError(t, err)
	assert.Equal(t, types.ErrNotFound, r.RunOnce())
}
