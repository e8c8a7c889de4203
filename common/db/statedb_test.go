// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDBCommit(t *testing.T) {
	mem, _ := NewGoMemDB("state", "", 0)
	mem.Set([]byte("k1"), []byte("v1"))

	state := NewStateDB(mem)
	v, err := state.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	state.Set([]byte("k1"), []byte("v2"))
	state.Set([]byte("k2"), []byte("v3"))
	v, _ = state.Get([]byte("k1"))
	assert.Equal(t, []byte("v2"), v)

	// 未提交之前底层数据库不变
	v, _ = mem.Get([]byte("k1"))
	assert.Equal(t, []byte("v1"), v)
	assert.Equal(t, []string{"k1", "k2"}, state.Keys())

	require.NoError(t, state.Commit())
	v, _ = mem.Get([]byte("k1"))
	assert.Equal(t, []byte("v2"), v)
	v, _ = mem.Get([]byte("k2"))
	assert.Equal(t, []byte("v3"), v)
	assert.Empty(t, state.Keys())
}

func TestStateDBRollback(t *testing.T) {
	mem, _ := NewGoMemDB("state", "", 0)
	state := NewStateDB(mem)
	state.Set([]byte("k1"), []byte("v1"))
	state.Rollback()
	require.NoError(t, state.Commit())

	_, err := mem.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestStateDBDelete(t *testing.T) {
	mem, _ := NewGoMemDB("state", "", 0)
	mem.Set([]byte("k1"), []byte("v1"))
	state := NewStateDB(mem)
	state.Set([]byte("k1"), nil)
	_, err := state.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
	require.NoError(t, state.Commit())
	_, err = mem.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestStateDBList(t *testing.T) {
	mem, _ := NewGoMemDB("state", "", 0)
	mem.Set([]byte("p-1"), []byte("1"))
	mem.Set([]byte("p-2"), []byte("2"))
	state := NewStateDB(mem)

	values, err := state.List([]byte("p-"), nil, 10, ListASC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("1"), []byte("2")}, values)

	_, err = state.List([]byte("q-"), nil, 10, ListASC)
	assert.Equal(t, ErrNotFoundInDb, err)
}
