// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock(t *testing.T) {
	b := &Block{}
	h0 := b.Hash()
	assert.Len(t, h0, 32)
	assert.Equal(t, h0, b.Hash())

	b.Height = 10
	assert.NotEqual(t, h0, b.Hash())

	b.Txs = append(b.Txs, &Transaction{Execer: "critter", Payload: []byte("{}")})
	header := b.GetHeader()
	assert.Equal(t, int64(1), header.TxCount)
	assert.Equal(t, int64(10), header.Height)
	assert.Nil(t, header.Hash)
}

func TestCalcTxRoot(t *testing.T) {
	tx1 := &Transaction{Execer: "critter", Payload: []byte("1")}
	tx2 := &Transaction{Execer: "critter", Payload: []byte("2")}
	r1 := CalcTxRoot([]*Transaction{tx1, tx2})
	r2 := CalcTxRoot([]*Transaction{tx2, tx1})
	assert.NotEqual(t, r1, r2)
	assert.Equal(t, r1, CalcTxRoot([]*Transaction{tx1, tx2}))
}
