// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListHelperPaging(t *testing.T) {
	mem, _ := NewGoMemDB("list", "", 0)
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("game-%02d", i)
		mem.Set([]byte(key), []byte(key))
	}
	list := NewListHelper(mem)

	page1 := list.List([]byte("game-"), nil, 4, ListASC)
	assert.Len(t, page1, 4)
	page2 := list.List([]byte("game-"), page1[3], 4, ListASC)
	assert.Equal(t, [][]byte{[]byte("game-04"), []byte("game-05"), []byte("game-06"), []byte("game-07")}, page2)
	page3 := list.List([]byte("game-"), page2[3], 4, ListASC)
	assert.Len(t, page3, 2)

	desc := list.List([]byte("game-"), nil, 3, ListDESC)
	assert.Equal(t, [][]byte{[]byte("game-09"), []byte("game-08"), []byte("game-07")}, desc)

	assert.Nil(t, list.List([]byte("nothing-"), nil, 3, ListDESC))
	assert.Nil(t, list.List([]byte("game-"), []byte("game-99"), 3, ListASC))
}
