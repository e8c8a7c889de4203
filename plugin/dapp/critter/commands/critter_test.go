// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAddrs(t *testing.T) {
	assert.Nil(t, splitAddrs(""))
	assert.Equal(t, []string{"a", "b"}, splitAddrs(" a, ,b,"))
}

func TestCritterCmd(t *testing.T) {
	cmd := CritterCmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"create", "bet", "claim", "game", "bet_info", "draw", "prize", "ended", "list", "bets"}, names)

	create, _, err := cmd.Find([]string{"create"})
	assert.NoError(t, err)
	assert.NotNil(t, create.Flags().Lookup("participants"))
	for _, name := range []string{"create", "bet", "claim"} {
		c, _, err := cmd.Find([]string{name})
		assert.NoError(t, err)
		assert.NotNil(t, c.Flags().Lookup("key"), name)
		assert.Nil(t, c.Flags().Lookup("from"), name)
	}
}
