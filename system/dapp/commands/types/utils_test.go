// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"os"
	"path/filepath"
	"testing"

	rpctypes "github.com/33cn/critter/rpc/types"
	"github.com/33cn/critter/types"
	"github.com/33cn/critter/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	v, err := FormatAmountDisplay2Value("1.5")
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), v)

	v, err = FormatAmountDisplay2Value("0.000000019")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	_, err = FormatAmountDisplay2Value("-1")
	assert.Error(t, err)
	_, err = FormatAmountDisplay2Value("abc")
	assert.Error(t, err)
	_, err = FormatAmountDisplay2Value("1000000001")
	assert.Error(t, err)

	assert.Equal(t, "1.5000", FormatAmountValue2Display(150000000))
	assert.Equal(t, "0.0100", FormatAmountValue2Display(types.Coin/100))
}

func TestDecodeAccount(t *testing.T) {
	acc := DecodeAccount(&rpctypes.Account{Addr: "addr", Balance: 3 * types.Coin})
	assert.Equal(t, "addr", acc.Addr)
	assert.Equal(t, "3.0000", acc.Balance)
}

func TestLoadPrivKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key")
	require.NoError(t, os.WriteFile(path, []byte(util.TestPrivkeyHex[2]+"\n"), 0600))
	priv, err := LoadPrivKey(path)
	require.NoError(t, err)
	assert.Equal(t, util.TestPrivkeyList[2].Bytes(), priv.Bytes())

	_, err = LoadPrivKey(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("not a key"), 0600))
	_, err = LoadPrivKey(bad)
	assert.Error(t, err)
}
