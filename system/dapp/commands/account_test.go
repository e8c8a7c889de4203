// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"path/filepath"
	"testing"

	"github.com/33cn/critter/common/address"
	commandtypes "github.com/33cn/critter/system/dapp/commands/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	addr, err := writeKeyFile(path)
	require.NoError(t, err)
	assert.NoError(t, address.CheckAddress(addr))

	priv, err := commandtypes.LoadPrivKey(path)
	require.NoError(t, err)
	assert.Equal(t, addr, address.PubKeyToAddr(priv.PubKey().Bytes()))

	// 已有文件不覆盖
	_, err = writeKeyFile(path)
	assert.Error(t, err)
}

func TestTransferFlags(t *testing.T) {
	cmd := TransferCmd()
	assert.NotNil(t, cmd.Flags().Lookup("key"))
	assert.Nil(t, cmd.Flags().Lookup("from"))
}
