// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/33cn/critter/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetDatadir(t *testing.T) {
	cfg, _, err := types.InitCfgString("")
	require.NoError(t, err)
	logFile := cfg.Log.LogFile
	dbPath := cfg.BlockChain.DbPath

	dir, err := ResetDatadir(cfg, "/data/critter")
	require.NoError(t, err)
	assert.Equal(t, "/data/critter", dir)
	assert.Equal(t, filepath.Join(dir, logFile), cfg.Log.LogFile)
	assert.Equal(t, filepath.Join(dir, dbPath), cfg.BlockChain.DbPath)

	cfg, _, err = types.InitCfgString("")
	require.NoError(t, err)
	dir, err = ResetDatadir(cfg, "$TEMP/node")
	require.NoError(t, err)
	defer os.RemoveAll(filepath.Dir(dir))
	assert.True(t, strings.HasSuffix(dir, "node"))
	assert.True(t, CheckPathExists(filepath.Dir(dir)))
}

func TestMakeDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.False(t, CheckPathExists(dir))
	require.NoError(t, MakeDir(dir))
	assert.True(t, CheckPathExists(dir))
}
