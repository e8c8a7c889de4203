// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util 节点启动和测试使用的工具函数
package util

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/types"
)

var ulog = log.New("module", "util")

// CheckPathExists 检查文件夹是否存在
func CheckPathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MakeDir 创建目录
func MakeDir(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}

// Pwd 可执行文件所在目录
func Pwd() string {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		panic(err)
	}
	return dir
}

// ResetDatadir 日志和数据库的路径放到 datadir 下面
func ResetDatadir(cfg *types.Config, datadir string) (string, error) {
	// Check in case of paths like "/something/~/something/"
	if len(datadir) >= 2 && datadir[:2] == "~/" {
		usr, err := user.Current()
		if err != nil {
			return "", err
		}
		datadir = filepath.Join(usr.HomeDir, datadir[2:])
	}
	if len(datadir) >= 6 && datadir[:6] == "$TEMP/" {
		dir, err := os.MkdirTemp("", "critterdatadir-")
		if err != nil {
			return "", err
		}
		datadir = filepath.Join(dir, datadir[6:])
	}
	ulog.Info("current user data dir is ", "dir", datadir)
	cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
	cfg.BlockChain.DbPath = filepath.Join(datadir, cfg.BlockChain.DbPath)
	return datadir, nil
}
