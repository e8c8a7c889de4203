// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package version 节点版本
package version

import "sync"

const version = "1.0.0"

var (
	mu         sync.RWMutex
	appVersion = version
)

// GetVersion 节点版本
func GetVersion() string {
	return version
}

// SetAppVersion 配置文件中的应用版本, 空字符串不修改
func SetAppVersion(v string) {
	if v == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	appVersion = v
}

// GetAppVersion 应用版本
func GetAppVersion() string {
	mu.RLock()
	defer mu.RUnlock()
	return appVersion
}
