// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin 注册插件 dapp
package plugin

import (
	_ "github.com/33cn/critter/plugin/dapp/critter" //register critter
)
