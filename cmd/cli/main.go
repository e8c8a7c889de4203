// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// critter-cli 命令行工具
package main

import (
	_ "github.com/33cn/critter/plugin"
	_ "github.com/33cn/critter/system"
	"github.com/33cn/critter/util/cli"
)

func main() {
	cli.Run("http://localhost:8801")
}
