// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package consensus 出块模块

节点只支持 solo 模式: 定时从交易池取交易打包, 交给 blockchain 执行并保存.
区块高度就是执行器看到的逻辑时钟, 即使没有交易也会出块.
*/
package consensus
