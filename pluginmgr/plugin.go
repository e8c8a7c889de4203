// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 插件管理: 每个 dapp 在 init 中注册自己的执行器和命令行
package pluginmgr

import (
	"github.com/spf13/cobra"
)

// Plugin 一个dapp对节点暴露的两个入口: 执行器和命令行
type Plugin interface {
	GetName() string
	GetExecutorName() string
	// sub 为 [exec.sub] 下全部子配置, 插件自己取用
	InitExec(sub map[string][]byte) error
	AddCmd(rootCmd *cobra.Command)
}

// PluginBase 大部分dapp直接用这个结构注册
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, sub []byte) error
	Cmd      func() *cobra.Command
}

// GetName 插件名
func (p *PluginBase) GetName() string { return p.Name }

// GetExecutorName 执行器名
func (p *PluginBase) GetExecutorName() string { return p.ExecName }

// InitExec 没有子配置时传 nil, 由执行器使用默认值
func (p *PluginBase) InitExec(sub map[string][]byte) error {
	if p.Exec == nil {
		return nil
	}
	return p.Exec(p.ExecName, sub[p.ExecName])
}

// AddCmd 没有命令行的插件直接跳过
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd == nil {
		return
	}
	if cmd := p.Cmd(); cmd != nil {
		rootCmd.AddCommand(cmd)
	}
}
