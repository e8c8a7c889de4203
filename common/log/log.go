// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 节点日志，控制台输出加可滚动的文件输出
package log

import (
	"io"
	"os"
	"runtime"

	"github.com/33cn/critter/types"
	log15 "github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "logs/critter.log"

// 未配置或者配置错误时统一按error处理
var defaultLevel = log15.LvlError

// 没有调用 SetLogLevel/SetFileLog 时(比如单元测试)也只输出 error
func init() {
	log15.Root().SetHandler(console(os.Stdout, defaultLevel.String()))
}

// New 在root logger上挂模块上下文
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}

// SetLogLevel 只保留控制台输出，并设置级别
func SetLogLevel(level string) {
	log15.Root().SetHandler(console(os.Stdout, level))
}

// SetFileLog 按配置同时输出到控制台和文件，LogFile为空时只输出到控制台
func SetFileLog(cfg *types.Log) {
	if cfg == nil {
		cfg = &types.Log{LogFile: defaultLogFile}
	}
	fillDefaultValue(cfg)
	handlers := []log15.Handler{console(os.Stdout, cfg.LogConsoleLevel)}
	if cfg.LogFile != "" {
		handlers = append(handlers, file(cfg))
	}
	log15.Root().SetHandler(log15.MultiHandler(handlers...))
}

func fillDefaultValue(cfg *types.Log) {
	if cfg.Loglevel == "" {
		cfg.Loglevel = defaultLevel.String()
	}
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = defaultLevel.String()
	}
}

func console(w io.Writer, level string) log15.Handler {
	format := log15.TerminalFormat()
	// windows控制台不支持颜色
	if runtime.GOOS == "windows" {
		format = log15.LogfmtFormat()
	}
	return log15.LvlFilterHandler(getLevel(level), log15.StreamHandler(w, format))
}

func file(cfg *types.Log) log15.Handler {
	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
	h := log15.LvlFilterHandler(getLevel(cfg.Loglevel), log15.StreamHandler(w, log15.LogfmtFormat()))
	if cfg.CallerFile {
		h = log15.CallerFileHandler(h)
	}
	if cfg.CallerFunction {
		h = log15.CallerFuncHandler(h)
	}
	return h
}

func getLevel(s string) log15.Lvl {
	if lvl, err := log15.LvlFromString(s); err == nil {
		return lvl
	}
	return defaultLevel
}
