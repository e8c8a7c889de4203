// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 基于 go-metrics 的计数器, 定时输出到日志
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/33cn/critter/common/log"
	"github.com/33cn/critter/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "critter metrics")

// Registry 节点使用的 registry
var Registry = go_metrics.DefaultRegistry

// logAdapter 把 go-metrics 的 Printf 接到 log15
type logAdapter struct{}

func (logAdapter) Printf(format string, v ...interface{}) {
	mlog.Info(fmt.Sprintf(format, v...))
}

// StartMetrics 根据配置文件相关参数启动
func StartMetrics(cfg *types.Metrics) {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	duration := time.Duration(cfg.Duration) * time.Second
	mlog.Info("StartMetrics", "duration", duration)
	go go_metrics.Log(Registry, duration, logAdapter{})
}

// Counter 获取或者注册计数器
func Counter(name string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(name, Registry)
}

// Meter 获取或者注册 meter
func Meter(name string) go_metrics.Meter {
	return go_metrics.GetOrRegisterMeter(name, Registry)
}

// Timer 获取或者注册 timer
func Timer(name string) go_metrics.Timer {
	return go_metrics.GetOrRegisterTimer(name, Registry)
}

// Gauge 获取或者注册 gauge
func Gauge(name string) go_metrics.Gauge {
	return go_metrics.GetOrRegisterGauge(name, Registry)
}

// WriteJSON 输出当前所有的指标
func WriteJSON(w io.Writer) {
	go_metrics.WriteJSONOnce(Registry, w)
}
