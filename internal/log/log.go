/*
Copyright 2019 The Ceph-CSI Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log is the diagnostic sink shared by the codec and exchange
// engine (see §5 of the spec: an optional sink may be shared across
// clients, and must synchronize internally if so). klog's verbosity
// gate and global writer already provide that synchronization, so no
// extra locking is needed here.
package log

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"
)

// Verbosity levels used by the codec and exchange engine.
const (
	Default klog.Level = iota + 1
	Extended
	Debug
	Trace
)

type contextKey string

// CtxKey carries a caller-supplied exchange identifier for correlating
// log lines across one request/response round trip.
var CtxKey = contextKey("exchange-id")

func withExchangeID(ctx context.Context, format string) string {
	id := ctx.Value(CtxKey)
	if id == nil {
		return format
	}

	return fmt.Sprintf("exchange %v: %s", id, format)
}

// ErrorLogMsg logs an error unconditionally.
func ErrorLogMsg(message string, args ...interface{}) {
	klog.ErrorDepth(1, fmt.Sprintf(message, args...))
}

// ErrorLog logs an error, attributed to the exchange carried by ctx.
func ErrorLog(ctx context.Context, message string, args ...interface{}) {
	klog.ErrorDepth(1, fmt.Sprintf(withExchangeID(ctx, message), args...))
}

// ExtendedLog logs the outer shape of a request/response exchange:
// operation name, batch item count, result status.
func ExtendedLog(ctx context.Context, message string, args ...interface{}) {
	if klog.V(Extended).Enabled() {
		klog.InfoDepth(1, fmt.Sprintf(withExchangeID(ctx, message), args...))
	}
}

// DebugLog logs per-item codec activity: tag, type, length as items are
// encoded or decoded.
func DebugLog(ctx context.Context, message string, args ...interface{}) {
	if klog.V(Debug).Enabled() {
		klog.InfoDepth(1, fmt.Sprintf(withExchangeID(ctx, message), args...))
	}
}

// TraceLog logs buffer growth and framing byte counts.
func TraceLog(ctx context.Context, message string, args ...interface{}) {
	if klog.V(Trace).Enabled() {
		klog.InfoDepth(1, fmt.Sprintf(withExchangeID(ctx, message), args...))
	}
}
