// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "vizplot",
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or a default
// stderr logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return newLogger(os.Stderr, log.InfoLevel)
}

// commandLogger returns the logger attached to cmd's context, or one
// writing to cmd's error output if cmd failed before it was set up.
func commandLogger(cmd *cobra.Command) *log.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return newLogger(cmd.ErrOrStderr(), log.InfoLevel)
}

// timed logs msg at debug level with the time since start.
func timed(l *log.Logger, start time.Time, msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(start).Round(time.Millisecond))
	l.Debug(msg, keyvals...)
}
