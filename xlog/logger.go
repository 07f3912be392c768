// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

// Package xlog is a small structured logger in the log15 idiom: leveled
// records with key/value context and the caller's location, written
// through a pluggable Handler. The translator uses it to trace the start
// of a translation, each method it lowers, and its completion without
// coupling to any particular sink.
package xlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-stack/stack"
)

// Lvl is a log severity level, ordered from most to least severe.
type Lvl int

const (
	LvlError Lvl = iota
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) String() string {
	switch l {
	case LvlError:
		return "eror"
	case LvlWarn:
		return "warn"
	case LvlInfo:
		return "info"
	case LvlDebug:
		return "dbug"
	case LvlTrace:
		return "trce"
	default:
		return "unkn"
	}
}

// Record is a single log event.
type Record struct {
	Time  time.Time
	Lvl   Lvl
	Msg   string
	Ctx   []interface{}
	Call  stack.Call
}

// Handler processes a Record, typically by writing it to a sink.
type Handler interface {
	Log(r *Record) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(r *Record) error

func (f HandlerFunc) Log(r *Record) error { return f(r) }

// StreamHandler writes records to w in a compact "lvl msg key=val ..." form.
func StreamHandler(w io.Writer) Handler {
	var mu sync.Mutex
	return HandlerFunc(func(r *Record) error {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, "%s[%s] %s", r.Time.Format("15:04:05.000"), r.Lvl, r.Msg)
		for i := 0; i+1 < len(r.Ctx); i += 2 {
			fmt.Fprintf(w, " %v=%v", r.Ctx[i], r.Ctx[i+1])
		}
		fmt.Fprintln(w)
		return nil
	})
}

// DiscardHandler drops every record; the default until a caller opts in.
func DiscardHandler() Handler {
	return HandlerFunc(func(*Record) error { return nil })
}

// LvlFilterHandler wraps h, dropping records more verbose than maxLvl.
func LvlFilterHandler(maxLvl Lvl, h Handler) Handler {
	return HandlerFunc(func(r *Record) error {
		if r.Lvl > maxLvl {
			return nil
		}
		return h.Log(r)
	})
}

// Logger emits Records carrying a fixed context prefix.
type Logger struct {
	ctx []interface{}
	h   *swapHandler
}

type swapHandler struct {
	mu sync.RWMutex
	h  Handler
}

func (s *swapHandler) Log(r *Record) error {
	s.mu.RLock()
	h := s.h
	s.mu.RUnlock()
	return h.Log(r)
}

func (s *swapHandler) Swap(h Handler) {
	s.mu.Lock()
	s.h = h
	s.mu.Unlock()
}

var root = &Logger{h: &swapHandler{h: DiscardHandler()}}

// Root returns the root logger. Call Root().SetHandler to direct output.
func Root() *Logger { return root }

// New returns a logger that prefixes every record with ctx, inheriting the
// root's handler.
func New(ctx ...interface{}) *Logger {
	return &Logger{ctx: ctx, h: root.h}
}

// SetHandler replaces the logger's output handler.
func (l *Logger) SetHandler(h Handler) { l.h.Swap(h) }

func (l *Logger) write(lvl Lvl, msg string, ctx []interface{}) {
	call := stack.Caller(2)
	all := make([]interface{}, 0, len(l.ctx)+len(ctx))
	all = append(all, l.ctx...)
	all = append(all, ctx...)
	l.h.Log(&Record{Time: time.Now(), Lvl: lvl, Msg: msg, Ctx: all, Call: call})
}

func (l *Logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *Logger) Trace(msg string, ctx ...interface{}) { l.write(LvlTrace, msg, ctx) }

// package-level convenience, mirroring Root()'s methods.
func Error(msg string, ctx ...interface{}) { root.write(LvlError, msg, ctx) }
func Warn(msg string, ctx ...interface{})  { root.write(LvlWarn, msg, ctx) }
func Info(msg string, ctx ...interface{})  { root.write(LvlInfo, msg, ctx) }
func Debug(msg string, ctx ...interface{}) { root.write(LvlDebug, msg, ctx) }
func Trace(msg string, ctx ...interface{}) { root.write(LvlTrace, msg, ctx) }

func init() {
	if os.Getenv("E2M_LOG") != "" {
		root.SetHandler(LvlFilterHandler(LvlTrace, StreamHandler(os.Stderr)))
	}
}
