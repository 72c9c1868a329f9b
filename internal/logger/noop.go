package logger

import (
	"context"

	"github.com/alexisbeaulieu97/proppanel/internal/ports"
)

// NoOp discards every entry.
type NoOp struct{}

// NewNoOp returns a logger that discards everything.
func NewNoOp() ports.Logger { return NoOp{} }

func (NoOp) Debug(context.Context, string, ...interface{}) {}
func (NoOp) Info(context.Context, string, ...interface{})  {}
func (NoOp) Warn(context.Context, string, ...interface{})  {}
func (NoOp) Error(context.Context, string, ...interface{}) {}

// With returns the same no-op logger.
func (n NoOp) With(...interface{}) ports.Logger { return n }
