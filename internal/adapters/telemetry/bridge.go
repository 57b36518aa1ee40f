package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/setupjs/internal/ui/style"
)

// Bridge implements sdktrace.SpanProcessor and maps root spans onto log groups.
// CI log groups do not nest, so child spans are not rendered.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart opens a log group for a root span.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	if trace.SpanFromContext(parent).SpanContext().IsValid() {
		return
	}
	b.logger.Group(s.Name())
}

// OnEnd logs the outcome of a root span and closes its group.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() || s.Parent().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		b.logger.Debug(fmt.Sprintf("%s %s: %s (%s)", style.Cross, s.Name(), desc, elapsed))
	} else {
		b.logger.Debug(fmt.Sprintf("%s %s (%s)", style.Check, s.Name(), elapsed))
	}
	b.logger.EndGroup()
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
