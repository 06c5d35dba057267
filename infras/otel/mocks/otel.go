// Package mocks provides an otel.Otel for tests. Scopes wrap the non-recording span
// found in the context, so nothing is exported.
package mocks

import (
	"context"
	"kmc/infras/otel"

	"go.opentelemetry.io/otel/trace"
)

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, otel.NewScope(trace.SpanFromContext(ctx))
}

func NewOtel() otel.Otel {
	return noopOtel{}
}
