// Package middleware provides framework-free helpers for using godeco
// codecs at HTTP JSON boundaries.
package middleware

import (
	"context"
	"net/http"

	godeco "github.com/reoring/godeco"
	jsonsource "github.com/reoring/godeco/source/json"
)

// ctxKeyDecoded is a typed context key for storing a decoded value.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyDecoded[T any] struct{}

// ContextWithDecoded attaches a decoded value to the context.
func ContextWithDecoded[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyDecoded[T]{}, v)
}

// DecodedFromContext retrieves a decoded value from context.
func DecodedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyDecoded[T]{}).(T)
	return v, ok
}

// DecodeRequest reads the request body as JSON and runs the codec over the
// raw value. A body that is not JSON at all is reported as a root-level
// DecodeError, so callers handle exactly one failure shape.
func DecodeRequest[A any](r *http.Request, c godeco.Codec[any, A]) (A, godeco.DecodeError) {
	var zero A
	raw, err := jsonsource.DecodeReader(r.Body)
	if err != nil {
		return zero, godeco.RootError("Invalid JSON: " + err.Error())
	}
	v := c.Decode(raw)
	if a, ok := v.Get(); ok {
		return a, nil
	}
	fail, _ := v.Failure()
	return zero, fail
}

// ErrorPayload shapes a DecodeError for a JSON error response. The paths
// are already display-ready, so UIs can map them straight onto fields.
func ErrorPayload(e godeco.DecodeError) map[string]any {
	return map[string]any{"errors": e}
}
