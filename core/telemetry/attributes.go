package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/nbardi/namada/core/queries"

// Tracer returns the tracer that query handling spans are started from.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// QueryPath tags a span with the raw request path.
func QueryPath(path string) attribute.KeyValue {
	return attribute.String("query.path", path)
}

// RouterName tags a span with the router that handled the request.
func RouterName(name string) attribute.KeyValue {
	return attribute.String("query.router", name)
}

// HandlerName tags a span with the resolved handler.
func HandlerName(name string) attribute.KeyValue {
	return attribute.String("query.handler", name)
}

// QueryHeight tags a span with the requested block height.
func QueryHeight(height uint64) attribute.KeyValue {
	return attribute.Int64("query.height", int64(height))
}

// QueryProve tags a span with the proof flag of the request.
func QueryProve(prove bool) attribute.KeyValue {
	return attribute.Bool("query.prove", prove)
}
