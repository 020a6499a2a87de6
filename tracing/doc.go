// Package tracing wires the allocation pipeline into OpenTelemetry. It is a
// thin wrapper so that the rest of the code-base can start and end spans
// without importing the upstream packages directly; applications that do not
// need tracing simply never call Init and all spans become no-ops.
package tracing
