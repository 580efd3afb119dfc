package crypto

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this library to OpenTelemetry. With no SDK
// installed the instruments below are no-ops.
const instrumentationName = "github.com/rbaliyan/hybrid-crypto"

// Operation names recorded on metrics and spans.
const (
	opGenerateKeyPair  = "GenerateKeyPair"
	opExportPublicKey  = "ExportPublicKey"
	opExportPrivateKey = "ExportPrivateKey"
	opImportPublicKey  = "ImportPublicKey"
	opImportPrivateKey = "ImportPrivateKey"
	opEncryptRSA       = "EncryptRSA"
	opDecryptRSA       = "DecryptRSA"
	opGenerateAESKey   = "GenerateAESKey"
	opExportAESKey     = "ExportAESKey"
	opImportAESKey     = "ImportAESKey"
	opEncryptAES       = "EncryptAES"
	opDecryptAES       = "DecryptAES"
	opSeal             = "Seal"
	opOpen             = "Open"
)

var (
	tracer = otel.Tracer(instrumentationName)
	meter  = otel.Meter(instrumentationName)

	opCounter  metric.Int64Counter
	opDuration metric.Float64Histogram
)

func init() {
	var err error
	opCounter, err = meter.Int64Counter("crypto.operations",
		metric.WithDescription("Completed operations by name and status."))
	if err != nil {
		otel.Handle(err)
	}
	opDuration, err = meter.Float64Histogram("crypto.operation.duration",
		metric.WithDescription("Operation latency."),
		metric.WithUnit("ms"))
	if err != nil {
		otel.Handle(err)
	}
}

// recordOp records one completed operation on the package meter. It reads
// the caller's error through a pointer so it can sit in a defer ahead of
// the named return being set.
func recordOp(op string, start time.Time, errp *error) {
	recordOpContext(context.Background(), op, start, errp)
}

func recordOpContext(ctx context.Context, op string, start time.Time, errp *error) {
	status := "ok"
	if errp != nil && *errp != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("status", status),
	)
	opCounter.Add(ctx, 1, attrs)
	opDuration.Record(ctx, float64(time.Since(start))/float64(time.Millisecond), attrs)
}

// endSpan closes span, recording err if the operation failed.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
