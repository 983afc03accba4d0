package memory

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"policywizard/internal/core/tx"
	"policywizard/pkg/logger"
)

var tracer = otel.Tracer("policywizard/memory")

// Compile-time check that TxManager implements tx.Manager interface.
var _ tx.Manager = (*TxManager)(nil)

// TxManager serializes writers on the store's lock.
// A transaction whose fn fails leaves no appended rows behind.
type TxManager struct {
	store *Store
}

// NewTxManager creates a transaction manager over store.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// RunInTransaction implements tx.Manager.
// Nested calls reuse the outer transaction.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, "memory.RunInTransaction",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	snap := m.store.snapshot()
	err := fn(context.WithValue(ctx, txKey{}, true))
	if err != nil {
		m.store.restore(snap)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("tx.rolled_back", true))
		logger.Debug(ctx, "transaction rolled back", "error", err)
		return err
	}

	span.SetAttributes(attribute.Bool("tx.rolled_back", false))
	return nil
}
