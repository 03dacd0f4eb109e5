package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext retrieves the New Relic transaction stored by the
// logging middleware, or nil when tracing is disabled.
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	if txn, ok := c.Get("nr_txn").(*newrelic.Transaction); ok {
		return txn
	}
	return nil
}

// FromContext retrieves the New Relic transaction from a standard context.
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartSegment starts a new segment on the transaction carried by ctx.
// The caller must End() the returned segment; it is nil-safe.
func StartSegment(ctx context.Context, name string) *newrelic.Segment {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// SetTransactionName overrides the transaction name. Safe to call with a
// nil transaction.
func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

// AddTransactionAttribute attaches a custom attribute to the transaction.
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeTransactionError records err against the transaction.
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil {
		txn.NoticeError(err)
	}
}
