// Package store persists the two application documents: the registered
// payment items and the per-month amount records. Each document is a
// whole JSON blob saved under a fixed key; every save overwrites the
// previous content.
package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"shiharai/internal/core"
)

// Fixed document keys, matching the persisted document names.
const (
	KeyItems   = "paymentItems"
	KeyAmounts = "paymentAmounts"
)

// Store loads and saves the two documents. A missing or corrupt document
// never fails a load; it decodes to empty state so startup always succeeds.
type Store interface {
	Load(ctx context.Context) ([]core.Item, core.Amounts, error)
	SaveItems(ctx context.Context, items []core.Item) error
	SaveAmounts(ctx context.Context, amounts core.Amounts) error
	Close() error
}

// decodeItems parses the items document, falling back to an empty
// collection when the payload is absent or malformed.
func decodeItems(ctx context.Context, data []byte) []core.Item {
	if len(data) == 0 {
		return nil
	}
	var items []core.Item
	if err := json.Unmarshal(data, &items); err != nil {
		slog.WarnContext(ctx, "Corrupt items document, starting empty", "error", err)
		return nil
	}
	return items
}

// decodeAmounts parses the amounts document with the same fail-soft rule.
func decodeAmounts(ctx context.Context, data []byte) core.Amounts {
	amounts := core.Amounts{}
	if len(data) == 0 {
		return amounts
	}
	if err := json.Unmarshal(data, &amounts); err != nil {
		slog.WarnContext(ctx, "Corrupt amounts document, starting empty", "error", err)
		return core.Amounts{}
	}
	return amounts
}
