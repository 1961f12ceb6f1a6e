// Package services holds the Ledger, the single owner of application
// state. State is loaded once at startup and persisted synchronously
// after every mutation; there is no write batching.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"shiharai/internal/core"
	"shiharai/internal/store"
)

// Ledger guards the items and amounts collections behind one mutex.
// Persistence failures do not roll back the in-memory mutation; memory
// stays authoritative for the rest of the session and the error is
// surfaced to the caller as a notice.
type Ledger struct {
	mu      sync.Mutex
	store   store.Store
	items   []core.Item
	amounts core.Amounts
	now     func() time.Time
}

func NewLedger(st store.Store) *Ledger {
	return &Ledger{
		store:   st,
		amounts: core.Amounts{},
		now:     time.Now,
	}
}

// Load pulls both documents from the store. Called once at startup.
func (l *Ledger) Load(ctx context.Context) error {
	items, amounts, err := l.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger state: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = items
	l.amounts = amounts
	if l.amounts == nil {
		l.amounts = core.Amounts{}
	}
	slog.InfoContext(ctx, "Ledger state loaded",
		"items", len(l.items), "months", len(l.amounts))
	return nil
}

// SaveItem creates a new item when the ID is zero, otherwise updates the
// matching item in place. The ID never changes on update.
func (l *Ledger) SaveItem(ctx context.Context, item core.Item) (core.Item, error) {
	if err := item.Validate(); err != nil {
		return core.Item{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if item.ID == 0 {
		item.ID = l.newIDLocked()
		l.items = append(l.items, item)
	} else {
		idx := l.indexOfLocked(item.ID)
		if idx < 0 {
			return core.Item{}, core.ErrUnknownItem
		}
		l.items[idx] = item
	}

	if err := l.store.SaveItems(ctx, l.items); err != nil {
		return item, fmt.Errorf("persist items: %w", err)
	}
	return item, nil
}

// DeleteItem removes an item and prunes its amount records from every
// month. Both documents are persisted.
func (l *Ledger) DeleteItem(ctx context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOfLocked(id)
	if idx < 0 {
		return core.ErrUnknownItem
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	for month := range l.amounts {
		delete(l.amounts[month], id)
	}

	if err := l.store.SaveItems(ctx, l.items); err != nil {
		return fmt.Errorf("persist items: %w", err)
	}
	if err := l.store.SaveAmounts(ctx, l.amounts); err != nil {
		return fmt.Errorf("persist amounts: %w", err)
	}
	return nil
}

// RecordAmount writes the month's record for an item, overwriting any
// previous one. Paid always resets to false, also on re-submission.
func (l *Ledger) RecordAmount(ctx context.Context, month core.MonthKey, itemID int64, amount int64, date string) error {
	rec := core.AmountRecord{Amount: amount, Date: date}
	if err := rec.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexOfLocked(itemID) < 0 {
		return core.ErrUnknownItem
	}
	if l.amounts[month] == nil {
		l.amounts[month] = map[int64]core.AmountRecord{}
	}
	l.amounts[month][itemID] = rec

	if err := l.store.SaveAmounts(ctx, l.amounts); err != nil {
		return fmt.Errorf("persist amounts: %w", err)
	}
	return nil
}

// DeleteAmount removes just that month's record for an item. Nothing
// happens when no record exists.
func (l *Ledger) DeleteAmount(ctx context.Context, month core.MonthKey, itemID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.amounts[month][itemID]; !ok {
		return nil
	}
	delete(l.amounts[month], itemID)

	if err := l.store.SaveAmounts(ctx, l.amounts); err != nil {
		return fmt.Errorf("persist amounts: %w", err)
	}
	return nil
}

// SetPaid flips the paid flag on an existing record. A toggle on a
// nonexistent record is silently ignored.
func (l *Ledger) SetPaid(ctx context.Context, month core.MonthKey, itemID int64, paid bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.amounts[month][itemID]
	if !ok {
		slog.DebugContext(ctx, "Paid toggle on missing record ignored",
			"month", month, "item_id", itemID)
		return nil
	}
	rec.Paid = paid
	l.amounts[month][itemID] = rec

	if err := l.store.SaveAmounts(ctx, l.amounts); err != nil {
		return fmt.Errorf("persist amounts: %w", err)
	}
	return nil
}

// Items returns a copy of the items collection in insertion order.
func (l *Ledger) Items() []core.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Item(nil), l.items...)
}

// Item looks up a single item by id.
func (l *Ledger) Item(id int64) (core.Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOfLocked(id)
	if idx < 0 {
		return core.Item{}, false
	}
	return l.items[idx], true
}

// Amount looks up one month's record for an item.
func (l *Ledger) Amount(month core.MonthKey, itemID int64) (core.AmountRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.amounts[month][itemID]
	return rec, ok
}

// Schedule derives the joined, date-sorted view for one month.
func (l *Ledger) Schedule(month core.MonthKey) []core.ScheduleEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return core.MonthlySchedule(l.items, l.amounts, month)
}

// Summary derives the unpaid per-account summary for one month.
func (l *Ledger) Summary(month core.MonthKey) []core.AccountSummary {
	l.mu.Lock()
	defer l.mu.Unlock()
	return core.SummaryByAccount(core.MonthlySchedule(l.items, l.amounts, month))
}

func (l *Ledger) indexOfLocked(id int64) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// newIDLocked generates a creation-timestamp id, bumping past any
// collision so ids stay unique even for same-millisecond creations.
func (l *Ledger) newIDLocked() int64 {
	id := l.now().UnixMilli()
	for l.indexOfLocked(id) >= 0 {
		id++
	}
	return id
}
