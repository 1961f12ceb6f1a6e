package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"shiharai/internal/core"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shiharai.db")
	st, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer st.Close()
	ctx := context.Background()

	items, amounts, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("initial load: %v", err)
	}
	if len(items) != 0 || len(amounts) != 0 {
		t.Fatalf("expected empty state, got %v / %v", items, amounts)
	}

	wantItems := []core.Item{{ID: 42, Name: "家賃", Day: 1, Account: "A銀行"}}
	wantAmounts := core.Amounts{"2024-03": {42: {Amount: 80000, Date: "2024-03-01"}}}
	if err := st.SaveItems(ctx, wantItems); err != nil {
		t.Fatalf("save items: %v", err)
	}
	if err := st.SaveAmounts(ctx, wantAmounts); err != nil {
		t.Fatalf("save amounts: %v", err)
	}

	// Overwrite semantics: a second save replaces the document.
	wantItems = append(wantItems, core.Item{ID: 43, Name: "電気", Day: 25, Account: "B銀行"})
	if err := st.SaveItems(ctx, wantItems); err != nil {
		t.Fatalf("resave items: %v", err)
	}

	gotItems, gotAmounts, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(gotItems, wantItems) {
		t.Fatalf("items round trip: got %v", gotItems)
	}
	if !reflect.DeepEqual(gotAmounts, wantAmounts) {
		t.Fatalf("amounts round trip: got %v", gotAmounts)
	}
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	if _, err := Open("redis", "", ""); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
