package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shiharai/internal/core"
)

// Localized messages, matching the alerts of the original UI.
const (
	msgItemFormInvalid   = "すべてのフィールドを入力してください。"
	msgAmountFormInvalid = "項目を選択し、有効な日付と金額を入力してください。"
	msgSaveFailed        = "保存に失敗しました。変更はこのセッション内でのみ有効です。"
)

func contextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	month := monthParam(r.URL.Query().Get("month"))
	p := buildPage(month, s.ledger.Items(), s.ledger.Schedule(month), s.ledger.Summary(month))
	p.Error = r.URL.Query().Get("err")
	p.Notice = r.URL.Query().Get("notice")

	// Edit affordances pre-fill the forms.
	if id := queryID(r, "edit"); id != 0 {
		if item, ok := s.ledger.Item(id); ok {
			p.EditItem = &item
			p.OpenModal = true
		}
	}
	if id := queryID(r, "editAmount"); id != 0 {
		if rec, ok := s.ledger.Amount(month, id); ok {
			p.AmountForm = &amountFormView{ItemID: id, Date: rec.Date, Amount: rec.Amount}
		}
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", p); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleSaveItem(w http.ResponseWriter, r *http.Request) {
	month, ok := s.beginMutation(w, r)
	if !ok {
		return
	}

	day, _ := strconv.Atoi(strings.TrimSpace(r.Form.Get("day")))
	item := core.Item{
		ID:      formID(r, "id"),
		Name:    strings.TrimSpace(r.Form.Get("name")),
		Day:     day,
		Account: strings.TrimSpace(r.Form.Get("account")),
	}

	saved, err := s.ledger.SaveItem(r.Context(), item)
	switch {
	case errors.Is(err, core.ErrEmptyName), errors.Is(err, core.ErrInvalidDay),
		errors.Is(err, core.ErrEmptyAccount), errors.Is(err, core.ErrUnknownItem):
		s.redirect(w, r, month, flash{err: msgItemFormInvalid})
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Item persist error", "error", err, "item_id", saved.ID)
		s.redirect(w, r, month, flash{notice: msgSaveFailed})
		return
	}
	slog.InfoContext(r.Context(), "Item saved",
		"item_id", saved.ID, "name", saved.Name, "day", saved.Day, "account", saved.Account)
	s.redirect(w, r, month, flash{})
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	month, ok := s.beginMutation(w, r)
	if !ok {
		return
	}

	id := formID(r, "id")
	err := s.ledger.DeleteItem(r.Context(), id)
	switch {
	case errors.Is(err, core.ErrUnknownItem):
		// Already gone; nothing to report.
	case err != nil:
		slog.ErrorContext(r.Context(), "Item delete persist error", "error", err, "item_id", id)
		s.redirect(w, r, month, flash{notice: msgSaveFailed})
		return
	default:
		slog.InfoContext(r.Context(), "Item deleted", "item_id", id)
	}
	s.redirect(w, r, month, flash{})
}

func (s *Server) handleSaveAmount(w http.ResponseWriter, r *http.Request) {
	month, ok := s.beginMutation(w, r)
	if !ok {
		return
	}

	itemID := formID(r, "item_id")
	amount, amountErr := core.ParseAmount(r.Form.Get("amount"))
	date := strings.TrimSpace(r.Form.Get("date"))
	if itemID == 0 || amountErr != nil {
		s.redirect(w, r, month, flash{err: msgAmountFormInvalid})
		return
	}

	err := s.ledger.RecordAmount(r.Context(), month, itemID, amount, date)
	switch {
	case errors.Is(err, core.ErrUnknownItem), errors.Is(err, core.ErrEmptyDate):
		s.redirect(w, r, month, flash{err: msgAmountFormInvalid})
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Amount persist error", "error", err, "item_id", itemID, "month", month)
		s.redirect(w, r, month, flash{notice: msgSaveFailed})
		return
	}
	slog.InfoContext(r.Context(), "Amount recorded",
		"item_id", itemID, "month", month, "amount", amount, "date", date)
	s.redirect(w, r, month, flash{})
}

func (s *Server) handleDeleteAmount(w http.ResponseWriter, r *http.Request) {
	month, ok := s.beginMutation(w, r)
	if !ok {
		return
	}

	id := formID(r, "id")
	if err := s.ledger.DeleteAmount(r.Context(), month, id); err != nil {
		slog.ErrorContext(r.Context(), "Amount delete persist error", "error", err, "item_id", id, "month", month)
		s.redirect(w, r, month, flash{notice: msgSaveFailed})
		return
	}
	s.redirect(w, r, month, flash{})
}

func (s *Server) handleTogglePaid(w http.ResponseWriter, r *http.Request) {
	month, ok := s.beginMutation(w, r)
	if !ok {
		return
	}

	id := formID(r, "id")
	paid := r.Form.Get("paid") == "1"
	if err := s.ledger.SetPaid(r.Context(), month, id, paid); err != nil {
		slog.ErrorContext(r.Context(), "Paid toggle persist error", "error", err, "item_id", id, "month", month)
		s.redirect(w, r, month, flash{notice: msgSaveFailed})
		return
	}
	s.redirect(w, r, month, flash{})
}

// beginMutation enforces POST, parses the form and resolves the viewed
// month every mutating handler redirects back to.
func (s *Server) beginMutation(w http.ResponseWriter, r *http.Request) (core.MonthKey, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return "", false
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		return "", false
	}
	return monthParam(r.Form.Get("month")), true
}

type flash struct {
	err    string
	notice string
}

// redirect sends the client back to the month view; the full page
// re-renders all regions from current state.
func (s *Server) redirect(w http.ResponseWriter, r *http.Request, month core.MonthKey, f flash) {
	q := url.Values{}
	q.Set("month", string(month))
	if f.err != "" {
		q.Set("err", f.err)
	}
	if f.notice != "" {
		q.Set("notice", f.notice)
	}
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

// monthParam resolves a "YYYY-MM" parameter, falling back to the current
// month when absent or malformed.
func monthParam(v string) core.MonthKey {
	if v != "" {
		if month, err := core.ParseMonthKey(v); err == nil {
			return month
		}
	}
	return core.MonthKeyOf(time.Now())
}

func formID(r *http.Request, field string) int64 {
	id, _ := strconv.ParseInt(strings.TrimSpace(r.Form.Get(field)), 10, 64)
	return id
}

func queryID(r *http.Request, field string) int64 {
	id, _ := strconv.ParseInt(r.URL.Query().Get(field), 10, 64)
	return id
}
