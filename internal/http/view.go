package http

import (
	"fmt"
	"sort"

	"shiharai/internal/core"
)

// View models for the five page regions. Building them is pure so the
// render mapping is testable without templates.
type (
	itemRow struct {
		ID      int64
		Name    string
		Day     int
		Account string
	}

	itemOption struct {
		ID    int64
		Day   int
		Label string
	}

	scheduleRow struct {
		ID      int64
		Day     int
		Name    string
		Account string
		Amount  string
		Paid    bool
	}

	summaryLine struct {
		Day    int
		Amount string
		Name   string
	}

	accountBlock struct {
		Account string
		Lines   []summaryLine
		Total   string
		DueBy   int
	}

	amountFormView struct {
		ItemID int64
		Date   string
		Amount int64
	}

	page struct {
		Month         core.MonthKey
		MonthLabel    string
		PrevMonth     core.MonthKey
		NextMonth     core.MonthKey
		Items         []itemRow
		Options       []itemOption
		Schedule      []scheduleRow
		ScheduleEmpty string
		Summary       []accountBlock
		SummaryEmpty  string
		Error         string
		Notice        string
		EditItem      *core.Item
		AmountForm    *amountFormView
		OpenModal     bool
	}
)

// buildPage maps domain state to the page view. The item list and the
// selector are day-sorted on a copy; the underlying collection keeps its
// insertion order.
func buildPage(month core.MonthKey, items []core.Item, schedule []core.ScheduleEntry, summary []core.AccountSummary) page {
	p := page{
		Month:         month,
		MonthLabel:    month.Label(),
		PrevMonth:     month.Prev(),
		NextMonth:     month.Next(),
		ScheduleEmpty: fmt.Sprintf("%d月の支払予定はありません。", month.Month()),
		SummaryEmpty:  fmt.Sprintf("%d月の未払いの予定はありません。", month.Month()),
	}

	sorted := append([]core.Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })
	for _, it := range sorted {
		p.Items = append(p.Items, itemRow{ID: it.ID, Name: it.Name, Day: it.Day, Account: it.Account})
		p.Options = append(p.Options, itemOption{
			ID:    it.ID,
			Day:   it.Day,
			Label: fmt.Sprintf("%s (毎月%d日)", it.Name, it.Day),
		})
	}

	for _, e := range schedule {
		p.Schedule = append(p.Schedule, scheduleRow{
			ID:      e.ID,
			Day:     e.BillingDay(),
			Name:    e.Name,
			Account: e.Account,
			Amount:  core.FormatYen(e.Amount),
			Paid:    e.Paid,
		})
	}

	for _, s := range summary {
		blk := accountBlock{
			Account: s.Account,
			Total:   core.FormatYen(s.Total),
			DueBy:   s.DueBy,
		}
		for _, e := range s.Entries {
			blk.Lines = append(blk.Lines, summaryLine{
				Day:    e.BillingDay(),
				Amount: core.FormatYen(e.Amount),
				Name:   e.Name,
			})
		}
		p.Summary = append(p.Summary, blk)
	}

	return p
}
