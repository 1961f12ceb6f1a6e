package core

import (
	"sort"
	"time"
)

// ScheduleEntry is one item joined with its amount record for a month.
type ScheduleEntry struct {
	ID      int64
	Name    string
	Account string
	Day     int
	Amount  int64
	Date    string
	Paid    bool
}

// BillingDay extracts the day of month from the entry's billing date.
func (e ScheduleEntry) BillingDay() int {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return 0
	}
	return t.Day()
}

// MonthlySchedule joins items with their amount records for one month.
// Items without a record for that month are excluded, not shown as zero.
// Entries are ordered by billing date ascending; ties keep the order of
// the items collection.
func MonthlySchedule(items []Item, amounts Amounts, month MonthKey) []ScheduleEntry {
	recs := amounts[month]
	var schedule []ScheduleEntry
	for _, it := range items {
		rec, ok := recs[it.ID]
		if !ok {
			continue
		}
		schedule = append(schedule, ScheduleEntry{
			ID:      it.ID,
			Name:    it.Name,
			Account: it.Account,
			Day:     it.Day,
			Amount:  rec.Amount,
			Date:    rec.Date,
			Paid:    rec.Paid,
		})
	}
	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].Date < schedule[j].Date
	})
	return schedule
}

// AccountSummary aggregates a month's unpaid entries for one account.
// DueBy is the billing day of the last entry in the group's order. That is
// the last scheduled payment for the account, not necessarily the latest
// date; keep it that way.
type AccountSummary struct {
	Account string
	Entries []ScheduleEntry
	Total   int64
	DueBy   int
}

// SummaryByAccount groups the unpaid part of a schedule by account,
// preserving first-seen account order. Paid entries do not contribute.
func SummaryByAccount(schedule []ScheduleEntry) []AccountSummary {
	index := map[string]int{}
	var out []AccountSummary
	for _, e := range schedule {
		if e.Paid {
			continue
		}
		i, ok := index[e.Account]
		if !ok {
			i = len(out)
			index[e.Account] = i
			out = append(out, AccountSummary{Account: e.Account})
		}
		out[i].Entries = append(out[i].Entries, e)
		out[i].Total += e.Amount
	}
	for i := range out {
		last := out[i].Entries[len(out[i].Entries)-1]
		out[i].DueBy = last.BillingDay()
	}
	return out
}
