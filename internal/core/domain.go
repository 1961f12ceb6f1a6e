package core

import (
	"errors"
	"strings"
)

type (
	// Item is a recurring payment definition: what gets billed, on which
	// nominal day of the month, and from which account.
	Item struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Day     int    `json:"day"`
		Account string `json:"account"`
	}

	// AmountRecord holds the billed amount for one item in one month.
	// Amount is in whole yen. Date is the actual billing date for that
	// month instance and may differ from the item's nominal day.
	AmountRecord struct {
		Amount int64  `json:"amount"`
		Date   string `json:"date"`
		Paid   bool   `json:"paid"`
	}

	// Amounts maps month key -> item id -> that month's record.
	// Item ids marshal as strings, matching the persisted document shape.
	Amounts map[MonthKey]map[int64]AmountRecord
)

var (
	ErrEmptyName     = errors.New("empty item name")
	ErrInvalidDay    = errors.New("invalid day of month")
	ErrEmptyAccount  = errors.New("empty account")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyDate     = errors.New("empty billing date")
	ErrUnknownItem   = errors.New("unknown item")
)

func (it Item) Validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return ErrEmptyName
	}
	if it.Day < 1 || it.Day > 31 {
		return ErrInvalidDay
	}
	if strings.TrimSpace(it.Account) == "" {
		return ErrEmptyAccount
	}
	return nil
}

func (r AmountRecord) Validate() error {
	if strings.TrimSpace(r.Date) == "" {
		return ErrEmptyDate
	}
	return nil
}
