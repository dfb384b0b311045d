package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be between 1900 and 9999")
)

// Period identifies a calendar month
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewPeriod builds a validated period
func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodOf returns the period containing t
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Validate checks the year and month ranges
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidMonth
	}
	if p.Year < 1900 || p.Year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

// FirstDay returns local midnight of the first day of the month
func (p Period) FirstDay(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
}

// LastDay returns local midnight of the last day of the month
func (p Period) LastDay(loc *time.Location) time.Time {
	return p.FirstDay(loc).AddDate(0, 1, -1)
}

// Contains reports whether date (a local-midnight calendar date) falls in the month
func (p Period) Contains(date time.Time) bool {
	return date.Year() == p.Year && int(date.Month()) == p.Month
}

// Previous returns the preceding month
func (p Period) Previous() Period {
	return p.AddMonths(-1)
}

// AddMonths shifts the period by n months
func (p Period) AddMonths(n int) Period {
	shifted := time.Date(p.Year, time.Month(p.Month)+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return PeriodOf(shifted)
}

// Label returns a human readable label such as "January 2024"
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", time.Month(p.Month).String(), p.Year)
}

// String implements fmt.Stringer
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
