package reservation

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day without time of day. The zero value means "no date".
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate accepts YYYY-MM-DD only.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrDateRequired
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Time() time.Time    { return d.t }
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Comment is optional free text kept as entered; blank input becomes "no comment".
type Comment struct {
	text *string
}

func NewComment(s *string) Comment {
	if s == nil || strings.TrimSpace(*s) == "" {
		return Comment{}
	}
	t := *s
	return Comment{text: &t}
}

func (c Comment) Ptr() *string { return c.text }

func (c Comment) String() string {
	if c.text == nil {
		return ""
	}
	return *c.text
}
