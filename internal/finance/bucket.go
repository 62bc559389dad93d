package finance

import (
	"time"

	"github.com/sitebook/backend/internal/types"
)

// Granularity is the size of a calendar bucket.
type Granularity string

const (
	MonthGranularity Granularity = "month"
	DayGranularity   Granularity = "day"
)

// Bucket is a calendar period, inclusive of both Start and End.
type Bucket struct {
	Label string     `json:"label" example:"Mar 2024"`
	Start types.Date `json:"start" example:"2024-03-01"`
	End   types.Date `json:"end" example:"2024-03-31"`
}

// Contains reports whether the date is inside the bucket.
func (b Bucket) Contains(d types.Date) bool {
	return d.Between(b.Start, b.End)
}

// Buckets returns the ordered calendar buckets from start through end,
// inclusive of both.
//
// A start after end is treated as start = end, so the result always contains
// at least one bucket.
func Buckets(start, end types.Date, granularity Granularity, labels Labeler) []Bucket {
	if start.After(end) {
		start = end
	}

	if granularity == DayGranularity {
		return dayBuckets(start, end, labels)
	}

	return monthBuckets(start, end, labels)
}

func monthBuckets(start, end types.Date, labels Labeler) []Bucket {
	var buckets []Bucket

	last := end.Month()
	for m := start.Month(); !m.After(last); m = m.AddDate(0, 1) {
		t := time.Time(m)
		buckets = append(buckets, Bucket{
			Label: labels.Month(t.Year(), t.Month()),
			Start: m.First(),
			End:   m.Last(),
		})
	}

	return buckets
}

func dayBuckets(start, end types.Date, labels Labeler) []Bucket {
	var buckets []Bucket

	for d := start; !d.After(end); d = d.AddDays(1) {
		t := d.Time()
		buckets = append(buckets, Bucket{
			Label: labels.Day(t.Month(), t.Day()),
			Start: d,
			End:   d,
		})
	}

	return buckets
}

// StartDate resolves the first date of a series.
//
// It is the earliest date of all records. Without records, the scope's
// creation date is used, and if that is unknown too, now.
func StartDate(transactions []Transaction, materials []Material, logs []AttendanceLog, created, now types.Date) types.Date {
	var earliest types.Date

	consider := func(d types.Date) {
		if d.IsZero() {
			return
		}

		if earliest.IsZero() || d.Before(earliest) {
			earliest = d
		}
	}

	for _, t := range transactions {
		consider(t.Date)
	}

	for _, m := range materials {
		consider(m.PurchaseDate)
	}

	for _, l := range logs {
		consider(l.Date)
	}

	if !earliest.IsZero() {
		return earliest
	}

	if !created.IsZero() {
		return created
	}

	return now
}
