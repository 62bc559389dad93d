package finance

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/types"
)

// Mode defines how the points of a series relate to each other.
type Mode string

const (
	// Monthly series contain the values of each bucket on its own.
	Monthly Mode = "monthly"

	// Cumulative series contain running totals from the start of the series
	// through the end of each bucket.
	Cumulative Mode = "cumulative"
)

// DisplayCap is the maximum number of points a down-sampled series aims for.
const DisplayCap = 25

// Granularity returns the bucket size the mode is built on.
func (m Mode) Granularity() Granularity {
	if m == Cumulative {
		return DayGranularity
	}

	return MonthGranularity
}

// Valid reports if the mode is known.
func (m Mode) Valid() bool {
	return m == Monthly || m == Cumulative
}

// SeriesPoint is the income and cost for one bucket.
type SeriesPoint struct {
	Label  string          `json:"label" example:"Mar 2024"`
	Income decimal.Decimal `json:"income" example:"1000"`
	Cost   decimal.Decimal `json:"cost" example:"600"`
}

// BuildSeries returns one point per bucket, in bucket order.
//
// In Monthly mode, each point only covers the records inside its bucket. In
// Cumulative mode, each point covers all records up to the end of its bucket,
// so neither income nor cost ever decrease from one point to the next.
func BuildSeries(buckets []Bucket, transactions []Transaction, materials []Material, logs []AttendanceLog, mode Mode) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(buckets))

	if mode == Cumulative {
		var a accumulator
		for i, b := range buckets {
			// Each record is added exactly once, in the first bucket whose end
			// is not before its date. Records before the first bucket belong
			// to the running total too.
			include := func(d types.Date) bool {
				if d.After(b.End) {
					return false
				}

				return i == 0 || d.After(buckets[i-1].End)
			}

			accumulate(&a, transactions, materials, logs, include)
			points = append(points, point(b, a.rollup()))
		}

		return points
	}

	for _, b := range buckets {
		var a accumulator
		accumulate(&a, transactions, materials, logs, b.Contains)
		points = append(points, point(b, a.rollup()))
	}

	return points
}

// Downsample reduces a series to about DisplayCap points.
//
// Every ceil(n / DisplayCap)-th point is kept. The last point is always kept,
// so the most recent data is never dropped.
func Downsample(points []SeriesPoint) []SeriesPoint {
	n := len(points)
	if n <= DisplayCap {
		return append([]SeriesPoint(nil), points...)
	}

	stride := (n + DisplayCap - 1) / DisplayCap

	sampled := make([]SeriesPoint, 0, DisplayCap+1)
	for i := 0; i < n; i += stride {
		sampled = append(sampled, points[i])
	}

	if (n-1)%stride != 0 {
		sampled = append(sampled, points[n-1])
	}

	return sampled
}

// accumulate adds all records whose date matches include to a.
func accumulate(a *accumulator, transactions []Transaction, materials []Material, logs []AttendanceLog, include func(types.Date) bool) {
	for _, t := range transactions {
		if include(t.Date) {
			a.addTransaction(t)
		}
	}

	for _, m := range materials {
		if include(m.PurchaseDate) {
			a.addMaterial(m)
		}
	}

	for _, l := range logs {
		if include(l.Date) {
			a.addLog(l)
		}
	}
}

func point(b Bucket, r Rollup) SeriesPoint {
	return SeriesPoint{
		Label:  b.Label,
		Income: r.Income,
		Cost:   r.TotalCost,
	}
}
