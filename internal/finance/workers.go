package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/money"
	"golang.org/x/exp/slices"
)

// WorkerShare is the labor aggregate for one worker.
type WorkerShare struct {
	WorkerID       uuid.UUID       `json:"workerId" example:"4f6a8d53-22c8-4d58-9db2-3a1c6a1d0a10"` // ID of the worker. Nil when the entries had no worker ID
	WorkerName     string          `json:"workerName" example:"Jan Kowalski"`                       // Display name of the worker
	Hours          decimal.Decimal `json:"hours" example:"42.5"`                                    // Sum of hours
	Cost           decimal.Decimal `json:"cost" example:"1062.5"`                                   // Sum of labor cost
	PercentOfTotal decimal.Decimal `json:"percentOfTotal" example:"75"`                             // Share of the total labor cost of all workers
}

// workerKey identifies a worker. Entries with a worker ID are grouped by ID,
// entries without one by their display name.
type workerKey struct {
	id   uuid.UUID
	name string
}

func keyOf(l AttendanceLog) workerKey {
	if l.WorkerID != uuid.Nil {
		return workerKey{id: l.WorkerID}
	}

	return workerKey{name: l.WorkerName}
}

// WorkerBreakdown groups attendance entries by worker.
//
// The result is sorted by hours descending. Workers with equal hours keep the
// order in which they first appear in logs.
func WorkerBreakdown(logs []AttendanceLog) []WorkerShare {
	index := make(map[workerKey]int)
	shares := make([]WorkerShare, 0)
	costs := make([]decimal.Decimal, 0)

	for _, l := range logs {
		k := keyOf(l)

		i, ok := index[k]
		if !ok {
			i = len(shares)
			index[k] = i
			shares = append(shares, WorkerShare{
				WorkerID:   l.WorkerID,
				WorkerName: l.WorkerName,
				Hours:      decimal.Zero,
			})
			costs = append(costs, decimal.Zero)
		}

		shares[i].Hours = shares[i].Hours.Add(l.Hours)
		costs[i] = costs[i].Add(LaborCost(l))
	}

	total := decimal.Zero
	for i := range shares {
		shares[i].Cost = money.Round(costs[i])
		total = total.Add(shares[i].Cost)
	}

	for i := range shares {
		shares[i].PercentOfTotal = money.Percent(shares[i].Cost, total)
	}

	slices.SortStableFunc(shares, func(a, b WorkerShare) int {
		return b.Hours.Cmp(a.Hours)
	})

	return shares
}
