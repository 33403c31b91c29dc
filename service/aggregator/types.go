package aggregator

import (
	"sync"
	"time"

	"github.com/elC0mpa/aws-reservations/model"
)

type service struct {
	mu      sync.Mutex
	buckets map[model.ReservationKey]*model.ReservationDetail
}

// AggregatorService owns the shared (zone, os, instanceType) buckets for one
// report run. Collectors accumulate into local tallies and merge them here, so
// the mutex is only taken once per finished account/region pair.
type AggregatorService interface {
	GetOrCreate(key model.ReservationKey) *model.ReservationDetail
	Merge(tally *Tally)
	Report(start, end time.Time) model.ReservationReport
}
