package aggregator

import (
	"sort"
	"time"

	"github.com/elC0mpa/aws-reservations/model"
)

func NewService() *service {
	return &service{
		buckets: make(map[model.ReservationKey]*model.ReservationDetail),
	}
}

// GetOrCreate returns the bucket for key, creating it with zero counters on
// first reference. The returned pointer must only be mutated while no other
// goroutine can reach the same key; concurrent callers should go through Merge.
func (s *service) GetOrCreate(key model.ReservationKey) *model.ReservationDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(key)
}

func (s *service) getOrCreateLocked(key model.ReservationKey) *model.ReservationDetail {
	if detail, ok := s.buckets[key]; ok {
		return detail
	}

	detail := &model.ReservationDetail{
		AvailabilityZone: key.AvailabilityZone,
		Os:               key.Os,
		InstanceType:     key.InstanceType,
	}
	s.buckets[key] = detail
	return detail
}

// Merge folds one account/region tally into the shared aggregate.
func (s *service) Merge(tally *Tally) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, counts := range tally.buckets {
		detail := s.getOrCreateLocked(key)
		detail.Reserved += counts.reserved
		detail.Used += counts.used
	}
}

// Report snapshots the aggregate into an immutable report, ordered by key
// string so successive runs serialize identically.
func (s *service) Report(start, end time.Time) model.ReservationReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations := make([]model.ReservationDetail, 0, len(s.buckets))
	for _, detail := range s.buckets {
		reservations = append(reservations, *detail)
	}

	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].Key().String() < reservations[j].Key().String()
	})

	return model.ReservationReport{
		Start:        start,
		End:          end,
		Reservations: reservations,
	}
}
