package aggregator

import "github.com/elC0mpa/aws-reservations/model"

type tallyCounts struct {
	reserved int
	used     int
}

// Tally accumulates counts for a single account/region pair. It is not safe
// for concurrent use; each collector goroutine owns exactly one.
type Tally struct {
	buckets map[model.ReservationKey]tallyCounts
}

func NewTally() *Tally {
	return &Tally{buckets: make(map[model.ReservationKey]tallyCounts)}
}

// AddReserved adds count purchased instances to the key's bucket.
func (t *Tally) AddReserved(key model.ReservationKey, count int) {
	counts := t.buckets[key]
	counts.reserved += count
	t.buckets[key] = counts
}

// AddUsed records one running (or transitioning) instance under the key.
func (t *Tally) AddUsed(key model.ReservationKey) {
	counts := t.buckets[key]
	counts.used++
	t.buckets[key] = counts
}

// Size returns the number of distinct keys seen by this tally.
func (t *Tally) Size() int {
	return len(t.buckets)
}
