package cache

import (
	"context"

	"github.com/elC0mpa/aws-reservations/model"
)

// CacheService is a namespaced provider cache with authoritative writes: a
// ReplaceAll fully supersedes the namespace's previous contents, so readers
// see either the old complete snapshot or the new one, never a mixture.
type CacheService interface {
	ReplaceAll(ctx context.Context, namespace string, entries []model.CacheEntry) error
	Get(ctx context.Context, namespace, id string) (*model.CacheEntry, error)
	List(ctx context.Context, namespace string) ([]model.CacheEntry, error)
}
