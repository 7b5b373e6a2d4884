package orgstate

import (
	"context"

	"orgsetup/internal/debug"
	"orgsetup/internal/domain"
)

// Backend is the persistence the store is synchronised with.
type Backend interface {
	Load(ctx context.Context) (domain.OrgInfo, bool, error)
	Save(ctx context.Context, info domain.OrgInfo) error
}

// Persist seeds store from backend and saves every later change.
// The returned function stops saving. Save failures are logged, not returned.
func Persist(ctx context.Context, store *Store, backend Backend) (func(), error) {
	info, ok, err := backend.Load(ctx)
	if err != nil {
		return func() {}, err
	}
	if ok {
		store.Set(info)
	}

	return store.Subscribe(func(info domain.OrgInfo) {
		if err := backend.Save(ctx, info); err != nil {
			debug.Event("orgstate", "save.failed", "name", info.Name, "error", err)
		}
	}), nil
}
