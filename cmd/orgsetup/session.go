package main

import (
	"context"
	"fmt"
	"time"

	"orgsetup/internal/config"
	"orgsetup/internal/domain"
	"orgsetup/internal/orgapi"
	"orgsetup/internal/orgstate"
)

const historyLimit = 20

// session bundles what a command needs to create organizations: the backend
// client and the persisted current-organization store.
type session struct {
	client      *orgapi.Client
	store       *orgstate.Store
	repo        *orgstate.Repository
	stopPersist func()
}

func openSession(ctx context.Context) (*session, error) {
	timeout, err := apiTimeout()
	if err != nil {
		return nil, err
	}

	repo, err := openRepository(ctx)
	if err != nil {
		return nil, err
	}

	store := orgstate.NewStore(domain.OrgInfo{})
	stop, err := orgstate.Persist(ctx, store, repo)
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("load current organization: %w", err)
	}

	client := orgapi.NewClient(
		config.GetString(config.KeyAPIBaseURL),
		orgapi.WithTimeout(timeout),
		orgapi.WithUserAgent(orgapi.DefaultUserAgent+"/"+Version),
	)

	return &session{
		client:      client,
		store:       store,
		repo:        repo,
		stopPersist: stop,
	}, nil
}

// apiTimeout reads the request timeout. Zero disables it. A bare number is
// parsed as nanoseconds, so anything positive under a millisecond is refused.
func apiTimeout() (time.Duration, error) {
	d := config.GetDuration(config.KeyAPITimeout)
	if d < 0 || (d > 0 && d < time.Millisecond) {
		return 0, fmt.Errorf("%s %q is too short; give a unit such as 30s", config.KeyAPITimeout, d)
	}
	return d, nil
}

func openRepository(ctx context.Context) (*orgstate.Repository, error) {
	path, err := config.StatePath()
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}
	repo, err := orgstate.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open state: %w", err)
	}
	return repo, nil
}

func (s *session) history(ctx context.Context) ([]orgstate.HistoryEntry, error) {
	return s.repo.History(ctx, historyLimit)
}

// Close stops persisting and closes the state database.
func (s *session) Close() {
	if s.stopPersist != nil {
		s.stopPersist()
	}
	_ = s.repo.Close()
}
