package orgstate

import (
	"context"
	"errors"
	"testing"

	"orgsetup/internal/domain"
)

type memoryBackend struct {
	saved   []domain.OrgInfo
	initial domain.OrgInfo
	hasInit bool
	loadErr error
	saveErr error
}

func (m *memoryBackend) Load(context.Context) (domain.OrgInfo, bool, error) {
	return m.initial, m.hasInit, m.loadErr
}

func (m *memoryBackend) Save(_ context.Context, info domain.OrgInfo) error {
	m.saved = append(m.saved, info)
	return m.saveErr
}

func TestPersistSeedsAndSaves(t *testing.T) {
	backend := &memoryBackend{initial: domain.OrgInfo{Name: "Acme", Cover: "a.png"}, hasInit: true}
	store := NewStore(domain.OrgInfo{})

	stop, err := Persist(context.Background(), store, backend)
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if got := store.Current(); got.Name != "Acme" {
		t.Fatalf("store not seeded, got %+v", got)
	}
	if len(backend.saved) != 0 {
		t.Fatalf("seeding should not save, got %v", backend.saved)
	}

	store.Set(domain.OrgInfo{Name: "Globex"})
	stop()
	store.Set(domain.OrgInfo{Name: "Initech"})

	if len(backend.saved) != 1 || backend.saved[0].Name != "Globex" {
		t.Fatalf("saved = %+v, want only Globex", backend.saved)
	}
}

func TestPersistEmptyBackendLeavesStore(t *testing.T) {
	store := NewStore(domain.OrgInfo{Name: "Default"})
	if _, err := Persist(context.Background(), store, &memoryBackend{}); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if store.Current().Name != "Default" {
		t.Fatalf("store should keep its value, got %+v", store.Current())
	}
}

func TestPersistLoadError(t *testing.T) {
	store := NewStore(domain.OrgInfo{})
	backend := &memoryBackend{loadErr: errors.New("disk gone")}

	stop, err := Persist(context.Background(), store, backend)
	if err == nil {
		t.Fatal("expected load error")
	}
	stop()
	store.Set(domain.OrgInfo{Name: "Acme"})
	if len(backend.saved) != 0 {
		t.Fatal("no saver should be registered after a load failure")
	}
}

func TestPersistSaveErrorKeepsStoreValue(t *testing.T) {
	store := NewStore(domain.OrgInfo{})
	backend := &memoryBackend{saveErr: errors.New("read-only")}
	if _, err := Persist(context.Background(), store, backend); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	store.Set(domain.OrgInfo{Name: "Acme"})
	if store.Current().Name != "Acme" {
		t.Fatalf("store value should survive a failed save")
	}
}

func TestPersistWithSQLite(t *testing.T) {
	ctx := context.Background()
	repo, _ := openTestRepo(t)
	store := NewStore(domain.OrgInfo{})

	if _, err := Persist(ctx, store, repo); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	store.Set(domain.OrgInfo{Name: "Acme", Cover: "a.png"})

	info, ok, err := repo.Load(ctx)
	if err != nil || !ok || info.Name != "Acme" {
		t.Fatalf("Load() = %+v ok=%v err=%v", info, ok, err)
	}
}
