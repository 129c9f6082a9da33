package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/promptrec/internal/db"
	"github.com/kailas-cloud/promptrec/internal/domain"
)

// --- Mocks ---

type mockListStore struct {
	lists     map[string][]string
	pushErr   error
	rangeErr  error
	expireErr error

	lastExpireKey string
	lastExpireTTL time.Duration
}

func newMockListStore() *mockListStore {
	return &mockListStore{lists: make(map[string][]string)}
}

func (m *mockListStore) RPush(_ context.Context, key string, values []string) (int, error) {
	if m.pushErr != nil {
		return 0, m.pushErr
	}
	m.lists[key] = append(m.lists[key], values...)
	return len(m.lists[key]), nil
}

func (m *mockListStore) LRange(_ context.Context, key string, start, stop int) ([]string, error) {
	if m.rangeErr != nil {
		return nil, m.rangeErr
	}
	list := m.lists[key]
	n := len(list)
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
	}
	if start > stop || start >= n {
		return nil, nil
	}
	if stop >= n {
		stop = n - 1
	}
	return list[start : stop+1], nil
}

func (m *mockListStore) Expire(_ context.Context, key string, ttl time.Duration, _ bool) error {
	if m.expireErr != nil {
		return m.expireErr
	}
	m.lastExpireKey = key
	m.lastExpireTTL = ttl
	return nil
}

func someRecords(user string, n int) []domain.Record {
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			Domain:      "web development agency",
			Prompt:      "SEO optimization techniques",
			Similarity:  0.9 - float64(i)*0.1,
			Explanation: "Relevant because of search visibility.",
			User:        user,
			CreatedAt:   time.Date(2025, 6, 1, 12, 0, i, 0, time.UTC),
		}
	}
	return records
}

// --- Tests ---

func TestSaveMany_RoundTrip(t *testing.T) {
	store := newMockListStore()
	repo := New(store, "promptrec:")

	saved, err := repo.SaveMany(context.Background(), someRecords("alice", 3))
	if err != nil {
		t.Fatalf("SaveMany: %v", err)
	}
	if saved != 3 {
		t.Fatalf("saved = %d, want 3", saved)
	}

	got, err := repo.ListByUser(context.Background(), "alice", 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	// Newest first: the last saved record comes back first.
	if got[0].CreatedAt.Before(got[2].CreatedAt) {
		t.Errorf("records not newest-first: %v then %v", got[0].CreatedAt, got[2].CreatedAt)
	}
	if got[0].Prompt != "SEO optimization techniques" {
		t.Errorf("prompt = %q", got[0].Prompt)
	}
}

func TestSaveMany_Empty(t *testing.T) {
	repo := New(newMockListStore(), "promptrec:")

	saved, err := repo.SaveMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("SaveMany: %v", err)
	}
	if saved != 0 {
		t.Fatalf("saved = %d, want 0", saved)
	}
}

func TestSaveMany_PushError(t *testing.T) {
	store := newMockListStore()
	store.pushErr = errors.New("connection refused")
	repo := New(store, "promptrec:")

	if _, err := repo.SaveMany(context.Background(), someRecords("alice", 1)); err == nil {
		t.Fatal("expected error from failing store")
	}
}

func TestSaveMany_TTLRefreshed(t *testing.T) {
	store := newMockListStore()
	repo := New(store, "promptrec:").WithTTL(24 * time.Hour)

	if _, err := repo.SaveMany(context.Background(), someRecords("bob", 1)); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}
	if store.lastExpireKey != "promptrec:history:bob" {
		t.Errorf("expire key = %q", store.lastExpireKey)
	}
	if store.lastExpireTTL != 24*time.Hour {
		t.Errorf("expire ttl = %v", store.lastExpireTTL)
	}
}

func TestListByUser_Limit(t *testing.T) {
	store := newMockListStore()
	repo := New(store, "promptrec:")

	if _, err := repo.SaveMany(context.Background(), someRecords("alice", 5)); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}

	got, err := repo.ListByUser(context.Background(), "alice", 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestListByUser_MissingKey(t *testing.T) {
	store := newMockListStore()
	store.rangeErr = db.ErrKeyNotFound
	repo := New(store, "promptrec:")

	got, err := repo.ListByUser(context.Background(), "nobody", 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestListByUser_IsolatedPerUser(t *testing.T) {
	store := newMockListStore()
	repo := New(store, "promptrec:")

	if _, err := repo.SaveMany(context.Background(), someRecords("alice", 2)); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}
	if _, err := repo.SaveMany(context.Background(), someRecords(domain.AnonymousUser, 1)); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}

	got, err := repo.ListByUser(context.Background(), domain.AnonymousUser, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}
