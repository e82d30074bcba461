package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"listing-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// memStore - хранилище в памяти. created_at растет с каждой новой строкой.
type memStore struct {
	mu       sync.Mutex
	rows     map[string]domain.StoredListing
	clock    time.Time
	failIDs  map[string]bool
	upserts  int
	counts   int
	countErr error
}

func newMemStore() *memStore {
	return &memStore{
		rows:    map[string]domain.StoredListing{},
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		failIDs: map[string]bool{},
	}
}

func (s *memStore) Upsert(_ context.Context, l domain.StoredListing) (*domain.StoredListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failIDs[l.ID] {
		return nil, fmt.Errorf("upsert %s: connection reset", l.ID)
	}
	s.upserts++
	s.clock = s.clock.Add(time.Second)
	if old, ok := s.rows[l.ID]; ok {
		l.CreatedAt = old.CreatedAt
		if l.ImageKey == nil {
			l.ImageKey = old.ImageKey
		}
	} else {
		l.CreatedAt = s.clock
	}
	l.UpdatedAt = s.clock
	l.ImageURL = nil
	s.rows[l.ID] = l
	out := l
	return &out, nil
}

func (s *memStore) CountByPurpose(_ context.Context, purpose domain.Purpose) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts++
	if s.countErr != nil {
		return 0, s.countErr
	}
	var n int64
	for _, r := range s.rows {
		if r.Purpose == purpose {
			n++
		}
	}
	return n, nil
}

func (s *memStore) sorted(purpose domain.Purpose) []domain.StoredListing {
	var out []domain.StoredListing
	for _, r := range s.rows {
		if r.Purpose == purpose {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *memStore) PageByPurpose(_ context.Context, purpose domain.Purpose, offset, limit int) ([]domain.StoredListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.sorted(purpose)
	if offset >= len(all) {
		return []domain.StoredListing{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return append([]domain.StoredListing(nil), all[offset:end]...), nil
}

// FindByIDs намеренно отдает строки в обратном порядке.
func (s *memStore) FindByIDs(_ context.Context, ids []string) ([]domain.StoredListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.StoredListing, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if r, ok := s.rows[ids[i]]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) FindWithFilters(_ context.Context, filters domain.ListingFilters, limit, offset int) ([]domain.StoredListing, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []domain.StoredListing
	if filters.Purpose != nil {
		all = s.sorted(*filters.Purpose)
	} else {
		all = append(s.sorted(domain.PurposeBuy), s.sorted(domain.PurposeRent)...)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return []domain.StoredListing{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (s *memStore) countCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts
}

func (s *memStore) seed(purpose domain.Purpose, n int) {
	for i := 1; i <= n; i++ {
		_, _ = s.Upsert(context.Background(), domain.StoredListing{
			ID:       fmt.Sprintf("seed-%s-%d", purpose, i),
			Purpose:  purpose,
			Location: "Dubai",
		})
	}
}

type cacheKey struct {
	purpose        domain.Purpose
	page, pageSize int
}

type memCache struct {
	mu          sync.Mutex
	entries     map[cacheKey][]domain.CacheEntry
	getErr      error
	setErr      error
	sets        int
	invalidated []*int
}

func newMemCache() *memCache {
	return &memCache{entries: map[cacheKey][]domain.CacheEntry{}}
}

func (c *memCache) Get(_ context.Context, purpose domain.Purpose, page, pageSize int) ([]domain.CacheEntry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	e, ok := c.entries[cacheKey{purpose, page, pageSize}]
	return e, ok, nil
}

func (c *memCache) Set(_ context.Context, purpose domain.Purpose, page, pageSize int, entries []domain.CacheEntry, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[cacheKey{purpose, page, pageSize}] = entries
	return nil
}

func (c *memCache) Invalidate(_ context.Context, purpose domain.Purpose, page *int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, page)
	for k := range c.entries {
		if k.purpose == purpose && (page == nil || k.page == *page) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *memCache) HealthCheck(context.Context) bool { return c.getErr == nil }

type memMirror struct {
	mu        sync.Mutex
	objects   map[string]string
	uploads   int
	uploadErr error
	signErr   error
}

func newMemMirror() *memMirror {
	return &memMirror{objects: map[string]string{}}
}

func (m *memMirror) Exists(_ context.Context, id string, purpose domain.Purpose) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[domain.ImageObjectKey(purpose, id)]
	return ok, nil
}

func (m *memMirror) Upload(_ context.Context, id string, purpose domain.Purpose, sourceURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.uploadErr != nil {
		return m.uploadErr
	}
	m.uploads++
	m.objects[domain.ImageObjectKey(purpose, id)] = sourceURL
	return nil
}

func (m *memMirror) SignedURL(_ context.Context, id string, purpose domain.Purpose, _ time.Duration) (string, error) {
	if m.signErr != nil {
		return "", m.signErr
	}
	return "https://signed.test/" + domain.ImageObjectKey(purpose, id), nil
}

type fakeUpstream struct {
	mu      sync.Mutex
	calls   int
	total   int64
	err     error
	gate    chan struct{}
	entered chan struct{}
}

func (u *fakeUpstream) FetchPage(ctx context.Context, purpose domain.UpstreamPurpose, page, pageSize int) (*domain.UpstreamPage, error) {
	u.mu.Lock()
	u.calls++
	u.mu.Unlock()
	if u.entered != nil {
		u.entered <- struct{}{}
	}
	if u.gate != nil {
		<-u.gate
	}
	if u.err != nil {
		return nil, u.err
	}

	items := make([]domain.UpstreamListing, 0, pageSize)
	for i := 0; i < pageSize; i++ {
		id := fmt.Sprintf("%s-%d", purpose, (page-1)*pageSize+i+1)
		items = append(items, domain.UpstreamListing{
			ID:            id,
			Title:         "Listing " + id,
			Purpose:       purpose,
			Price:         decimal.NewFromInt(int64(1000 + i)),
			Rooms:         2,
			Baths:         1,
			Area:          decimal.NewFromInt(70),
			Locations:     []domain.Location{{Name: "dubai marina"}},
			CoverPhotoURL: "https://img.test/" + id + ".jpg",
		})
	}
	return &domain.UpstreamPage{Purpose: purpose, Items: items, TotalCount: u.total, Page: page, PageSize: pageSize}, nil
}

func (u *fakeUpstream) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls
}

type rejectIDs map[string]bool

func (r rejectIDs) Validate(l domain.StoredListing) error {
	if r[l.ID] {
		return fmt.Errorf("%w: rejected %s", domain.ErrValidation, l.ID)
	}
	return nil
}

var errBoom = errors.New("boom")
