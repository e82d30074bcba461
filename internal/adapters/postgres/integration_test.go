//go:build integration

package postgres_adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"listing-service/internal/core/domain"
	pgclient "listing-service/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type ListingStorageIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	adapter   *PostgresListingStorageAdapter
}

func (s *ListingStorageIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("listings_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(filepath.Join(migrationsPath, "001_create_listings.up.sql")),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.pool, err = pgclient.NewClient(s.ctx, pgclient.Config{DatabaseURL: connStr, MaxConns: 10})
	s.Require().NoError(err)

	s.adapter, err = NewPostgresListingStorageAdapter(s.pool)
	s.Require().NoError(err)
}

func (s *ListingStorageIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *ListingStorageIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE listings")
	s.Require().NoError(err)
}

func TestListingStorageIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ListingStorageIntegrationSuite))
}

func listing(id string, purpose domain.Purpose, price int64) domain.StoredListing {
	cover := "https://images.example.com/" + id + ".jpg"
	return domain.StoredListing{
		ID:            id,
		Title:         "Listing " + id,
		Purpose:       purpose,
		Price:         decimal.NewFromInt(price),
		Rooms:         2,
		Baths:         1,
		Area:          decimal.RequireFromString("75.50"),
		Location:      "Dubai Marina",
		CoverPhotoURL: &cover,
	}
}

func (s *ListingStorageIntegrationSuite) TestUpsertInsertThenUpdate() {
	first, err := s.adapter.Upsert(s.ctx, listing("1", domain.PurposeBuy, 100))
	s.Require().NoError(err)

	key := domain.ImageObjectKey(domain.PurposeBuy, "1")
	withImage := listing("1", domain.PurposeBuy, 100)
	withImage.ImageKey = &key
	_, err = s.adapter.Upsert(s.ctx, withImage)
	s.Require().NoError(err)

	updated := listing("1", domain.PurposeBuy, 250)
	updated.Title = "Renovated"
	second, err := s.adapter.Upsert(s.ctx, updated)
	s.Require().NoError(err)

	s.Equal("Renovated", second.Title)
	s.True(second.Price.Equal(decimal.NewFromInt(250)))
	s.True(first.CreatedAt.Equal(second.CreatedAt))
	s.True(second.UpdatedAt.After(first.UpdatedAt) || second.UpdatedAt.Equal(first.UpdatedAt))
	// прошлое зеркалирование не теряется
	s.Require().NotNil(second.ImageKey)
	s.Equal(key, *second.ImageKey)

	count, err := s.adapter.CountByPurpose(s.ctx, domain.PurposeBuy)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *ListingStorageIntegrationSuite) TestConcurrentUpsertsKeepOneRow() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(price int64) {
			defer wg.Done()
			_, err := s.adapter.Upsert(s.ctx, listing("dup", domain.PurposeRent, price))
			s.NoError(err)
		}(int64(100 + i))
	}
	wg.Wait()

	count, err := s.adapter.CountByPurpose(s.ctx, domain.PurposeRent)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *ListingStorageIntegrationSuite) TestPageByPurposeOrdersByCreatedAtDesc() {
	for i := 1; i <= 5; i++ {
		_, err := s.adapter.Upsert(s.ctx, listing(fmt.Sprintf("b%d", i), domain.PurposeBuy, int64(i*100)))
		s.Require().NoError(err)
	}
	_, err := s.adapter.Upsert(s.ctx, listing("r1", domain.PurposeRent, 10))
	s.Require().NoError(err)

	page, err := s.adapter.PageByPurpose(s.ctx, domain.PurposeBuy, 0, 2)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal("b5", page[0].ID)
	s.Equal("b4", page[1].ID)

	rest, err := s.adapter.PageByPurpose(s.ctx, domain.PurposeBuy, 4, 10)
	s.Require().NoError(err)
	s.Require().Len(rest, 1)
	s.Equal("b1", rest[0].ID)

	empty, err := s.adapter.PageByPurpose(s.ctx, domain.PurposeBuy, 10, 10)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *ListingStorageIntegrationSuite) TestFindByIDsSkipsMissing() {
	for _, id := range []string{"a", "b", "c"} {
		_, err := s.adapter.Upsert(s.ctx, listing(id, domain.PurposeBuy, 1))
		s.Require().NoError(err)
	}

	rows, err := s.adapter.FindByIDs(s.ctx, []string{"c", "missing", "a"})
	s.Require().NoError(err)
	ids := []string{}
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	s.ElementsMatch([]string{"a", "c"}, ids)

	none, err := s.adapter.FindByIDs(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *ListingStorageIntegrationSuite) TestFindWithFilters() {
	monthly := domain.RentMonthly
	for i, price := range []int64{1000, 5000, 9000} {
		l := listing(fmt.Sprintf("r%d", i), domain.PurposeRent, price)
		l.RentFrequency = &monthly
		_, err := s.adapter.Upsert(s.ctx, l)
		s.Require().NoError(err)
	}

	rent := domain.PurposeRent
	minPrice := decimal.NewFromInt(2000)
	location := "marina"
	items, total, err := s.adapter.FindWithFilters(s.ctx, domain.ListingFilters{
		Purpose:       &rent,
		MinPrice:      &minPrice,
		RentFrequency: &monthly,
		Location:      &location,
	}, 1, 0)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(items, 1)
	s.Equal("r2", items[0].ID)
	s.Require().NotNil(items[0].RentFrequency)
	s.Equal(domain.RentMonthly, *items[0].RentFrequency)
}
