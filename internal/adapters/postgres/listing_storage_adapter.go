package postgres_adapter

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listingColumns = `id, title, purpose, price, rooms, baths, area, rent_frequency, location,
	description, furnishing_status, image_key, cover_photo_url, geohash, created_at, updated_at`

// PostgresListingStorageAdapter реализует ListingStoragePort на pgx.
type PostgresListingStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPostgresListingStorageAdapter(pool *pgxpool.Pool) (*PostgresListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresListingStorageAdapter{pool: pool}, nil
}

func methodLogger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresListingStorageAdapter",
		"method":    method,
	})
}

// Upsert атомарен за счет ON CONFLICT: параллельные вставки одного id дают одну строку.
// image_key и cover_photo_url не затираются NULL-ом, если зеркалирование в этот раз не удалось.
func (a *PostgresListingStorageAdapter) Upsert(ctx context.Context, l domain.StoredListing) (*domain.StoredListing, error) {
	repoLogger := methodLogger(ctx, "Upsert").WithFields(port.Fields{"listing_id": l.ID})

	query := `
		INSERT INTO listings (id, title, purpose, price, rooms, baths, area, rent_frequency, location,
			description, furnishing_status, image_key, cover_photo_url, geohash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			title             = EXCLUDED.title,
			purpose           = EXCLUDED.purpose,
			price             = EXCLUDED.price,
			rooms             = EXCLUDED.rooms,
			baths             = EXCLUDED.baths,
			area              = EXCLUDED.area,
			rent_frequency    = EXCLUDED.rent_frequency,
			location          = EXCLUDED.location,
			description       = EXCLUDED.description,
			furnishing_status = EXCLUDED.furnishing_status,
			image_key         = COALESCE(EXCLUDED.image_key, listings.image_key),
			cover_photo_url   = COALESCE(EXCLUDED.cover_photo_url, listings.cover_photo_url),
			geohash           = COALESCE(EXCLUDED.geohash, listings.geohash),
			updated_at        = now()
		RETURNING ` + listingColumns

	var rentFrequency *string
	if l.RentFrequency != nil {
		rf := string(*l.RentFrequency)
		rentFrequency = &rf
	}

	row := a.pool.QueryRow(ctx, query,
		l.ID, l.Title, string(l.Purpose), l.Price, l.Rooms, l.Baths, l.Area, rentFrequency, l.Location,
		l.Description, l.FurnishingStatus, l.ImageKey, l.CoverPhotoURL, l.Geohash,
	)
	saved, err := scanListing(row)
	if err != nil {
		repoLogger.Error("Failed to upsert listing", err, nil)
		return nil, fmt.Errorf("failed to upsert listing %s: %w", l.ID, err)
	}
	repoLogger.Debug("Listing upserted", nil)
	return saved, nil
}

func (a *PostgresListingStorageAdapter) CountByPurpose(ctx context.Context, purpose domain.Purpose) (int64, error) {
	var count int64
	err := a.pool.QueryRow(ctx, `SELECT COUNT(*) FROM listings WHERE purpose = $1`, string(purpose)).Scan(&count)
	if err != nil {
		methodLogger(ctx, "CountByPurpose").Error("Failed to count listings", err, port.Fields{"purpose": purpose})
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// PageByPurpose упорядочивает по created_at убыванию; id разрешает ничьи, чтобы страницы не пересекались.
func (a *PostgresListingStorageAdapter) PageByPurpose(ctx context.Context, purpose domain.Purpose, offset, limit int) ([]domain.StoredListing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings
		WHERE purpose = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	rows, err := a.pool.Query(ctx, query, string(purpose), limit, offset)
	if err != nil {
		methodLogger(ctx, "PageByPurpose").Error("Failed to query listings page", err, port.Fields{
			"purpose": purpose, "offset": offset, "limit": limit,
		})
		return nil, fmt.Errorf("failed to query listings page: %w", err)
	}
	return collectListings(rows)
}

func (a *PostgresListingStorageAdapter) FindByIDs(ctx context.Context, ids []string) ([]domain.StoredListing, error) {
	if len(ids) == 0 {
		return []domain.StoredListing{}, nil
	}
	rows, err := a.pool.Query(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = ANY($1)`, ids)
	if err != nil {
		methodLogger(ctx, "FindByIDs").Error("Failed to query listings by ids", err, port.Fields{"ids_count": len(ids)})
		return nil, fmt.Errorf("failed to query listings by ids: %w", err)
	}
	return collectListings(rows)
}

// FindWithFilters выполняет COUNT и выборку страницы в одной транзакции.
func (a *PostgresListingStorageAdapter) FindWithFilters(ctx context.Context, filters domain.ListingFilters, limit, offset int) ([]domain.StoredListing, int64, error) {
	repoLogger := methodLogger(ctx, "FindWithFilters").WithFields(port.Fields{"limit": limit, "offset": offset})

	tx, err := a.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	qb := applyFilters(filters)
	where := qb.where()

	var total int64
	countQuery := "SELECT COUNT(*) FROM listings " + where
	if err := tx.QueryRow(ctx, countQuery, qb.args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count filtered listings", err, port.Fields{"query": countQuery})
		return nil, 0, fmt.Errorf("failed to count filtered listings: %w", err)
	}
	if total == 0 {
		return []domain.StoredListing{}, 0, nil
	}

	limitArg := qb.nextArg(limit)
	offsetArg := qb.nextArg(offset)
	dataQuery := fmt.Sprintf("SELECT %s FROM listings %s ORDER BY created_at DESC, id LIMIT %s OFFSET %s",
		listingColumns, where, limitArg, offsetArg)

	rows, err := tx.Query(ctx, dataQuery, qb.args...)
	if err != nil {
		repoLogger.Error("Failed to query filtered listings", err, port.Fields{"query": dataQuery})
		return nil, 0, fmt.Errorf("failed to query filtered listings: %w", err)
	}
	items, err := collectListings(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return items, total, nil
}

func scanListing(row pgx.Row) (*domain.StoredListing, error) {
	var (
		l             domain.StoredListing
		purpose       string
		rentFrequency *string
	)
	err := row.Scan(
		&l.ID, &l.Title, &purpose, &l.Price, &l.Rooms, &l.Baths, &l.Area, &rentFrequency, &l.Location,
		&l.Description, &l.FurnishingStatus, &l.ImageKey, &l.CoverPhotoURL, &l.Geohash, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Purpose = domain.Purpose(purpose)
	if rentFrequency != nil {
		rf := domain.RentFrequency(*rentFrequency)
		l.RentFrequency = &rf
	}
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]domain.StoredListing, error) {
	defer rows.Close()

	items := make([]domain.StoredListing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		items = append(items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during listings iteration: %w", err)
	}
	return items, nil
}
