package mongo_adapter

import (
	"context"
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToArchivedPage(t *testing.T) {
	monthly := "monthly"
	fetchedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("GST", 4*3600))
	page := &domain.UpstreamPage{
		Purpose:    domain.UpstreamForRent,
		Page:       3,
		PageSize:   9,
		TotalCount: 120,
		Items: []domain.UpstreamListing{
			{
				ID:            "42",
				Title:         "Flat",
				Purpose:       domain.UpstreamForRent,
				Price:         decimal.RequireFromString("85000.50"),
				Area:          decimal.NewFromInt(90),
				RentFrequency: &monthly,
				Locations:     []domain.Location{{Name: "Dubai", ExternalID: "5002"}},
				Geography:     &domain.Geography{Lat: 25.1, Lng: 55.2},
			},
			{ID: "43", Purpose: domain.UpstreamForRent},
		},
	}

	doc := toArchivedPage(page, fetchedAt)

	assert.Equal(t, "for-rent:3:9", doc.Key)
	assert.Equal(t, int64(120), doc.TotalCount)
	assert.Equal(t, time.UTC, doc.FetchedAt.Location())
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "85000.5", doc.Items[0].Price)
	require.NotNil(t, doc.Items[0].Lat)
	assert.InDelta(t, 25.1, *doc.Items[0].Lat, 1e-9)
	assert.Equal(t, []archivedLocation{{Name: "Dubai", ExternalID: "5002"}}, doc.Items[0].Locations)
	assert.Nil(t, doc.Items[1].Lat)
	assert.NotNil(t, doc.Items[1].Locations)
}

func TestArchivedPageBSONShape(t *testing.T) {
	doc := toArchivedPage(&domain.UpstreamPage{Purpose: domain.UpstreamForSale, Page: 1, PageSize: 9}, time.Now())

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded bson.M
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, "for-sale:1:9", decoded["_id"])
	assert.Equal(t, "for-sale", decoded["purpose"])
	assert.Contains(t, decoded, "fetchedAt")
}

func TestArchivePageNilIsNoop(t *testing.T) {
	a := &MongoPageArchiveAdapter{now: time.Now}
	assert.NoError(t, a.ArchivePage(context.Background(), nil))
}

func TestNewMongoPageArchiveAdapterValidation(t *testing.T) {
	_, err := NewMongoPageArchiveAdapter(nil, "pages")
	assert.Error(t, err)
}
