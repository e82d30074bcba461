package usecase

import (
	"context"
	"testing"
	"time"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFindListingsSignsImages(t *testing.T) {
	store := newMemStore()
	key := "rent/r1.jpg"
	cover := "https://img.test/r2.jpg"
	_, _ = store.Upsert(context.Background(), domain.StoredListing{ID: "r1", Purpose: domain.PurposeRent, ImageKey: &key})
	_, _ = store.Upsert(context.Background(), domain.StoredListing{ID: "r2", Purpose: domain.PurposeRent, CoverPhotoURL: &cover})
	_, _ = store.Upsert(context.Background(), domain.StoredListing{ID: "b1", Purpose: domain.PurposeBuy})

	uc := NewFindListingsUseCase(store, newMemMirror(), time.Hour)
	rent := domain.PurposeRent
	res, err := uc.Execute(context.Background(), domain.ListingFilters{Purpose: &rent}, 1, 9)
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.TotalCount)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "r2", res.Items[0].ID)
	assert.Equal(t, cover, *res.Items[0].ImageURL)
	assert.Equal(t, "https://signed.test/rent/r1.jpg", *res.Items[1].ImageURL)
}

func TestFindListingsRejectsInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockListingStoragePort(ctrl)
	uc := NewFindListingsUseCase(store, mocks.NewMockImageMirrorPort(ctrl), time.Hour)

	_, err := uc.Execute(context.Background(), domain.ListingFilters{}, 0, 9)
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)

	lo, hi := decimal.NewFromInt(10), decimal.NewFromInt(1)
	_, err = uc.Execute(context.Background(), domain.ListingFilters{MinArea: &lo, MaxArea: &hi}, 1, 9)
	assert.ErrorIs(t, err, domain.ErrInvalidFilters)
}

func TestFindListingsStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockListingStoragePort(ctrl)
	store.EXPECT().FindWithFilters(gomock.Any(), gomock.Any(), 9, 18).Return(nil, int64(0), errBoom)

	uc := NewFindListingsUseCase(store, mocks.NewMockImageMirrorPort(ctrl), time.Hour)
	_, err := uc.Execute(context.Background(), domain.ListingFilters{}, 3, 9)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
