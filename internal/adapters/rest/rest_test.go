package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port/usecases_port/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	router http.Handler
	pageUC *mocks.MockPropertyHandlerPort
	findUC *mocks.MockFindListingsPort
}

func newTestEnv(t *testing.T, rps float64) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	pageUC := mocks.NewMockPropertyHandlerPort(ctrl)
	findUC := mocks.NewMockFindListingsPort(ctrl)
	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})

	router := NewRouter(ServerConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		RateLimitRPS:   rps,
		RateLimitBurst: 2,
	}, NewPropertyHandler(pageUC, findUC, 9), logger)
	return &testEnv{router: router, pageUC: pageUC, findUC: findUC}
}

func (e *testEnv) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func sampleListing(id string) domain.StoredListing {
	monthly := domain.RentMonthly
	img := "https://signed.test/rent/" + id + ".jpg"
	return domain.StoredListing{
		ID:            id,
		Title:         "Flat " + id,
		Purpose:       domain.PurposeRent,
		Price:         decimal.RequireFromString("85000.50"),
		Rooms:         2,
		Baths:         1,
		Area:          decimal.NewFromInt(90),
		RentFrequency: &monthly,
		Location:      "Dubai Marina",
		ImageURL:      &img,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetPropertiesSuccess(t *testing.T) {
	env := newTestEnv(t, 0)
	env.pageUC.EXPECT().
		GetPage(gomock.Any(), domain.PageRequest{Purpose: domain.PurposeRent, Page: 2, PageSize: 9}).
		Return(&domain.ListingsPage{
			Items:      []domain.StoredListing{sampleListing("1"), sampleListing("2")},
			TotalCount: 19,
			Page:       2,
			PageSize:   9,
			Source:     domain.SourceCache,
		}, nil)

	rec := env.do(http.MethodGet, "/api/v1/properties?purpose=for-rent&page=2")
	require.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get("X-Trace-ID"))
	assert.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(19), body["nbHits"])
	assert.Equal(t, float64(2), body["currentPage"])
	assert.Equal(t, float64(3), body["totalPages"])
	assert.Equal(t, float64(9), body["hitsPerPage"])

	hits := body["hits"].([]interface{})
	require.Len(t, hits, 2)
	first := hits[0].(map[string]interface{})
	assert.Equal(t, "1", first["id"])
	assert.Equal(t, "for-rent", first["purpose"])
	assert.Equal(t, 85000.5, first["price"])
	assert.Equal(t, "MONTHLY", first["rentFrequency"])
	assert.Equal(t, "https://signed.test/rent/1.jpg", first["imageUrl"])
}

func TestGetPropertiesBadRequest(t *testing.T) {
	env := newTestEnv(t, 0)

	for _, target := range []string{
		"/api/v1/properties",
		"/api/v1/properties?purpose=lease",
		"/api/v1/properties?purpose=buy&page=0",
		"/api/v1/properties?purpose=buy&page=abc",
		"/api/v1/properties?purpose=buy&hitsPerPage=1000",
	} {
		rec := env.do(http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGetPropertiesErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&domain.FetchError{Purpose: domain.UpstreamForSale, Page: 1, StatusCode: 429, Reason: "unexpected status"}, http.StatusBadGateway},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		env := newTestEnv(t, 0)
		env.pageUC.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(nil, tc.err)

		rec := env.do(http.MethodGet, "/api/v1/properties?purpose=for-sale")
		assert.Equal(t, tc.want, rec.Code, tc.err.Error())
		assert.Contains(t, rec.Body.String(), `"error"`)
	}
}

func TestSearchProperties(t *testing.T) {
	env := newTestEnv(t, 0)
	env.findUC.EXPECT().
		Execute(gomock.Any(), gomock.Any(), 1, 5).
		DoAndReturn(func(_ context.Context, f domain.ListingFilters, page, size int) (*domain.FilteredListings, error) {
			require.NotNil(t, f.Purpose)
			assert.Equal(t, domain.PurposeRent, *f.Purpose)
			require.NotNil(t, f.MinPrice)
			assert.True(t, f.MinPrice.Equal(decimal.NewFromInt(1000)))
			require.NotNil(t, f.MaxRooms)
			assert.Equal(t, 3, *f.MaxRooms)
			require.NotNil(t, f.RentFrequency)
			assert.Equal(t, domain.RentYearly, *f.RentFrequency)
			require.NotNil(t, f.Location)
			assert.Equal(t, "marina", *f.Location)
			return &domain.FilteredListings{Items: []domain.StoredListing{sampleListing("9")}, TotalCount: 11, Page: 1, PageSize: 5}, nil
		})

	rec := env.do(http.MethodGet, "/api/v1/properties/search?purpose=for-rent&minPrice=1000&maxRooms=3&rentFrequency=yearly&location=marina&hitsPerPage=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var body PropertiesPageDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body.NbHits)
	assert.Equal(t, int64(3), body.TotalPages)
	require.Len(t, body.Hits, 1)
}

func TestSearchPropertiesBadFilters(t *testing.T) {
	env := newTestEnv(t, 0)

	for _, target := range []string{
		"/api/v1/properties/search?minPrice=cheap",
		"/api/v1/properties/search?rentFrequency=hourly",
		"/api/v1/properties/search?purpose=lease",
		"/api/v1/properties/search?minRooms=1.5",
	} {
		rec := env.do(http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}

	env.findUC.EXPECT().Execute(gomock.Any(), gomock.Any(), 1, 9).
		Return(nil, domain.ErrInvalidFilters)
	rec := env.do(http.MethodGet, "/api/v1/properties/search?minPrice=5&maxPrice=1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidateCache(t *testing.T) {
	env := newTestEnv(t, 0)

	env.pageUC.EXPECT().InvalidateCache(gomock.Any(), domain.PurposeBuy, gomock.Nil())
	rec := env.do(http.MethodDelete, "/api/v1/properties/cache?purpose=for-sale")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	env.pageUC.EXPECT().
		InvalidateCache(gomock.Any(), domain.PurposeRent, gomock.Any()).
		Do(func(_ context.Context, _ domain.Purpose, page *int) {
			require.NotNil(t, page)
			assert.Equal(t, 3, *page)
		})
	rec = env.do(http.MethodDelete, "/api/v1/properties/cache?purpose=rent&page=3")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodDelete, "/api/v1/properties/cache?purpose=rent&page=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCacheHealthAndLiveness(t *testing.T) {
	env := newTestEnv(t, 0)
	env.pageUC.EXPECT().CheckHealth(gomock.Any()).Return(false)

	rec := env.do(http.MethodGet, "/api/v1/properties/cache/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"healthy":false}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitPerClient(t *testing.T) {
	env := newTestEnv(t, 0.001)
	env.pageUC.EXPECT().CheckHealth(gomock.Any()).Return(true).Times(3)

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/cache/health", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("a"))
	now = now.Add(5 * time.Minute)
	assert.True(t, rl.allow("b"))
	assert.Len(t, rl.clients, 1)
}
