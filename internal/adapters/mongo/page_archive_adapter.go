package mongo_adapter

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPageArchiveAdapter хранит последнюю сырую копию каждой страницы внешнего API.
type MongoPageArchiveAdapter struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoPageArchiveAdapter(db *mongo.Database, collectionName string) (*MongoPageArchiveAdapter, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo.Database cannot be nil")
	}
	if collectionName == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}
	return &MongoPageArchiveAdapter{
		collection: db.Collection(collectionName),
		now:        time.Now,
	}, nil
}

type archivedLocation struct {
	Name       string `bson:"name"`
	ExternalID string `bson:"externalId,omitempty"`
}

type archivedListing struct {
	ID               string             `bson:"id"`
	Title            string             `bson:"title"`
	Purpose          string             `bson:"purpose"`
	Price            string             `bson:"price"`
	Rooms            int                `bson:"rooms"`
	Baths            int                `bson:"baths"`
	Area             string             `bson:"area"`
	RentFrequency    *string            `bson:"rentFrequency,omitempty"`
	Locations        []archivedLocation `bson:"locations"`
	CoverPhotoURL    string             `bson:"coverPhotoUrl,omitempty"`
	FurnishingStatus *string            `bson:"furnishingStatus,omitempty"`
	Lat              *float64           `bson:"lat,omitempty"`
	Lng              *float64           `bson:"lng,omitempty"`
}

type archivedPage struct {
	Key        string            `bson:"_id"`
	Purpose    string            `bson:"purpose"`
	Page       int               `bson:"page"`
	PageSize   int               `bson:"pageSize"`
	TotalCount int64             `bson:"totalCount"`
	Items      []archivedListing `bson:"items"`
	FetchedAt  time.Time         `bson:"fetchedAt"`
}

func archiveKey(p *domain.UpstreamPage) string {
	return fmt.Sprintf("%s:%d:%d", p.Purpose, p.Page, p.PageSize)
}

func toArchivedPage(p *domain.UpstreamPage, fetchedAt time.Time) archivedPage {
	items := make([]archivedListing, 0, len(p.Items))
	for _, l := range p.Items {
		doc := archivedListing{
			ID:               l.ID,
			Title:            l.Title,
			Purpose:          string(l.Purpose),
			Price:            l.Price.String(),
			Rooms:            l.Rooms,
			Baths:            l.Baths,
			Area:             l.Area.String(),
			RentFrequency:    l.RentFrequency,
			Locations:        make([]archivedLocation, 0, len(l.Locations)),
			CoverPhotoURL:    l.CoverPhotoURL,
			FurnishingStatus: l.FurnishingStatus,
		}
		for _, loc := range l.Locations {
			doc.Locations = append(doc.Locations, archivedLocation{Name: loc.Name, ExternalID: loc.ExternalID})
		}
		if l.Geography != nil {
			lat, lng := l.Geography.Lat, l.Geography.Lng
			doc.Lat, doc.Lng = &lat, &lng
		}
		items = append(items, doc)
	}
	return archivedPage{
		Key:        archiveKey(p),
		Purpose:    string(p.Purpose),
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		Items:      items,
		FetchedAt:  fetchedAt.UTC(),
	}
}

// ArchivePage перезаписывает документ страницы целиком.
func (a *MongoPageArchiveAdapter) ArchivePage(ctx context.Context, page *domain.UpstreamPage) error {
	if page == nil {
		return nil
	}
	archiveLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MongoPageArchiveAdapter",
		"method":    "ArchivePage",
	})

	doc := toArchivedPage(page, a.now())
	opts := options.Replace().SetUpsert(true)
	if _, err := a.collection.ReplaceOne(ctx, bson.M{"_id": doc.Key}, doc, opts); err != nil {
		archiveLogger.Error("Failed to archive upstream page", err, port.Fields{"key": doc.Key})
		return fmt.Errorf("failed to archive page %s: %w", doc.Key, err)
	}
	archiveLogger.Debug("Upstream page archived", port.Fields{"key": doc.Key, "items": len(doc.Items)})
	return nil
}
