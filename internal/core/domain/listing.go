package domain

import (
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/shopspring/decimal"
)

const (
	UnknownLocation  = "Unknown"
	GeohashPrecision = 7
)

// RentFrequency - периодичность оплаты аренды.
type RentFrequency string

const (
	RentYearly  RentFrequency = "YEARLY"
	RentMonthly RentFrequency = "MONTHLY"
	RentWeekly  RentFrequency = "WEEKLY"
	RentDaily   RentFrequency = "DAILY"
)

func ParseRentFrequency(raw string) (RentFrequency, bool) {
	rf := RentFrequency(strings.ToUpper(strings.TrimSpace(raw)))
	switch rf {
	case RentYearly, RentMonthly, RentWeekly, RentDaily:
		return rf, true
	}
	return "", false
}

type Location struct {
	Name       string
	ExternalID string
}

type Geography struct {
	Lat float64
	Lng float64
}

// UpstreamListing - объявление в том виде, в каком его отдает внешний API.
type UpstreamListing struct {
	ID               string
	Title            string
	Purpose          UpstreamPurpose
	Price            decimal.Decimal
	Rooms            int
	Baths            int
	Area             decimal.Decimal
	RentFrequency    *string
	Locations        []Location
	CoverPhotoURL    string
	Description      string
	FurnishingStatus *string
	Geography        *Geography
}

// StoredListing - строка таблицы listings.
type StoredListing struct {
	ID               string
	Title            string
	Purpose          Purpose
	Price            decimal.Decimal
	Rooms            int
	Baths            int
	Area             decimal.Decimal
	RentFrequency    *RentFrequency
	Location         string
	Description      string
	FurnishingStatus *string
	ImageKey         *string
	CoverPhotoURL    *string
	Geohash          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// ImageURL заполняется на каждый запрос и никогда не сохраняется.
	ImageURL *string
}

// ToStored конвертирует объявление внешнего API в форму хранилища.
// ImageKey не заполняется: он появляется только после успешного зеркалирования.
func (u UpstreamListing) ToStored(purpose Purpose) StoredListing {
	location := UnknownLocation
	if len(u.Locations) > 0 {
		if name := NormalizeLocation(u.Locations[0].Name); name != "" {
			location = name
		}
	}

	var rentFrequency *RentFrequency
	if u.RentFrequency != nil {
		if rf, ok := ParseRentFrequency(*u.RentFrequency); ok {
			rentFrequency = &rf
		}
	}

	var cover *string
	if u.CoverPhotoURL != "" {
		c := u.CoverPhotoURL
		cover = &c
	}

	var hash *string
	if u.Geography != nil && (u.Geography.Lat != 0 || u.Geography.Lng != 0) {
		h := geohash.EncodeWithPrecision(u.Geography.Lat, u.Geography.Lng, GeohashPrecision)
		hash = &h
	}

	return StoredListing{
		ID:               strings.TrimSpace(u.ID),
		Title:            strings.TrimSpace(u.Title),
		Purpose:          purpose,
		Price:            u.Price,
		Rooms:            u.Rooms,
		Baths:            u.Baths,
		Area:             u.Area,
		RentFrequency:    rentFrequency,
		Location:         location,
		Description:      u.Description,
		FurnishingStatus: u.FurnishingStatus,
		CoverPhotoURL:    cover,
		Geohash:          hash,
	}
}

// ImageObjectKey - ключ объекта в бакете: {purpose}/{id}.jpg
func ImageObjectKey(purpose Purpose, id string) string {
	return string(purpose) + "/" + id + ".jpg"
}
