package bayutfetcher

import (
	"bytes"
	"encoding/json"
)

// bayutListResponse - ответ /properties/list. page нумеруется с 0.
type bayutListResponse struct {
	Hits        []bayutHit `json:"hits"`
	NbHits      int64      `json:"nbHits"`
	Page        int        `json:"page"`
	NbPages     int        `json:"nbPages"`
	HitsPerPage int        `json:"hitsPerPage"`
}

type bayutHit struct {
	ID               flexibleID       `json:"id"`
	ExternalID       string           `json:"externalID"`
	Title            string           `json:"title"`
	Purpose          string           `json:"purpose"`
	Price            float64          `json:"price"`
	Rooms            int              `json:"rooms"`
	Baths            int              `json:"baths"`
	Area             float64          `json:"area"`
	RentFrequency    *string          `json:"rentFrequency"`
	Location         []bayutLocation  `json:"location"`
	CoverPhoto       *bayutCoverPhoto `json:"coverPhoto"`
	Description      string           `json:"description"`
	FurnishingStatus *string          `json:"furnishingStatus"`
	Geography        *bayutGeography  `json:"geography"`
}

type bayutLocation struct {
	Name       string `json:"name"`
	ExternalID string `json:"externalID"`
	Level      int    `json:"level"`
}

type bayutCoverPhoto struct {
	URL string `json:"url"`
}

type bayutGeography struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// flexibleID принимает id и числом, и строкой.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}
