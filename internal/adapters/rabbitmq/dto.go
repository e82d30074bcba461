package rabbitmq

import "time"

// BackfillEventDTO - тело сообщения listings.backfilled.
type BackfillEventDTO struct {
	EventID    string    `json:"event_id"`
	Purpose    string    `json:"purpose"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	IDs        []string  `json:"ids"`
	TotalCount int64     `json:"total_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CacheInvalidationCommandDTO - тело команды сброса кэша. Формат проверяется JSON-схемой.
type CacheInvalidationCommandDTO struct {
	Purpose string `json:"purpose"`
	Page    *int   `json:"page"`
}
