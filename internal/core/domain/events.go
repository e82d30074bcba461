package domain

import "time"

// BackfillEvent публикуется после того, как страница была догружена из внешнего API.
type BackfillEvent struct {
	Purpose    Purpose
	Page       int
	PageSize   int
	IDs        []string
	TotalCount int64
	OccurredAt time.Time
}

// InvalidationCommand - команда сброса кэша. Page == nil означает все страницы назначения.
type InvalidationCommand struct {
	Purpose Purpose
	Page    *int
}
