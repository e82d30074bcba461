package domain

// CacheEntry - одна позиция закэшированной страницы.
type CacheEntry struct {
	SerialNumber int    `json:"serialNumber"`
	ID           string `json:"id"`
}

// BuildCacheEntries нумерует id сквозным образом: (page-1)*pageSize + idx + 1.
func BuildCacheEntries(page, pageSize int, ids []string) []CacheEntry {
	entries := make([]CacheEntry, 0, len(ids))
	base := (page - 1) * pageSize
	for i, id := range ids {
		entries = append(entries, CacheEntry{SerialNumber: base + i + 1, ID: id})
	}
	return entries
}

func CacheEntryIDs(entries []CacheEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}
