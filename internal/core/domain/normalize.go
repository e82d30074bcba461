package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeLocation схлопывает пробелы и приводит название к виду "Dubai Marina".
func NormalizeLocation(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	// Caser хранит состояние, поэтому создаем новый на каждый вызов
	return cases.Title(language.English).String(strings.Join(fields, " "))
}
