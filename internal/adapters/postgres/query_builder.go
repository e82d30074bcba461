package postgres_adapter

import (
	"fmt"
	"listing-service/internal/core/domain"
	"strings"

	"github.com/shopspring/decimal"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{argID: 1}
}

// addCondition: condition содержит два глагола: имя колонки и номер аргумента.
func (qb *queryBuilder) addCondition(condition string, column string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, column, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

func (qb *queryBuilder) addDecimalRange(column string, min, max *decimal.Decimal) {
	if min != nil {
		qb.addCondition("%s >= $%d", column, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", column, *max)
	}
}

func (qb *queryBuilder) addIntRange(column string, min, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", column, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", column, *max)
	}
}

// nextArg добавляет аргумент без условия (LIMIT/OFFSET) и возвращает его плейсхолдер.
func (qb *queryBuilder) nextArg(arg interface{}) string {
	qb.args = append(qb.args, arg)
	placeholder := fmt.Sprintf("$%d", qb.argID)
	qb.argID++
	return placeholder
}

func (qb *queryBuilder) where() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

// applyFilters переводит фильтры в WHERE и аргументы.
func applyFilters(filters domain.ListingFilters) *queryBuilder {
	qb := newQueryBuilder()

	if filters.Purpose != nil {
		qb.addCondition("%s = $%d", "purpose", string(*filters.Purpose))
	}
	qb.addDecimalRange("price", filters.MinPrice, filters.MaxPrice)
	qb.addDecimalRange("area", filters.MinArea, filters.MaxArea)
	qb.addIntRange("rooms", filters.MinRooms, filters.MaxRooms)
	qb.addIntRange("baths", filters.MinBaths, filters.MaxBaths)

	if filters.RentFrequency != nil {
		qb.addCondition("%s = $%d", "rent_frequency", string(*filters.RentFrequency))
	}
	// Поиск подстроки без учета регистра
	if filters.Location != nil && strings.TrimSpace(*filters.Location) != "" {
		qb.addCondition("lower(%s) LIKE $%d", "location", "%"+escapeLike(strings.ToLower(strings.TrimSpace(*filters.Location)))+"%")
	}
	if filters.FurnishingStatus != nil && *filters.FurnishingStatus != "" {
		qb.addCondition("%s = $%d", "furnishing_status", *filters.FurnishingStatus)
	}
	return qb
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
