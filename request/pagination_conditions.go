package request

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

type PaginationConditions struct {
	Limit  *int    `mapstructure:"limit" validate:"omitempty,gte=0"`                       // Pagination limit
	Offset *int    `mapstructure:"offset" validate:"omitempty,gte=0"`                      // Pagination offset
	Order  *string `mapstructure:"order" validate:"omitempty,oneof=asc desc ASC DESC"` // ASC or DESC
}

// ApplyPaginationConditions orders query by sortBy and applies limit and offset.
// sortBy is chosen by the caller, never taken from the request.
func ApplyPaginationConditions(query *gorm.DB, conditions PaginationConditions, sortBy, defaultOrder string) *gorm.DB {
	if conditions.Offset != nil && *conditions.Offset > 0 {
		query = query.Offset(*conditions.Offset)
	}

	order := defaultOrder
	if conditions.Order != nil && *conditions.Order != "" {
		order = strings.ToUpper(*conditions.Order)
	}
	if order != OrderDesc {
		order = OrderAsc
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	if conditions.Limit != nil && *conditions.Limit > 0 {
		query = query.Limit(*conditions.Limit)
	}

	return query
}
