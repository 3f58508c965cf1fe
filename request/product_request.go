package request

import (
	"time"

	"github.com/PayRam/go-storefront/internal/db"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	KindSeq     uint       `mapstructure:"kc_seq" validate:"required"`
	ColorSeq    uint       `mapstructure:"cc_seq" validate:"required"`
	SizeSeq     uint       `mapstructure:"sc_seq" validate:"required"`
	GenderSeq   uint       `mapstructure:"gc_seq" validate:"required"`
	MakerSeq    uint       `mapstructure:"m_seq" validate:"required"`
	Name        string     `mapstructure:"p_name" validate:"required,max=100"`
	Price       int        `mapstructure:"p_price" validate:"gte=0"`
	Stock       int        `mapstructure:"p_stock" validate:"gte=0"`
	Image       string     `mapstructure:"p_image"`
	Description string     `mapstructure:"p_description"`
	Date        *time.Time `mapstructure:"p_date"` // Defaults to now
}

type UpdateProductRequest struct {
	KindSeq     *uint      `mapstructure:"kc_seq"`
	ColorSeq    *uint      `mapstructure:"cc_seq"`
	SizeSeq     *uint      `mapstructure:"sc_seq"`
	GenderSeq   *uint      `mapstructure:"gc_seq"`
	MakerSeq    *uint      `mapstructure:"m_seq"`
	Name        *string    `mapstructure:"p_name" validate:"omitempty,max=100"`
	Price       *int       `mapstructure:"p_price" validate:"omitempty,gte=0"`
	Stock       *int       `mapstructure:"p_stock" validate:"omitempty,gte=0"`
	Image       *string    `mapstructure:"p_image"`
	Description *string    `mapstructure:"p_description"`
	Date        *time.Time `mapstructure:"p_date"`
}

// Searchable product columns. Aliases match the joins of the product query.
var (
	makerNameColumn   = db.MustColumn("ma.m_name")
	productNameColumn = db.MustColumn("p.p_name")
	colorNameColumn   = db.MustColumn("cc.cc_name")
	kindNameColumn    = db.MustColumn("kc.kc_name")
)

// ProductSearchRequest holds the optional filters of a product search.
type ProductSearchRequest struct {
	Maker    *string `mapstructure:"maker"`   // Exact maker name
	Keywords *string `mapstructure:"kwds"`    // Whitespace separated, any may match the product name
	Color    *string `mapstructure:"color"`   // Exact color name
	Kind     *string `mapstructure:"kc_name"` // Exact kind name

	PaginationConditions `mapstructure:",squash"`
}

// Conditions returns the search filters in the order they are applied.
func (r ProductSearchRequest) Conditions() []db.QueryCondition {
	return []db.QueryCondition{
		db.ExactPtr(makerNameColumn, r.Maker),
		db.AnySubstringPtr(productNameColumn, r.Keywords),
		db.ExactPtr(colorNameColumn, r.Color),
		db.ExactPtr(kindNameColumn, r.Kind),
	}
}

func ApplyProductSearchRequest(req ProductSearchRequest, query *gorm.DB) *gorm.DB {
	return db.ApplyConditions(query, req.Conditions()...)
}
