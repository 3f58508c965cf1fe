package request

import "github.com/shopspring/decimal"

type CreateBranchRequest struct {
	Phone   string           `mapstructure:"br_phone" validate:"required,max=20"`
	Address string           `mapstructure:"br_address" validate:"required,max=255"`
	Name    string           `mapstructure:"br_name" validate:"required,max=100"`
	Lat     *decimal.Decimal `mapstructure:"br_lat" validate:"required"`
	Lng     *decimal.Decimal `mapstructure:"br_lng" validate:"required"`
}

type UpdateBranchRequest struct {
	Phone   *string          `mapstructure:"br_phone" validate:"omitempty,max=20"`
	Address *string          `mapstructure:"br_address" validate:"omitempty,max=255"`
	Name    *string          `mapstructure:"br_name" validate:"omitempty,max=100"`
	Lat     *decimal.Decimal `mapstructure:"br_lat"`
	Lng     *decimal.Decimal `mapstructure:"br_lng"`
}
