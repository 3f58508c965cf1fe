package request

import "time"

type CreatePurchaseItemRequest struct {
	BranchSeq  uint       `mapstructure:"br_seq" validate:"required"`
	UserSeq    uint       `mapstructure:"u_seq" validate:"required"`
	ProductSeq uint       `mapstructure:"p_seq" validate:"required"`
	Price      int        `mapstructure:"b_price" validate:"gte=0"`
	Quantity   int        `mapstructure:"b_quantity" validate:"required,gt=0"`
	Date       *time.Time `mapstructure:"b_date"` // Defaults to now
	Status     string     `mapstructure:"b_status" validate:"required,max=20"`
}

type UpdatePurchaseItemRequest struct {
	BranchSeq *uint      `mapstructure:"br_seq"`
	Price     *int       `mapstructure:"b_price" validate:"omitempty,gte=0"`
	Quantity  *int       `mapstructure:"b_quantity" validate:"omitempty,gt=0"`
	Date      *time.Time `mapstructure:"b_date"`
	Status    *string    `mapstructure:"b_status" validate:"omitempty,max=20"`
}
