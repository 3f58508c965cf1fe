package request

import "time"

type CreateLoginHistoryRequest struct {
	CustomerID    uint       `mapstructure:"cid" validate:"required"`
	LoginTime     *time.Time `mapstructure:"loginTime"` // Defaults to now
	Status        string     `mapstructure:"lStatus" validate:"required,max=20"`
	Version       float64    `mapstructure:"lVersion"`
	Address       string     `mapstructure:"lAddress" validate:"max=255"`
	PaymentMethod string     `mapstructure:"lPaymentMethod" validate:"max=50"`
}

type UpdateLoginHistoryRequest struct {
	CustomerID    *uint      `mapstructure:"cid"`
	LoginTime     *time.Time `mapstructure:"loginTime"`
	Status        *string    `mapstructure:"lStatus" validate:"omitempty,max=20"`
	Version       *float64   `mapstructure:"lVersion"`
	Address       *string    `mapstructure:"lAddress" validate:"omitempty,max=255"`
	PaymentMethod *string    `mapstructure:"lPaymentMethod" validate:"omitempty,max=50"`
}
