package request

import "time"

type CreateRefundRequest struct {
	PurchaseSeq   uint       `mapstructure:"b_seq" validate:"required"`
	UserSeq       uint       `mapstructure:"u_seq" validate:"required"`
	StaffSeq      *uint      `mapstructure:"s_seq"`
	Date          *time.Time `mapstructure:"ref_date"` // Defaults to now
	ReasonSeq     int        `mapstructure:"ref_re_seq" validate:"gte=0"`
	ReasonContent string     `mapstructure:"ref_re_content"`
}

type UpdateRefundRequest struct {
	StaffSeq      *uint      `mapstructure:"s_seq"`
	Date          *time.Time `mapstructure:"ref_date"`
	ReasonSeq     *int       `mapstructure:"ref_re_seq" validate:"omitempty,gte=0"`
	ReasonContent *string    `mapstructure:"ref_re_content"`
}
