package request

import "time"

type CreateStaffRequest struct {
	LoginID   string     `mapstructure:"s_id" validate:"required,max=50"`
	BranchSeq uint       `mapstructure:"br_seq" validate:"required"`
	Password  string     `mapstructure:"s_password" validate:"required"`
	Rank      string     `mapstructure:"s_rank" validate:"required,max=20"`
	Phone     string     `mapstructure:"s_phone" validate:"required,max=20"`
	Name      string     `mapstructure:"s_name" validate:"required,max=50"`
	SuperSeq  *uint      `mapstructure:"s_superseq"`
	QuitDate  *time.Time `mapstructure:"s_quit_date"`
	Image     []byte     `mapstructure:"-"`
}

func (r *CreateStaffRequest) SetImage(image []byte) {
	r.Image = image
}

type UpdateStaffRequest struct {
	LoginID   *string    `mapstructure:"s_id" validate:"omitempty,max=50"`
	BranchSeq *uint      `mapstructure:"br_seq"`
	Password  *string    `mapstructure:"s_password"`
	Rank      *string    `mapstructure:"s_rank" validate:"omitempty,max=20"`
	Phone     *string    `mapstructure:"s_phone" validate:"omitempty,max=20"`
	Name      *string    `mapstructure:"s_name" validate:"omitempty,max=50"`
	SuperSeq  *uint      `mapstructure:"s_superseq"`
	QuitDate  *time.Time `mapstructure:"s_quit_date"`
	Image     []byte     `mapstructure:"-"`
}

func (r *UpdateStaffRequest) SetImage(image []byte) {
	r.Image = image
}
