package request

import "time"

type CreateUserRequest struct {
	LoginID  string     `mapstructure:"u_id" validate:"required,max=50"`
	Password string     `mapstructure:"u_password" validate:"required"`
	Name     string     `mapstructure:"u_name" validate:"required,max=50"`
	Phone    string     `mapstructure:"u_phone" validate:"required,max=20"`
	Address  string     `mapstructure:"u_address" validate:"max=255"`
	QuitDate *time.Time `mapstructure:"u_quit_date"`
	Image    []byte     `mapstructure:"-"`
}

func (r *CreateUserRequest) SetImage(image []byte) {
	r.Image = image
}

type UpdateUserRequest struct {
	Password *string    `mapstructure:"u_password"`
	Name     *string    `mapstructure:"u_name" validate:"omitempty,max=50"`
	Phone    *string    `mapstructure:"u_phone" validate:"omitempty,max=20"`
	Address  *string    `mapstructure:"u_address" validate:"omitempty,max=255"`
	QuitDate *time.Time `mapstructure:"u_quit_date"`
	Image    []byte     `mapstructure:"-"`
}

func (r *UpdateUserRequest) SetImage(image []byte) {
	r.Image = image
}
