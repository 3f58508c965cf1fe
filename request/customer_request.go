package request

type CreateCustomerRequest struct {
	Email        string `mapstructure:"cEmail" validate:"required,email,max=100"`
	PhoneNumber  string `mapstructure:"cPhoneNumber" validate:"required,max=20"`
	Name         string `mapstructure:"cName" validate:"required,max=50"`
	Password     string `mapstructure:"cPassword" validate:"required"`
	ProfileImage []byte `mapstructure:"-"`
}

func (r *CreateCustomerRequest) SetImage(image []byte) {
	r.ProfileImage = image
}

type UpdateCustomerRequest struct {
	Email        *string `mapstructure:"cEmail" validate:"omitempty,email,max=100"`
	PhoneNumber  *string `mapstructure:"cPhoneNumber" validate:"omitempty,max=20"`
	Name         *string `mapstructure:"cName" validate:"omitempty,max=50"`
	Password     *string `mapstructure:"cPassword"`
	ProfileImage []byte  `mapstructure:"-"` // Left unchanged when nil
}

func (r *UpdateCustomerRequest) SetImage(image []byte) {
	r.ProfileImage = image
}
