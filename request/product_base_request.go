package request

type CreateProductBaseRequest struct {
	Name        string  `mapstructure:"pName" validate:"required,max=100"`
	Description *string `mapstructure:"pDescription"`
	Color       *string `mapstructure:"pColor" validate:"omitempty,max=50"`
	Gender      *string `mapstructure:"pGender" validate:"omitempty,max=20"`
	Status      *string `mapstructure:"pStatus" validate:"omitempty,max=20"`
	FeatureType *string `mapstructure:"pFeatureType" validate:"omitempty,max=50"`
	Category    *string `mapstructure:"pCategory" validate:"omitempty,max=50"`
	ModelNumber *string `mapstructure:"pModelNumber" validate:"omitempty,max=50"`
}

type UpdateProductBaseRequest struct {
	Name        *string `mapstructure:"pName" validate:"omitempty,max=100"`
	Description *string `mapstructure:"pDescription"`
	Color       *string `mapstructure:"pColor" validate:"omitempty,max=50"`
	Gender      *string `mapstructure:"pGender" validate:"omitempty,max=20"`
	Status      *string `mapstructure:"pStatus" validate:"omitempty,max=20"`
	FeatureType *string `mapstructure:"pFeatureType" validate:"omitempty,max=50"`
	Category    *string `mapstructure:"pCategory" validate:"omitempty,max=50"`
	ModelNumber *string `mapstructure:"pModelNumber" validate:"omitempty,max=50"`
}
