package request

// CategoryKind names one of the product reference tables.
type CategoryKind string

const (
	CategoryKindOfProduct CategoryKind = "kind"
	CategoryColor         CategoryKind = "color"
	CategorySize          CategoryKind = "size"
	CategoryGender        CategoryKind = "gender"
	CategoryMaker         CategoryKind = "maker"
)

// Valid reports whether k names a known reference table.
func (k CategoryKind) Valid() bool {
	switch k {
	case CategoryKindOfProduct, CategoryColor, CategorySize, CategoryGender, CategoryMaker:
		return true
	}
	return false
}

type CreateCategoryRequest struct {
	Name string `mapstructure:"name" validate:"required,max=100"`
}
