package serviceimpl

import (
	"context"
	"fmt"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/response"
	"github.com/PayRam/go-storefront/service"
	"gorm.io/gorm"
)

type categoryTable struct {
	name       string
	seqColumn  string
	nameColumn string
}

var categoryTables = map[request.CategoryKind]categoryTable{
	request.CategoryKindOfProduct: {name: "kind_category", seqColumn: "kc_seq", nameColumn: "kc_name"},
	request.CategoryColor:         {name: "color_category", seqColumn: "cc_seq", nameColumn: "cc_name"},
	request.CategorySize:          {name: "size_category", seqColumn: "sc_seq", nameColumn: "sc_name"},
	request.CategoryGender:        {name: "gender_category", seqColumn: "gc_seq", nameColumn: "gc_name"},
	request.CategoryMaker:         {name: "maker", seqColumn: "m_seq", nameColumn: "m_name"},
}

type categoryRow interface {
	PrimaryKey() uint
}

func newCategoryRow(kind request.CategoryKind, name string) categoryRow {
	switch kind {
	case request.CategoryKindOfProduct:
		return &models.KindCategory{Name: name}
	case request.CategoryColor:
		return &models.ColorCategory{Name: name}
	case request.CategorySize:
		return &models.SizeCategory{Name: name}
	case request.CategoryGender:
		return &models.GenderCategory{Name: name}
	default:
		return &models.Maker{Name: name}
	}
}

type categoryService struct {
	DB *gorm.DB
}

var _ service.CategoryService = &categoryService{}

func NewCategoryService(db *gorm.DB) service.CategoryService {
	return &categoryService{DB: db}
}

func lookupCategory(kind request.CategoryKind) (categoryTable, error) {
	if !kind.Valid() {
		return categoryTable{}, service.Validation("unknown category %q", kind)
	}
	return categoryTables[kind], nil
}

func (s *categoryService) ListCategories(ctx context.Context, kind request.CategoryKind) ([]response.Category, error) {
	table, err := lookupCategory(kind)
	if err != nil {
		return nil, err
	}

	categories := []response.Category{}
	err = s.DB.WithContext(ctx).
		Table(table.name).
		Select(fmt.Sprintf("%s AS seq, %s AS name", table.seqColumn, table.nameColumn)).
		Order(table.seqColumn).
		Scan(&categories).Error
	if err != nil {
		return nil, translateError(s.DB, err, table.name)
	}

	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, kind request.CategoryKind, req request.CreateCategoryRequest) (*response.Category, error) {
	table, err := lookupCategory(kind)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	row := newCategoryRow(kind, req.Name)
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, translateError(s.DB, err, fmt.Sprintf("%s %q", table.name, req.Name))
	}

	return &response.Category{Seq: row.PrimaryKey(), Name: req.Name}, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, kind request.CategoryKind, seq uint) error {
	table, err := lookupCategory(kind)
	if err != nil {
		return err
	}

	what := fmt.Sprintf("%s %d", table.name, seq)
	result := s.DB.WithContext(ctx).Delete(newCategoryRow(kind, ""), seq)
	if result.Error != nil {
		return translateError(s.DB, result.Error, what)
	}
	if result.RowsAffected == 0 {
		return service.NotFound("%s not found", what)
	}
	return nil
}
