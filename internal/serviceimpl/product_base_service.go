package serviceimpl

import (
	"context"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"gorm.io/gorm"
)

type productBaseService struct {
	DB *gorm.DB
}

var _ service.ProductBaseService = &productBaseService{}

func NewProductBaseService(db *gorm.DB) service.ProductBaseService {
	return &productBaseService{DB: db}
}

func (s *productBaseService) ListProductBases(ctx context.Context, req request.PaginationConditions) ([]models.ProductBase, int64, error) {
	return listRows[models.ProductBase](ctx, s.DB, "product base", "id", req)
}

func (s *productBaseService) GetProductBase(ctx context.Context, id uint) (*models.ProductBase, error) {
	return getRow[models.ProductBase](ctx, s.DB, "product base", id)
}

func (s *productBaseService) CreateProductBase(ctx context.Context, req request.CreateProductBaseRequest) (*models.ProductBase, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	productBase := &models.ProductBase{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Gender:      req.Gender,
		Status:      req.Status,
		FeatureType: req.FeatureType,
		Category:    req.Category,
		ModelNumber: req.ModelNumber,
	}
	return createRow(ctx, s.DB, "product base", productBase)
}

func (s *productBaseService) UpdateProductBase(ctx context.Context, id uint, req request.UpdateProductBaseRequest) (*models.ProductBase, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["pName"] = *req.Name
	}
	if req.Description != nil {
		updates["pDescription"] = *req.Description
	}
	if req.Color != nil {
		updates["pColor"] = *req.Color
	}
	if req.Gender != nil {
		updates["pGender"] = *req.Gender
	}
	if req.Status != nil {
		updates["pStatus"] = *req.Status
	}
	if req.FeatureType != nil {
		updates["pFeatureType"] = *req.FeatureType
	}
	if req.Category != nil {
		updates["pCategory"] = *req.Category
	}
	if req.ModelNumber != nil {
		updates["pModelNumber"] = *req.ModelNumber
	}

	return updateRow[models.ProductBase](ctx, s.DB, "product base", id, updates)
}

func (s *productBaseService) DeleteProductBase(ctx context.Context, id uint) error {
	return deleteRow[models.ProductBase](ctx, s.DB, "product base", id)
}
