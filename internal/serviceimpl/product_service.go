package serviceimpl

import (
	"context"
	"fmt"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/response"
	"github.com/PayRam/go-storefront/service"
	"github.com/PayRam/go-storefront/utils"
	"gorm.io/gorm"
)

const productViewColumns = "p.p_seq, p.kc_seq, p.cc_seq, p.sc_seq, p.gc_seq, p.m_seq, " +
	"p.p_name, p.p_price, p.p_stock, p.p_image, p.p_description, p.p_date, " +
	"cc.cc_name AS p_color, sc.sc_name AS p_size, gc.gc_name AS p_gender, " +
	"ma.m_name AS p_maker, kc.kc_name AS p_kind"

type productService struct {
	DB *gorm.DB
}

var _ service.ProductService = &productService{}

func NewProductService(db *gorm.DB) service.ProductService {
	return &productService{DB: db}
}

// productQuery joins product with every category table. Search filters refer
// to the aliases declared here.
func (s *productService) productQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("product p").
		Joins("INNER JOIN color_category cc ON p.cc_seq = cc.cc_seq").
		Joins("INNER JOIN gender_category gc ON p.gc_seq = gc.gc_seq").
		Joins("INNER JOIN size_category sc ON p.sc_seq = sc.sc_seq").
		Joins("INNER JOIN maker ma ON p.m_seq = ma.m_seq").
		Joins("INNER JOIN kind_category kc ON p.kc_seq = kc.kc_seq")
}

func (s *productService) listViews(query *gorm.DB, conditions request.PaginationConditions) ([]response.ProductView, int64, error) {
	var products []response.ProductView
	var count int64

	query = query.Session(&gorm.Session{})

	// Calculate total count before applying pagination
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, translateError(s.DB, err, "products")
	}

	query = request.ApplyPaginationConditions(query.Select(productViewColumns), conditions, "p.p_seq", request.OrderAsc)
	if err := query.Scan(&products).Error; err != nil {
		return nil, 0, translateError(s.DB, err, "products")
	}

	return products, count, nil
}

func (s *productService) ListProducts(ctx context.Context, req request.PaginationConditions) ([]response.ProductView, int64, error) {
	if err := validateRequest(req); err != nil {
		return nil, 0, err
	}
	return s.listViews(s.productQuery(ctx), req)
}

// SearchProducts filters products by maker, name keywords, color and kind.
// Filters left empty are ignored.
func (s *productService) SearchProducts(ctx context.Context, req request.ProductSearchRequest) ([]response.ProductView, int64, error) {
	if err := validateRequest(req); err != nil {
		return nil, 0, err
	}

	query := request.ApplyProductSearchRequest(req, s.productQuery(ctx))
	return s.listViews(query, req.PaginationConditions)
}

func (s *productService) GetProduct(ctx context.Context, seq uint) (*response.ProductView, error) {
	var product response.ProductView

	result := s.productQuery(ctx).
		Select(productViewColumns).
		Where("p.p_seq = ?", seq).
		Limit(1).
		Scan(&product)
	if result.Error != nil {
		return nil, translateError(s.DB, result.Error, fmt.Sprintf("product %d", seq))
	}
	if result.RowsAffected == 0 {
		return nil, service.NotFound("product %d not found", seq)
	}

	return &product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req request.CreateProductRequest) (*models.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		KindSeq:     req.KindSeq,
		ColorSeq:    req.ColorSeq,
		SizeSeq:     req.SizeSeq,
		GenderSeq:   req.GenderSeq,
		MakerSeq:    req.MakerSeq,
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Description: req.Description,
		Date:        utils.TimeOrNow(req.Date),
	}
	return createRow(ctx, s.DB, "product", product)
}

func (s *productService) UpdateProduct(ctx context.Context, seq uint, req request.UpdateProductRequest) (*models.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.KindSeq != nil {
		updates["kc_seq"] = *req.KindSeq
	}
	if req.ColorSeq != nil {
		updates["cc_seq"] = *req.ColorSeq
	}
	if req.SizeSeq != nil {
		updates["sc_seq"] = *req.SizeSeq
	}
	if req.GenderSeq != nil {
		updates["gc_seq"] = *req.GenderSeq
	}
	if req.MakerSeq != nil {
		updates["m_seq"] = *req.MakerSeq
	}
	if req.Name != nil {
		updates["p_name"] = *req.Name
	}
	if req.Price != nil {
		updates["p_price"] = *req.Price
	}
	if req.Stock != nil {
		updates["p_stock"] = *req.Stock
	}
	if req.Image != nil {
		updates["p_image"] = *req.Image
	}
	if req.Description != nil {
		updates["p_description"] = *req.Description
	}
	if req.Date != nil {
		updates["p_date"] = *req.Date
	}

	return updateRow[models.Product](ctx, s.DB, "product", seq, updates)
}

func (s *productService) DeleteProduct(ctx context.Context, seq uint) error {
	return deleteRow[models.Product](ctx, s.DB, "product", seq)
}
