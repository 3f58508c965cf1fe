package serviceimpl

import (
	"context"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"github.com/PayRam/go-storefront/utils"
	"gorm.io/gorm"
)

type purchaseItemService struct {
	DB *gorm.DB
}

var _ service.PurchaseItemService = &purchaseItemService{}

func NewPurchaseItemService(db *gorm.DB) service.PurchaseItemService {
	return &purchaseItemService{DB: db}
}

func (s *purchaseItemService) ListPurchaseItems(ctx context.Context, req request.PaginationConditions) ([]models.PurchaseItem, int64, error) {
	return listRows[models.PurchaseItem](ctx, s.DB, "purchase item", "b_seq", req)
}

func (s *purchaseItemService) GetPurchaseItem(ctx context.Context, seq uint) (*models.PurchaseItem, error) {
	return getRow[models.PurchaseItem](ctx, s.DB, "purchase item", seq)
}

func (s *purchaseItemService) CreatePurchaseItem(ctx context.Context, req request.CreatePurchaseItemRequest) (*models.PurchaseItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	item := &models.PurchaseItem{
		BranchSeq:  req.BranchSeq,
		UserSeq:    req.UserSeq,
		ProductSeq: req.ProductSeq,
		Price:      req.Price,
		Quantity:   req.Quantity,
		Date:       utils.TimeOrNow(req.Date),
		Status:     req.Status,
	}
	return createRow(ctx, s.DB, "purchase item", item)
}

func (s *purchaseItemService) UpdatePurchaseItem(ctx context.Context, seq uint, req request.UpdatePurchaseItemRequest) (*models.PurchaseItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.BranchSeq != nil {
		updates["br_seq"] = *req.BranchSeq
	}
	if req.Price != nil {
		updates["b_price"] = *req.Price
	}
	if req.Quantity != nil {
		updates["b_quantity"] = *req.Quantity
	}
	if req.Date != nil {
		updates["b_date"] = *req.Date
	}
	if req.Status != nil {
		updates["b_status"] = *req.Status
	}

	return updateRow[models.PurchaseItem](ctx, s.DB, "purchase item", seq, updates)
}

func (s *purchaseItemService) DeletePurchaseItem(ctx context.Context, seq uint) error {
	return deleteRow[models.PurchaseItem](ctx, s.DB, "purchase item", seq)
}
