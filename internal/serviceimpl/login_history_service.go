package serviceimpl

import (
	"context"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"github.com/PayRam/go-storefront/utils"
	"gorm.io/gorm"
)

type loginHistoryService struct {
	DB *gorm.DB
}

var _ service.LoginHistoryService = &loginHistoryService{}

func NewLoginHistoryService(db *gorm.DB) service.LoginHistoryService {
	return &loginHistoryService{DB: db}
}

func (s *loginHistoryService) ListLoginHistory(ctx context.Context, req request.PaginationConditions) ([]models.LoginHistory, int64, error) {
	return listRows[models.LoginHistory](ctx, s.DB, "login history", "id", req)
}

func (s *loginHistoryService) GetLoginHistory(ctx context.Context, id uint) (*models.LoginHistory, error) {
	return getRow[models.LoginHistory](ctx, s.DB, "login history", id)
}

func (s *loginHistoryService) CreateLoginHistory(ctx context.Context, req request.CreateLoginHistoryRequest) (*models.LoginHistory, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	entry := &models.LoginHistory{
		CustomerID:    req.CustomerID,
		LoginTime:     utils.TimeOrNow(req.LoginTime),
		Status:        req.Status,
		Version:       req.Version,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	}
	return createRow(ctx, s.DB, "login history", entry)
}

func (s *loginHistoryService) UpdateLoginHistory(ctx context.Context, id uint, req request.UpdateLoginHistoryRequest) (*models.LoginHistory, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.CustomerID != nil {
		updates["cid"] = *req.CustomerID
	}
	if req.LoginTime != nil {
		updates["loginTime"] = *req.LoginTime
	}
	if req.Status != nil {
		updates["lStatus"] = *req.Status
	}
	if req.Version != nil {
		updates["lVersion"] = *req.Version
	}
	if req.Address != nil {
		updates["lAddress"] = *req.Address
	}
	if req.PaymentMethod != nil {
		updates["lPaymentMethod"] = *req.PaymentMethod
	}

	return updateRow[models.LoginHistory](ctx, s.DB, "login history", id, updates)
}

func (s *loginHistoryService) DeleteLoginHistory(ctx context.Context, id uint) error {
	return deleteRow[models.LoginHistory](ctx, s.DB, "login history", id)
}
