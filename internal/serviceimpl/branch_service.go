package serviceimpl

import (
	"context"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"gorm.io/gorm"
)

type branchService struct {
	DB *gorm.DB
}

var _ service.BranchService = &branchService{}

func NewBranchService(db *gorm.DB) service.BranchService {
	return &branchService{DB: db}
}

func (s *branchService) ListBranches(ctx context.Context, req request.PaginationConditions) ([]models.Branch, int64, error) {
	return listRows[models.Branch](ctx, s.DB, "branch", "br_seq", req)
}

func (s *branchService) GetBranch(ctx context.Context, seq uint) (*models.Branch, error) {
	return getRow[models.Branch](ctx, s.DB, "branch", seq)
}

func (s *branchService) CreateBranch(ctx context.Context, req request.CreateBranchRequest) (*models.Branch, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	branch := &models.Branch{
		Phone:   req.Phone,
		Address: req.Address,
		Name:    req.Name,
		Lat:     *req.Lat,
		Lng:     *req.Lng,
	}
	return createRow(ctx, s.DB, "branch", branch)
}

func (s *branchService) UpdateBranch(ctx context.Context, seq uint, req request.UpdateBranchRequest) (*models.Branch, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Phone != nil {
		updates["br_phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["br_address"] = *req.Address
	}
	if req.Name != nil {
		updates["br_name"] = *req.Name
	}
	if req.Lat != nil {
		updates["br_lat"] = *req.Lat
	}
	if req.Lng != nil {
		updates["br_lng"] = *req.Lng
	}

	return updateRow[models.Branch](ctx, s.DB, "branch", seq, updates)
}

func (s *branchService) DeleteBranch(ctx context.Context, seq uint) error {
	return deleteRow[models.Branch](ctx, s.DB, "branch", seq)
}
