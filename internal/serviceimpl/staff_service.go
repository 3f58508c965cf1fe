package serviceimpl

import (
	"context"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"gorm.io/gorm"
)

type staffService struct {
	DB *gorm.DB
}

var _ service.StaffService = &staffService{}

func NewStaffService(db *gorm.DB) service.StaffService {
	return &staffService{DB: db}
}

func (s *staffService) ListStaff(ctx context.Context, req request.PaginationConditions) ([]models.Staff, int64, error) {
	return listRows[models.Staff](ctx, s.DB, "staff", "s_seq", req)
}

func (s *staffService) GetStaff(ctx context.Context, seq uint) (*models.Staff, error) {
	return getRow[models.Staff](ctx, s.DB, "staff", seq)
}

func (s *staffService) CreateStaff(ctx context.Context, req request.CreateStaffRequest) (*models.Staff, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	staff := &models.Staff{
		LoginID:   req.LoginID,
		BranchSeq: req.BranchSeq,
		Password:  req.Password,
		Image:     req.Image,
		Rank:      req.Rank,
		Phone:     req.Phone,
		Name:      req.Name,
		SuperSeq:  req.SuperSeq,
		QuitDate:  req.QuitDate,
	}
	return createRow(ctx, s.DB, "staff", staff)
}

func (s *staffService) UpdateStaff(ctx context.Context, seq uint, req request.UpdateStaffRequest) (*models.Staff, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.LoginID != nil {
		updates["s_id"] = *req.LoginID
	}
	if req.BranchSeq != nil {
		updates["br_seq"] = *req.BranchSeq
	}
	if req.Password != nil {
		updates["s_password"] = *req.Password
	}
	if req.Rank != nil {
		updates["s_rank"] = *req.Rank
	}
	if req.Phone != nil {
		updates["s_phone"] = *req.Phone
	}
	if req.Name != nil {
		updates["s_name"] = *req.Name
	}
	if req.SuperSeq != nil {
		updates["s_superseq"] = *req.SuperSeq
	}
	if req.QuitDate != nil {
		updates["s_quit_date"] = *req.QuitDate
	}
	if len(req.Image) > 0 {
		updates["s_image"] = req.Image
	}

	return updateRow[models.Staff](ctx, s.DB, "staff", seq, updates)
}

func (s *staffService) DeleteStaff(ctx context.Context, seq uint) error {
	return deleteRow[models.Staff](ctx, s.DB, "staff", seq)
}

func (s *staffService) GetStaffImage(ctx context.Context, seq uint) ([]byte, error) {
	return getImage[models.Staff](ctx, s.DB, "staff", seq, "s_image")
}

func (s *staffService) UpdateStaffImage(ctx context.Context, seq uint, image []byte) error {
	return updateImage[models.Staff](ctx, s.DB, "staff", seq, "s_image", image)
}
