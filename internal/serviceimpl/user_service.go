package serviceimpl

import (
	"context"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"gorm.io/gorm"
)

type userService struct {
	DB *gorm.DB
}

var _ service.UserService = &userService{}

func NewUserService(db *gorm.DB) service.UserService {
	return &userService{DB: db}
}

func (s *userService) ListUsers(ctx context.Context, req request.PaginationConditions) ([]models.User, int64, error) {
	return listRows[models.User](ctx, s.DB, "user", "u_seq", req)
}

func (s *userService) GetUser(ctx context.Context, seq uint) (*models.User, error) {
	return getRow[models.User](ctx, s.DB, "user", seq)
}

func (s *userService) CreateUser(ctx context.Context, req request.CreateUserRequest) (*models.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user := &models.User{
		LoginID:  req.LoginID,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Image:    req.Image,
		Address:  req.Address,
		QuitDate: req.QuitDate,
	}
	return createRow(ctx, s.DB, "user", user)
}

// UpdateUser changes profile fields. The login id is fixed once created.
func (s *userService) UpdateUser(ctx context.Context, seq uint, req request.UpdateUserRequest) (*models.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Password != nil {
		updates["u_password"] = *req.Password
	}
	if req.Name != nil {
		updates["u_name"] = *req.Name
	}
	if req.Phone != nil {
		updates["u_phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["u_address"] = *req.Address
	}
	if req.QuitDate != nil {
		updates["u_quit_date"] = *req.QuitDate
	}
	if len(req.Image) > 0 {
		updates["u_image"] = req.Image
	}

	return updateRow[models.User](ctx, s.DB, "user", seq, updates)
}

func (s *userService) DeleteUser(ctx context.Context, seq uint) error {
	return deleteRow[models.User](ctx, s.DB, "user", seq)
}

func (s *userService) GetUserImage(ctx context.Context, seq uint) ([]byte, error) {
	return getImage[models.User](ctx, s.DB, "user", seq, "u_image")
}

func (s *userService) UpdateUserImage(ctx context.Context, seq uint, image []byte) error {
	return updateImage[models.User](ctx, s.DB, "user", seq, "u_image", image)
}
