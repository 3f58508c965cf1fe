package serviceimpl

import (
	"context"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"gorm.io/gorm"
)

type customerService struct {
	DB *gorm.DB
}

var _ service.CustomerService = &customerService{}

func NewCustomerService(db *gorm.DB) service.CustomerService {
	return &customerService{DB: db}
}

func (s *customerService) ListCustomers(ctx context.Context, req request.PaginationConditions) ([]models.Customer, int64, error) {
	return listRows[models.Customer](ctx, s.DB, "customer", "id", req)
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	return getRow[models.Customer](ctx, s.DB, "customer", id)
}

func (s *customerService) CreateCustomer(ctx context.Context, req request.CreateCustomerRequest) (*models.Customer, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Name:         req.Name,
		Password:     req.Password,
		ProfileImage: req.ProfileImage,
	}
	return createRow(ctx, s.DB, "customer", customer)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint, req request.UpdateCustomerRequest) (*models.Customer, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["cEmail"] = *req.Email
	}
	if req.PhoneNumber != nil {
		updates["cPhoneNumber"] = *req.PhoneNumber
	}
	if req.Name != nil {
		updates["cName"] = *req.Name
	}
	if req.Password != nil {
		updates["cPassword"] = *req.Password
	}
	if len(req.ProfileImage) > 0 {
		updates["cProfileImage"] = req.ProfileImage
	}

	return updateRow[models.Customer](ctx, s.DB, "customer", id, updates)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	return deleteRow[models.Customer](ctx, s.DB, "customer", id)
}

func (s *customerService) GetCustomerImage(ctx context.Context, id uint) ([]byte, error) {
	return getImage[models.Customer](ctx, s.DB, "customer", id, "cProfileImage")
}

func (s *customerService) UpdateCustomerImage(ctx context.Context, id uint, image []byte) error {
	return updateImage[models.Customer](ctx, s.DB, "customer", id, "cProfileImage", image)
}
