package go_storefront

import (
	"context"
	"fmt"

	db2 "github.com/PayRam/go-storefront/internal/db"
	"github.com/PayRam/go-storefront/internal/serviceimpl"
	"github.com/PayRam/go-storefront/service"
	"gorm.io/gorm"
)

type StorefrontService struct {
	Branches      service.BranchService
	Customers     service.CustomerService
	Products      service.ProductService
	ProductBases  service.ProductBaseService
	PurchaseItems service.PurchaseItemService
	LoginHistory  service.LoginHistoryService
	Refunds       service.RefundService
	Staff         service.StaffService
	Users         service.UserService
	Categories    service.CategoryService

	db *gorm.DB
}

// NewStorefrontService migrates db and returns the services backed by it.
func NewStorefrontService(db *gorm.DB) (*StorefrontService, error) {
	if err := db2.Migrate(db); err != nil {
		return nil, err
	}

	return &StorefrontService{
		Branches:      serviceimpl.NewBranchService(db),
		Customers:     serviceimpl.NewCustomerService(db),
		Products:      serviceimpl.NewProductService(db),
		ProductBases:  serviceimpl.NewProductBaseService(db),
		PurchaseItems: serviceimpl.NewPurchaseItemService(db),
		LoginHistory:  serviceimpl.NewLoginHistoryService(db),
		Refunds:       serviceimpl.NewRefundService(db),
		Staff:         serviceimpl.NewStaffService(db),
		Users:         serviceimpl.NewUserService(db),
		Categories:    serviceimpl.NewCategoryService(db),
		db:            db,
	}, nil
}

// Ping checks that a pooled connection can reach the database.
func (s *StorefrontService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *StorefrontService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
