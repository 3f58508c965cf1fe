package service

import (
	"context"

	"github.com/PayRam/go-storefront/models"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/response"
)

// Every List returns the requested page and the total number of rows.

type BranchService interface {
	ListBranches(ctx context.Context, req request.PaginationConditions) ([]models.Branch, int64, error)
	GetBranch(ctx context.Context, seq uint) (*models.Branch, error)
	CreateBranch(ctx context.Context, req request.CreateBranchRequest) (*models.Branch, error)
	UpdateBranch(ctx context.Context, seq uint, req request.UpdateBranchRequest) (*models.Branch, error)
	DeleteBranch(ctx context.Context, seq uint) error
}

type CustomerService interface {
	ListCustomers(ctx context.Context, req request.PaginationConditions) ([]models.Customer, int64, error)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	CreateCustomer(ctx context.Context, req request.CreateCustomerRequest) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, req request.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
	GetCustomerImage(ctx context.Context, id uint) ([]byte, error)
	UpdateCustomerImage(ctx context.Context, id uint, image []byte) error
}

// ProductService serves products joined with their category names.
type ProductService interface {
	ListProducts(ctx context.Context, req request.PaginationConditions) ([]response.ProductView, int64, error)
	SearchProducts(ctx context.Context, req request.ProductSearchRequest) ([]response.ProductView, int64, error)
	GetProduct(ctx context.Context, seq uint) (*response.ProductView, error)
	CreateProduct(ctx context.Context, req request.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, seq uint, req request.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, seq uint) error
}

type ProductBaseService interface {
	ListProductBases(ctx context.Context, req request.PaginationConditions) ([]models.ProductBase, int64, error)
	GetProductBase(ctx context.Context, id uint) (*models.ProductBase, error)
	CreateProductBase(ctx context.Context, req request.CreateProductBaseRequest) (*models.ProductBase, error)
	UpdateProductBase(ctx context.Context, id uint, req request.UpdateProductBaseRequest) (*models.ProductBase, error)
	DeleteProductBase(ctx context.Context, id uint) error
}

type PurchaseItemService interface {
	ListPurchaseItems(ctx context.Context, req request.PaginationConditions) ([]models.PurchaseItem, int64, error)
	GetPurchaseItem(ctx context.Context, seq uint) (*models.PurchaseItem, error)
	CreatePurchaseItem(ctx context.Context, req request.CreatePurchaseItemRequest) (*models.PurchaseItem, error)
	UpdatePurchaseItem(ctx context.Context, seq uint, req request.UpdatePurchaseItemRequest) (*models.PurchaseItem, error)
	DeletePurchaseItem(ctx context.Context, seq uint) error
}

type LoginHistoryService interface {
	ListLoginHistory(ctx context.Context, req request.PaginationConditions) ([]models.LoginHistory, int64, error)
	GetLoginHistory(ctx context.Context, id uint) (*models.LoginHistory, error)
	CreateLoginHistory(ctx context.Context, req request.CreateLoginHistoryRequest) (*models.LoginHistory, error)
	UpdateLoginHistory(ctx context.Context, id uint, req request.UpdateLoginHistoryRequest) (*models.LoginHistory, error)
	DeleteLoginHistory(ctx context.Context, id uint) error
}

// RefundService lists refunds newest first, joined with the buyer and purchase.
type RefundService interface {
	ListRefunds(ctx context.Context, req request.PaginationConditions) ([]response.RefundView, int64, error)
	GetRefund(ctx context.Context, seq uint) (*response.RefundDetail, error)
	CreateRefund(ctx context.Context, req request.CreateRefundRequest) (*models.Refund, error)
	UpdateRefund(ctx context.Context, seq uint, req request.UpdateRefundRequest) (*models.Refund, error)
	DeleteRefund(ctx context.Context, seq uint) error
}

type StaffService interface {
	ListStaff(ctx context.Context, req request.PaginationConditions) ([]models.Staff, int64, error)
	GetStaff(ctx context.Context, seq uint) (*models.Staff, error)
	CreateStaff(ctx context.Context, req request.CreateStaffRequest) (*models.Staff, error)
	UpdateStaff(ctx context.Context, seq uint, req request.UpdateStaffRequest) (*models.Staff, error)
	DeleteStaff(ctx context.Context, seq uint) error
	GetStaffImage(ctx context.Context, seq uint) ([]byte, error)
	UpdateStaffImage(ctx context.Context, seq uint, image []byte) error
}

type UserService interface {
	ListUsers(ctx context.Context, req request.PaginationConditions) ([]models.User, int64, error)
	GetUser(ctx context.Context, seq uint) (*models.User, error)
	CreateUser(ctx context.Context, req request.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, seq uint, req request.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, seq uint) error
	GetUserImage(ctx context.Context, seq uint) ([]byte, error)
	UpdateUserImage(ctx context.Context, seq uint, image []byte) error
}

// CategoryService manages the product reference tables: kind, color, size,
// gender and maker.
type CategoryService interface {
	ListCategories(ctx context.Context, kind request.CategoryKind) ([]response.Category, error)
	CreateCategory(ctx context.Context, kind request.CategoryKind, req request.CreateCategoryRequest) (*response.Category, error)
	DeleteCategory(ctx context.Context, kind request.CategoryKind, seq uint) error
}
