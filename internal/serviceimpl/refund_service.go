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

const (
	refundViewColumns = "r.ref_seq, r.b_seq, r.u_seq, r.s_seq, r.ref_date, r.ref_re_seq, r.ref_re_content, " +
		"u.u_name, b.b_date"
	refundDetailColumns = refundViewColumns + ", u.u_phone, u.u_id, p.p_name, sc.sc_name, cc.cc_name, b.b_quantity"
)

type refundService struct {
	DB *gorm.DB
	// user is a reserved word on some dialects.
	userTable string
}

var _ service.RefundService = &refundService{}

func NewRefundService(db *gorm.DB) service.RefundService {
	return &refundService{DB: db, userTable: db.Statement.Quote("user")}
}

// refundQuery joins each refund with its buyer and the refunded purchase.
func (s *refundService) refundQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("refund r").
		Joins(fmt.Sprintf("INNER JOIN %s u ON r.u_seq = u.u_seq", s.userTable)).
		Joins("INNER JOIN purchase_item b ON r.b_seq = b.b_seq")
}

func (s *refundService) ListRefunds(ctx context.Context, req request.PaginationConditions) ([]response.RefundView, int64, error) {
	if err := validateRequest(req); err != nil {
		return nil, 0, err
	}

	var refunds []response.RefundView
	var count int64

	query := s.refundQuery(ctx).Session(&gorm.Session{})

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, translateError(s.DB, err, "refunds")
	}

	// Newest first unless the caller asks otherwise.
	query = request.ApplyPaginationConditions(query.Select(refundViewColumns), req, "r.ref_seq", request.OrderDesc)
	if err := query.Scan(&refunds).Error; err != nil {
		return nil, 0, translateError(s.DB, err, "refunds")
	}

	return refunds, count, nil
}

func (s *refundService) GetRefund(ctx context.Context, seq uint) (*response.RefundDetail, error) {
	var refund response.RefundDetail

	result := s.refundQuery(ctx).
		Joins("INNER JOIN product p ON b.p_seq = p.p_seq").
		Joins("INNER JOIN size_category sc ON p.sc_seq = sc.sc_seq").
		Joins("INNER JOIN color_category cc ON p.cc_seq = cc.cc_seq").
		Select(refundDetailColumns).
		Where("r.ref_seq = ?", seq).
		Limit(1).
		Scan(&refund)
	if result.Error != nil {
		return nil, translateError(s.DB, result.Error, fmt.Sprintf("refund %d", seq))
	}
	if result.RowsAffected == 0 {
		return nil, service.NotFound("refund %d not found", seq)
	}

	return &refund, nil
}

func (s *refundService) CreateRefund(ctx context.Context, req request.CreateRefundRequest) (*models.Refund, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	refund := &models.Refund{
		PurchaseSeq:   req.PurchaseSeq,
		UserSeq:       req.UserSeq,
		StaffSeq:      req.StaffSeq,
		Date:          utils.TimeOrNow(req.Date),
		ReasonSeq:     req.ReasonSeq,
		ReasonContent: req.ReasonContent,
	}
	return createRow(ctx, s.DB, "refund", refund)
}

func (s *refundService) UpdateRefund(ctx context.Context, seq uint, req request.UpdateRefundRequest) (*models.Refund, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.StaffSeq != nil {
		updates["s_seq"] = *req.StaffSeq
	}
	if req.Date != nil {
		updates["ref_date"] = *req.Date
	}
	if req.ReasonSeq != nil {
		updates["ref_re_seq"] = *req.ReasonSeq
	}
	if req.ReasonContent != nil {
		updates["ref_re_content"] = *req.ReasonContent
	}

	return updateRow[models.Refund](ctx, s.DB, "refund", seq, updates)
}

func (s *refundService) DeleteRefund(ctx context.Context, seq uint) error {
	return deleteRow[models.Refund](ctx, s.DB, "refund", seq)
}
