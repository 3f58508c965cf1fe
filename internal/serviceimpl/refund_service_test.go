package serviceimpl_test

import (
	"context"
	"testing"
	"time"

	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"github.com/PayRam/go-storefront/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefunds(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	c := seedCatalogue(t, store)

	branch := createBranch(t, store, "Seongsu")
	user := createUser(t, store, "buyer")
	product := createProduct(t, store, c, "Trail Boot", "Nike", "black", "boots")

	purchasedAt := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)
	purchase, err := store.PurchaseItems.CreatePurchaseItem(ctx, request.CreatePurchaseItemRequest{
		BranchSeq:  branch.Seq,
		UserSeq:    user.Seq,
		ProductSeq: product.Seq,
		Price:      159000,
		Quantity:   2,
		Date:       &purchasedAt,
		Status:     "picked_up",
	})
	require.NoError(t, err)

	_, err = store.Refunds.CreateRefund(ctx, request.CreateRefundRequest{PurchaseSeq: 999, UserSeq: user.Seq})
	assertKind(t, err, service.KindConstraintViolation)

	first, err := store.Refunds.CreateRefund(ctx, request.CreateRefundRequest{
		PurchaseSeq:   purchase.Seq,
		UserSeq:       user.Seq,
		ReasonSeq:     1,
		ReasonContent: "too small",
	})
	require.NoError(t, err)
	assert.Nil(t, first.StaffSeq)

	second, err := store.Refunds.CreateRefund(ctx, request.CreateRefundRequest{
		PurchaseSeq:   purchase.Seq,
		UserSeq:       user.Seq,
		ReasonSeq:     2,
		ReasonContent: "changed mind",
	})
	require.NoError(t, err)

	refunds, total, err := store.Refunds.ListRefunds(ctx, request.PaginationConditions{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, refunds, 2)
	assert.Equal(t, second.Seq, refunds[0].Seq, "newest first")
	assert.Equal(t, "Kim buyer", refunds[0].UserName)
	assert.True(t, purchasedAt.Equal(refunds[0].PurchaseDate))

	refunds, _, err = store.Refunds.ListRefunds(ctx, request.PaginationConditions{Order: utils.StringPtr("asc")})
	require.NoError(t, err)
	assert.Equal(t, first.Seq, refunds[0].Seq)

	detail, err := store.Refunds.GetRefund(ctx, first.Seq)
	require.NoError(t, err)
	assert.Equal(t, "too small", detail.ReasonContent)
	assert.Equal(t, "buyer", detail.UserLoginID)
	assert.Equal(t, "Trail Boot", detail.ProductName)
	assert.Equal(t, "black", detail.ColorName)
	assert.Equal(t, "270", detail.SizeName)
	assert.Equal(t, 2, detail.Quantity)

	staff, err := store.Staff.CreateStaff(ctx, request.CreateStaffRequest{
		LoginID: "clerk", BranchSeq: branch.Seq, Password: "pw", Rank: "clerk", Phone: "010", Name: "Park",
	})
	require.NoError(t, err)

	handled, err := store.Refunds.UpdateRefund(ctx, first.Seq, request.UpdateRefundRequest{StaffSeq: &staff.Seq})
	require.NoError(t, err)
	require.NotNil(t, handled.StaffSeq)
	assert.Equal(t, staff.Seq, *handled.StaffSeq)

	require.NoError(t, store.Refunds.DeleteRefund(ctx, second.Seq))
	_, err = store.Refunds.GetRefund(ctx, second.Seq)
	assertKind(t, err, service.KindNotFound)
}
