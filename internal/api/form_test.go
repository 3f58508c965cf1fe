package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestDecodeFormTypes(t *testing.T) {
	var req request.CreateStaffRequest
	err := decodeForm(httptest.NewRecorder(), formRequest(url.Values{
		"s_id":        {"clerk7"},
		"br_seq":      {"3"},
		"s_password":  {"pw"},
		"s_rank":      {"clerk"},
		"s_phone":     {"010"},
		"s_name":      {"Choi"},
		"s_superseq":  {"1"},
		"s_quit_date": {"2026-02-28"},
		"unknown":     {"ignored"},
	}), &req)
	require.NoError(t, err)

	assert.Equal(t, "clerk7", req.LoginID)
	assert.Equal(t, uint(3), req.BranchSeq)
	require.NotNil(t, req.SuperSeq)
	assert.Equal(t, uint(1), *req.SuperSeq)
	require.NotNil(t, req.QuitDate)
	assert.True(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC).Equal(*req.QuitDate))
	assert.Nil(t, req.Image)
}

func TestDecodeFormDecimalAndTime(t *testing.T) {
	var branch request.UpdateBranchRequest
	require.NoError(t, decodeForm(httptest.NewRecorder(), formRequest(url.Values{"br_lat": {" 35.1796 "}}), &branch))
	require.NotNil(t, branch.Lat)
	assert.True(t, decimal.RequireFromString("35.1796").Equal(*branch.Lat))
	assert.Nil(t, branch.Lng)

	for _, value := range []string{"2025-10-01T09:30:00Z", "2025-10-01T09:30:00", "2025-10-01 09:30:00"} {
		var refund request.UpdateRefundRequest
		require.NoError(t, decodeForm(httptest.NewRecorder(), formRequest(url.Values{"ref_date": {value}}), &refund), value)
		require.NotNil(t, refund.Date)
		assert.Equal(t, 9, refund.Date.Hour())
	}
}

func TestDecodeFormBlankIsAbsent(t *testing.T) {
	var req request.ProductSearchRequest
	require.NoError(t, decodeForm(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?maker=&kwds=%20&color=red", nil), &req))
	assert.Nil(t, req.Maker)
	assert.Nil(t, req.Keywords)
	require.NotNil(t, req.Color)
	assert.Equal(t, "red", *req.Color)
}

func TestDecodeFormRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name   string
		values url.Values
		dest   interface{}
	}{
		{name: "negative key", values: url.Values{"br_seq": {"-1"}}, dest: &request.CreateStaffRequest{}},
		{name: "not a number", values: url.Values{"p_price": {"cheap"}}, dest: &request.CreateProductRequest{}},
		{name: "bad decimal", values: url.Values{"br_lat": {"north"}}, dest: &request.CreateBranchRequest{}},
		{name: "bad date", values: url.Values{"b_date": {"yesterday"}}, dest: &request.CreatePurchaseItemRequest{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := decodeForm(httptest.NewRecorder(), formRequest(tc.values), tc.dest)
			require.Error(t, err)
			assert.Equal(t, service.KindValidation, service.KindOf(err))
		})
	}
}

func TestFormKey(t *testing.T) {
	req := formRequest(url.Values{"u_seq": {"4"}, "item_id": {"9"}})
	require.NoError(t, parseForm(httptest.NewRecorder(), req))
	key, err := formKey(req, "u_seq")
	require.NoError(t, err)
	assert.Equal(t, uint(4), key)

	req = formRequest(url.Values{"item_id": {"9"}})
	require.NoError(t, parseForm(httptest.NewRecorder(), req))
	key, err = formKey(req, "u_seq")
	require.NoError(t, err)
	assert.Equal(t, uint(9), key)

	req = formRequest(url.Values{"item_id": {"0"}})
	require.NoError(t, parseForm(httptest.NewRecorder(), req))
	_, err = formKey(req, "u_seq")
	assert.Equal(t, service.KindValidation, service.KindOf(err))
}

func TestRecoverPanics(t *testing.T) {
	sr := &StoreRouter{log: zerolog.Nop()}
	handler := sr.logRequests(sr.recoverPanics(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"result":"Error","errorKind":"Internal","errorMsg":"internal error"}`, rec.Body.String())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(service.KindNotFound))
	assert.Equal(t, http.StatusConflict, statusFor(service.KindConstraintViolation))
	assert.Equal(t, http.StatusBadRequest, statusFor(service.KindValidation))
	assert.Equal(t, http.StatusInternalServerError, statusFor(service.KindInternal))
}

func TestDecodeFormLimitsBody(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("br_name", "Gangnam"))
	part, err := writer.CreateFormFile(uploadField, "huge.bin")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{'x'}, maxBodySize))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/insert_branch", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var branch request.CreateBranchRequest
	err = decodeForm(httptest.NewRecorder(), req, &branch)
	require.Error(t, err)
	assert.Equal(t, service.KindValidation, service.KindOf(err))
	assert.Contains(t, err.Error(), "too large")
}
