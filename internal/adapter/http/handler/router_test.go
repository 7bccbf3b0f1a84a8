package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"marketplace-ledger/config"
	"marketplace-ledger/internal/adapter/http/middleware"
	"marketplace-ledger/internal/adapter/metrics"
	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/internal/core/ports/mocks"
	"marketplace-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerTestDeps struct {
	engine      *gin.Engine
	settlement  *mocks.MockSettlementService
	ledger      *mocks.MockLedgerService
	withdrawals *mocks.MockWithdrawalService
	balance     *mocks.MockAdminBalanceService
	approvals   *mocks.MockApprovalService
	tokens      *mocks.MockTokenService
	nonces      *mocks.MockNonceStore
	health      *mocks.MockHealthChecker
	checkout    config.CheckoutConfig
}

func setupRouter(t *testing.T) *routerTestDeps {
	ctrl := gomock.NewController(t)
	d := &routerTestDeps{
		settlement:  mocks.NewMockSettlementService(ctrl),
		ledger:      mocks.NewMockLedgerService(ctrl),
		withdrawals: mocks.NewMockWithdrawalService(ctrl),
		balance:     mocks.NewMockAdminBalanceService(ctrl),
		approvals:   mocks.NewMockApprovalService(ctrl),
		tokens:      mocks.NewMockTokenService(ctrl),
		nonces:      mocks.NewMockNonceStore(ctrl),
		health:      mocks.NewMockHealthChecker(ctrl),
		checkout: config.CheckoutConfig{
			Secret:   "router-secret",
			MaxDrift: time.Minute,
			NonceTTL: 2 * time.Minute,
		},
	}
	d.engine = SetupRouter(RouterDeps{
		SettlementSvc:   d.settlement,
		LedgerSvc:       d.ledger,
		WithdrawalSvc:   d.withdrawals,
		AdminBalanceSvc: d.balance,
		ApprovalSvc:     d.approvals,
		SigSvc:          service.NewHMACSignatureService(),
		NonceStore:      d.nonces,
		TokenSvc:        d.tokens,
		Checkout:        d.checkout,
		HealthCheckers:  []ports.HealthChecker{d.health},
		Metrics:         metrics.New(),
		Mode:            gin.TestMode,
		Logger:          zerolog.Nop(),
	})
	return d
}

func (d *routerTestDeps) as(role domain.Role) (string, uuid.UUID) {
	id := uuid.New()
	token := "token-" + string(role) + "-" + id.String()
	d.tokens.EXPECT().Validate(token).Return(&ports.TokenClaims{ActorID: id, Role: role}, nil).AnyTimes()
	return token, id
}

func (d *routerTestDeps) do(method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	d.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	d := setupRouter(t)

	d.health.EXPECT().Name().Return("postgresql").AnyTimes()
	gomock.InOrder(
		d.health.EXPECT().Ping(gomock.Any()).Return(nil),
		d.health.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")),
	)

	w := d.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)

	w = d.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestRouter_MetricsExposesHTTPRequests(t *testing.T) {
	d := setupRouter(t)
	d.health.EXPECT().Name().Return("redis").AnyTimes()
	d.health.EXPECT().Ping(gomock.Any()).Return(nil)

	d.do(http.MethodGet, "/health", "", nil)
	w := d.do(http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `marketplace_ledger_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestRouter_RoleSeparation(t *testing.T) {
	d := setupRouter(t)
	vendorToken, _ := d.as(domain.RoleVendor)
	adminToken, _ := d.as(domain.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, d.do(http.MethodGet, "/api/v1/admin/balance", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, d.do(http.MethodGet, "/api/v1/admin/balance", vendorToken, nil).Code)
	assert.Equal(t, http.StatusForbidden, d.do(http.MethodGet, "/api/v1/vendor/balance", adminToken, nil).Code)
}

func TestRouter_VendorBalanceUsesTokenSubject(t *testing.T) {
	d := setupRouter(t)
	token, vendorID := d.as(domain.RoleVendor)

	d.ledger.EXPECT().GetVendorBalance(gomock.Any(), vendorID).Return(&domain.VendorStatistics{
		VendorID:         vendorID,
		TotalRevenue:     dec("990"),
		AvailableRevenue: dec("990"),
	}, nil)

	w := d.do(http.MethodGet, "/api/v1/vendor/balance", token, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available_revenue":"990.00"`)
}

func TestRouter_SignedCheckoutCallback(t *testing.T) {
	d := setupRouter(t)

	saleID, vendorID := uuid.New(), uuid.New()
	path := "/api/v1/checkout/sales/" + saleID.String() + "/approved"
	body := []byte(`{"vendor_id":"` + vendorID.String() + `","gross_amount":"1000.00"}`)
	ts := time.Now().Unix()
	nonce := uuid.NewString()

	sig := service.NewHMACSignatureService()
	signature := sig.Sign(d.checkout.Secret, sig.BuildCanonicalString(http.MethodPost, path, ts, nonce, body))

	d.nonces.EXPECT().CheckAndSet(gomock.Any(), "checkout", nonce, d.checkout.NonceTTL).Return(true, nil)
	admin, vendor := dec("100"), dec("900")
	d.settlement.EXPECT().OnSaleApproved(gomock.Any(), saleID, vendorID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id, v uuid.UUID, _ decimal.Decimal) (*domain.Sale, error) {
			return &domain.Sale{ID: id, VendorID: v, GrossAmount: dec("1000"), AdminShare: &admin, VendorShare: &vendor, Status: domain.SaleStatusApproved}, nil
		},
	)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(middleware.HeaderNonce, nonce)
	req.Header.Set(middleware.HeaderSignature, signature)
	w := httptest.NewRecorder()
	d.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"vendor_share":"900.00"`)
}

func TestRouter_CheckoutCallbackWithTamperedBody(t *testing.T) {
	d := setupRouter(t)

	saleID := uuid.New()
	path := "/api/v1/checkout/sales/" + saleID.String() + "/approved"
	signed := []byte(`{"vendor_id":"` + uuid.NewString() + `","gross_amount":"10.00"}`)
	sent := bytes.Replace(signed, []byte("10.00"), []byte("99.00"), 1)
	ts := time.Now().Unix()

	sig := service.NewHMACSignatureService()
	signature := sig.Sign(d.checkout.Secret, sig.BuildCanonicalString(http.MethodPost, path, ts, "n-1", signed))

	d.nonces.EXPECT().CheckAndSet(gomock.Any(), "checkout", "n-1", gomock.Any()).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(sent))
	req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(middleware.HeaderNonce, "n-1")
	req.Header.Set(middleware.HeaderSignature, signature)
	w := httptest.NewRecorder()
	d.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_002")
}
