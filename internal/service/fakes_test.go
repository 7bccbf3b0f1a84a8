package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"marketplace-ledger/config"
	"marketplace-ledger/internal/adapter/cache"
	"marketplace-ledger/internal/adapter/storage/memory"
	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeLedgerStore keeps sales, withdrawals and the admin balance in memory
// and implements every repository the services use. Transactions are
// serialized and rolled back by restoring a snapshot.
type fakeLedgerStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	vendors     map[uuid.UUID]domain.Vendor
	wallets     map[uuid.UUID]domain.Wallet
	sales       map[uuid.UUID]domain.Sale
	withdrawals map[uuid.UUID]domain.WithdrawalRequest
	balance     domain.AdminBalance
	stats       map[uuid.UUID]domain.VendorStatistics

	// creditFailures makes the next n Credit calls fail as transient.
	creditFailures int
	credits        []domain.AdminCredit

	// afterCommit, when set, runs after every committed transaction.
	afterCommit func(ctx context.Context)
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		vendors:     make(map[uuid.UUID]domain.Vendor),
		wallets:     make(map[uuid.UUID]domain.Wallet),
		sales:       make(map[uuid.UUID]domain.Sale),
		withdrawals: make(map[uuid.UUID]domain.WithdrawalRequest),
		stats:       make(map[uuid.UUID]domain.VendorStatistics),
	}
}

type fakeSnapshot struct {
	sales       map[uuid.UUID]domain.Sale
	withdrawals map[uuid.UUID]domain.WithdrawalRequest
	balance     domain.AdminBalance
	stats       map[uuid.UUID]domain.VendorStatistics
}

func (f *fakeLedgerStore) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	err := f.runTx(fn)
	if err == nil && f.afterCommit != nil {
		f.afterCommit(ctx)
	}
	return err
}

func (f *fakeLedgerStore) runTx(fn func(tx pgx.Tx) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	f.mu.Lock()
	snap := fakeSnapshot{
		sales:       copyMap(f.sales),
		withdrawals: copyMap(f.withdrawals),
		balance:     f.balance,
		stats:       copyMap(f.stats),
	}
	f.mu.Unlock()

	if err := fn(&mockTx{}); err != nil {
		f.mu.Lock()
		f.sales, f.withdrawals, f.balance, f.stats = snap.sales, snap.withdrawals, snap.balance, snap.stats
		f.mu.Unlock()
		return err
	}
	return nil
}

func copyMap[V any](m map[uuid.UUID]V) map[uuid.UUID]V {
	out := make(map[uuid.UUID]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// --- fixtures ---

func (f *fakeLedgerStore) addVendor(status domain.VendorStatus) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := domain.Vendor{ID: uuid.New(), DisplayName: "Loja Central", Email: "loja@example.com", Status: status}
	f.vendors[v.ID] = v
	return v.ID
}

func (f *fakeLedgerStore) addWallet(vendorID uuid.UUID) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	w := domain.Wallet{
		ID:              uuid.New(),
		VendorID:        vendorID,
		Name:            "M-Pesa principal",
		PreferredMethod: domain.PaymentMethodMpesa,
		Methods: []domain.WalletMethod{
			{Method: domain.PaymentMethodMpesa, HolderName: "Ana Macuácua", Contact: "+258840000001"},
		},
		Active: true,
	}
	f.wallets[w.ID] = w
	return w.ID
}

func (f *fakeLedgerStore) addSale(vendorID uuid.UUID, gross string, status domain.SaleStatus) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := domain.Sale{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Reference:   "REF-" + uuid.NewString()[:8],
		GrossAmount: dec(gross),
		Status:      status,
	}
	if status.IsRevenue() {
		split := domain.SplitSale(s.GrossAmount)
		s.AdminShare, s.VendorShare = &split.Admin, &split.Vendor
	}
	f.sales[s.ID] = s
	return s.ID
}

func (f *fakeLedgerStore) sale(id uuid.UUID) domain.Sale {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sales[id]
}

func (f *fakeLedgerStore) withdrawal(id uuid.UUID) domain.WithdrawalRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.withdrawals[id]
}

func (f *fakeLedgerStore) adminBalance() domain.AdminBalance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance
}

func (f *fakeLedgerStore) failCredits(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creditFailures = n
}

// --- repositories ---

type fakeSales struct{ *fakeLedgerStore }

func (f fakeSales) GetByID(_ context.Context, id uuid.UUID) (*domain.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f fakeSales) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.Sale, error) {
	return f.GetByID(ctx, id)
}

func (f fakeSales) MarkApproved(_ context.Context, _ pgx.Tx, s *domain.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sales[s.ID] = *s
	return nil
}

func (f fakeSales) ListByStatus(_ context.Context, status domain.SaleStatus, limit int) ([]domain.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Sale
	for _, s := range f.sales {
		if s.Status == status && len(out) < limit {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeWithdrawals struct{ *fakeLedgerStore }

func (f fakeWithdrawals) Create(_ context.Context, _ pgx.Tx, w *domain.WithdrawalRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.withdrawals {
		if existing.VendorID == w.VendorID && existing.Status == domain.WithdrawalStatusPending {
			return apperror.ErrPendingWithdrawalExists()
		}
	}
	f.withdrawals[w.ID] = *w
	return nil
}

func (f fakeWithdrawals) GetByID(_ context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.withdrawals[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (f fakeWithdrawals) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	return f.GetByID(ctx, id)
}

func (f fakeWithdrawals) FindPendingByVendor(_ context.Context, vendorID uuid.UUID) (*domain.WithdrawalRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.withdrawals {
		if w.VendorID == vendorID && w.Status == domain.WithdrawalStatusPending {
			return &w, nil
		}
	}
	return nil, nil
}

func (f fakeWithdrawals) UpdateStatus(_ context.Context, _ pgx.Tx, w *domain.WithdrawalRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.withdrawals[w.ID] = *w
	return nil
}

func (f fakeWithdrawals) List(_ context.Context, params ports.WithdrawalListParams) ([]domain.WithdrawalRequest, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.WithdrawalRequest
	for _, w := range f.withdrawals {
		if params.VendorID != nil && w.VendorID != *params.VendorID {
			continue
		}
		if params.Status != nil && w.Status != *params.Status {
			continue
		}
		out = append(out, w)
	}
	return out, int64(len(out)), nil
}

type fakeWallets struct{ *fakeLedgerStore }

func (f fakeWallets) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.wallets[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

type fakeVendors struct{ *fakeLedgerStore }

func (f fakeVendors) GetByID(_ context.Context, id uuid.UUID) (*domain.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.vendors[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

type fakeAdminBalance struct{ *fakeLedgerStore }

func (f fakeAdminBalance) EnsureRow(context.Context) error { return nil }

func (f fakeAdminBalance) Get(context.Context) (*domain.AdminBalance, error) {
	b := f.adminBalance()
	return &b, nil
}

func (f fakeAdminBalance) GetForUpdate(ctx context.Context, _ pgx.Tx) (*domain.AdminBalance, error) {
	return f.Get(ctx)
}

func (f fakeAdminBalance) Credit(_ context.Context, _ pgx.Tx, c domain.AdminCredit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.creditFailures > 0 {
		f.creditFailures--
		return apperror.ErrTransientStore(errSerialization)
	}
	f.balance.Balance = f.balance.Balance.Add(c.Amount)
	switch c.Reason {
	case domain.CreditReasonSaleCommission:
		f.balance.SaleCommissionTotal = f.balance.SaleCommissionTotal.Add(c.Amount)
	case domain.CreditReasonWithdrawalCommission:
		f.balance.WithdrawalCommissionTotal = f.balance.WithdrawalCommissionTotal.Add(c.Amount)
		f.balance.VendorPayoutTotal = f.balance.VendorPayoutTotal.Add(c.VendorPayout)
	}
	f.credits = append(f.credits, c)
	return nil
}

func (f fakeAdminBalance) Recalculate(_ context.Context, _ pgx.Tx) (*domain.AdminBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := domain.AdminBalance{}
	for _, s := range f.sales {
		if s.Status.IsRevenue() {
			b.SaleCommissionTotal = b.SaleCommissionTotal.Add(domain.SplitSale(s.GrossAmount).Admin)
		}
	}
	for _, w := range f.withdrawals {
		if w.Status == domain.WithdrawalStatusApproved || w.Status == domain.WithdrawalStatusPaid {
			b.WithdrawalCommissionTotal = b.WithdrawalCommissionTotal.Add(w.AdminFee)
			b.VendorPayoutTotal = b.VendorPayoutTotal.Add(w.NetAmount)
		}
	}
	b.Balance = b.SaleCommissionTotal.Add(b.WithdrawalCommissionTotal)
	f.balance = b
	return &b, nil
}

type fakeStatistics struct{ *fakeLedgerStore }

func (f fakeStatistics) Recompute(_ context.Context, _ pgx.Tx, vendorID uuid.UUID) (*domain.VendorStatistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := domain.VendorStatistics{VendorID: vendorID}
	for _, s := range f.sales {
		if s.VendorID != vendorID || !s.Status.IsRevenue() {
			continue
		}
		share := domain.SplitSale(s.GrossAmount).Vendor
		if s.VendorShare != nil {
			share = *s.VendorShare
		}
		st.TotalRevenue = st.TotalRevenue.Add(share)
		st.SaleCount++
	}
	for _, w := range f.withdrawals {
		if w.VendorID != vendorID {
			continue
		}
		if w.Status.ReservesRevenue() {
			st.OutstandingWithdrawals = st.OutstandingWithdrawals.Add(w.Amount)
		}
		if w.Status == domain.WithdrawalStatusApproved || w.Status == domain.WithdrawalStatusPaid {
			st.TotalPaidOut = st.TotalPaidOut.Add(w.NetAmount)
		}
	}
	st.AvailableRevenue = st.TotalRevenue.Sub(st.OutstandingWithdrawals)
	st.ComputedAt = time.Now().UTC()
	f.stats[vendorID] = st
	return &st, nil
}

type fakeError string

func (e fakeError) Error() string { return string(e) }

const errSerialization = fakeError("could not serialize access due to concurrent update")

// --- collaborators ---

// recordingNotifier keeps every notification in memory.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, msg domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

func (n *recordingNotifier) last(template string) (domain.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.sent) - 1; i >= 0; i-- {
		if n.sent[i].Template == template {
			return n.sent[i], true
		}
	}
	return domain.Notification{}, false
}

func (n *recordingNotifier) count(template string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, m := range n.sent {
		if m.Template == template {
			c++
		}
	}
	return c
}

// recordingAudit stores entries synchronously.
type recordingAudit struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func (a *recordingAudit) Log(_ context.Context, entry *domain.AuditLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func (a *recordingAudit) actions() []domain.AuditAction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

// recordingMetrics counts ledger events by label.
type recordingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counts: make(map[string]int)}
}

func (m *recordingMetrics) inc(key string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key] += n
}

func (m *recordingMetrics) get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}

func (m *recordingMetrics) SettlementRecorded(kind string) { m.inc("settlement:"+kind, 1) }
func (m *recordingMetrics) PartialSettlement(kind string)  { m.inc("partial:"+kind, 1) }
func (m *recordingMetrics) TxRetried(op string)            { m.inc("retry:"+op, 1) }
func (m *recordingMetrics) ApprovalCodeEvent(outcome string) {
	m.inc("approval:"+outcome, 1)
}
func (m *recordingMetrics) WithdrawalDecided(action string) { m.inc("withdrawal:"+action, 1) }
func (m *recordingMetrics) SweepCompleted(removed int)      { m.inc("swept", removed) }

// acceptingCodes accepts any well-formed withdrawal confirmation code.
type acceptingCodes struct{}

func (acceptingCodes) Save(context.Context, uuid.UUID, string, time.Duration) error { return nil }
func (acceptingCodes) Consume(context.Context, uuid.UUID, string) (bool, error)   { return true, nil }

func testOTPConfig() config.OTPConfig {
	return config.OTPConfig{
		Store:              "memory",
		TTL:                60 * time.Second,
		MaxRequestsPerHour: 3,
		RequestWindow:      time.Hour,
		MaxAttempts:        5,
		Lockout:            15 * time.Minute,
		WithdrawalCodeTTL:  10 * time.Minute,
	}
}

// ledgerHarness wires the real services over the in-memory store.
type ledgerHarness struct {
	store    *fakeLedgerStore
	clock    *fakeClock
	notifier *recordingNotifier
	audit    *recordingAudit
	metrics  *recordingMetrics
	cache    *cache.VendorCache
	codes    *memory.ApprovalStore
	limiter  *memory.AttemptLimiter

	ledger      *LedgerServiceImpl
	settlement  *SettlementServiceImpl
	balance     *AdminBalanceServiceImpl
	withdrawals *WithdrawalServiceImpl
	approvals   *ApprovalServiceImpl
}

func newLedgerHarness(t *testing.T) *ledgerHarness {
	t.Helper()

	h := &ledgerHarness{
		store:    newFakeLedgerStore(),
		clock:    newFakeClock(),
		notifier: &recordingNotifier{},
		audit:    &recordingAudit{},
		metrics:  newRecordingMetrics(),
		cache:    cache.NewVendorCache(config.CacheConfig{VendorTTL: time.Minute, StatsTTL: time.Minute}),
		limiter:  memory.NewAttemptLimiter(testOTPConfig()),
	}

	h.codes = memory.NewApprovalStore(h.clock.Now)

	log := newTestLogger()
	policy := TxPolicy{MaxAttempts: 3, Backoff: time.Millisecond}
	s := h.store

	h.ledger = NewLedgerService(fakeVendors{s}, fakeStatistics{s}, h.cache, s, policy, h.metrics, log)
	h.settlement = NewSettlementService(fakeSales{s}, fakeAdminBalance{s}, fakeStatistics{s}, h.cache,
		h.notifier, h.audit, s, policy, h.metrics, log)
	h.settlement.clock = h.clock.Now
	h.balance = NewAdminBalanceService(fakeAdminBalance{s}, h.audit, s, policy, h.metrics, log)
	h.withdrawals = NewWithdrawalService(fakeWithdrawals{s}, fakeWallets{s}, fakeVendors{s}, h.cache,
		acceptingCodes{}, h.ledger, h.settlement, h.notifier, h.audit, s, policy,
		WithdrawalPolicy{MinAmount: dec("1.00"), CodeTTL: 10 * time.Minute, AutoMarkPaid: true},
		h.metrics, log)
	h.withdrawals.clock = h.clock.Now
	h.approvals = NewApprovalService(fakeSales{s}, h.codes, h.limiter, h.settlement, h.ledger,
		h.notifier, h.audit, 60*time.Second, h.metrics, log)
	h.approvals.clock = h.clock.Now
	return h
}

// lastOTP returns the digits most recently sent to an administrator.
func (h *ledgerHarness) lastOTP(t *testing.T) string {
	t.Helper()
	msg, ok := h.notifier.last(domain.TemplateApprovalOTP)
	require.True(t, ok, "no approval code was sent")
	return msg.Payload["code"]
}
