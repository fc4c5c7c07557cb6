package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/paystack"
)

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type walletCfg struct{}

func (walletCfg) MinDepositMills() int64  { return 100 }
func (walletCfg) MinWithdrawMills() int64 { return 50_000 }

type fakeUserRepo struct {
	user *model.User
}

func (f *fakeUserRepo) GetOrCreate(_ context.Context, chatID int64, username string) (*model.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) Get(_ context.Context, chatID int64) (*model.User, error) {
	cp := *f.user
	return &cp, nil
}

func (f *fakeUserRepo) GetBalance(_ context.Context, chatID int64) (int64, error) {
	return f.user.BalanceMills, nil
}

func (f *fakeUserRepo) UpdateBalance(_ context.Context, chatID int64, balanceMills int64) error {
	f.user.BalanceMills = balanceMills
	return nil
}

func (f *fakeUserRepo) UpdateEnergy(_ context.Context, chatID int64, energy int, at time.Time) error {
	return nil
}

func (f *fakeUserRepo) UpdateWalk(_ context.Context, chatID int64, level int, rateMills int64, regenPerSec float64) error {
	return nil
}

func (f *fakeUserRepo) UpdateSteps(_ context.Context, chatID int64, totalSteps int64, creditedOn time.Time, millsToday int64) error {
	return nil
}

type fakeLedger struct {
	txs []model.Transaction
}

func (f *fakeLedger) Add(_ context.Context, tx *model.Transaction) (int64, error) {
	cp := *tx
	cp.ID = int64(len(f.txs) + 1)
	f.txs = append(f.txs, cp)
	return cp.ID, nil
}

func (f *fakeLedger) GetByExternalRef(_ context.Context, ref string) (*model.Transaction, error) {
	for i := range f.txs {
		if f.txs[i].ExternalRef == ref {
			cp := f.txs[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLedger) CompleteDeposit(_ context.Context, ref string, amountMills int64) error {
	for i := range f.txs {
		tx := &f.txs[i]
		if tx.ExternalRef == ref && tx.Type == model.TxDeposit && tx.Status == model.TxPending {
			tx.Status = model.TxCompleted
			tx.AmountMills = amountMills
			return nil
		}
	}
	return errors.New("pending deposit not found")
}

func (f *fakeLedger) ListByUser(_ context.Context, chatID int64, limit int) ([]model.Transaction, error) {
	return f.txs, nil
}

func (f *fakeLedger) SetLatestWithdrawStatus(_ context.Context, chatID int64, amountMills int64, status string) error {
	for i := len(f.txs) - 1; i >= 0; i-- {
		tx := &f.txs[i]
		if tx.ChatID == chatID && tx.Type == model.TxWithdraw && tx.Status == model.TxPending && tx.AmountMills == -amountMills {
			tx.Status = status
			return nil
		}
	}
	return errors.New("pending withdraw not found")
}

type fakeWithdrawals struct {
	nextID int64
	reqs   map[int64]*model.WithdrawalRequest
}

func newFakeWithdrawals() *fakeWithdrawals {
	return &fakeWithdrawals{reqs: map[int64]*model.WithdrawalRequest{}}
}

func (f *fakeWithdrawals) Create(_ context.Context, req *model.WithdrawalRequest) (int64, error) {
	f.nextID++
	cp := *req
	cp.ID = f.nextID
	cp.Status = model.TxPending
	f.reqs[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeWithdrawals) GetByID(_ context.Context, id int64) (*model.WithdrawalRequest, error) {
	r, ok := f.reqs[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeWithdrawals) SetStatus(_ context.Context, id int64, status string) error {
	r, ok := f.reqs[id]
	if !ok {
		return errors.New("request not found")
	}
	r.Status = status
	return nil
}

type fakeGateway struct {
	lastReq paystack.InitializeRequest
	err     error
}

func (f *fakeGateway) Initialize(_ context.Context, req paystack.InitializeRequest) (*paystack.InitializeResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastReq = req
	return &paystack.InitializeResult{
		AuthorizationURL: "https://checkout.paystack.com/" + req.Reference,
		Reference:        req.Reference,
	}, nil
}

type fakeNotifier struct {
	sent []int64
}

func (f *fakeNotifier) Notify(chatID int64, text string) {
	f.sent = append(f.sent, chatID)
}

const testChatID = int64(777)
const adminChatID = int64(1)

func userCtx() context.Context {
	return middleware.WithUserID(context.Background(), testChatID)
}

func newTestService(users *fakeUserRepo, ledger *fakeLedger, withdrawals *fakeWithdrawals, gateway *fakeGateway, notifier *fakeNotifier) service.WalletService {
	return NewWalletService(walletCfg{}, users, ledger, withdrawals, gateway, notifier, adminChatID, fakeTxManager{})
}

func TestDeposit_InitializesGateway(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ChatID: testChatID, Username: "alice"}}
	ledger := &fakeLedger{}
	gateway := &fakeGateway{}
	s := newTestService(users, ledger, newFakeWithdrawals(), gateway, &fakeNotifier{})

	res, err := s.Deposit(userCtx(), 500)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if res.CheckoutURL == "" || res.Reference == "" {
		t.Errorf("empty checkout result: %+v", res)
	}
	if gateway.lastReq.AmountKobo != 50_000 {
		t.Errorf("amount kobo %d, want 50000 (500 naira)", gateway.lastReq.AmountKobo)
	}
	// До вебхука баланс не меняется, в леджере только pending-строка
	if users.user.BalanceMills != 0 {
		t.Errorf("balance %d changed before webhook", users.user.BalanceMills)
	}
	if len(ledger.txs) != 1 || ledger.txs[0].Status != model.TxPending {
		t.Errorf("unexpected ledger rows: %+v", ledger.txs)
	}
	if ledger.txs[0].ExternalRef != res.Reference {
		t.Errorf("pending row ref %q, want %q", ledger.txs[0].ExternalRef, res.Reference)
	}
}

func TestDeposit_BelowMinimum(t *testing.T) {
	s := newTestService(&fakeUserRepo{user: &model.User{ChatID: testChatID}}, &fakeLedger{}, newFakeWithdrawals(), &fakeGateway{}, &fakeNotifier{})

	if _, err := s.Deposit(userCtx(), 50); !errors.Is(err, service.ErrBadRequest) {
		t.Errorf("got %v, want ErrBadRequest", err)
	}
}

func TestConfirmDeposit_CreditsOnce(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ChatID: testChatID}}
	ledger := &fakeLedger{}
	s := newTestService(users, ledger, newFakeWithdrawals(), &fakeGateway{}, &fakeNotifier{})

	// 50000 кобо = 500 найр = 500 миллов
	if err := s.ConfirmDeposit(context.Background(), testChatID, "ref-1", 50_000); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if users.user.BalanceMills != 500 {
		t.Errorf("balance %d, want 500", users.user.BalanceMills)
	}

	// Повторный вебхук с тем же референсом - no-op
	if err := s.ConfirmDeposit(context.Background(), testChatID, "ref-1", 50_000); err != nil {
		t.Fatalf("repeat confirm: %v", err)
	}
	if users.user.BalanceMills != 500 {
		t.Errorf("balance %d after duplicate webhook, want 500", users.user.BalanceMills)
	}
}

func TestConfirmDeposit_ResolvesPendingRow(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ChatID: testChatID, Username: "alice"}}
	ledger := &fakeLedger{}
	s := newTestService(users, ledger, newFakeWithdrawals(), &fakeGateway{}, &fakeNotifier{})

	res, err := s.Deposit(userCtx(), 500)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if err := s.ConfirmDeposit(context.Background(), testChatID, res.Reference, 50_000); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	// Депозит живет одной строкой: pending-строка закрывается вебхуком,
	// а не дублируется completed-строкой
	if len(ledger.txs) != 1 {
		t.Fatalf("ledger rows %d, want 1: %+v", len(ledger.txs), ledger.txs)
	}
	if ledger.txs[0].Status != model.TxCompleted || ledger.txs[0].AmountMills != 500 {
		t.Errorf("unexpected resolved row: %+v", ledger.txs[0])
	}
	if users.user.BalanceMills != 500 {
		t.Errorf("balance %d, want 500", users.user.BalanceMills)
	}

	// Повторный вебхук после закрытия строки - no-op
	if err := s.ConfirmDeposit(context.Background(), testChatID, res.Reference, 50_000); err != nil {
		t.Fatalf("repeat confirm: %v", err)
	}
	if users.user.BalanceMills != 500 || len(ledger.txs) != 1 {
		t.Errorf("duplicate webhook changed state: balance %d, rows %d", users.user.BalanceMills, len(ledger.txs))
	}
}

func TestWithdraw_HoldsBalance(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ChatID: testChatID, BalanceMills: 100_000}}
	ledger := &fakeLedger{}
	withdrawals := newFakeWithdrawals()
	notifier := &fakeNotifier{}
	s := newTestService(users, ledger, withdrawals, &fakeGateway{}, notifier)

	res, err := s.Withdraw(userCtx(), 60_000, "bank 12345")
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if res.BalanceMills != 40_000 {
		t.Errorf("balance %d, want 40000", res.BalanceMills)
	}
	if len(ledger.txs) != 1 || ledger.txs[0].Status != model.TxPending || ledger.txs[0].AmountMills != -60_000 {
		t.Errorf("unexpected ledger rows: %+v", ledger.txs)
	}
	req, _ := withdrawals.GetByID(context.Background(), res.RequestID)
	if req == nil || req.Status != model.TxPending {
		t.Errorf("request not pending: %+v", req)
	}
	// Админ получает уведомление о новой заявке
	if len(notifier.sent) != 1 || notifier.sent[0] != adminChatID {
		t.Errorf("admin not notified: %v", notifier.sent)
	}
}

func TestWithdraw_Limits(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ChatID: testChatID, BalanceMills: 10_000}}
	s := newTestService(users, &fakeLedger{}, newFakeWithdrawals(), &fakeGateway{}, &fakeNotifier{})

	if _, err := s.Withdraw(userCtx(), 100, "bank 12345"); !errors.Is(err, service.ErrBadRequest) {
		t.Errorf("below min: got %v, want ErrBadRequest", err)
	}
	if _, err := s.Withdraw(userCtx(), 60_000, "bank 12345"); !errors.Is(err, service.ErrInsufficientBalance) {
		t.Errorf("over balance: got %v, want ErrInsufficientBalance", err)
	}
}

func TestApproveWithdrawal(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ChatID: testChatID, BalanceMills: 100_000}}
	ledger := &fakeLedger{}
	withdrawals := newFakeWithdrawals()
	notifier := &fakeNotifier{}
	s := newTestService(users, ledger, withdrawals, &fakeGateway{}, notifier)

	res, err := s.Withdraw(userCtx(), 60_000, "bank 12345")
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if err := s.ApproveWithdrawal(context.Background(), res.RequestID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	req, _ := withdrawals.GetByID(context.Background(), res.RequestID)
	if req.Status != model.TxApproved {
		t.Errorf("request status %s, want approved", req.Status)
	}
	if ledger.txs[0].Status != model.TxApproved {
		t.Errorf("ledger status %s, want approved", ledger.txs[0].Status)
	}
	// Баланс не меняется: сумма была заморожена при создании заявки
	if users.user.BalanceMills != 40_000 {
		t.Errorf("balance %d, want 40000", users.user.BalanceMills)
	}

	// Повторное одобрение невозможно
	if err := s.ApproveWithdrawal(context.Background(), res.RequestID); !errors.Is(err, service.ErrBadRequest) {
		t.Errorf("second approve: got %v, want ErrBadRequest", err)
	}
}

func TestRejectWithdrawal_Refunds(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ChatID: testChatID, BalanceMills: 100_000}}
	ledger := &fakeLedger{}
	withdrawals := newFakeWithdrawals()
	s := newTestService(users, ledger, withdrawals, &fakeGateway{}, &fakeNotifier{})

	res, err := s.Withdraw(userCtx(), 60_000, "bank 12345")
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if err := s.RejectWithdrawal(context.Background(), res.RequestID, "bad details"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if users.user.BalanceMills != 100_000 {
		t.Errorf("balance %d after refund, want 100000", users.user.BalanceMills)
	}
	req, _ := withdrawals.GetByID(context.Background(), res.RequestID)
	if req.Status != model.TxRejected {
		t.Errorf("request status %s, want rejected", req.Status)
	}

	// В леджере: замороженный withdraw (rejected) + возврат withdraw_revert
	var revert bool
	for _, tx := range ledger.txs {
		if tx.Type == model.TxWithdrawRevert && tx.AmountMills == 60_000 {
			revert = true
		}
	}
	if !revert {
		t.Error("withdraw_revert row not recorded")
	}
	if ledger.txs[0].Status != model.TxRejected {
		t.Errorf("hold status %s, want rejected", ledger.txs[0].Status)
	}
}
