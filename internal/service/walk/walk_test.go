package walk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"tapify_backend/internal/config"
	"tapify_backend/internal/middleware"
	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
)

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type walkCfg struct{}

func (walkCfg) Levels() map[int]config.WalkLevel {
	return map[int]config.WalkLevel{
		1: {Level: 1, RateMills: 1, PriceMills: 0},
		2: {Level: 2, RateMills: 2, PriceMills: 5000},
		3: {Level: 3, RateMills: 5, PriceMills: 15000},
		4: {Level: 4, RateMills: 10, PriceMills: 40000},
	}
}

type tapCfg struct{}

func (tapCfg) RewardMills() int64         { return 1 }
func (tapCfg) MaxPerRequest() int         { return 50 }
func (tapCfg) EnergyMax() int             { return 100 }
func (tapCfg) EnergyRegenPerSec() float64 { return 0.2 }

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
	f.user.Energy = energy
	f.user.LastEnergyUpdate = at
	return nil
}

func (f *fakeUserRepo) UpdateWalk(_ context.Context, chatID int64, level int, rateMills int64, regenPerSec float64) error {
	f.user.WalkLevel = level
	f.user.WalkRate = rateMills
	f.user.EnergyRegenPerSec = regenPerSec
	return nil
}

func (f *fakeUserRepo) UpdateSteps(_ context.Context, chatID int64, totalSteps int64, creditedOn time.Time, millsToday int64) error {
	f.user.TotalSteps = totalSteps
	f.user.StepsCreditedOn = creditedOn
	f.user.StepsMillsToday = millsToday
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
	return nil, nil
}

func (f *fakeLedger) CompleteDeposit(_ context.Context, ref string, amountMills int64) error {
	return errors.New("not supported")
}

func (f *fakeLedger) ListByUser(_ context.Context, chatID int64, limit int) ([]model.Transaction, error) {
	return f.txs, nil
}

func (f *fakeLedger) SetLatestWithdrawStatus(_ context.Context, chatID int64, amountMills int64, status string) error {
	return errors.New("not supported")
}

func testUser() *model.User {
	return &model.User{
		ChatID:          777,
		WalkLevel:       1,
		WalkRate:        1,
		StepsCreditedOn: time.Now().UTC(),
	}
}

func userCtx() context.Context {
	return middleware.WithUserID(context.Background(), 777)
}

func TestSteps_Credits(t *testing.T) {
	users := &fakeUserRepo{user: testUser()}
	ledger := &fakeLedger{}
	s := NewWalkService(walkCfg{}, tapCfg{}, users, ledger, fakeTxManager{})

	res, err := s.Steps(userCtx(), 200)
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	if res.EarnedMills != 200 {
		t.Errorf("earned %d, want 200", res.EarnedMills)
	}
	if res.TotalSteps != 200 {
		t.Errorf("total steps %d, want 200", res.TotalSteps)
	}
	if res.CapReached {
		t.Error("cap reported reached too early")
	}
	if len(ledger.txs) != 1 || ledger.txs[0].Type != model.TxWalk {
		t.Errorf("unexpected ledger rows: %+v", ledger.txs)
	}
}

func TestSteps_DailyCap(t *testing.T) {
	users := &fakeUserRepo{user: testUser()}
	s := NewWalkService(walkCfg{}, tapCfg{}, users, &fakeLedger{}, fakeTxManager{})

	// Лимит при ставке 1 милл/шаг - 1000 миллов ($1)
	res, err := s.Steps(userCtx(), 900)
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	if res.EarnedMills != 900 || res.CapReached {
		t.Fatalf("first batch: earned %d cap %v", res.EarnedMills, res.CapReached)
	}

	// Вторая пачка упирается в остаток лимита
	res, err = s.Steps(userCtx(), 500)
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	if res.EarnedMills != 100 {
		t.Errorf("earned %d, want 100 (cap remainder)", res.EarnedMills)
	}
	if !res.CapReached {
		t.Error("cap not reported reached")
	}

	// Третья пачка сверх лимита не зарабатывает ничего
	res, err = s.Steps(userCtx(), 100)
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	if res.EarnedMills != 0 || !res.CapReached {
		t.Errorf("over cap: earned %d cap %v", res.EarnedMills, res.CapReached)
	}
}

func TestSteps_DayReset(t *testing.T) {
	u := testUser()
	u.StepsCreditedOn = time.Now().UTC().AddDate(0, 0, -1)
	u.StepsMillsToday = 1000 // вчерашний лимит выбран полностью
	users := &fakeUserRepo{user: u}
	s := NewWalkService(walkCfg{}, tapCfg{}, users, &fakeLedger{}, fakeTxManager{})

	res, err := s.Steps(userCtx(), 100)
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	if res.EarnedMills != 100 {
		t.Errorf("earned %d after day reset, want 100", res.EarnedMills)
	}
}

func TestSteps_RejectsNonPositive(t *testing.T) {
	s := NewWalkService(walkCfg{}, tapCfg{}, &fakeUserRepo{user: testUser()}, &fakeLedger{}, fakeTxManager{})

	if _, err := s.Steps(userCtx(), 0); !errors.Is(err, service.ErrBadRequest) {
		t.Errorf("got %v, want ErrBadRequest", err)
	}
}

func TestUpgrade_Success(t *testing.T) {
	u := testUser()
	u.BalanceMills = 25_000
	users := &fakeUserRepo{user: u}
	ledger := &fakeLedger{}
	s := NewWalkService(walkCfg{}, tapCfg{}, users, ledger, fakeTxManager{})

	// Уровень 1 -> 3: платим за 2-й и 3-й уровни (5000 + 15000)
	res, err := s.Upgrade(userCtx(), 3)
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if res.BalanceMills != 5000 {
		t.Errorf("balance %d, want 5000", res.BalanceMills)
	}
	if res.WalkLevel != 3 || res.WalkRate != 5 {
		t.Errorf("level %d rate %d, want 3/5", res.WalkLevel, res.WalkRate)
	}
	// Реген: 0.2 * (1 + 0.2*(3-1)) = 0.28
	if res.EnergyRegenPerSec < 0.279 || res.EnergyRegenPerSec > 0.281 {
		t.Errorf("regen %v, want 0.28", res.EnergyRegenPerSec)
	}
	if len(ledger.txs) != 1 || ledger.txs[0].AmountMills != -20_000 {
		t.Errorf("unexpected ledger rows: %+v", ledger.txs)
	}
}

func TestUpgrade_InsufficientBalance(t *testing.T) {
	u := testUser()
	u.BalanceMills = 100
	s := NewWalkService(walkCfg{}, tapCfg{}, &fakeUserRepo{user: u}, &fakeLedger{}, fakeTxManager{})

	if _, err := s.Upgrade(userCtx(), 2); !errors.Is(err, service.ErrInsufficientBalance) {
		t.Errorf("got %v, want ErrInsufficientBalance", err)
	}
}

func TestUpgrade_RejectsDowngradeAndUnknown(t *testing.T) {
	u := testUser()
	u.WalkLevel = 2
	u.BalanceMills = 100_000
	s := NewWalkService(walkCfg{}, tapCfg{}, &fakeUserRepo{user: u}, &fakeLedger{}, fakeTxManager{})

	if _, err := s.Upgrade(userCtx(), 2); !errors.Is(err, service.ErrBadRequest) {
		t.Errorf("same level: got %v, want ErrBadRequest", err)
	}
	if _, err := s.Upgrade(userCtx(), 1); !errors.Is(err, service.ErrBadRequest) {
		t.Errorf("downgrade: got %v, want ErrBadRequest", err)
	}
	if _, err := s.Upgrade(userCtx(), 99); !errors.Is(err, service.ErrBadRequest) {
		t.Errorf("unknown level: got %v, want ErrBadRequest", err)
	}
}
