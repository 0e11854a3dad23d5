package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
)

// newCore 建立以 in-memory store (不持久化) 為後端的 CoreUseCase
func newCore(t *testing.T, limits domain.LimitPolicy) (*usecase.CoreUseCase, *memory.MutexStore) {
	t.Helper()
	store, err := memory.NewMutexStore(nil)
	require.NoError(t, err)
	return usecase.NewCoreUseCase(store, limits), store
}

// generousLimits 回傳不會觸發任何限額的 policy，供非限額測試使用
func generousLimits() domain.LimitPolicy {
	big := domain.TypeLimits{
		MaxPerTransaction: 1 << 40,
		MaxDailyCount:     1 << 40,
		MaxDailyAmount:    1 << 40,
	}
	return domain.LimitPolicy{Deposit: big, Withdrawal: big}
}

func TestCreateAccount(t *testing.T) {
	core, _ := newCore(t, domain.DefaultLimitPolicy())
	ctx := context.Background()

	a, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)
	assert.Equal(t, "ACC-001", a.AccountNumber)
	assert.EqualValues(t, 0, a.Balance)
	assert.NotZero(t, a.ID)

	// 新帳戶餘額為零
	balance, err := core.GetAccountBalance(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)

	// 帳號重複
	_, err = core.CreateAccount(ctx, "Alice2", "ACC-001")
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	// 查詢不存在的帳戶
	_, err = core.GetAccountBalance(ctx, "ACC-404")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestProcessDeposit(t *testing.T) {
	core, _ := newCore(t, domain.DefaultLimitPolicy())
	ctx := context.Background()

	account, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	tx, err := core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionTypeDeposit, tx.Type)
	assert.EqualValues(t, 100, tx.Amount)
	assert.Equal(t, account.ID, tx.AccountID)
	assert.NotZero(t, tx.ID)
	assert.NotZero(t, tx.RefID) // commit 時分配追蹤號
	assert.False(t, tx.CreatedAt.IsZero())

	balance, err := core.GetAccountBalance(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 100, balance)
}

// TestProcessGuards 驗證進入驗證流程前的合約檢查
func TestProcessGuards(t *testing.T) {
	core, _ := newCore(t, domain.DefaultLimitPolicy())
	ctx := context.Background()

	_, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 0)
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)

	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, -5)
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)

	_, err = core.Process(ctx, "ACC-001", domain.TransactionType(9), 100)
	assert.ErrorIs(t, err, domain.ErrInvalidTransactionType)

	_, err = core.Process(ctx, "ACC-404", domain.TransactionTypeDeposit, 100)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// TestPerTransactionCap 驗證單筆金額上限，錯誤依交易類型區分
func TestPerTransactionCap(t *testing.T) {
	core, _ := newCore(t, domain.DefaultLimitPolicy())
	ctx := context.Background()

	_, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 40001)
	assert.ErrorIs(t, err, domain.ErrDepositLimitExceeded)

	// 剛好等於單筆上限是允許的
	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 40000)
	require.NoError(t, err)

	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeWithdrawal, 20001)
	assert.ErrorIs(t, err, domain.ErrWithdrawalLimitExceeded)

	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeWithdrawal, 20000)
	require.NoError(t, err)

	balance, err := core.GetAccountBalance(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 20000, balance)
}

// TestDailyCountCap 驗證當日筆數上限，且被拒絕的請求為零寫入
func TestDailyCountCap(t *testing.T) {
	core, _ := newCore(t, domain.DefaultLimitPolicy())
	ctx := context.Background()

	_, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	// 預設存款當日上限 4 筆
	for i := 0; i < 4; i++ {
		_, err := core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 100)
		require.NoError(t, err)
	}

	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 100)
	assert.ErrorIs(t, err, domain.ErrDailyFrequencyExceeded)

	// 拒絕後餘額不變
	balance, err := core.GetAccountBalance(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 400, balance)

	// 筆數上限是 per-type：存款額滿不影響提款
	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeWithdrawal, 100)
	require.NoError(t, err)
}

// TestDailyAmountCap 驗證當日累計金額的排除邊界：
// 已 commit 累計 + 本筆金額 >= 上限即拒絕，恰好達到上限也算違反
func TestDailyAmountCap(t *testing.T) {
	core, _ := newCore(t, domain.DefaultLimitPolicy())
	ctx := context.Background()

	_, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	// 累計 120000 (上限 150000)
	for i := 0; i < 3; i++ {
		_, err := core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 40000)
		require.NoError(t, err)
	}

	// 120000 + 30000 = 150000，剛好達到上限 → 拒絕
	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 30000)
	assert.ErrorIs(t, err, domain.ErrDailyAmountExceeded)

	// 120000 + 29999 = 149999 < 150000 → 允許
	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 29999)
	require.NoError(t, err)

	balance, err := core.GetAccountBalance(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 149999, balance)
}

// TestFailurePrecedence 驗證檢查順序固定：第一個失敗的檢查決定錯誤
func TestFailurePrecedence(t *testing.T) {
	core, _ := newCore(t, domain.DefaultLimitPolicy())
	ctx := context.Background()

	_, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	// 帳戶不存在先於一切限額檢查
	_, err = core.Process(ctx, "ACC-404", domain.TransactionTypeWithdrawal, 25000)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	// 用滿提款筆數 (餘額先存足)
	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 40000)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := core.Process(ctx, "ACC-001", domain.TransactionTypeWithdrawal, 100)
		require.NoError(t, err)
	}

	// 單筆上限 + 筆數上限 + 餘額不足同時違反 → 單筆上限先報
	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeWithdrawal, 99999)
	assert.ErrorIs(t, err, domain.ErrWithdrawalLimitExceeded)

	// 筆數上限 + 餘額不足同時違反 → 筆數上限先報
	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeWithdrawal, 20000)
	assert.ErrorIs(t, err, domain.ErrDailyFrequencyExceeded)
}

// TestInsufficientBalance 驗證餘額不足的拒絕為零寫入
func TestInsufficientBalance(t *testing.T) {
	core, store := newCore(t, domain.DefaultLimitPolicy())
	ctx := context.Background()

	account, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 50)
	require.NoError(t, err)

	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeWithdrawal, 60)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// 零寫入：餘額不變、沒有留下提款紀錄
	balance, err := core.GetAccountBalance(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 50, balance)

	count, err := store.CountTransactionsToday(ctx, account.ID, domain.TransactionTypeWithdrawal)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// 剛好提光是允許的
	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeWithdrawal, 50)
	require.NoError(t, err)
}

// TestConcurrentWithdrawals 驗證同帳戶並發提款不會重複通過驗證：
// 餘額 100，50 個 goroutine 同時提 100，只有一筆成功
func TestConcurrentWithdrawals(t *testing.T) {
	core, _ := newCore(t, generousLimits())
	ctx := context.Background()

	_, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)
	_, err = core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 100)
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)

	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := core.Process(ctx, "ACC-001", domain.TransactionTypeWithdrawal, 100)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var success, insufficient int
	for err := range results {
		if err == nil {
			success++
			continue
		}
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)
		insufficient++
	}
	assert.Equal(t, 1, success)
	assert.Equal(t, workers-1, insufficient)

	balance, err := core.GetAccountBalance(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)
}

// TestConcurrentDeposits 驗證並發存款全數序列化 commit，餘額守恆
func TestConcurrentDeposits(t *testing.T) {
	core, _ := newCore(t, generousLimits())
	ctx := context.Background()

	_, err := core.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := core.Process(ctx, "ACC-001", domain.TransactionTypeDeposit, 7)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, err := core.GetAccountBalance(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, workers*7, balance)
}
