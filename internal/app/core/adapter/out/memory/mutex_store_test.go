package memory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/pkg/wal"
)

func newTestStore(t *testing.T) *MutexStore {
	t.Helper()
	s, err := NewMutexStore(nil)
	require.NoError(t, err)
	return s
}

// TestDailyWindowReset 驗證當日統計以日曆日分組：
// 跨日後筆數與金額歸零，但餘額延續
func TestDailyWindowReset(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	day1 := time.Date(2025, 3, 10, 23, 50, 0, 0, time.Local)
	s.clock = func() time.Time { return day1 }

	account, err := s.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	_, err = s.CommitTransaction(ctx, account, domain.TransactionTypeDeposit, 300)
	require.NoError(t, err)
	_, err = s.CommitTransaction(ctx, account, domain.TransactionTypeDeposit, 200)
	require.NoError(t, err)

	count, err := s.CountTransactionsToday(ctx, account.ID, domain.TransactionTypeDeposit)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	sum, err := s.SumTransactionAmountsToday(ctx, account.ID, domain.TransactionTypeDeposit)
	require.NoError(t, err)
	assert.EqualValues(t, 500, sum)

	// 20 分鐘後跨日
	day2 := day1.Add(20 * time.Minute)
	s.clock = func() time.Time { return day2 }

	count, err = s.CountTransactionsToday(ctx, account.ID, domain.TransactionTypeDeposit)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	sum, err = s.SumTransactionAmountsToday(ctx, account.ID, domain.TransactionTypeDeposit)
	require.NoError(t, err)
	assert.EqualValues(t, 0, sum)

	// 餘額不受日界影響
	got, err := s.FindAccountByNumber(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 500, got.Balance)
}

// TestPerTypeCounters 驗證當日統計以交易類型分開累計
func TestPerTypeCounters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	account, err := s.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	_, err = s.CommitTransaction(ctx, account, domain.TransactionTypeDeposit, 1000)
	require.NoError(t, err)
	_, err = s.CommitTransaction(ctx, account, domain.TransactionTypeWithdrawal, 400)
	require.NoError(t, err)

	depositSum, err := s.SumTransactionAmountsToday(ctx, account.ID, domain.TransactionTypeDeposit)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, depositSum)

	withdrawalSum, err := s.SumTransactionAmountsToday(ctx, account.ID, domain.TransactionTypeWithdrawal)
	require.NoError(t, err)
	assert.EqualValues(t, 400, withdrawalSum)
}

// TestFindReturnsCopy 驗證查詢回傳值拷貝，呼叫端改動不影響內部狀態
func TestFindReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	a, err := s.FindAccountByNumber(ctx, "ACC-001")
	require.NoError(t, err)
	a.Balance = 999999

	again, err := s.FindAccountByNumber(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 0, again.Balance)
}

// TestCommitUnknownAccount 驗證對不存在帳戶 commit 的防禦
func TestCommitUnknownAccount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ghost := domain.NewAccount("Ghost", "ACC-404")
	_, err := s.CommitTransaction(ctx, ghost, domain.TransactionTypeDeposit, 100)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// TestWALRecovery 驗證重啟後由 WAL 重放恢復帳本：
// 帳戶、餘額、當日統計與 ID 流水號皆須一致
func TestWALRecovery(t *testing.T) {
	ctx := context.Background()
	walPath := filepath.Join(t.TempDir(), "wal.log")

	w, err := wal.NewWAL(walPath)
	require.NoError(t, err)

	s, err := NewMutexStore(w)
	require.NoError(t, err)

	account, err := s.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)
	_, err = s.CommitTransaction(ctx, account, domain.TransactionTypeDeposit, 500)
	require.NoError(t, err)
	_, err = s.CommitTransaction(ctx, account, domain.TransactionTypeWithdrawal, 200)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// 模擬重啟
	w2, err := wal.NewWAL(walPath)
	require.NoError(t, err)
	defer w2.Close()

	restored, err := NewMutexStore(w2)
	require.NoError(t, err)

	got, err := restored.FindAccountByNumber(ctx, "ACC-001")
	require.NoError(t, err)
	assert.EqualValues(t, 300, got.Balance)
	assert.Equal(t, account.ID, got.ID)

	count, err := restored.CountTransactionsToday(ctx, got.ID, domain.TransactionTypeDeposit)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// 重放後繼續 commit，ID 不可與既有紀錄重複
	tx, err := restored.CommitTransaction(ctx, got, domain.TransactionTypeDeposit, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 3, tx.ID)
}

// TestCreateDuplicate 驗證帳號唯一性
func TestCreateDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateAccount(ctx, "Alice", "ACC-001")
	require.NoError(t, err)

	_, err = s.CreateAccount(ctx, "Bob", "ACC-001")
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	exists, err := s.AccountExists(ctx, "ACC-001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.AccountExists(ctx, "ACC-002")
	require.NoError(t, err)
	assert.False(t, exists)
}
