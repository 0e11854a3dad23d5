package usecase

import (
	"context"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層：交易驗證與餘額變更
// 持有 LimitPolicy 與 LedgerStore，由 main 明確建構注入
type CoreUseCase struct {
	store  LedgerStore
	limits domain.LimitPolicy
	locks  accountLocks
}

func NewCoreUseCase(store LedgerStore, limits domain.LimitPolicy) *CoreUseCase {
	return &CoreUseCase{
		store:  store,
		limits: limits,
	}
}

// Process 處理存款/提款請求
//
// 檢查順序固定，第一個失敗的檢查決定回傳錯誤：
//  1. 帳戶存在
//  2. 單筆金額上限
//  3. 當日筆數上限
//  4. 當日累計金額上限 (已 commit 累計 + 本筆 >= 上限即拒絕)
//  5. 提款餘額檢查
//  6. 原子 commit (寫入交易 + 更新餘額)
//
// 任一檢查失敗皆為零寫入。整段流程持有該帳號的鎖，
// 同帳戶的並發請求不會同時通過驗證後重複 commit。
//
// 參數:
//
//	ctx: 上下文
//	accountNumber: 帳號
//	txType: 交易類型
//	amount: 金額 (必須為正，零或負數屬上游合約違反)
//
// 回傳:
//
//	*domain.Transaction: 已 commit 的交易
//	error: 驗證失敗或儲存層錯誤
func (c *CoreUseCase) Process(ctx context.Context, accountNumber string, txType domain.TransactionType, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrAmountMustBePositive
	}
	if !txType.Valid() {
		return nil, domain.ErrInvalidTransactionType
	}

	unlock := c.locks.lock(accountNumber)
	defer unlock()

	account, err := c.store.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	lim := c.limits.For(txType)
	if amount > lim.MaxPerTransaction {
		return nil, txType.MaxAmountErr()
	}

	count, err := c.store.CountTransactionsToday(ctx, account.ID, txType)
	if err != nil {
		return nil, err
	}
	if count >= lim.MaxDailyCount {
		return nil, domain.ErrDailyFrequencyExceeded
	}

	sum, err := c.store.SumTransactionAmountsToday(ctx, account.ID, txType)
	if err != nil {
		return nil, err
	}
	// 上限為排除邊界：恰好達到上限也算違反
	if sum+amount >= lim.MaxDailyAmount {
		return nil, domain.ErrDailyAmountExceeded
	}

	if txType == domain.TransactionTypeWithdrawal && account.Balance < amount {
		return nil, domain.ErrInsufficientBalance
	}

	return c.store.CommitTransaction(ctx, account, txType, amount)
}

// CreateAccount 建立新帳戶，帳號重複回傳 domain.ErrAccountAlreadyExists
func (c *CoreUseCase) CreateAccount(ctx context.Context, name, accountNumber string) (*domain.Account, error) {
	exists, err := c.store.AccountExists(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAccountAlreadyExists
	}
	return c.store.CreateAccount(ctx, name, accountNumber)
}

// GetAccountBalance 取得帳戶餘額
func (c *CoreUseCase) GetAccountBalance(ctx context.Context, accountNumber string) (int64, error) {
	account, err := c.store.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}
