package domain

import "fmt"

// TypeLimits 單一交易類型的三個額度門檻
type TypeLimits struct {
	// MaxPerTransaction 單筆金額上限
	MaxPerTransaction int64 `yaml:"max_per_transaction"`
	// MaxDailyCount 當日筆數上限
	MaxDailyCount int64 `yaml:"max_daily_count"`
	// MaxDailyAmount 當日累計金額上限
	// 注意：此為「不可達到」的上限，當日累計 + 新金額 >= MaxDailyAmount 即拒絕
	MaxDailyAmount int64 `yaml:"max_daily_amount"`
}

// LimitPolicy 限額配置，啟動時載入一次，之後唯讀
type LimitPolicy struct {
	Deposit    TypeLimits `yaml:"deposit"`
	Withdrawal TypeLimits `yaml:"withdrawal"`
}

// DefaultLimitPolicy 預設限額
func DefaultLimitPolicy() LimitPolicy {
	return LimitPolicy{
		Deposit: TypeLimits{
			MaxPerTransaction: 40000,
			MaxDailyCount:     4,
			MaxDailyAmount:    150000,
		},
		Withdrawal: TypeLimits{
			MaxPerTransaction: 20000,
			MaxDailyCount:     3,
			MaxDailyAmount:    50000,
		},
	}
}

// IsZero 判斷是否完全未配置 (yaml 沒寫 limits 區塊)
func (p LimitPolicy) IsZero() bool {
	return p == LimitPolicy{}
}

// For 取得指定交易類型的門檻
func (p LimitPolicy) For(t TransactionType) TypeLimits {
	if t == TransactionTypeWithdrawal {
		return p.Withdrawal
	}
	return p.Deposit
}

// Validate 檢查六個門檻皆為正數
func (p LimitPolicy) Validate() error {
	for _, t := range []TransactionType{TransactionTypeDeposit, TransactionTypeWithdrawal} {
		l := p.For(t)
		if l.MaxPerTransaction <= 0 {
			return fmt.Errorf("%s max_per_transaction must be positive, got %d", t, l.MaxPerTransaction)
		}
		if l.MaxDailyCount <= 0 {
			return fmt.Errorf("%s max_daily_count must be positive, got %d", t, l.MaxDailyCount)
		}
		if l.MaxDailyAmount <= 0 {
			return fmt.Errorf("%s max_daily_amount must be positive, got %d", t, l.MaxDailyAmount)
		}
	}
	return nil
}

// MaxAmountErr 回傳對應交易類型的單筆上限錯誤
func (t TransactionType) MaxAmountErr() error {
	if t == TransactionTypeWithdrawal {
		return ErrWithdrawalLimitExceeded
	}
	return ErrDepositLimitExceeded
}
