package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLimitPolicyFor 驗證存款與提款各自取得獨立的門檻
func TestLimitPolicyFor(t *testing.T) {
	p := DefaultLimitPolicy()

	assert.EqualValues(t, 40000, p.For(TransactionTypeDeposit).MaxPerTransaction)
	assert.EqualValues(t, 4, p.For(TransactionTypeDeposit).MaxDailyCount)
	assert.EqualValues(t, 150000, p.For(TransactionTypeDeposit).MaxDailyAmount)

	assert.EqualValues(t, 20000, p.For(TransactionTypeWithdrawal).MaxPerTransaction)
	assert.EqualValues(t, 3, p.For(TransactionTypeWithdrawal).MaxDailyCount)
	assert.EqualValues(t, 50000, p.For(TransactionTypeWithdrawal).MaxDailyAmount)
}

// TestLimitPolicyValidate 驗證六個門檻皆須為正數
func TestLimitPolicyValidate(t *testing.T) {
	require.NoError(t, DefaultLimitPolicy().Validate())

	p := DefaultLimitPolicy()
	p.Deposit.MaxPerTransaction = 0
	assert.Error(t, p.Validate())

	p = DefaultLimitPolicy()
	p.Withdrawal.MaxDailyCount = -1
	assert.Error(t, p.Validate())

	p = DefaultLimitPolicy()
	p.Withdrawal.MaxDailyAmount = 0
	assert.Error(t, p.Validate())
}

func TestIsZero(t *testing.T) {
	assert.True(t, LimitPolicy{}.IsZero())
	assert.False(t, DefaultLimitPolicy().IsZero())
}

// TestMaxAmountErr 驗證單筆上限錯誤依交易類型區分
func TestMaxAmountErr(t *testing.T) {
	assert.ErrorIs(t, TransactionTypeDeposit.MaxAmountErr(), ErrDepositLimitExceeded)
	assert.ErrorIs(t, TransactionTypeWithdrawal.MaxAmountErr(), ErrWithdrawalLimitExceeded)
}

// TestIsRejection 驗證「請求被拒絕」類錯誤的分類
func TestIsRejection(t *testing.T) {
	for _, err := range []error{
		ErrDepositLimitExceeded,
		ErrWithdrawalLimitExceeded,
		ErrDailyFrequencyExceeded,
		ErrDailyAmountExceeded,
		ErrInsufficientBalance,
	} {
		assert.True(t, IsRejection(err), err.Error())
	}

	assert.False(t, IsRejection(ErrAccountNotFound))
	assert.False(t, IsRejection(ErrStorage))
	assert.False(t, IsRejection(nil))
}
