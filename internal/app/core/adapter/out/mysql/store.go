package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-ledger/pkg/mysql"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"size:255"`
	AccountNumber string `gorm:"column:account_number;size:64;uniqueIndex"`
	Balance       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlTransaction 對應資料庫的 transactions 表
// (account_id, type, created_at) 複合索引供當日統計查詢使用
type sqlTransaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	RefID     []byte    `gorm:"column:ref_id;type:binary(16);uniqueIndex"`
	AccountID int64     `gorm:"index:idx_account_type_created,priority:1"`
	Type      uint8     `gorm:"index:idx_account_type_created,priority:2"`
	Amount    int64
	CreatedAt time.Time `gorm:"index:idx_account_type_created,priority:3"`
}

func (*sqlTransaction) TableName() string {
	return "transactions"
}

// Store 是 LedgerStore 的 MySQL 實作
type Store struct {
	client *mysql.Client
}

func NewStore(client *mysql.Client) *Store {
	return &Store{
		client: client,
	}
}

// AutoMigrate 建立資料表
func (s *Store) AutoMigrate() error {
	return s.client.DB().AutoMigrate(&sqlAccount{}, &sqlTransaction{})
}

// FindAccountByNumber 依帳號查詢帳戶
func (s *Store) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	var row sqlAccount
	err := s.client.DB().WithContext(ctx).
		Where("account_number = ?", accountNumber).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, storageErr(err)
	}
	return row.toDomain(), nil
}

// AccountExists 檢查帳號是否已存在
func (s *Store) AccountExists(ctx context.Context, accountNumber string) (bool, error) {
	var count int64
	err := s.client.DB().WithContext(ctx).
		Model(&sqlAccount{}).
		Where("account_number = ?", accountNumber).
		Count(&count).Error
	if err != nil {
		return false, storageErr(err)
	}
	return count > 0, nil
}

// CreateAccount 建立餘額為零的新帳戶
// account_number 有 unique index，並發重複建立由資料庫擋下
func (s *Store) CreateAccount(ctx context.Context, name, accountNumber string) (*domain.Account, error) {
	row := sqlAccount{
		Name:          name,
		AccountNumber: accountNumber,
		Balance:       0,
		CreatedAt:     time.Now(),
	}
	err := s.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing sqlAccount
		err := tx.Where("account_number = ?", accountNumber).First(&existing).Error
		if err == nil {
			return domain.ErrAccountAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return row.toDomain(), nil
}

// CountTransactionsToday 統計該帳戶當日指定類型的已 commit 筆數
func (s *Store) CountTransactionsToday(ctx context.Context, accountID int64, txType domain.TransactionType) (int64, error) {
	start, end := dayBounds()
	var count int64
	err := s.client.DB().WithContext(ctx).
		Model(&sqlTransaction{}).
		Where("account_id = ? AND type = ? AND created_at >= ? AND created_at < ?",
			accountID, uint8(txType), start, end).
		Count(&count).Error
	if err != nil {
		return 0, storageErr(err)
	}
	return count, nil
}

// SumTransactionAmountsToday 加總該帳戶當日指定類型的已 commit 金額，無紀錄回傳 0
func (s *Store) SumTransactionAmountsToday(ctx context.Context, accountID int64, txType domain.TransactionType) (int64, error) {
	start, end := dayBounds()
	var sum int64
	err := s.client.DB().WithContext(ctx).
		Model(&sqlTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("account_id = ? AND type = ? AND created_at >= ? AND created_at < ?",
			accountID, uint8(txType), start, end).
		Scan(&sum).Error
	if err != nil {
		return 0, storageErr(err)
	}
	return sum, nil
}

// CommitTransaction 原子地寫入交易紀錄並更新帳戶餘額
// 以悲觀鎖鎖定帳戶列後重讀餘額，提款在 commit 內再次檢查，
// 即使有外部寫入者動過該列，餘額也不會變負
func (s *Store) CommitTransaction(ctx context.Context, account *domain.Account, txType domain.TransactionType, amount int64) (*domain.Transaction, error) {
	ref := uuid.New()
	txRow := sqlTransaction{
		RefID:     ref[:],
		Type:      uint8(txType),
		Amount:    amount,
		CreatedAt: time.Now(),
	}

	err := s.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 鎖定帳戶列 悲觀鎖
		var row sqlAccount
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_number = ?", account.AccountNumber).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		switch txType {
		case domain.TransactionTypeDeposit:
			row.Balance += amount
		case domain.TransactionTypeWithdrawal:
			if row.Balance < amount {
				return domain.ErrInsufficientBalance
			}
			row.Balance -= amount
		default:
			return domain.ErrInvalidTransactionType
		}

		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		txRow.AccountID = row.ID
		return tx.Create(&txRow).Error
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return &domain.Transaction{
		ID:        txRow.ID,
		RefID:     ref,
		AccountID: txRow.AccountID,
		Type:      txType,
		Amount:    amount,
		CreatedAt: txRow.CreatedAt,
	}, nil
}

func (row *sqlAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:            row.ID,
		Name:          row.Name,
		AccountNumber: row.AccountNumber,
		Balance:       row.Balance,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

// dayBounds 回傳「今日」的起迄時間 [start, end)，以儲存層時區的日曆日為準
func dayBounds() (time.Time, time.Time) {
	start := now.BeginningOfDay()
	return start, start.AddDate(0, 0, 1)
}

// storageErr 將非領域錯誤包裝為 ErrStorage，領域錯誤原樣傳回
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrAccountNotFound) ||
		errors.Is(err, domain.ErrAccountAlreadyExists) ||
		errors.Is(err, domain.ErrInvalidTransactionType) ||
		domain.IsRejection(err) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}

var _ usecase.LedgerStore = (*Store)(nil)
