package grpc

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-bank-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedBankServiceServer
	core   *usecase.CoreUseCase
	logger *log.Logger
}

func NewGrpcServer(core *usecase.CoreUseCase, logger *log.Logger) *GrpcServer {
	return &GrpcServer{
		core:   core,
		logger: logger,
	}
}

func (s *GrpcServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {
	if req.Name == "" || req.AccountNumber == "" {
		return &pb.CreateAccountResponse{
			Success: false,
			Message: "name and account_number are required",
		}, nil
	}

	account, err := s.core.CreateAccount(ctx, req.Name, req.AccountNumber)
	if err != nil {
		// 業務邏輯錯誤，回傳 Success=false (Soft Failure)
		if errors.Is(err, domain.ErrAccountAlreadyExists) {
			return &pb.CreateAccountResponse{
				Success: false,
				Message: err.Error(),
			}, nil
		}
		s.logger.Error("create account failed", "account", req.AccountNumber, "err", err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.logger.Info("account created", "account", account.AccountNumber, "id", account.ID)
	return &pb.CreateAccountResponse{
		Success: true,
		Account: toPbAccount(account),
	}, nil
}

func (s *GrpcServer) Transact(ctx context.Context, req *pb.TransactRequest) (*pb.TransactResponse, error) {
	// 1. 轉換交易類型
	var txType domain.TransactionType
	switch req.Type {
	case pb.TransactionType_DEPOSIT:
		txType = domain.TransactionTypeDeposit
	case pb.TransactionType_WITHDRAWAL:
		txType = domain.TransactionTypeWithdrawal
	default:
		return &pb.TransactResponse{
			Success: false,
			Message: "invalid transaction type",
		}, nil
	}

	// 2. 執行交易
	tx, err := s.core.Process(ctx, req.AccountNumber, txType, req.Amount)
	if err != nil {
		// 業務邏輯錯誤，回傳 Success=false (Soft Failure)
		if domain.IsRejection(err) ||
			errors.Is(err, domain.ErrAccountNotFound) ||
			errors.Is(err, domain.ErrAmountMustBePositive) {
			return &pb.TransactResponse{
				Success: false,
				Message: err.Error(),
			}, nil
		}
		s.logger.Error("transaction failed", "account", req.AccountNumber, "type", txType.String(), "err", err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	// 3. 取得最新餘額 (Best Effort)
	balance, _ := s.core.GetAccountBalance(ctx, req.AccountNumber)

	s.logger.Info("transaction committed",
		"account", req.AccountNumber, "type", txType.String(), "amount", req.Amount, "ref_id", tx.RefID)
	return &pb.TransactResponse{
		Success:        true,
		Transaction:    toPbTransaction(tx),
		CurrentBalance: balance,
	}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	balance, err := s.core.GetAccountBalance(ctx, req.AccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetBalanceResponse{
		Balance: balance,
	}, nil
}

func toPbAccount(a *domain.Account) *pb.Account {
	return &pb.Account{
		Id:            a.ID,
		Name:          a.Name,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
	}
}

func toPbTransaction(t *domain.Transaction) *pb.Transaction {
	return &pb.Transaction{
		Id:        t.ID,
		RefId:     t.RefID.String(),
		AccountId: t.AccountID,
		Type:      pb.TransactionType(t.Type),
		Amount:    t.Amount,
		CreatedAt: t.CreatedAt.UnixMilli(),
	}
}
