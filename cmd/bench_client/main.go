package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	grpc_pool "github.com/JoeShih716/go-bank-ledger/pkg/grpc"
	pb "github.com/JoeShih716/go-bank-ledger/proto"
)

const (
	Target      = "localhost:50051"
	TotalCount  = 100000
	Concurrency = 500
)

// 壓測流程: 建立一個帳戶，併發打 Transact (存款)。
// 額度檢查會擋掉絕大多數請求 (soft failure)，
// 這裡統計 commit / rejected 數量並驗證最終餘額一致。
func main() {
	pool := grpc_pool.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection(Target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewBankServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	accountNumber := uuid.New().String()
	createResp, err := c.CreateAccount(ctx, &pb.CreateAccountRequest{
		Name:          "bench",
		AccountNumber: accountNumber,
	})
	if err != nil {
		log.Fatalf("CreateAccount failed: %v", err)
	}
	if !createResp.Success {
		log.Fatalf("CreateAccount rejected: %s", createResp.Message)
	}
	log.Printf("account created: %s", accountNumber)

	var wg sync.WaitGroup
	wg.Add(TotalCount)

	sem := make(chan struct{}, Concurrency)

	var committed, rejected, failed atomic.Int64
	var committedAmount atomic.Int64

	startTime := time.Now()

	for i := 0; i < TotalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			resp, err := c.Transact(ctx, &pb.TransactRequest{
				AccountNumber: accountNumber,
				Type:          pb.TransactionType_DEPOSIT,
				Amount:        100,
			})
			if err != nil {
				failed.Add(1)
				if idx%10000 == 0 {
					log.Printf("Transact %d failed: %v", idx, err)
				}
				return
			}
			if resp.Success {
				committed.Add(1)
				committedAmount.Add(100)
			} else {
				rejected.Add(1)
			}
		}(i)
	}

	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d requests in %v\n", TotalCount, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(TotalCount)/elapsed.Seconds())
	fmt.Printf("committed=%d rejected=%d failed=%d\n", committed.Load(), rejected.Load(), failed.Load())

	// 最終餘額必須等於所有 commit 成功的金額總和
	balResp, err := c.GetBalance(ctx, &pb.GetBalanceRequest{AccountNumber: accountNumber})
	if err != nil {
		log.Fatalf("GetBalance failed: %v", err)
	}
	if balResp.Balance != committedAmount.Load() {
		log.Fatalf("balance mismatch: got %d, want %d", balResp.Balance, committedAmount.Load())
	}
	fmt.Printf("final balance verified: %d\n", balResp.Balance)
}
