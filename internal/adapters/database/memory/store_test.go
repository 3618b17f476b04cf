package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/currex/currex_backend/internal/adapters/database/memory"
	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	store *memory.Store
	ctx   context.Context
}

func (suite *MemoryStoreTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.ctx = context.Background()
}

func (suite *MemoryStoreTestSuite) TestSeededReferenceData() {
	currencies, err := suite.store.ListCurrencies(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(currencies, 8)
	// Sorted by code.
	suite.Equal("AUD", currencies[0].Code)
	suite.Equal("USD", currencies[len(currencies)-1].Code)

	rate, err := suite.store.FindExchangeRate(suite.ctx, "USD", "EUR")
	suite.Require().NoError(err)
	suite.True(rate.Rate.Equal(decimal.RequireFromString("0.90")))

	// The seeded reverse pair is an independent record, not the inverse.
	reverse, err := suite.store.FindExchangeRate(suite.ctx, "EUR", "USD")
	suite.Require().NoError(err)
	suite.True(reverse.Rate.Equal(decimal.RequireFromString("1.09")))
}

func (suite *MemoryStoreTestSuite) TestFindExchangeRate_UnknownPair() {
	rate, err := suite.store.FindExchangeRate(suite.ctx, "XYZ", "USD")
	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryStoreTestSuite) TestWalletLifecycle() {
	userID := uuid.NewString()
	wallet := domain.Wallet{
		WalletID:     uuid.NewString(),
		UserID:       userID,
		CurrencyCode: "EUR",
		Balance:      decimal.NewFromInt(100),
		LastUpdated:  time.Now(),
	}

	suite.Require().NoError(suite.store.CreateWallet(suite.ctx, wallet))
	suite.ErrorIs(suite.store.CreateWallet(suite.ctx, wallet), apperrors.ErrDuplicate)

	updated, err := suite.store.CreditWallet(suite.ctx, userID, "EUR", decimal.NewFromInt(-150), time.Now())
	suite.Require().NoError(err)
	suite.True(updated.Balance.Equal(decimal.NewFromInt(-50)), "existing wallets have no lower bound")

	_, err = suite.store.CreditWallet(suite.ctx, userID, "JPY", decimal.NewFromInt(10), time.Now())
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryStoreTestSuite) TestConcurrentCreditsStaySumCorrect() {
	userID := uuid.NewString()
	suite.Require().NoError(suite.store.CreateWallet(suite.ctx, domain.Wallet{
		WalletID:     uuid.NewString(),
		UserID:       userID,
		CurrencyCode: "USD",
		Balance:      decimal.Zero,
	}))

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := suite.store.CreditWallet(suite.ctx, userID, "USD", decimal.NewFromInt(5), time.Now())
			suite.NoError(err)
		}()
	}
	wg.Wait()

	wallet, err := suite.store.FindWallet(suite.ctx, userID, "USD")
	suite.Require().NoError(err)
	suite.True(wallet.Balance.Equal(decimal.NewFromInt(100)))
}

func (suite *MemoryStoreTestSuite) TestTransactionsNewestFirst() {
	userID := uuid.NewString()
	base := time.Now()
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.store.SaveTransaction(suite.ctx, domain.Transaction{
			TransactionID: uuid.NewString(),
			UserID:        userID,
			Status:        domain.TransactionCompleted,
			Date:          base.Add(time.Duration(i) * time.Minute),
		}))
	}

	txns, err := suite.store.ListTransactionsByUser(suite.ctx, userID)
	suite.Require().NoError(err)
	suite.Require().Len(txns, 3)
	suite.True(txns[0].Date.After(txns[1].Date))
	suite.True(txns[1].Date.After(txns[2].Date))
}

func (suite *MemoryStoreTestSuite) TestUpdateTransactionStatus() {
	transactionID := uuid.NewString()
	suite.Require().NoError(suite.store.SaveTransaction(suite.ctx, domain.Transaction{
		TransactionID: transactionID,
		Status:        domain.TransactionPending,
		Date:          time.Now(),
	}))

	txn, err := suite.store.UpdateTransactionStatus(suite.ctx, transactionID, domain.TransactionFailed)
	suite.Require().NoError(err)
	suite.Equal(domain.TransactionFailed, txn.Status)

	_, err = suite.store.UpdateTransactionStatus(suite.ctx, uuid.NewString(), domain.TransactionCompleted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemoryStoreTestSuite) TestUserEmailUniqueness() {
	user := domain.User{
		UserID: uuid.NewString(),
		Name:   "Alice",
		Email:  "alice@example.com",
	}
	suite.Require().NoError(suite.store.SaveUser(suite.ctx, user))

	dup := domain.User{UserID: uuid.NewString(), Name: "Other", Email: "alice@example.com"}
	suite.ErrorIs(suite.store.SaveUser(suite.ctx, dup), apperrors.ErrDuplicate)

	found, err := suite.store.FindUserByEmail(suite.ctx, "alice@example.com")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, found.UserID)
}

func (suite *MemoryStoreTestSuite) TestUpdateUserReleasesOldEmail() {
	user := domain.User{UserID: uuid.NewString(), Name: "Bob", Email: "bob@example.com"}
	suite.Require().NoError(suite.store.SaveUser(suite.ctx, user))

	user.Email = "robert@example.com"
	suite.Require().NoError(suite.store.UpdateUser(suite.ctx, user))

	_, err := suite.store.FindUserByEmail(suite.ctx, "bob@example.com")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	newcomer := domain.User{UserID: uuid.NewString(), Name: "New Bob", Email: "bob@example.com"}
	suite.NoError(suite.store.SaveUser(suite.ctx, newcomer))
}

func (suite *MemoryStoreTestSuite) TestHealth() {
	suite.NoError(suite.store.Ping(suite.ctx))
	suite.Equal("memory", suite.store.Name())
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}
