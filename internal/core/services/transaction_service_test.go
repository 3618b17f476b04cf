package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	portssvc "github.com/currex/currex_backend/internal/core/ports/services"
	"github.com/currex/currex_backend/internal/core/services"
	"github.com/currex/currex_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Mock ExchangeRateReaderSvc ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateReader) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Mock WalletWriterSvc ---
type MockWalletWriter struct {
	mock.Mock
}

func (m *MockWalletWriter) CreditWallet(ctx context.Context, userID, currencyCode string, amount decimal.Decimal) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, currencyCode, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletWriter) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockTransactionRepository
	mockRates  *MockRateReader
	mockWallet *MockWalletWriter
	service    portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockRates = new(MockRateReader)
	suite.mockWallet = new(MockWalletWriter)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockRates, suite.mockWallet)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestConvert_Success() {
	// Stored rate USD->EUR 0.90; converting 100 USD yields a completed
	// transaction of 90 EUR and credits the destination wallet by 90.
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateConversionRequest{
		UserID:       userID,
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		FromAmount:   decimal.NewFromInt(100),
	}
	rate := &domain.ExchangeRate{
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Rate:         decimal.RequireFromString("0.90"),
	}
	expectedToAmount := decimal.RequireFromString("90")

	suite.mockRates.On("GetExchangeRate", ctx, "USD", "EUR").Return(rate, nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.UserID == userID &&
			t.Status == domain.TransactionCompleted &&
			t.FromAmount.Equal(decimal.NewFromInt(100)) &&
			t.ToAmount.Equal(expectedToAmount) &&
			t.Rate.Equal(rate.Rate)
	})).Return(nil).Once()
	suite.mockWallet.On("CreditWallet", ctx, userID, "EUR", mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(expectedToAmount)
	})).Return(&domain.Wallet{UserID: userID, CurrencyCode: "EUR", Balance: expectedToAmount}, nil).Once()

	txn, err := suite.service.Convert(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.TransactionCompleted, txn.Status)
	suite.True(txn.ToAmount.Equal(expectedToAmount))

	// The destination wallet is credited exactly once; the source wallet is
	// never debited. Current behavior of the system this one reproduces, not
	// necessarily desired behavior.
	suite.mockWallet.AssertNumberOfCalls(suite.T(), "CreditWallet", 1)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRates.AssertExpectations(suite.T())
	suite.mockWallet.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestConvert_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateConversionRequest{
		UserID:       uuid.NewString(),
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		FromAmount:   decimal.Zero,
	}

	txn, err := suite.service.Convert(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRates.AssertNotCalled(suite.T(), "GetExchangeRate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
	suite.mockWallet.AssertNotCalled(suite.T(), "CreditWallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestConvert_RateNotFound() {
	ctx := context.Background()
	req := dto.CreateConversionRequest{
		UserID:       uuid.NewString(),
		FromCurrency: "XYZ",
		ToCurrency:   "USD",
		FromAmount:   decimal.NewFromInt(50),
	}

	suite.mockRates.On("GetExchangeRate", ctx, "XYZ", "USD").
		Return(nil, fmt.Errorf("%w: no exchange rate for XYZ to USD", apperrors.ErrNotFound)).Once()

	txn, err := suite.service.Convert(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	// No side effects: no ledger record, no wallet mutation.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
	suite.mockWallet.AssertNotCalled(suite.T(), "CreditWallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_AllAndFiltered() {
	ctx := context.Background()
	userID := uuid.NewString()
	all := []domain.Transaction{{TransactionID: uuid.NewString()}, {TransactionID: uuid.NewString()}}
	mine := all[:1]

	suite.mockRepo.On("ListTransactions", ctx).Return(all, nil).Once()
	suite.mockRepo.On("ListTransactionsByUser", ctx, userID).Return(mine, nil).Once()

	got, err := suite.service.ListTransactions(ctx, "")
	suite.Require().NoError(err)
	suite.Len(got, 2)

	got, err = suite.service.ListTransactions(ctx, userID)
	suite.Require().NoError(err)
	suite.Len(got, 1)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransactionStatus_InvalidStatus() {
	ctx := context.Background()

	txn, err := suite.service.UpdateTransactionStatus(ctx, uuid.NewString(), "reversed")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransactionStatus_Success() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	updated := &domain.Transaction{TransactionID: transactionID, Status: domain.TransactionFailed}

	suite.mockRepo.On("UpdateTransactionStatus", ctx, transactionID, domain.TransactionFailed).
		Return(updated, nil).Once()

	txn, err := suite.service.UpdateTransactionStatus(ctx, transactionID, "failed")

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionFailed, txn.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
