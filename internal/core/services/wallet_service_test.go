package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) FindWallet(ctx context.Context, userID, currencyCode string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) CreateWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) CreditWallet(ctx context.Context, userID, currencyCode string, amount decimal.Decimal, now time.Time) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, currencyCode, amount, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

// --- Test Suite ---
type WalletServiceTestSuite struct {
	suite.Suite
	mockRepo *MockWalletRepository
	service  portssvc.WalletSvcFacade
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockWalletRepository)
	suite.service = services.NewWalletService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *WalletServiceTestSuite) TestCreditWallet_ExistingWallet() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromInt(50)
	updated := &domain.Wallet{
		UserID:       userID,
		CurrencyCode: "EUR",
		Balance:      decimal.NewFromInt(150),
	}

	suite.mockRepo.On("CreditWallet", ctx, userID, "EUR", amount, mock.AnythingOfType("time.Time")).
		Return(updated, nil).Once()

	wallet, err := suite.service.CreditWallet(ctx, userID, "eur", amount)

	suite.Require().NoError(err)
	suite.True(wallet.Balance.Equal(decimal.NewFromInt(150)))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateWallet", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCreditWallet_CreatesOnFirstUse() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromInt(90)

	suite.mockRepo.On("CreditWallet", ctx, userID, "EUR", amount, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateWallet", ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.UserID == userID && w.CurrencyCode == "EUR" && w.Balance.Equal(amount)
	})).Return(nil).Once()

	wallet, err := suite.service.CreditWallet(ctx, userID, "EUR", amount)

	suite.Require().NoError(err)
	suite.Equal("EUR", wallet.CurrencyCode)
	suite.True(wallet.Balance.Equal(amount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCreditWallet_ZeroAmountCreates() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.Zero

	suite.mockRepo.On("CreditWallet", ctx, userID, "CHF", amount, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateWallet", ctx, mock.AnythingOfType("domain.Wallet")).Return(nil).Once()

	wallet, err := suite.service.CreditWallet(ctx, userID, "CHF", amount)

	suite.Require().NoError(err)
	suite.True(wallet.Balance.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCreditWallet_NegativeCreateRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromInt(-10)

	suite.mockRepo.On("CreditWallet", ctx, userID, "EUR", amount, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	wallet, err := suite.service.CreditWallet(ctx, userID, "EUR", amount)

	suite.Require().Error(err)
	suite.Nil(wallet)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateWallet", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCreditWallet_NegativeBeyondBalancePermitted() {
	// An existing wallet has no lower bound; a debit larger than the balance
	// drives it negative. Current behavior, documented as such.
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromInt(-500)
	overdrawn := &domain.Wallet{
		UserID:       userID,
		CurrencyCode: "USD",
		Balance:      decimal.NewFromInt(-400),
	}

	suite.mockRepo.On("CreditWallet", ctx, userID, "USD", amount, mock.AnythingOfType("time.Time")).
		Return(overdrawn, nil).Once()

	wallet, err := suite.service.CreditWallet(ctx, userID, "USD", amount)

	suite.Require().NoError(err)
	suite.True(wallet.Balance.IsNegative())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCreditWallet_CreationRaceRetries() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromInt(25)
	afterRace := &domain.Wallet{
		UserID:       userID,
		CurrencyCode: "GBP",
		Balance:      decimal.NewFromInt(75),
	}

	suite.mockRepo.On("CreditWallet", ctx, userID, "GBP", amount, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("CreateWallet", ctx, mock.AnythingOfType("domain.Wallet")).
		Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("CreditWallet", ctx, userID, "GBP", amount, mock.AnythingOfType("time.Time")).
		Return(afterRace, nil).Once()

	wallet, err := suite.service.CreditWallet(ctx, userID, "GBP", amount)

	suite.Require().NoError(err)
	suite.True(wallet.Balance.Equal(decimal.NewFromInt(75)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCreditWallet_MissingIdentifiers() {
	ctx := context.Background()

	wallet, err := suite.service.CreditWallet(ctx, "", "USD", decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.Nil(wallet)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreditWallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestCreateWallet_Duplicate() {
	ctx := context.Background()
	req := dto.CreateWalletRequest{
		UserID:       uuid.NewString(),
		CurrencyCode: "eur",
		Balance:      decimal.NewFromInt(100),
	}

	suite.mockRepo.On("CreateWallet", ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.CurrencyCode == "EUR"
	})).Return(apperrors.ErrDuplicate).Once()

	wallet, err := suite.service.CreateWallet(ctx, req)

	suite.Require().Error(err)
	suite.Nil(wallet)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
