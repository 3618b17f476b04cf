package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/currex/currex_backend/internal/apperrors"
	"github.com/currex/currex_backend/internal/core/domain"
	portssvc "github.com/currex/currex_backend/internal/core/ports/services"
	"github.com/currex/currex_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExchangeRateRepository
	service  portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExchangeRateService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_IdentityPair() {
	ctx := context.Background()

	rate, err := suite.service.GetExchangeRate(ctx, "usd", "USD")

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal("USD", rate.FromCurrency)
	suite.Equal("USD", rate.ToCurrency)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(1)))

	// The identity rate never consults the store.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_StoredPair() {
	ctx := context.Background()
	stored := &domain.ExchangeRate{
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Rate:         decimal.RequireFromString("0.90"),
	}

	suite.mockRepo.On("FindExchangeRate", ctx, "USD", "EUR").Return(stored, nil).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "usd", "eur")

	suite.Require().NoError(err)
	suite.True(rate.Rate.Equal(decimal.RequireFromString("0.90")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_ReverseIsIndependent() {
	ctx := context.Background()

	// USD->EUR is stored but EUR->USD is not; the reverse pair must not be
	// derived from the stored one.
	suite.mockRepo.On("FindExchangeRate", ctx, "EUR", "USD").
		Return(nil, fmt.Errorf("%w: no exchange rate for EUR to USD", apperrors.ErrNotFound)).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "EUR", "USD")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_InvalidCode() {
	ctx := context.Background()

	rate, err := suite.service.GetExchangeRate(ctx, "US", "EUR")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetHistoricalRates_SeriesShape() {
	ctx := context.Background()
	base := decimal.RequireFromString("0.90")
	stored := &domain.ExchangeRate{FromCurrency: "USD", ToCurrency: "EUR", Rate: base}

	suite.mockRepo.On("FindExchangeRate", ctx, "USD", "EUR").Return(stored, nil).Once()

	points, err := suite.service.GetHistoricalRates(ctx, "usd", "eur", 7)

	suite.Require().NoError(err)
	suite.Require().Len(points, 8)

	lower := base.Mul(decimal.RequireFromString("0.94"))
	upper := base.Mul(decimal.RequireFromString("1.06"))
	for i, p := range points {
		if i > 0 {
			// Dates are formatted YYYY-MM-DD, so string order is date order.
			suite.Less(points[i-1].Date, p.Date)
		}
		suite.True(p.Rate.GreaterThan(lower), "point %d rate %s below noise band", i, p.Rate)
		suite.True(p.Rate.LessThan(upper), "point %d rate %s above noise band", i, p.Rate)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetHistoricalRates_DefaultDays() {
	ctx := context.Background()
	stored := &domain.ExchangeRate{FromCurrency: "USD", ToCurrency: "EUR", Rate: decimal.RequireFromString("0.90")}

	suite.mockRepo.On("FindExchangeRate", ctx, "USD", "EUR").Return(stored, nil).Once()

	points, err := suite.service.GetHistoricalRates(ctx, "USD", "EUR", 0)

	suite.Require().NoError(err)
	suite.Len(points, 31)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetHistoricalRates_PairNotStored() {
	ctx := context.Background()

	suite.mockRepo.On("FindExchangeRate", ctx, "XYZ", "USD").
		Return(nil, fmt.Errorf("%w: no exchange rate for XYZ to USD", apperrors.ErrNotFound)).Once()

	points, err := suite.service.GetHistoricalRates(ctx, "XYZ", "USD", 30)

	suite.Require().Error(err)
	suite.Nil(points)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
