package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/abishekraja/currency_converter_app/internal/apperrors"
	"github.com/abishekraja/currency_converter_app/internal/core/domain"
	"github.com/abishekraja/currency_converter_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchLatestRates(ctx context.Context, baseCode string) (*domain.RateTable, error) {
	args := m.Called(ctx, baseCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockProvider *MockRateProvider
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockRateProvider)
}

func (suite *RateServiceTestSuite) newService(ttl time.Duration) *services.RateService {
	return services.NewRateService(suite.mockProvider, ttl)
}

func usdTable() *domain.RateTable {
	return &domain.RateTable{
		BaseCode:  "USD",
		Rates:     map[string]float64{"LKR": 300.5, "INR": 83.1, "AUD": 1.52},
		FetchedAt: time.Now(),
	}
}

func (suite *RateServiceTestSuite) TestGetRates_FetchesAndCaches() {
	ctx := context.Background()
	svc := suite.newService(time.Minute)

	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(usdTable(), nil).Once()

	first, err := svc.GetRates(ctx, "usd")
	suite.Require().NoError(err)
	suite.Equal("USD", first.BaseCode)

	// Second call within the TTL must not hit the provider.
	second, err := svc.GetRates(ctx, "USD")
	suite.Require().NoError(err)
	suite.Equal(first, second)

	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_InvalidCode() {
	ctx := context.Background()
	svc := suite.newService(time.Minute)

	_, err := svc.GetRates(ctx, "US")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchLatestRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetRates_ServesStaleOnProviderFailure() {
	ctx := context.Background()
	svc := suite.newService(10 * time.Millisecond)

	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(usdTable(), nil).Once()
	first, err := svc.GetRates(ctx, "USD")
	suite.Require().NoError(err)

	time.Sleep(20 * time.Millisecond) // let the cache go stale

	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(nil, assert.AnError).Once()
	second, err := svc.GetRates(ctx, "USD")

	suite.Require().NoError(err)
	suite.Equal(first, second)
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_FailsWithoutCache() {
	ctx := context.Background()
	svc := suite.newService(time.Minute)

	suite.mockProvider.On("FetchLatestRates", ctx, "EUR").Return(nil, assert.AnError).Once()

	_, err := svc.GetRates(ctx, "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestConvert_QuotesAtCurrentRate() {
	ctx := context.Background()
	svc := suite.newService(time.Minute)

	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(usdTable(), nil).Once()

	quote, err := svc.Convert(ctx, "USD", "lkr", 100)

	suite.Require().NoError(err)
	suite.Equal("USD", quote.FromCurrency)
	suite.Equal("LKR", quote.ToCurrency)
	suite.Equal(300.5, quote.Rate)
	suite.Equal(float64(100), quote.Amount)
	suite.Equal(float64(30050), quote.ConvertedAmount)
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestConvert_UnknownTargetCurrency() {
	ctx := context.Background()
	svc := suite.newService(time.Minute)

	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(usdTable(), nil).Once()

	_, err := svc.Convert(ctx, "USD", "XXX", 100)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestConvert_RejectsNonPositiveAmount() {
	ctx := context.Background()
	svc := suite.newService(time.Minute)

	_, err := svc.Convert(ctx, "USD", "LKR", 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchLatestRates", mock.Anything, mock.Anything)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
