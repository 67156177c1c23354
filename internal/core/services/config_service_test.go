package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/core/services"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ConfigServiceTestSuite struct {
	suite.Suite
	configRepo *MockConfigRepository
	service    portssvc.FinancialConfigSvcFacade
	ctx        context.Context
}

func (suite *ConfigServiceTestSuite) SetupTest() {
	suite.configRepo = new(MockConfigRepository)
	suite.service = services.NewFinancialConfigService(suite.configRepo)
	suite.ctx = context.Background()
}

func (suite *ConfigServiceTestSuite) TestGetConfig_NotOnboarded() {
	suite.configRepo.On("FindConfigByUserID", suite.ctx, testUserID).Return(nil, apperrors.ErrNotFound).Once()

	cfg, err := suite.service.GetConfig(suite.ctx, testUserID)

	suite.Nil(cfg)
	suite.True(errors.Is(err, apperrors.ErrConfigMissing))
}

func (suite *ConfigServiceTestSuite) TestGetConfig_Success() {
	suite.configRepo.On("FindConfigByUserID", suite.ctx, testUserID).Return(steadyConfig(), nil).Once()

	cfg, err := suite.service.GetConfig(suite.ctx, testUserID)

	suite.Require().NoError(err)
	suite.Len(cfg.FixedObligations, 2)
}

func (suite *ConfigServiceTestSuite) TestSaveConfig_DefaultsBuffer() {
	req := dto.FinancialConfigRequest{
		MonthlyIncome: dec(60000),
		FixedObligations: []dto.FixedObligationRequest{
			{Name: " Home Loan ", Amount: dec(20000), DueDayOfMonth: 5},
		},
	}
	suite.configRepo.On("SaveConfig", suite.ctx, mock.MatchedBy(func(c domain.FinancialConfig) bool {
		return c.UserID == testUserID && c.EmergencyBufferPercent == domain.DefaultEmergencyBufferPercent &&
			len(c.FixedObligations) == 1 && c.FixedObligations[0].Name == "Home Loan"
	})).Return(nil).Once()

	cfg, err := suite.service.SaveConfig(suite.ctx, testUserID, req)

	suite.Require().NoError(err)
	suite.Equal(float64(15), cfg.EmergencyBufferPercent)
	suite.Equal(testUserID, cfg.CreatedBy)
	suite.configRepo.AssertExpectations(suite.T())
}

func (suite *ConfigServiceTestSuite) TestSaveConfig_Validation() {
	over := 120.0
	for name, req := range map[string]dto.FinancialConfigRequest{
		"due day out of range": {MonthlyIncome: dec(1000), FixedObligations: []dto.FixedObligationRequest{{Name: "Rent", Amount: dec(10), DueDayOfMonth: 32}}},
		"missing due day":      {MonthlyIncome: dec(1000), FixedObligations: []dto.FixedObligationRequest{{Name: "Rent", Amount: dec(10)}}},
		"zero amount":          {MonthlyIncome: dec(1000), FixedObligations: []dto.FixedObligationRequest{{Name: "Rent", Amount: dec(0), DueDayOfMonth: 1}}},
		"negative income":      {MonthlyIncome: dec(-1)},
		"buffer over 100":      {MonthlyIncome: dec(1000), EmergencyBufferPercent: &over},
	} {
		_, err := suite.service.SaveConfig(suite.ctx, testUserID, req)
		suite.True(errors.Is(err, apperrors.ErrValidation), name)
	}
	suite.configRepo.AssertNotCalled(suite.T(), "SaveConfig", mock.Anything, mock.Anything)
}

func (suite *ConfigServiceTestSuite) TestSaveConfig_StoreFailure() {
	suite.configRepo.On("SaveConfig", suite.ctx, mock.Anything).Return(errors.New("conn reset")).Once()

	_, err := suite.service.SaveConfig(suite.ctx, testUserID, dto.FinancialConfigRequest{MonthlyIncome: dec(1000)})

	suite.True(errors.Is(err, apperrors.ErrDataUnavailable))
}

func (suite *ConfigServiceTestSuite) TestListConfiguredUsers() {
	suite.configRepo.On("ListConfiguredUserIDs", suite.ctx).Return(nil, nil).Once()

	ids, err := suite.service.ListConfiguredUsers(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(ids)
	suite.Empty(ids)
}

func TestConfigServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigServiceTestSuite))
}
