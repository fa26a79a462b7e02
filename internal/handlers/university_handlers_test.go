package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"rnbridge/internal/common"
	"rnbridge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockUniversityService struct {
	mock.Mock
}

func (m *MockUniversityService) Create(ctx context.Context, university *models.University) error {
	args := m.Called(ctx, university)
	return args.Error(0)
}

func (m *MockUniversityService) List(ctx context.Context) ([]*models.University, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.University), args.Error(1)
}

func (m *MockUniversityService) Get(ctx context.Context, id int64) (*models.University, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.University), args.Error(1)
}

func (m *MockUniversityService) ListByCountry(ctx context.Context, country string) ([]*models.University, error) {
	args := m.Called(ctx, country)
	return args.Get(0).([]*models.University), args.Error(1)
}

func (m *MockUniversityService) ListByProgram(ctx context.Context, program string) ([]*models.University, error) {
	args := m.Called(ctx, program)
	return args.Get(0).([]*models.University), args.Error(1)
}

func (m *MockUniversityService) Search(ctx context.Context, query string) ([]*models.University, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*models.University), args.Error(1)
}

func (m *MockUniversityService) ListByBudget(ctx context.Context, min, max float64) ([]*models.University, error) {
	args := m.Called(ctx, min, max)
	return args.Get(0).([]*models.University), args.Error(1)
}

func (m *MockUniversityService) Update(ctx context.Context, university *models.University) (*models.University, error) {
	args := m.Called(ctx, university)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.University), args.Error(1)
}

func (m *MockUniversityService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type UniversityHandlersTestSuite struct {
	suite.Suite
	mockService *MockUniversityService
	handlers    *UniversityHandlers
}

func (suite *UniversityHandlersTestSuite) SetupTest() {
	suite.mockService = &MockUniversityService{}
	suite.handlers = NewUniversityHandlers(suite.mockService)
}

func (suite *UniversityHandlersTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func TestUniversityHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(UniversityHandlersTestSuite))
}

func (suite *UniversityHandlersTestSuite) TestCreate_ParsesDeadline() {
	body := `{"name":"University of Oxford","country":"United Kingdom","application_deadline":"2026-01-15","programs":["Computer Science"]}`
	c, rec := newTestContext(http.MethodPost, "/api/universities", body)

	suite.mockService.On("Create", mock.Anything, mock.AnythingOfType("*models.University")).
		Return(nil).Run(func(args mock.Arguments) {
		university := args.Get(1).(*models.University)
		assert.Equal(suite.T(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *university.ApplicationDeadline)
		assert.Equal(suite.T(), []string{"Computer Science"}, university.Programs)
		university.ID = 1
	}).Once()

	err := suite.handlers.CreateUniversity(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var resp common.SuccessResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "University added successfully", resp.Message)
}

func (suite *UniversityHandlersTestSuite) TestCreate_BadDeadlineFormat() {
	body := `{"name":"University of Oxford","country":"United Kingdom","application_deadline":"15/01/2026"}`
	c, rec := newTestContext(http.MethodPost, "/api/universities", body)

	err := suite.handlers.CreateUniversity(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	var resp common.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Application deadline must be in YYYY-MM-DD format", resp.Message)
	suite.mockService.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *UniversityHandlersTestSuite) TestCreate_MissingName() {
	c, rec := newTestContext(http.MethodPost, "/api/universities", `{"country":"United Kingdom"}`)

	err := suite.handlers.CreateUniversity(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *UniversityHandlersTestSuite) TestGet_NotFound() {
	c, rec := newTestContext(http.MethodGet, "/api/universities/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	suite.mockService.On("Get", mock.Anything, int64(404)).Return(nil, common.ErrNotFound).Once()

	err := suite.handlers.GetUniversity(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)

	var resp common.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "University not found", resp.Error)
}

func (suite *UniversityHandlersTestSuite) TestListByBudget_Success() {
	c, rec := newTestContext(http.MethodGet, "/api/universities/budget/10000/30000", "")
	c.SetParamNames("min", "max")
	c.SetParamValues("10000", "30000")

	universities := []*models.University{{ID: 1, Name: "University of Oxford"}}
	suite.mockService.On("ListByBudget", mock.Anything, 10000.0, 30000.0).Return(universities, nil).Once()

	err := suite.handlers.ListUniversitiesByBudget(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *UniversityHandlersTestSuite) TestListByBudget_InvalidBounds() {
	c, rec := newTestContext(http.MethodGet, "/api/universities/budget/cheap/expensive", "")
	c.SetParamNames("min", "max")
	c.SetParamValues("cheap", "expensive")

	err := suite.handlers.ListUniversitiesByBudget(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	var resp common.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Invalid budget range", resp.Message)
	suite.mockService.AssertNotCalled(suite.T(), "ListByBudget", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UniversityHandlersTestSuite) TestSearch_Success() {
	c, rec := newTestContext(http.MethodGet, "/api/universities/search/oxford", "")
	c.SetParamNames("query")
	c.SetParamValues("oxford")

	universities := []*models.University{{ID: 1, Name: "University of Oxford"}}
	suite.mockService.On("Search", mock.Anything, "oxford").Return(universities, nil).Once()

	err := suite.handlers.SearchUniversities(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *UniversityHandlersTestSuite) TestUpdate_NotFound() {
	body := `{"name":"Ghost University","country":"Nowhere"}`
	c, rec := newTestContext(http.MethodPut, "/api/universities/404", body)
	c.SetParamNames("id")
	c.SetParamValues("404")

	suite.mockService.On("Update", mock.Anything, mock.AnythingOfType("*models.University")).
		Return(nil, common.ErrNotFound).Once()

	err := suite.handlers.UpdateUniversity(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *UniversityHandlersTestSuite) TestDelete_Success() {
	c, rec := newTestContext(http.MethodDelete, "/api/universities/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	suite.mockService.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	err := suite.handlers.DeleteUniversity(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}
