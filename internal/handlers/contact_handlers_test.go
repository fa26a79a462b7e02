package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rnbridge/internal/common"
	"rnbridge/internal/models"
	"rnbridge/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) Submit(ctx context.Context, inquiry *models.Inquiry) (*services.SubmitResult, error) {
	args := m.Called(ctx, inquiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SubmitResult), args.Error(1)
}

func (m *MockInquiryService) List(ctx context.Context) ([]*models.Inquiry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Inquiry), args.Error(1)
}

func (m *MockInquiryService) Get(ctx context.Context, id int64) (*models.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockInquiryService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockInquiryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newTestContext builds an echo context wired with the request validator,
// the way the server configures it.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewRequestValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type ContactHandlersTestSuite struct {
	suite.Suite
	mockService *MockInquiryService
	handlers    *ContactHandlers
}

func (suite *ContactHandlersTestSuite) SetupTest() {
	suite.mockService = &MockInquiryService{}
	suite.handlers = NewContactHandlers(suite.mockService)
}

func (suite *ContactHandlersTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func TestContactHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlersTestSuite))
}

func (suite *ContactHandlersTestSuite) TestSubmit_Created() {
	body := `{"name":"John Doe","email":"john@example.com","message":"I want to study abroad"}`
	c, rec := newTestContext(http.MethodPost, "/api/contact/submit", body)

	created := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.mockService.On("Submit", mock.Anything, mock.AnythingOfType("*models.Inquiry")).
		Return(&services.SubmitResult{Inquiry: &models.Inquiry{
			ID: 42, Name: "John Doe", Email: "john@example.com",
			Message: "I want to study abroad", Status: "new", CreatedAt: created,
		}}, nil).Once()

	err := suite.handlers.Submit(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var resp common.SuccessResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Contact form submitted successfully", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(suite.T(), float64(42), data["id"])
	assert.Equal(suite.T(), "new", data["status"])
}

func (suite *ContactHandlersTestSuite) TestSubmit_DegradedReturns200() {
	body := `{"name":"John Doe","email":"john@example.com","message":"I want to study abroad"}`
	c, rec := newTestContext(http.MethodPost, "/api/contact/submit", body)

	suite.mockService.On("Submit", mock.Anything, mock.AnythingOfType("*models.Inquiry")).
		Return(&services.SubmitResult{
			Inquiry:  &models.Inquiry{ID: 1750000000000, Status: "pending", CreatedAt: time.Now()},
			Degraded: true,
		}, nil).Once()

	err := suite.handlers.Submit(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp common.SuccessResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Contact form submitted successfully (saved locally)", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(suite.T(), "pending", data["status"])
}

func (suite *ContactHandlersTestSuite) TestSubmit_MissingFields() {
	body := `{"email":"john@example.com"}`
	c, rec := newTestContext(http.MethodPost, "/api/contact/submit", body)

	err := suite.handlers.Submit(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	var resp common.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Missing required fields", resp.Error)
	assert.Equal(suite.T(), "Name, email, and message are required", resp.Message)
	suite.mockService.AssertNotCalled(suite.T(), "Submit", mock.Anything, mock.Anything)
}

func (suite *ContactHandlersTestSuite) TestSubmit_MalformedJSON() {
	c, rec := newTestContext(http.MethodPost, "/api/contact/submit", `{"name":`)

	err := suite.handlers.Submit(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *ContactHandlersTestSuite) TestSubmit_ServiceFailure() {
	body := `{"name":"John Doe","email":"john@example.com","message":"Hello"}`
	c, rec := newTestContext(http.MethodPost, "/api/contact/submit", body)

	suite.mockService.On("Submit", mock.Anything, mock.AnythingOfType("*models.Inquiry")).
		Return(nil, errors.New("insert failed")).Once()

	err := suite.handlers.Submit(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)

	var resp common.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Failed to submit contact form", resp.Error)
	assert.Equal(suite.T(), "Please try again later", resp.Message)
}

func (suite *ContactHandlersTestSuite) TestGetInquiry_NotFound() {
	c, rec := newTestContext(http.MethodGet, "/api/contact/inquiries/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	suite.mockService.On("Get", mock.Anything, int64(404)).Return(nil, common.ErrNotFound).Once()

	err := suite.handlers.GetInquiry(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)

	var resp common.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Inquiry not found", resp.Error)
}

func (suite *ContactHandlersTestSuite) TestGetInquiry_InvalidID() {
	c, rec := newTestContext(http.MethodGet, "/api/contact/inquiries/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := suite.handlers.GetInquiry(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
}

func (suite *ContactHandlersTestSuite) TestUpdateInquiryStatus_Success() {
	c, rec := newTestContext(http.MethodPatch, "/api/contact/inquiries/1/status", `{"status":"contacted"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	updated := &models.Inquiry{ID: 1, Name: "John", Status: "contacted"}
	suite.mockService.On("UpdateStatus", mock.Anything, int64(1), "contacted").Return(updated, nil).Once()

	err := suite.handlers.UpdateInquiryStatus(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *ContactHandlersTestSuite) TestUpdateInquiryStatus_MissingStatus() {
	c, rec := newTestContext(http.MethodPatch, "/api/contact/inquiries/1/status", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := suite.handlers.UpdateInquiryStatus(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	suite.mockService.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ContactHandlersTestSuite) TestDeleteInquiry_Success() {
	c, rec := newTestContext(http.MethodDelete, "/api/contact/inquiries/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	suite.mockService.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	err := suite.handlers.DeleteInquiry(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp common.SuccessResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Inquiry deleted successfully", resp.Message)
}

func (suite *ContactHandlersTestSuite) TestListInquiries_Success() {
	c, rec := newTestContext(http.MethodGet, "/api/contact/inquiries", "")

	inquiries := []*models.Inquiry{{ID: 2, Name: "Newest"}, {ID: 1, Name: "Oldest"}}
	suite.mockService.On("List", mock.Anything).Return(inquiries, nil).Once()

	err := suite.handlers.ListInquiries(c)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp common.SuccessResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(suite.T(), resp.Success)
	assert.Len(suite.T(), resp.Data, 2)
}
