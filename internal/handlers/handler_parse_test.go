package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/hot_settlement_app/internal/apperrors"
	"github.com/SscSPs/hot_settlement_app/internal/core/domain"
	portssvc "github.com/SscSPs/hot_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/hot_settlement_app/internal/dto"
	"github.com/SscSPs/hot_settlement_app/internal/handlers"
	"github.com/SscSPs/hot_settlement_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ParserService ---
type MockParserService struct {
	mock.Mock
}

func (m *MockParserService) ParseHOT(ctx context.Context, content []byte) (*domain.ParsedFile, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedFile), args.Error(1)
}

var _ portssvc.ParserSvcFacade = (*MockParserService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) RenderCSV(ctx context.Context, file *domain.ParsedFile) ([]byte, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) RenderReport(ctx context.Context, file *domain.ParsedFile, filename string) string {
	args := m.Called(ctx, file, filename)
	return args.String(0)
}

var _ portssvc.ExportSvcFacade = (*MockExportService)(nil)

// --- Test Suite ---
type ParseHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockParser *MockParserService
	mockExport *MockExportService
}

func (suite *ParseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockParser = new(MockParserService)
	suite.mockExport = new(MockExportService)
	suite.router = newRouter(suite.mockParser, suite.mockExport, 1<<20)
}

func newRouter(parser portssvc.ParserSvcFacade, export portssvc.ExportSvcFacade, maxUploadBytes int64) *gin.Engine {
	r := gin.New()
	cfg := &config.Config{MaxUploadBytes: maxUploadBytes}
	services := &portssvc.ServiceContainer{Parser: parser, Export: export}
	handlers.RegisterRoutes(r, cfg, services, nil)
	return r
}

// uploadRequest builds a multipart POST carrying one file part named "file".
func uploadRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func (suite *ParseHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

// --- Test Cases ---

func (suite *ParseHandlerTestSuite) TestParseFile_Success() {
	content := []byte("BOH03 12345678")
	parsed := &domain.ParsedFile{
		CurrencyCode: "GBP",
		FileType:     domain.FileTypeHOT,
		Agents:       []domain.Agent{{IATANumber: "12345678", Name: "ACME TRAVEL"}},
		Warnings:     []string{},
		Errors:       []string{},
	}
	suite.mockParser.On("ParseHOT", mock.Anything, content).Return(parsed, nil).Once()

	rec := suite.serve(uploadRequest(suite.T(), "/parse", "june.hot", content))

	suite.Require().Equal(http.StatusOK, rec.Code)

	var resp dto.ParseHOTResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("june.hot", resp.Filename)
	suite.Equal("GBP", resp.CurrencyCode)
	suite.Require().Len(resp.Agents, 1)
	suite.Equal("12345678", resp.Agents[0].IATANumber)

	suite.mockParser.AssertExpectations(suite.T())
}

func (suite *ParseHandlerTestSuite) TestParseFile_NoFile() {
	req := httptest.NewRequest(http.MethodPost, "/parse", nil)

	rec := suite.serve(req)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), apperrors.ErrNoFile.Error())
	suite.mockParser.AssertNotCalled(suite.T(), "ParseHOT")
}

func (suite *ParseHandlerTestSuite) TestParseFile_TooLarge() {
	router := newRouter(suite.mockParser, suite.mockExport, 4)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(suite.T(), "/parse", "big.hot", []byte("0123456789")))

	suite.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	suite.Contains(rec.Body.String(), apperrors.ErrFileTooLarge.Error())
	suite.mockParser.AssertNotCalled(suite.T(), "ParseHOT")
}

func (suite *ParseHandlerTestSuite) TestParseFile_ValidationError() {
	content := []byte("data")
	wrapped := fmt.Errorf("%w: malformed upload", apperrors.ErrValidation)
	suite.mockParser.On("ParseHOT", mock.Anything, content).Return(nil, wrapped).Once()

	rec := suite.serve(uploadRequest(suite.T(), "/parse", "bad.hot", content))

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), "malformed upload")
	suite.mockParser.AssertExpectations(suite.T())
}

func (suite *ParseHandlerTestSuite) TestParseFileCSV_Success() {
	content := []byte("data")
	parsed := &domain.ParsedFile{}
	suite.mockParser.On("ParseHOT", mock.Anything, content).Return(parsed, nil).Once()
	suite.mockExport.On("RenderCSV", mock.Anything, parsed).Return([]byte("Agent IATA\n"), nil).Once()

	rec := suite.serve(uploadRequest(suite.T(), "/parse/csv", "june.hot", content))

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal("text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	suite.Equal("attachment; filename=june.csv", rec.Header().Get("Content-Disposition"))
	suite.Equal("Agent IATA\n", rec.Body.String())

	suite.mockParser.AssertExpectations(suite.T())
	suite.mockExport.AssertExpectations(suite.T())
}

func (suite *ParseHandlerTestSuite) TestParseFileCSV_RenderError() {
	content := []byte("data")
	parsed := &domain.ParsedFile{}
	suite.mockParser.On("ParseHOT", mock.Anything, content).Return(parsed, nil).Once()
	suite.mockExport.On("RenderCSV", mock.Anything, parsed).Return(nil, fmt.Errorf("render failed")).Once()

	rec := suite.serve(uploadRequest(suite.T(), "/parse/csv", "june.hot", content))

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.mockExport.AssertExpectations(suite.T())
}

func (suite *ParseHandlerTestSuite) TestParseFileReport_Success() {
	content := []byte("data")
	parsed := &domain.ParsedFile{}
	suite.mockParser.On("ParseHOT", mock.Anything, content).Return(parsed, nil).Once()
	suite.mockExport.On("RenderReport", mock.Anything, parsed, "june.hot").Return("REPORT BODY").Once()

	rec := suite.serve(uploadRequest(suite.T(), "/parse/report", "june.hot", content))

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal("attachment; filename=june_report.txt", rec.Header().Get("Content-Disposition"))
	suite.Equal("REPORT BODY", rec.Body.String())

	suite.mockExport.AssertExpectations(suite.T())
}

func (suite *ParseHandlerTestSuite) TestHealthRoute() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	rec := suite.serve(req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"status":"healthy"}`, rec.Body.String())
}

// --- Run Suite ---
func TestParseHandler(t *testing.T) {
	suite.Run(t, new(ParseHandlerTestSuite))
}
