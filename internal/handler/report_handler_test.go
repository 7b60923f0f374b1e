package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifenumber/reporthub/internal/generation"
	"lifenumber/reporthub/internal/model"
	"lifenumber/reporthub/internal/service"
	"lifenumber/reporthub/pkg/response"
)

type stubReportService struct {
	calc    *service.Calculation
	calcErr error
	report  *model.Report
	genErr  error
	getErr  error
}

func (s *stubReportService) Calculate(string) (*service.Calculation, error) {
	return s.calc, s.calcErr
}

func (s *stubReportService) Generate(context.Context, string, string, string) (*model.Report, error) {
	return s.report, s.genErr
}

func (s *stubReportService) GetReport(context.Context, uint) (*model.Report, error) {
	return s.report, s.getErr
}

func (s *stubReportService) History(context.Context) ([]model.ReportSummary, error) {
	return nil, nil
}

var _ service.ReportService = (*stubReportService)(nil)

func newReportRouter(svc service.ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReportHandler(svc)
	r.POST("/api/calculate", h.Calculate)
	r.POST("/api/generate", h.Generate)
	r.GET("/report/:id", h.Get)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestCalculateEndpoint(t *testing.T) {
	svc := &stubReportService{calc: &service.Calculation{LifeNumber: 3, Age: 34}}
	r := newReportRouter(svc)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/calculate", `{"birthday":"1990-05-15"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, envelope.Code)
}

func TestCalculateEndpointMissingBirthday(t *testing.T) {
	r := newReportRouter(&stubReportService{})

	w, _ := doJSON(t, r, http.MethodPost, "/api/calculate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpointInvalidBirthday(t *testing.T) {
	svc := &stubReportService{genErr: service.ErrInvalidBirthday}
	r := newReportRouter(svc)

	w, _ := doJSON(t, r, http.MethodPost, "/api/generate", `{"birthday":"bad","gender":"female"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpointUpstreamFailure(t *testing.T) {
	svc := &stubReportService{genErr: generation.ErrGenerationFailed}
	r := newReportRouter(svc)

	w, envelope := doJSON(t, r, http.MethodPost, "/api/generate", `{"birthday":"1990-05-15","gender":"female"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	// The cause stays in the logs; the API message is opaque.
	assert.Equal(t, "report generation failed", envelope.Message)
}

func TestGetReportEndpointNotFound(t *testing.T) {
	svc := &stubReportService{getErr: service.ErrReportNotFound}
	r := newReportRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/report/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReportEndpointBadID(t *testing.T) {
	r := newReportRouter(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/report/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
