package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"lifenumber/reporthub/internal/generation"
	"lifenumber/reporthub/internal/service"
	"lifenumber/reporthub/pkg/response"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type CalculateRequest struct {
	Birthday string `json:"birthday" binding:"required"`
}

// Calculate returns the life number and age for a birthday without
// generating a report.
func (h *ReportHandler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "birthday is required")
		return
	}

	calc, err := h.reportService.Calculate(req.Birthday)
	if err != nil {
		response.BadRequest(c, "invalid birthday format, expected YYYY-MM-DD")
		return
	}
	response.Success(c, calc)
}

type GenerateRequest struct {
	Birthday string `json:"birthday" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Question string `json:"question"`
}

// Generate runs the full report pipeline.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "birthday and gender are required")
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), req.Birthday, req.Gender, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBirthday):
			response.BadRequest(c, "invalid birthday format, expected YYYY-MM-DD")
		case errors.Is(err, generation.ErrGenerationFailed):
			response.BadGateway(c, "report generation failed")
		default:
			response.InternalError(c, "failed to generate report")
		}
		return
	}
	response.Success(c, report)
}

// Get returns one persisted report by id.
func (h *ReportHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid report id")
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			response.NotFound(c, "report not found")
			return
		}
		response.InternalError(c, "failed to load report")
		return
	}
	response.Success(c, report)
}

// History lists the most recent reports, newest first.
func (h *ReportHandler) History(c *gin.Context) {
	summaries, err := h.reportService.History(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to list reports")
		return
	}
	response.Success(c, summaries)
}
