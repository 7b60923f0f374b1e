package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifenumber/reporthub/internal/service"
	"lifenumber/reporthub/pkg/response"
)

type RedeemHandler struct {
	redeemService service.RedeemService
}

func NewRedeemHandler(redeemService service.RedeemService) *RedeemHandler {
	return &RedeemHandler{redeemService: redeemService}
}

// Issue creates a new redeem code (admin use).
func (h *RedeemHandler) Issue(c *gin.Context) {
	code, err := h.redeemService.Issue(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to issue redeem code")
		return
	}
	response.Success(c, gin.H{"code": code.Code})
}

type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}

type CheckCodeResponse struct {
	Valid  bool   `json:"valid"`
	Status string `json:"status"`
}

// Check reports whether a code can still be redeemed. Nonexistent and
// used codes are expected outcomes, not errors.
func (h *RedeemHandler) Check(c *gin.Context) {
	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "code is required")
		return
	}

	status, err := h.redeemService.Check(c.Request.Context(), req.Code)
	if err != nil {
		response.InternalError(c, "failed to check redeem code")
		return
	}
	response.Success(c, CheckCodeResponse{
		Valid:  status == service.CodeUnused,
		Status: string(status),
	})
}

type UseCodeResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// Use consumes a code. Exactly one of two racing calls succeeds.
func (h *RedeemHandler) Use(c *gin.Context) {
	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "code is required")
		return
	}

	err := h.redeemService.Consume(c.Request.Context(), req.Code)
	switch {
	case err == nil:
		response.Success(c, UseCodeResponse{Success: true, Status: string(service.CodeUsed)})
	case errors.Is(err, service.ErrCodeNotFound):
		response.Success(c, UseCodeResponse{Success: false, Status: string(service.CodeNonexistent)})
	case errors.Is(err, service.ErrCodeAlreadyUsed):
		response.Success(c, UseCodeResponse{Success: false, Status: string(service.CodeUsed)})
	default:
		response.InternalError(c, "failed to use redeem code")
	}
}
