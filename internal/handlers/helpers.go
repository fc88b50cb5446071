package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "finledger/internal/errors"
	"finledger/internal/validator"
)

// parsePathID reads a string id path parameter.
// Returns ErrInvalidInput if the parameter is blank.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := strings.TrimSpace(c.Param(param))
	if id == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// respondWithError attaches err to the request and stops the handler chain.
// middleware.ErrorHandler renders it.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindInvalid reports a binding failure as ErrInvalidInput.
func bindInvalid(c *gin.Context, err error) {
	respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, validator.Describe(err)))
}
