package handler

import (
	"errors"
	"net/http"
	"strconv"

	"wexel-ledger/internal/adapter/http/dto"
	"wexel-ledger/internal/adapter/http/middleware"
	"wexel-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func wexelIDParam(c *gin.Context) (int64, error) {
	return positiveIDParam(c, "id", "wexel id")
}

func positiveIDParam(c *gin.Context, name, label string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation(label + " must be a positive integer")
	}
	return id, nil
}

func listingIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("listing_id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("listing id must be a UUID")
	}
	return id, nil
}

// bindJSON binds and sanitizes a request body.
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return validation(err)
	}
	dto.SanitizeStruct(req)
	return nil
}

// bindOptionalJSON is bindJSON for routes whose body may be omitted.
func bindOptionalJSON(c *gin.Context, req interface{}) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody || c.Request.ContentLength == 0 {
		return nil
	}
	return bindJSON(c, req)
}

func validation(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.Validation("request body too large")
	}
	return apperror.Validation(err.Error())
}

// caller returns the authenticated wallet. Routes using it sit behind JWTAuth.
func caller(c *gin.Context) (string, error) {
	wallet := middleware.Wallet(c)
	if wallet == "" {
		return "", apperror.ErrInvalidToken()
	}
	return wallet, nil
}
