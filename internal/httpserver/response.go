package httpserver

import (
	"errors"
	"log"
	"net/http"

	"bookstore-api/internal/domain"
	customersvc "bookstore-api/internal/service/customer"
	ownersvc "bookstore-api/internal/service/owner"
	"github.com/gin-gonic/gin"
)

// respondError maps service failures onto HTTP statuses. Validation and
// business-rule failures carry their message; internal faults do not.
func respondError(c *gin.Context, logger *log.Logger, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}

	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusConflict, gin.H{"error": "not enough stock", "isbn": stockErr.ISBN})
		return
	}

	if errors.Is(err, customersvc.ErrInvalidCredentials) || errors.Is(err, ownersvc.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email/password"})
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if errors.Is(err, domain.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
		return
	}

	var stateErr *domain.StateError
	if errors.As(err, &stateErr) {
		logger.Printf("STATE ERROR: %v", stateErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal state error"})
		return
	}

	logger.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
