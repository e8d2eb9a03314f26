package httpserver

import (
	"log"
	"net/http"

	"bookstore-api/internal/domain"
	"github.com/gin-gonic/gin"
)

func getCartHandler(logger *log.Logger, svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := svc.GetCart(c.Request.Context(), customerID(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if lines == nil {
			lines = []domain.CartLine{}
		}
		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

func addToCartHandler(logger *log.Logger, svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		isbn, ok := paramISBN(c)
		if !ok {
			return
		}
		if err := svc.AddOne(c.Request.Context(), customerID(c), isbn); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type setQuantityRequest struct {
	Quantity *int32 `json:"quantity" binding:"required"`
}

func setCartQuantityHandler(logger *log.Logger, svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		isbn, ok := paramISBN(c)
		if !ok {
			return
		}
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if err := svc.SetQuantity(c.Request.Context(), customerID(c), isbn, *req.Quantity); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
