package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"bookstore-api/internal/domain"
	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	ShippingAddress *domain.AddressInput `json:"shippingAddress"`
	Payment         *paymentOverride     `json:"payment"`
}

type paymentOverride struct {
	NameOnCard     string              `json:"nameOnCard"`
	Expiry         string              `json:"expiry"`
	CardNumber     string              `json:"cardNumber"`
	CVV            string              `json:"cvv"`
	BillingAddress domain.AddressInput `json:"billingAddress"`
}

// createOrderHandler places an order for the caller's current cart. The
// body is optional: absent fields fall back to the customer's saved
// defaults.
func createOrderHandler(logger *log.Logger, orders OrderService, carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
				return
			}
		}

		var payment *domain.PaymentInfoInput
		if req.Payment != nil {
			expiry, err := domain.ParseExpiry(req.Payment.Expiry)
			if err != nil {
				respondError(c, logger, err)
				return
			}
			payment = &domain.PaymentInfoInput{
				NameOnCard:     req.Payment.NameOnCard,
				Expiry:         expiry,
				CardNumber:     req.Payment.CardNumber,
				CVV:            req.Payment.CVV,
				BillingAddress: req.Payment.BillingAddress,
			}
		}

		id := customerID(c)
		lines, err := carts.GetCart(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		orderID, err := orders.CreateOrder(c.Request.Context(), id, lines, req.ShippingAddress, payment)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"orderId": orderID})
	}
}

func orderHistoryHandler(logger *log.Logger, svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.GetOrderHistory(c.Request.Context(), customerID(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		out := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, gin.H{"orders": out})
	}
}

func getOrderHandler(logger *log.Logger, svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		o, err := svc.GetOrder(c.Request.Context(), int32(orderID))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		// Customers only ever see their own orders.
		if o.CustomerID != customerID(c) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(*o))
	}
}
