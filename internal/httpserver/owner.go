package httpserver

import (
	"log"
	"net/http"
	"strconv"

	orderrepo "bookstore-api/internal/repository/order"
	"github.com/gin-gonic/gin"
)

func ownerLoginHandler(logger *log.Logger, svc OwnerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func ownerLogoutHandler(logger *log.Logger, svc OwnerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), sessionToken(c)); err != nil {
			respondError(c, logger, err)
			return
		}
		c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	}
}

func listAccountsHandler(logger *log.Logger, svc OwnerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accounts, err := svc.ListAccounts(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, accounts)
	}
}

type createOwnerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func createOwnerHandler(logger *log.Logger, svc OwnerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOwnerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		o, err := svc.CreateOwner(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": o.ID, "email": o.Email})
	}
}

func deleteOwnerHandler(logger *log.Logger, svc OwnerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := svc.DeleteOwner(c.Request.Context(), id); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deleteCustomerHandler(logger *log.Logger, svc OwnerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := svc.DeleteCustomer(c.Request.Context(), id); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func salesByDateHandler(logger *log.Logger, svc ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.SalesByDate(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if rows == nil {
			rows = []orderrepo.SalesByDateRow{}
		}
		c.JSON(http.StatusOK, gin.H{"rows": rows})
	}
}

func salesByPublisherHandler(logger *log.Logger, svc ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.SalesByPublisher(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if rows == nil {
			rows = []orderrepo.SalesByPublisherRow{}
		}
		c.JSON(http.StatusOK, gin.H{"rows": rows})
	}
}

func paramID(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return int32(id), true
}
