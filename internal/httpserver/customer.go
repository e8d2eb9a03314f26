package httpserver

import (
	"log"
	"net/http"

	customersvc "bookstore-api/internal/service/customer"
	"github.com/gin-gonic/gin"
)

func registerHandler(logger *log.Logger, svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customersvc.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		cust, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": cust.ID, "email": cust.Email})
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(logger *log.Logger, svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		cust, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"token": token, "name": cust.Name})
	}
}

func logoutHandler(logger *log.Logger, svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), sessionToken(c)); err != nil {
			respondError(c, logger, err)
			return
		}
		c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	}
}

func profileHandler(logger *log.Logger, svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		prof, err := svc.Profile(c.Request.Context(), customerID(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, toProfileResponse(*prof))
	}
}
