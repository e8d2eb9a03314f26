package httpserver

import (
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.CatalogSvc == nil || deps.CartSvc == nil || deps.OrderSvc == nil ||
		deps.CustomerSvc == nil || deps.OwnerSvc == nil || deps.ReportSvc == nil ||
		deps.Sessions == nil {
		return nil, errors.New("httpserver: missing dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	corsCfg.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/books", listBooksHandler(logger, deps.CatalogSvc))
	router.GET("/books/:isbn", getBookHandler(logger, deps.CatalogSvc))
	router.GET("/publishers", listPublishersHandler(logger, deps.CatalogSvc))

	router.POST("/register", registerHandler(logger, deps.CustomerSvc))
	router.POST("/login", loginHandler(logger, deps.CustomerSvc))

	me := router.Group("/", requireCustomer(logger, deps.Sessions))
	{
		me.POST("/logout", logoutHandler(logger, deps.CustomerSvc))
		me.GET("/me", profileHandler(logger, deps.CustomerSvc))
		me.GET("/cart", getCartHandler(logger, deps.CartSvc))
		me.POST("/cart/items/:isbn", addToCartHandler(logger, deps.CartSvc))
		me.PUT("/cart/items/:isbn", setCartQuantityHandler(logger, deps.CartSvc))
		me.POST("/orders", createOrderHandler(logger, deps.OrderSvc, deps.CartSvc))
		me.GET("/orders", orderHistoryHandler(logger, deps.OrderSvc))
		me.GET("/orders/:id", getOrderHandler(logger, deps.OrderSvc))
	}

	router.POST("/owner/login", ownerLoginHandler(logger, deps.OwnerSvc))

	admin := router.Group("/owner", requireOwner(logger, deps.Sessions))
	{
		admin.POST("/logout", ownerLogoutHandler(logger, deps.OwnerSvc))
		admin.POST("/books", createBookHandler(logger, deps.CatalogSvc))
		admin.POST("/books/discontinue", setDiscontinuedHandler(logger, deps.CatalogSvc, true))
		admin.POST("/books/undiscontinue", setDiscontinuedHandler(logger, deps.CatalogSvc, false))
		admin.POST("/publishers", createPublisherHandler(logger, deps.CatalogSvc))
		admin.GET("/accounts", listAccountsHandler(logger, deps.OwnerSvc))
		admin.POST("/accounts/owners", createOwnerHandler(logger, deps.OwnerSvc))
		admin.DELETE("/accounts/owners/:id", deleteOwnerHandler(logger, deps.OwnerSvc))
		admin.DELETE("/accounts/customers/:id", deleteCustomerHandler(logger, deps.OwnerSvc))
		admin.GET("/reports/sales-by-date", salesByDateHandler(logger, deps.ReportSvc))
		admin.GET("/reports/sales-by-publisher", salesByPublisherHandler(logger, deps.ReportSvc))
	}

	return router, nil
}
