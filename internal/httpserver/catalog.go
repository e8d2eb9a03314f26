package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"bookstore-api/internal/domain"
	catalogsvc "bookstore-api/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func listBooksHandler(logger *log.Logger, svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := catalogsvc.Search{
			Title:            c.Query("title"),
			Author:           c.Query("author"),
			Genre:            c.Query("genre"),
			Publisher:        c.Query("publisher"),
			MinPages:         queryInt32(c, "minPages"),
			MaxPages:         queryInt32(c, "maxPages"),
			MinPriceCents:    queryInt64(c, "minPriceCents"),
			MaxPriceCents:    queryInt64(c, "maxPriceCents"),
			ShowDiscontinued: c.Query("showDiscontinued") == "true",
			ShowNoStock:      c.Query("showNoStock") == "true",
		}
		books, err := svc.ListBooks(c.Request.Context(), search)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if books == nil {
			books = []domain.Book{}
		}
		c.JSON(http.StatusOK, gin.H{"books": books})
	}
}

func getBookHandler(logger *log.Logger, svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		isbn, ok := paramISBN(c)
		if !ok {
			return
		}
		book, err := svc.GetBook(c.Request.Context(), isbn)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, book)
	}
}

func listPublishersHandler(logger *log.Logger, svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		publishers, err := svc.ListPublishers(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if publishers == nil {
			publishers = []domain.Publisher{}
		}
		c.JSON(http.StatusOK, gin.H{"publishers": publishers})
	}
}

type createBookRequest struct {
	ISBN             int32  `json:"isbn"`
	Title            string `json:"title"`
	AuthorName       string `json:"authorName"`
	Genre            string `json:"genre"`
	PublisherID      int32  `json:"publisherId"`
	NumPages         int32  `json:"numPages"`
	PriceCents       int64  `json:"priceCents"`
	RoyaltyBP        int32  `json:"royaltyBasisPoints"`
	ReorderThreshold int32  `json:"reorderThreshold"`
	Stock            int32  `json:"stock"`
}

func createBookHandler(logger *log.Logger, svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createBookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		err := svc.CreateBook(c.Request.Context(), domain.Book{
			ISBN:             req.ISBN,
			Title:            req.Title,
			AuthorName:       req.AuthorName,
			Genre:            req.Genre,
			PublisherID:      req.PublisherID,
			NumPages:         req.NumPages,
			PriceCents:       req.PriceCents,
			RoyaltyBP:        req.RoyaltyBP,
			ReorderThreshold: req.ReorderThreshold,
			Stock:            req.Stock,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"isbn": req.ISBN})
	}
}

type discontinueRequest struct {
	ISBNs []int32 `json:"isbns" binding:"required"`
}

func setDiscontinuedHandler(logger *log.Logger, svc CatalogService, discontinued bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req discontinueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		var err error
		if discontinued {
			err = svc.Discontinue(c.Request.Context(), req.ISBNs)
		} else {
			err = svc.Undiscontinue(c.Request.Context(), req.ISBNs)
		}
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type createPublisherRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BankAccount string `json:"bankAccount"`
}

func createPublisherHandler(logger *log.Logger, svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPublisherRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		p, err := svc.CreatePublisher(c.Request.Context(), domain.Publisher{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			BankAccount: req.BankAccount,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func paramISBN(c *gin.Context) (int32, bool) {
	isbn, err := strconv.ParseInt(c.Param("isbn"), 10, 32)
	if err != nil || isbn <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid isbn"})
		return 0, false
	}
	return int32(isbn), true
}

func queryInt32(c *gin.Context, key string) *int32 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return nil
	}
	out := int32(n)
	return &out
}

func queryInt64(c *gin.Context, key string) *int64 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
