package handlers

import (
	"database/sql"
	"time"

	"redbus/internal/http/middleware"
	"redbus/internal/repositories"
	"redbus/internal/services"

	"github.com/gin-gonic/gin"
)

// API holds the session's storage handle shared by every handler.
type API struct {
	DB           *sql.DB
	Driver       string
	QueryTimeout time.Duration
}

func (a API) offeringService(c *gin.Context) services.OfferingService {
	return services.OfferingService{
		Offerings:    repositories.OfferingRepository{DB: a.DB},
		Lookups:      repositories.LookupRepository{DB: a.DB},
		QueryTimeout: a.QueryTimeout,
		RequestID:    middleware.GetRequestID(c),
	}
}
