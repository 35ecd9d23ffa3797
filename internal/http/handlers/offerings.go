package handlers

import (
	"net/http"

	"redbus/internal/http/middleware"
	"redbus/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/offerings?state=KL&route_name=...&min_price=100&max_departing_time=22:00
func (a API) SearchOfferings(c *gin.Context) {
	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}
	res, err := a.offeringService(c).Search(c.Request.Context(), criteria)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/offerings/report.pdf with the same filters as SearchOfferings.
func (a API) OfferingsReport(c *gin.Context) {
	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}
	res, err := a.offeringService(c).Search(c.Request.Context(), criteria)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ReportService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.Render(res, criteria)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
