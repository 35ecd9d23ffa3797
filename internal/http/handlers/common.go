package handlers

import (
	"net/http"
	"strings"

	"redbus/internal/domain/models"
	"redbus/internal/utils"

	"github.com/gin-gonic/gin"
)

// bindCriteria reads the filter fields from the query string.
func bindCriteria(c *gin.Context) (models.FilterCriteria, bool) {
	var in models.CriteriaInput
	if err := c.ShouldBindQuery(&in); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid filter parameters", err.Error())
		return models.FilterCriteria{}, false
	}
	criteria, err := in.Criteria()
	if err != nil {
		RespondDomainError(c, err)
		return models.FilterCriteria{}, false
	}
	return criteria, true
}

// requireSelection reads an upstream dropdown value that a lookup depends on.
func requireSelection(c *gin.Context, key string) (string, bool) {
	v := strings.TrimSpace(c.Query(key))
	if utils.IsUnselected(v) {
		respondError(c, http.StatusBadRequest, "validation_error", key+" is required", nil)
		return "", false
	}
	return v, true
}
