package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/lookups/states
func (a API) States(c *gin.Context) {
	states, err := a.offeringService(c).States(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": states})
}

// GET /api/lookups/routes?state=KL
func (a API) RoutesForState(c *gin.Context) {
	state, ok := requireSelection(c, "state")
	if !ok {
		return
	}
	routes, err := a.offeringService(c).RoutesForState(c.Request.Context(), state)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "routes": routes})
}

// GET /api/lookups/buses?route=Kochi%20to%20Bangalore
func (a API) BusNamesForRoute(c *gin.Context) {
	route, ok := requireSelection(c, "route")
	if !ok {
		return
	}
	names, err := a.offeringService(c).BusNamesForRoute(c.Request.Context(), route)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route, "bus_names": names})
}

// GET /api/lookups/bus-types
func (a API) BusTypes(c *gin.Context) {
	types, err := a.offeringService(c).BusTypes(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus_types": types})
}
