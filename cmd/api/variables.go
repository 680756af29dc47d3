package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"silo-weather/internal/variables"
)

// handleListVariables godoc
// @Summary List weather variables
// @Description List every retrievable weather variable with its key, display label, provider field name and provider code, in canonical column order
// @Tags variables
// @Produce json
// @Success 200 {array} variables.Variable
// @Router /variables [get]
func (app *App) handleListVariables(c *gin.Context) {
	c.JSON(http.StatusOK, variables.All())
}
