package handlers

import (
	"math"
	"net/http"

	request "project_materials/internal/adapter/http/dto/request"
	response "project_materials/internal/adapter/http/dto/response"
	"project_materials/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const apiMessage = "Project materials API"

// Root godoc
// @Summary  API banner
// @Tags     meta
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: apiMessage})
}

// CalculateQuantity godoc
// @Summary  Quantity from a base measure and a multiplier
// @Tags     meta
// @Produce  json
// @Param    base_measure  query     number  true  "Base measure (area, length...)"
// @Param    multiplier    query     number  true  "Consumption per unit of measure"
// @Success  200           {object}  response.QuantityResponse
// @Failure  400           {object}  pkg.HTTPError
// @Router   /quantities/calculate [get]
func CalculateQuantity(c *gin.Context) {
	var query request.QuantityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalid(c, err)
		return
	}
	quantity := entities.CalculateQuantity(*query.BaseMeasure, *query.Multiplier)
	if math.IsInf(quantity, 0) {
		respondInvalid(c, nil)
		return
	}
	c.JSON(http.StatusOK, response.QuantityResponse{Quantity: quantity})
}
