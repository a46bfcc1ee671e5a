package handlers

import (
	"fmt"
	"net/http"

	"minimalapi/services/generator"
	"minimalapi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeneratorHandler serves the identifier and random number endpoints.
type GeneratorHandler struct {
	Generator generator.GeneratorService
	MaxCount  int
}

func NewGeneratorHandler(svc generator.GeneratorService, maxCount int) *GeneratorHandler {
	return &GeneratorHandler{
		Generator: svc,
		MaxCount:  maxCount,
	}
}

type randomsQuery struct {
	Count *int `form:"count" binding:"required"`
	Range int  `form:"range,default=2147483647" binding:"min=1"`
}

// NewGUIDHandler godoc
// @Summary      New GUID
// @Description  Generates a random (version 4) unique identifier
// @ID           NewGuid
// @Tags         Generators
// @Produce      json
// @Success      200  {string}  string  "3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Router       /guid [get]
func (h *GeneratorHandler) NewGUIDHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Generator.NewGUID().String())
}

// GetRandomsHandler godoc
// @Summary      Generate random numbers
// @Description  Generates the requested number of random numbers
// @ID           GetRandoms
// @Tags         Math,Generators
// @Produce      json
// @Param        count  query     int  true   "number of random values"
// @Param        range  query     int  false  "upper bound of each value (0 to range-1)"  default(2147483647)  minimum(1)
// @Success      200    {array}   int
// @Failure      400    {object}  utils.ErrorResponse
// @Router       /randoms [get]
func (h *GeneratorHandler) GetRandomsHandler(c *gin.Context) {
	var q randomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if h.MaxCount > 0 && *q.Count > h.MaxCount {
		utils.JSONError(c, http.StatusBadRequest, "invalid query parameters",
			fmt.Sprintf("count may not exceed %d", h.MaxCount))
		return
	}

	utils.RequestLogger(c).Debug("generating randoms", zap.Int("count", *q.Count), zap.Int("range", q.Range))
	c.JSON(http.StatusOK, h.Generator.Randoms(*q.Count, q.Range))
}
