package handlers

import (
	"minimalapi/services/calendar"
	"minimalapi/services/generator"
	"minimalapi/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Plain endpoints
	HelloHandler  gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// Generator endpoints
	NewGUIDHandler    gin.HandlerFunc
	GetRandomsHandler gin.HandlerFunc

	// Work day endpoints
	GetWorkDaysHandler  gin.HandlerFunc
	GetWorkDays2Handler gin.HandlerFunc
}

// NewHandlerBundle wires every endpoint to its service.
func NewHandlerBundle(
	gen generator.GeneratorService,
	cal calendar.CalendarService,
	health *utils.HealthMonitor,
	randomsMaxCount int,
) *HandlerBundle {
	generatorHandler := NewGeneratorHandler(gen, randomsMaxCount)
	workDaysHandler := NewWorkDaysHandler(cal)

	return &HandlerBundle{
		HelloHandler:  HelloHandler,
		HealthHandler: NewHealthHandler(health),

		NewGUIDHandler:    generatorHandler.NewGUIDHandler,
		GetRandomsHandler: generatorHandler.GetRandomsHandler,

		GetWorkDaysHandler:  workDaysHandler.GetWorkDaysHandler,
		GetWorkDays2Handler: workDaysHandler.GetWorkDays2Handler,
	}
}
