package handlers

import (
	"net/http"

	"minimalapi/utils"

	"github.com/gin-gonic/gin"
)

// Result is a response an endpoint can produce: a status code and a JSON body.
type Result interface {
	Status() int
	Payload() any
}

// Ok is a 200 response carrying T.
type Ok[T any] struct {
	Value T
}

func (r Ok[T]) Status() int  { return http.StatusOK }
func (r Ok[T]) Payload() any { return r.Value }

// BadRequest is a 400 response carrying T.
type BadRequest[T any] struct {
	Value T
}

func (r BadRequest[T]) Status() int  { return http.StatusBadRequest }
func (r BadRequest[T]) Payload() any { return r.Value }

// Results holds exactly one of A or B. Build it only through First and
// Second, so an endpoint typed as Results[A, B] cannot answer with anything
// else. The zero value holds neither and renders as a 500.
type Results[A, B Result] struct {
	result Result
}

func First[A, B Result](a A) Results[A, B] {
	return Results[A, B]{result: a}
}

func Second[A, B Result](b B) Results[A, B] {
	return Results[A, B]{result: b}
}

func (r Results[A, B]) Status() int {
	if r.result == nil {
		return http.StatusInternalServerError
	}
	return r.result.Status()
}

func (r Results[A, B]) Payload() any {
	if r.result == nil {
		return utils.ErrorResponse{Message: "Internal Server Error", Details: "no result produced"}
	}
	return r.result.Payload()
}

// Unwrap returns the held result.
func (r Results[A, B]) Unwrap() Result { return r.result }

// render writes a result as JSON. A nil result is a 500.
func render(c *gin.Context, r Result) {
	if r == nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "no result produced")
		return
	}
	c.JSON(r.Status(), r.Payload())
}
