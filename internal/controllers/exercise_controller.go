package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exercise-tracker-be/internal/apperr"
	"exercise-tracker-be/internal/models"
	"exercise-tracker-be/internal/service"
)

type ExerciseController struct {
	exerciseService service.ExerciseService
}

func NewExerciseController(exerciseService service.ExerciseService) *ExerciseController {
	return &ExerciseController{
		exerciseService: exerciseService,
	}
}

// CreateExercise handles POST /api/users/:_id/exercises
func (ec *ExerciseController) CreateExercise(c *gin.Context) {
	userID := c.Param("_id")

	var req models.CreateExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	response, err := ec.exerciseService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListLogs handles GET /api/users/:_id/logs
func (ec *ExerciseController) ListLogs(c *gin.Context) {
	userID := c.Param("_id")

	var query models.LogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	response, err := ec.exerciseService.Logs(c.Request.Context(), userID, &query)
	if err != nil {
		c.JSON(statusFor(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// statusFor maps the application error taxonomy to an HTTP status.
// Unexpected persistence errors surface as 400 with the underlying
// message, matching the documented contract of these routes.
func statusFor(err error) int {
	switch {
	case apperr.IsNotFound(err):
		return http.StatusNotFound
	case apperr.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
