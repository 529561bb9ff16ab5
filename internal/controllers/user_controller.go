package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exercise-tracker-be/internal/models"
	"exercise-tracker-be/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser handles POST /api/users
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	response, err := uc.userService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListUsers handles GET /api/users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.List(c.Request.Context())
	if err != nil {
		// Persistence detail stays internal on this route
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}
