// server/internal/api/handlers/user_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/service"
)

type UserHandler struct {
	Users *service.UserService
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// ListByCredentials returns the users matching ?username=&password=.
func (h *UserHandler) ListByCredentials(c *gin.Context) {
	var creds dto.Credentials
	if err := c.ShouldBindQuery(&creds); err != nil {
		badRequest(c, err)
		return
	}

	users, err := h.Users.ByCredentials(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// FindByUsername takes the username from ?userId=, as existing clients send it.
func (h *UserHandler) FindByUsername(c *gin.Context) {
	users, err := h.Users.ByUsername(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetStatus(c *gin.Context) {
	status, err := h.Users.Status(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	msg, err := h.Users.SetStatus(c.Request.Context(), c.Query("userId"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *UserHandler) GetPoints(c *gin.Context) {
	points, err := h.Users.Points(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// UpdatePoints takes ?points= or, when the query is absent, {"points": n}.
func (h *UserHandler) UpdatePoints(c *gin.Context) {
	var points float64
	if raw, ok := c.GetQuery("points"); ok {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, apperr.InvalidInput("points must be a number"))
			return
		}
		points = parsed
	} else {
		var req dto.PointsRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Points == nil {
			respondError(c, apperr.InvalidInput("points is required"))
			return
		}
		points = *req.Points
	}

	msg, err := h.Users.SetPoints(c.Request.Context(), c.Query("userId"), points)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
