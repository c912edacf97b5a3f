// server/internal/api/handlers/schedule_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/service"
)

type ScheduleHandler struct {
	Schedules *service.ScheduleService
}

func (h *ScheduleHandler) AddSchedule(c *gin.Context) {
	var req dto.Schedule
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.Schedules.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	schedules, err := h.Schedules.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// GetSchedule looks up ?scheduleId=.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	schedule, found, err := h.Schedules.Get(c.Request.Context(), c.Query("scheduleId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// UpdateSchedule replaces the assignment of :scheduleId. The path wins over
// a scheduleId in the body.
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	var req dto.Schedule
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.ScheduleID = c.Param("scheduleId")

	msg, err := h.Schedules.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	msg, err := h.Schedules.Delete(c.Request.Context(), c.Param("scheduleId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *ScheduleHandler) DeleteAllSchedules(c *gin.Context) {
	msg, err := h.Schedules.DeleteAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
