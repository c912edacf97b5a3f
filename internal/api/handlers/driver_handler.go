// server/internal/api/handlers/driver_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/service"
)

type DriverHandler struct {
	Drivers *service.DriverService
}

func (h *DriverHandler) AddDriver(c *gin.Context) {
	var req dto.Driver
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.Drivers.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *DriverHandler) GetAllDrivers(c *gin.Context) {
	drivers, err := h.Drivers.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *DriverHandler) GetDriver(c *gin.Context) {
	driver, found, err := h.Drivers.Get(c.Request.Context(), c.Param("driverId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	var req dto.Driver
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.Drivers.Update(c.Request.Context(), c.Param("driverId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	msg, err := h.Drivers.Delete(c.Request.Context(), c.Param("driverId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *DriverHandler) DeleteAllDrivers(c *gin.Context) {
	msg, err := h.Drivers.DeleteAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
