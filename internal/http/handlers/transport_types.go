package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type transportTypePayload struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/transport-types
func (h Handler) GetTransportTypes(c *gin.Context) {
	list, err := h.transportTypeService(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/transport-types/:id
func (h Handler) GetTransportTypeByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	tt, err := h.transportTypeService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tt)
}

// POST /api/transport-types
func (h Handler) CreateTransportType(c *gin.Context) {
	var payload transportTypePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	tt, err := h.transportTypeService(c).Create(c.Request.Context(), payload.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tt)
}
