package handlers

import (
	"net/http"
	"strings"

	"itinerary/internal/domain/models"
	"itinerary/internal/http/middleware"
	"itinerary/internal/services"

	"github.com/gin-gonic/gin"
)

type ticketPayload struct {
	TransportType   transportTypePayload `json:"transportType"`
	Departure       string               `json:"departure" binding:"required"`
	Arrival         string               `json:"arrival" binding:"required"`
	TransportNumber string               `json:"transportNumber"`
	Seat            string               `json:"seat"`
	Gate            string               `json:"gate"`
	LuggageInfo     string               `json:"luggageInfo"`
	AdditionalInfo  string               `json:"additionalInfo"`
}

type ticketUpdatePayload struct {
	TransportType *struct {
		Name string `json:"name"`
	} `json:"transportType"`
	Departure       *string `json:"departure"`
	Arrival         *string `json:"arrival"`
	TransportNumber *string `json:"transportNumber"`
	Seat            *string `json:"seat"`
	Gate            *string `json:"gate"`
	LuggageInfo     *string `json:"luggageInfo"`
	AdditionalInfo  *string `json:"additionalInfo"`
}

func (p ticketUpdatePayload) toUpdate() models.TicketUpdate {
	upd := models.TicketUpdate{
		Departure:       p.Departure,
		Arrival:         p.Arrival,
		TransportNumber: p.TransportNumber,
		Seat:            p.Seat,
		Gate:            p.Gate,
		LuggageInfo:     p.LuggageInfo,
		AdditionalInfo:  p.AdditionalInfo,
	}
	// an empty transport type name keeps the current one
	if p.TransportType != nil && strings.TrimSpace(p.TransportType.Name) != "" {
		name := p.TransportType.Name
		upd.TransportTypeName = &name
	}
	return upd
}

// POST /api/tickets
func (h Handler) CreateTicket(c *gin.Context) {
	var payload ticketPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	t, err := h.ticketService(c).Create(c.Request.Context(), models.Ticket{
		Departure:       payload.Departure,
		Arrival:         payload.Arrival,
		TransportNumber: payload.TransportNumber,
		Seat:            payload.Seat,
		Gate:            payload.Gate,
		LuggageInfo:     payload.LuggageInfo,
		AdditionalInfo:  payload.AdditionalInfo,
		TransportType:   models.TransportType{Name: payload.TransportType.Name},
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GET /api/tickets
func (h Handler) GetTickets(c *gin.Context) {
	list, err := h.ticketService(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/tickets/:id
func (h Handler) GetTicketByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := h.ticketService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GET /api/tickets/ordered?format=text|json
func (h Handler) GetOrderedTickets(c *gin.Context) {
	svc := h.ticketService(c)

	if strings.EqualFold(c.Query("format"), "json") {
		lines, err := svc.OrderedLines(c.Request.Context())
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		if lines == nil {
			c.JSON(http.StatusOK, gin.H{"lines": []string{}, "message": services.EmptyItineraryMessage})
			return
		}
		c.JSON(http.StatusOK, gin.H{"lines": lines})
		return
	}

	text, err := svc.OrderedItinerary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.String(http.StatusOK, text)
}

// GET /api/tickets/ordered/pdf
func (h Handler) GetOrderedTicketsPDF(c *gin.Context) {
	svc := services.ItineraryPDFService{
		Tickets:   h.ticketService(c),
		RequestID: middleware.GetRequestID(c),
		Now:       h.Now,
	}
	pdfBytes, filename, err := svc.Generate(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// PUT /api/tickets/:id
func (h Handler) UpdateTicket(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload ticketUpdatePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	t, err := h.ticketService(c).Update(c.Request.Context(), id, payload.toUpdate())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /api/tickets/:id
func (h Handler) DeleteTicket(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.ticketService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ticket deleted"})
}

// DELETE /api/tickets
func (h Handler) DeleteAllTickets(c *gin.Context) {
	if err := h.ticketService(c).DeleteAll(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all tickets deleted"})
}
