package handlers

import (
	"database/sql"
	"time"

	intconfig "itinerary/internal/config"
	"itinerary/internal/http/middleware"
	"itinerary/internal/itinerary"
	"itinerary/internal/repositories"
	"itinerary/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler carries what the route handlers need to build per-request services.
type Handler struct {
	DB  *sql.DB
	Env intconfig.Env
	Now func() time.Time
}

func (h Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h Handler) ticketService(c *gin.Context) services.TicketService {
	return services.TicketService{
		Tickets:        repositories.TicketRepository{DB: h.DB},
		TransportTypes: repositories.TransportTypeRepository{DB: h.DB},
		Reconstructor:  itinerary.Reconstructor{Strict: h.Env.Itinerary.Strict},
		RequestID:      middleware.GetRequestID(c),
	}
}

func (h Handler) transportTypeService(c *gin.Context) services.TransportTypeService {
	return services.TransportTypeService{
		Repo:      repositories.TransportTypeRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}
