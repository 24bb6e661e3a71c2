package api

import (
	"database/sql"
	stdhttp "net/http"

	intconfig "itinerary/internal/config"
	h "itinerary/internal/http/handlers"
	"itinerary/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	hd := h.Handler{DB: db, Env: env}
	requireAdmin := []gin.HandlerFunc{
		middleware.RequireAuth(env.Auth.JWTSecret),
		middleware.RequireRoles(env.Auth.Enabled(), "admin"),
	}

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", hd.Routes)

		// Auth
		api.POST("/auth/login", hd.Login)

		// Transport types
		transportTypes := api.Group("/transport-types")
		transportTypes.GET("", hd.GetTransportTypes)
		transportTypes.GET("/:id", hd.GetTransportTypeByID)
		transportTypes.Group("", requireAdmin...).POST("", hd.CreateTransportType)

		// Tickets
		tickets := api.Group("/tickets")
		tickets.GET("", hd.GetTickets)
		tickets.GET("/ordered", hd.GetOrderedTickets)
		tickets.GET("/ordered/pdf", hd.GetOrderedTicketsPDF)
		tickets.GET("/:id", hd.GetTicketByID)
		ticketWrites := tickets.Group("", requireAdmin...)
		ticketWrites.POST("", hd.CreateTicket)
		ticketWrites.PUT("/:id", hd.UpdateTicket)
		ticketWrites.DELETE("/:id", hd.DeleteTicket)
		ticketWrites.DELETE("", hd.DeleteAllTickets)
	}

	h.SetRouter(r)
	return r
}
