package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/auth"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/middleware"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	ActivateEvent(c *ginext.Context)
	DeactivateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)

	ListSellers(c *ginext.Context)
	ApproveSeller(c *ginext.Context)
	SuspendSeller(c *ginext.Context)
	UnsuspendSeller(c *ginext.Context)
	SetSellerLimit(c *ginext.Context)
	DeleteSeller(c *ginext.Context)
	SellerSummary(c *ginext.Context)
	SellerTickets(c *ginext.Context)

	IssueTicket(c *ginext.Context)
	ListTickets(c *ginext.Context)
	GetTicket(c *ginext.Context)
	TicketQR(c *ginext.Context)

	Scan(c *ginext.Context)
	Stats(c *ginext.Context)
	ScanLogs(c *ginext.Context)
	AuditLogs(c *ginext.Context)
}

func InitRouter(mode string, h Handler, tokens *auth.TokenManager, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	anyRole := middleware.Auth(tokens)
	adminOnly := middleware.Auth(tokens, domain.RoleAdmin)
	sellerOnly := middleware.Auth(tokens, domain.RoleSeller)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)

		// Profile
		api.GET("/profile", anyRole, h.GetProfile)
		api.PUT("/profile", anyRole, h.UpdateProfile)

		// Events
		api.POST("/events", adminOnly, h.CreateEvent)
		api.GET("/events", anyRole, h.ListEvents)
		api.PUT("/events/:id", adminOnly, h.UpdateEvent)
		api.PATCH("/events/:id/activate", adminOnly, h.ActivateEvent)
		api.PATCH("/events/:id/deactivate", adminOnly, h.DeactivateEvent)
		api.DELETE("/events/:id", adminOnly, h.DeleteEvent)

		// Sellers
		api.GET("/sellers", adminOnly, h.ListSellers)
		api.PATCH("/sellers/:id/approve", adminOnly, h.ApproveSeller)
		api.PATCH("/sellers/:id/suspend", adminOnly, h.SuspendSeller)
		api.PATCH("/sellers/:id/unsuspend", adminOnly, h.UnsuspendSeller)
		api.PATCH("/sellers/:id/limit", adminOnly, h.SetSellerLimit)
		api.DELETE("/sellers/:id", adminOnly, h.DeleteSeller)
		api.GET("/sellers/:id/summary", anyRole, h.SellerSummary)
		api.GET("/sellers/:id/tickets", anyRole, h.SellerTickets)

		// Tickets
		api.POST("/tickets", sellerOnly, h.IssueTicket)
		api.GET("/tickets", anyRole, h.ListTickets)
		api.GET("/tickets/:code", h.GetTicket)
		api.GET("/tickets/:code/qr.png", h.TicketQR)

		// Scanning and rollups
		api.POST("/scan", adminOnly, h.Scan)
		api.GET("/scan-logs", adminOnly, h.ScanLogs)
		api.GET("/admin/stats", adminOnly, h.Stats)
		api.GET("/admin/audit-logs", adminOnly, h.AuditLogs)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
