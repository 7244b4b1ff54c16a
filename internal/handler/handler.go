package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/handler/dto"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/middleware"
)

type IdentitySvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Approve(ctx context.Context, actorID, sellerID string) (*domain.User, domain.Report, error)
	Suspend(ctx context.Context, actorID, sellerID string) error
	Unsuspend(ctx context.Context, actorID, sellerID string) error
	SetTicketLimit(ctx context.Context, actorID, sellerID string, limit int) error
	DeleteSeller(ctx context.Context, actorID, sellerID string) error
	ListSellers(ctx context.Context) ([]*domain.User, error)
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input domain.UpdateProfileInput) (*domain.User, error)
}

type EventSvc interface {
	Create(ctx context.Context, actorID string, input domain.EventInput) (*domain.Event, error)
	Update(ctx context.Context, actorID, id string, input domain.EventInput) (*domain.Event, error)
	Activate(ctx context.Context, actorID, id string) error
	Deactivate(ctx context.Context, actorID, id string) error
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, activeOnly bool) ([]*domain.Event, error)
}

type TicketSvc interface {
	Issue(ctx context.Context, input domain.IssueTicketInput) (*domain.IssuedTicket, error)
	GetByCode(ctx context.Context, code string) (*domain.Ticket, error)
	ListAll(ctx context.Context) ([]*domain.Ticket, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Ticket, error)
}

type ScanSvc interface {
	Redeem(ctx context.Context, code, scannerID string) (*domain.Ticket, error)
}

type StatsSvc interface {
	Overview(ctx context.Context) (*domain.Stats, error)
	RecentScans(ctx context.Context, limit int) ([]*domain.ScanLogEntry, error)
	RecentAudit(ctx context.Context, limit int) ([]*domain.AuditLog, error)
	SellerSummary(ctx context.Context, sellerID string) (*domain.SellerSummary, error)
}

type Handler struct {
	identityService IdentitySvc
	eventService    EventSvc
	ticketService   TicketSvc
	scanService     ScanSvc
	statsService    StatsSvc
}

func NewHandler(identity IdentitySvc, events EventSvc, tickets TicketSvc, scans ScanSvc, stats StatsSvc) *Handler {
	return &Handler{
		identityService: identity,
		eventService:    events,
		ticketService:   tickets,
		scanService:     scans,
		statsService:    stats,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		WhatsApp: req.WhatsApp,
	}

	user, err := h.identityService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.identityService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}

// Profile

func (h *Handler) GetProfile(c *ginext.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
		return
	}

	user, err := h.identityService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateProfileInput{
		Name:      req.Name,
		WhatsApp:  req.WhatsApp,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
		Password:  req.Password,
	}

	user, err := h.identityService.UpdateProfile(c.Request.Context(), claims.UserID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), claims.UserID, domain.EventInput{
		Name:  req.Name,
		Date:  req.Date,
		Time:  req.Time,
		Venue: req.Venue,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), claims.UserID, id, domain.EventInput{
		Name:  req.Name,
		Date:  req.Date,
		Time:  req.Time,
		Venue: req.Venue,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ActivateEvent(c *ginext.Context) {
	h.toggleEvent(c, true)
}

func (h *Handler) DeactivateEvent(c *ginext.Context) {
	h.toggleEvent(c, false)
}

func (h *Handler) toggleEvent(c *ginext.Context, active bool) {
	claims, _ := middleware.ClaimsFrom(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var err error
	if active {
		err = h.eventService.Activate(c.Request.Context(), claims.UserID, id)
	} else {
		err = h.eventService.Deactivate(c.Request.Context(), claims.UserID, id)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"active": active})
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListEvents(c *ginext.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	// Продавцы видят только активные события.
	activeOnly := c.Query("active") == "true"
	if claims != nil && claims.Role == domain.RoleSeller {
		activeOnly = true
	}

	events, err := h.eventService.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Sellers

func (h *Handler) ListSellers(c *ginext.Context) {
	sellers, err := h.identityService.ListSellers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(sellers))
	for _, s := range sellers {
		resp = append(resp, dto.ToUserResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveSeller(c *ginext.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid seller id"})
		return
	}

	seller, report, err := h.identityService.Approve(c.Request.Context(), claims.UserID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApprovalResponse{
		Seller:        dto.ToUserResponse(seller),
		Notifications: report,
	})
}

func (h *Handler) SuspendSeller(c *ginext.Context) {
	h.toggleSeller(c, true)
}

func (h *Handler) UnsuspendSeller(c *ginext.Context) {
	h.toggleSeller(c, false)
}

func (h *Handler) toggleSeller(c *ginext.Context, suspended bool) {
	claims, _ := middleware.ClaimsFrom(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid seller id"})
		return
	}

	var err error
	if suspended {
		err = h.identityService.Suspend(c.Request.Context(), claims.UserID, id)
	} else {
		err = h.identityService.Unsuspend(c.Request.Context(), claims.UserID, id)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"suspended": suspended})
}

func (h *Handler) SetSellerLimit(c *ginext.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid seller id"})
		return
	}

	var req dto.TicketLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.identityService.SetTicketLimit(c.Request.Context(), claims.UserID, id, *req.TicketLimit); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ticket_limit": *req.TicketLimit})
}

func (h *Handler) DeleteSeller(c *ginext.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid seller id"})
		return
	}

	if err := h.identityService.DeleteSeller(c.Request.Context(), claims.UserID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) SellerSummary(c *ginext.Context) {
	id, ok := h.selfOrAdmin(c)
	if !ok {
		return
	}

	summary, err := h.statsService.SellerSummary(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) SellerTickets(c *ginext.Context) {
	id, ok := h.selfOrAdmin(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListBySeller(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTicketResponses(tickets))
}

// selfOrAdmin пускает продавца только к своим данным, админа — к любым.
func (h *Handler) selfOrAdmin(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid seller id"})
		return "", false
	}

	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
		return "", false
	}
	if claims.Role != domain.RoleAdmin && claims.UserID != id {
		h.handleError(c, domain.ErrForbidden)
		return "", false
	}

	return id, true
}

// Tickets

func (h *Handler) IssueTicket(c *ginext.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	var req dto.IssueTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	issued, err := h.ticketService.Issue(c.Request.Context(), domain.IssueTicketInput{
		EventID:          req.EventID,
		SellerID:         claims.UserID,
		CustomerName:     req.CustomerName,
		CustomerWhatsApp: req.CustomerWhatsApp,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.IssuedTicketResponse{
		Ticket:        dto.ToTicketResponse(issued.Ticket),
		Notifications: issued.Delivery,
	})
}

func (h *Handler) ListTickets(c *ginext.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
		return
	}

	var (
		tickets []*domain.Ticket
		err     error
	)
	if claims.Role == domain.RoleAdmin {
		tickets, err = h.ticketService.ListAll(c.Request.Context())
	} else {
		tickets, err = h.ticketService.ListBySeller(c.Request.Context(), claims.UserID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTicketResponses(tickets))
}

func (h *Handler) GetTicket(c *ginext.Context) {
	ticket, err := h.ticketService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) TicketQR(c *ginext.Context) {
	ticket, err := h.ticketService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	if len(ticket.QRPNG) == 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "qr image not available"})
		return
	}

	c.Data(http.StatusOK, "image/png", ticket.QRPNG)
}

func toTicketResponses(tickets []*domain.Ticket) []dto.TicketResponse {
	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}
	return resp
}

// Scanning

func (h *Handler) Scan(c *ginext.Context) {
	claims, _ := middleware.ClaimsFrom(c)

	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.scanService.Redeem(c.Request.Context(), req.TicketCode, claims.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

// Admin rollups

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ScanLogs(c *ginext.Context) {
	entries, err := h.statsService.RecentScans(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *Handler) AuditLogs(c *ginext.Context) {
	entries, err := h.statsService.RecentAudit(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func queryLimit(c *ginext.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrQuotaExceeded),
		errors.Is(err, domain.ErrLimitBelowSold),
		errors.Is(err, domain.ErrEventInactive),
		errors.Is(err, domain.ErrEventStillActive),
		errors.Is(err, domain.ErrSellerNotSusp):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrSellerSuspended),
		errors.Is(err, domain.ErrSellerNotApproved):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSellerNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrTicketUsed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
