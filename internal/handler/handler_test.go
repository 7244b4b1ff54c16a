package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/auth"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/handler/dto"
	hmocks "github.com/galaxyentertainmentjo-sketch/PartyPass/internal/handler/mocks"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/qr"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/router"
)

const (
	adminID  = "11111111-1111-1111-1111-111111111111"
	sellerID = "22222222-2222-2222-2222-222222222222"
	otherID  = "33333333-3333-3333-3333-333333333333"
	eventID  = "44444444-4444-4444-4444-444444444444"
)

type svcMocks struct {
	identity *hmocks.MockIdentitySvc
	events   *hmocks.MockEventSvc
	tickets  *hmocks.MockTicketSvc
	scans    *hmocks.MockScanSvc
	stats    *hmocks.MockStatsSvc
}

func setupRouter(t *testing.T) (svcMocks, *auth.TokenManager, http.Handler) {
	t.Helper()
	m := svcMocks{
		identity: hmocks.NewMockIdentitySvc(t),
		events:   hmocks.NewMockEventSvc(t),
		tickets:  hmocks.NewMockTicketSvc(t),
		scans:    hmocks.NewMockScanSvc(t),
		stats:    hmocks.NewMockStatsSvc(t),
	}
	tokens := auth.NewTokenManager("test_secret", time.Hour)
	h := NewHandler(m.identity, m.events, m.tickets, m.scans, m.stats)
	r := router.InitRouter("test", h, tokens)

	return m, tokens, r
}

func adminToken(t *testing.T, tokens *auth.TokenManager) string {
	t.Helper()
	token, err := tokens.Issue(&domain.User{ID: adminID, Role: domain.RoleAdmin, Name: "Admin"})
	require.NoError(t, err)
	return token
}

func sellerToken(t *testing.T, tokens *auth.TokenManager) string {
	t.Helper()
	token, err := tokens.Issue(&domain.User{ID: sellerID, Role: domain.RoleSeller, Name: "Alice"})
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	m, _, r := setupRouter(t)

	user := &domain.User{
		ID:          sellerID,
		Name:        "Alice",
		Email:       "alice@example.com",
		Role:        domain.RoleSeller,
		TicketLimit: 100,
		CreatedAt:   time.Now(),
	}
	m.identity.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		WhatsApp: "+1234567890",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "seller", resp.Role)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	m, _, r := setupRouter(t)

	m.identity.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Name:     "Alice",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Register_BadBody(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", "", map[string]string{"name": "Alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	m, _, r := setupRouter(t)

	user := &domain.User{ID: sellerID, Email: "alice@example.com", Role: domain.RoleSeller, Approved: true, CreatedAt: time.Now()}
	m.identity.EXPECT().Login(mock.Anything, "alice@example.com", "secret123").Return(user, "signed-token", nil)

	w := doJSON(t, r, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, sellerID, resp.User.ID)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, _, r := setupRouter(t)

	m.identity.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").Return(nil, "", domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_SuspendedSeller(t *testing.T) {
	m, _, r := setupRouter(t)

	m.identity.EXPECT().Login(mock.Anything, "alice@example.com", "secret123").Return(nil, "", domain.ErrSellerSuspended)

	w := doJSON(t, r, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Profile ---

func TestHandler_GetProfile_Success(t *testing.T) {
	m, tokens, r := setupRouter(t)

	user := &domain.User{ID: sellerID, Name: "Alice", Role: domain.RoleSeller, CreatedAt: time.Now()}
	m.identity.EXPECT().GetProfile(mock.Anything, sellerID).Return(user, nil)

	w := doJSON(t, r, http.MethodGet, "/api/profile", sellerToken(t, tokens), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetProfile_NoToken(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetProfile_GarbageToken(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/profile", "not-a-jwt", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, tokens, r := setupRouter(t)

	event := &domain.Event{ID: eventID, Name: "Summer Party", Active: true, CreatedAt: time.Now()}
	m.events.EXPECT().Create(mock.Anything, adminID, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", adminToken(t, tokens), dto.EventRequest{
		Name:  "Summer Party",
		Date:  "2026-09-01",
		Time:  "21:00",
		Venue: "Warehouse 12",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Active)
}

func TestHandler_CreateEvent_SellerForbidden(t *testing.T) {
	_, tokens, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", sellerToken(t, tokens), dto.EventRequest{
		Name:  "Summer Party",
		Date:  "2026-09-01",
		Time:  "21:00",
		Venue: "Warehouse 12",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateEvent_BadBody(t *testing.T) {
	_, tokens, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", adminToken(t, tokens), map[string]string{"name": "X"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_StillActive(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.events.EXPECT().Delete(mock.Anything, adminID, eventID).Return(domain.ErrEventStillActive)

	w := doJSON(t, r, http.MethodDelete, "/api/events/"+eventID, adminToken(t, tokens), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_SellerSeesActiveOnly(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.events.EXPECT().List(mock.Anything, true).Return([]*domain.Event{{ID: eventID, Active: true}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", sellerToken(t, tokens), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Sellers ---

func TestHandler_ApproveSeller_Success(t *testing.T) {
	m, tokens, r := setupRouter(t)

	seller := &domain.User{ID: sellerID, Role: domain.RoleSeller, Approved: true, CreatedAt: time.Now()}
	report := domain.Report{Email: domain.OutcomeSent, WhatsApp: domain.OutcomeMissingContact}
	m.identity.EXPECT().Approve(mock.Anything, adminID, sellerID).Return(seller, report, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/sellers/"+sellerID+"/approve", adminToken(t, tokens), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApprovalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Seller.Approved)
	assert.Equal(t, domain.OutcomeSent, resp.Notifications.Email)
}

func TestHandler_SetSellerLimit_BelowSold(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.identity.EXPECT().SetTicketLimit(mock.Anything, adminID, sellerID, 1).Return(domain.ErrLimitBelowSold)

	w := doJSON(t, r, http.MethodPatch, "/api/sellers/"+sellerID+"/limit", adminToken(t, tokens), map[string]int{"ticket_limit": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteSeller_NotSuspended(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.identity.EXPECT().DeleteSeller(mock.Anything, adminID, sellerID).Return(domain.ErrSellerNotSusp)

	w := doJSON(t, r, http.MethodDelete, "/api/sellers/"+sellerID, adminToken(t, tokens), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SellerSummary_Self(t *testing.T) {
	m, tokens, r := setupRouter(t)

	summary := &domain.SellerSummary{Total: 5, Used: 2, Remaining: 5, Limit: 10, Sold: 5}
	m.stats.EXPECT().SellerSummary(mock.Anything, sellerID).Return(summary, nil)

	w := doJSON(t, r, http.MethodGet, "/api/sellers/"+sellerID+"/summary", sellerToken(t, tokens), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SellerSummary_OtherSellerForbidden(t *testing.T) {
	_, tokens, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sellers/"+otherID+"/summary", sellerToken(t, tokens), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_SellerSummary_AdminAllowed(t *testing.T) {
	m, tokens, r := setupRouter(t)

	summary := &domain.SellerSummary{Limit: 100}
	m.stats.EXPECT().SellerSummary(mock.Anything, sellerID).Return(summary, nil)

	w := doJSON(t, r, http.MethodGet, "/api/sellers/"+sellerID+"/summary", adminToken(t, tokens), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Tickets ---

func TestHandler_IssueTicket_Success(t *testing.T) {
	m, tokens, r := setupRouter(t)

	png, err := qr.EncodePNG("PP-abc-112233")
	require.NoError(t, err)

	issued := &domain.IssuedTicket{
		Ticket: &domain.Ticket{
			ID:         "t1",
			EventID:    eventID,
			SellerID:   sellerID,
			TicketCode: "PP-abc-112233",
			QRPNG:      png,
			Status:     domain.TicketStatusUnused,
			IssuedAt:   time.Now(),
		},
		Delivery: domain.Report{Email: domain.OutcomeSkipped, WhatsApp: domain.OutcomeSent},
	}
	m.tickets.EXPECT().Issue(mock.Anything, mock.MatchedBy(func(input domain.IssueTicketInput) bool {
		return input.SellerID == sellerID && input.EventID == eventID
	})).Return(issued, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", sellerToken(t, tokens), dto.IssueTicketRequest{
		EventID:          eventID,
		CustomerName:     "Bob",
		CustomerWhatsApp: "+1987654321",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.IssuedTicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PP-abc-112233", resp.Ticket.TicketCode)
	assert.True(t, strings.HasPrefix(resp.Ticket.QRCode, "data:image/png;base64,"))
	assert.Equal(t, domain.OutcomeSent, resp.Notifications.WhatsApp)
}

func TestHandler_IssueTicket_AdminForbidden(t *testing.T) {
	_, tokens, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", adminToken(t, tokens), dto.IssueTicketRequest{
		EventID:      eventID,
		CustomerName: "Bob",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_IssueTicket_QuotaExceeded(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.tickets.EXPECT().Issue(mock.Anything, mock.Anything).Return(nil, domain.ErrQuotaExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", sellerToken(t, tokens), dto.IssueTicketRequest{
		EventID:          eventID,
		CustomerName:     "Bob",
		CustomerWhatsApp: "+1987654321",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_IssueTicket_InactiveEvent(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.tickets.EXPECT().Issue(mock.Anything, mock.Anything).Return(nil, domain.ErrEventInactive)

	w := doJSON(t, r, http.MethodPost, "/api/tickets", sellerToken(t, tokens), dto.IssueTicketRequest{
		EventID:          eventID,
		CustomerName:     "Bob",
		CustomerWhatsApp: "+1987654321",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTicket_PublicNoAuth(t *testing.T) {
	m, _, r := setupRouter(t)

	ticket := &domain.Ticket{ID: "t1", TicketCode: "PP-abc-112233", Status: domain.TicketStatusUnused, IssuedAt: time.Now()}
	m.tickets.EXPECT().GetByCode(mock.Anything, "PP-abc-112233").Return(ticket, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tickets/PP-abc-112233", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetTicket_NotFound(t *testing.T) {
	m, _, r := setupRouter(t)

	m.tickets.EXPECT().GetByCode(mock.Anything, "PP-nope").Return(nil, domain.ErrTicketNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/tickets/PP-nope", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_TicketQR_ServesPNG(t *testing.T) {
	m, _, r := setupRouter(t)

	png, err := qr.EncodePNG("PP-abc-112233")
	require.NoError(t, err)

	ticket := &domain.Ticket{ID: "t1", TicketCode: "PP-abc-112233", QRPNG: png}
	m.tickets.EXPECT().GetByCode(mock.Anything, "PP-abc-112233").Return(ticket, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tickets/PP-abc-112233/qr.png", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, png, w.Body.Bytes())
}

// --- Scanning ---

func TestHandler_Scan_Success(t *testing.T) {
	m, tokens, r := setupRouter(t)

	now := time.Now()
	ticket := &domain.Ticket{ID: "t1", TicketCode: "PP-abc-112233", Status: domain.TicketStatusUsed, ScannedAt: &now, IssuedAt: now}
	m.scans.EXPECT().Redeem(mock.Anything, "PP-abc-112233", adminID).Return(ticket, nil)

	w := doJSON(t, r, http.MethodPost, "/api/scan", adminToken(t, tokens), dto.ScanRequest{TicketCode: "PP-abc-112233"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "used", resp.Status)
}

func TestHandler_Scan_AlreadyUsed(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.scans.EXPECT().Redeem(mock.Anything, "PP-abc-112233", adminID).Return(nil, domain.ErrTicketUsed)

	w := doJSON(t, r, http.MethodPost, "/api/scan", adminToken(t, tokens), dto.ScanRequest{TicketCode: "PP-abc-112233"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Scan_SellerForbidden(t *testing.T) {
	_, tokens, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/scan", sellerToken(t, tokens), dto.ScanRequest{TicketCode: "PP-abc-112233"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Rollups ---

func TestHandler_Stats_Success(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.stats.EXPECT().Overview(mock.Anything).Return(&domain.Stats{TotalTickets: 10}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/admin/stats", adminToken(t, tokens), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.TotalTickets)
}

func TestHandler_ScanLogs_LimitPassedThrough(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.stats.EXPECT().RecentScans(mock.Anything, 10).Return([]*domain.ScanLogEntry{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/scan-logs?limit=10", adminToken(t, tokens), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AuditLogs_SellerForbidden(t *testing.T) {
	_, tokens, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/audit-logs", sellerToken(t, tokens), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	m, tokens, r := setupRouter(t)

	m.stats.EXPECT().Overview(mock.Anything).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/admin/stats", adminToken(t, tokens), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
