package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/auth"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/config"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type identityMocks struct {
	users    *mocks.MockUserRepo
	audit    *mocks.MockAuditRepo
	notifier *mocks.MockNotifier
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
}

func newIdentityService(t *testing.T) (identityMocks, *IdentityService) {
	t.Helper()
	m := identityMocks{
		users:    mocks.NewMockUserRepo(t),
		audit:    mocks.NewMockAuditRepo(t),
		notifier: mocks.NewMockNotifier(t),
		hasher:   auth.NewPasswordHasher(4), // минимальная стоимость для тестов
		tokens:   auth.NewTokenManager("test_secret", time.Hour),
	}
	svc := NewIdentityService(m.users, m.audit, m.notifier, m.tokens, m.hasher, 6, newTestLogger(t))
	return m, svc
}

func mustHash(t *testing.T, h *auth.PasswordHasher, plain string) string {
	t.Helper()
	hashed, err := h.Hash(plain)
	require.NoError(t, err)
	return hashed
}

func TestIdentityService_Register_Success(t *testing.T) {
	m, svc := newIdentityService(t)

	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		WhatsApp: "+1234567890",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleSeller, user.Role)
	assert.Equal(t, domain.DefaultTicketLimit, user.TicketLimit)
	assert.False(t, user.Approved)
	assert.False(t, user.Suspended)
	assert.NotEmpty(t, user.ID)
	assert.True(t, strings.HasPrefix(user.Password, "$2"), "password must be stored hashed")
}

func TestIdentityService_Register_MissingFields(t *testing.T) {
	_, svc := newIdentityService(t)

	_, err := svc.Register(context.Background(), domain.RegisterInput{Name: "Alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIdentityService_Register_MalformedEmail(t *testing.T) {
	_, svc := newIdentityService(t)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "secret123",
		WhatsApp: "+1234567890",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIdentityService_Register_ShortPassword(t *testing.T) {
	_, svc := newIdentityService(t)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "123",
		WhatsApp: "+1234567890",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIdentityService_Register_EmailTaken(t *testing.T) {
	m, svc := newIdentityService(t)

	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		WhatsApp: "+1234567890",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestIdentityService_Login_Success(t *testing.T) {
	m, svc := newIdentityService(t)

	stored := &domain.User{
		ID:       "u1",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: mustHash(t, m.hasher, "secret123"),
		Role:     domain.RoleSeller,
		Approved: true,
	}
	m.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)

	claims, err := m.tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, domain.RoleSeller, claims.Role)
	assert.Equal(t, "Alice", claims.Name)
}

func TestIdentityService_Login_UnknownEmail(t *testing.T) {
	m, svc := newIdentityService(t)

	m.users.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestIdentityService_Login_WrongPassword(t *testing.T) {
	m, svc := newIdentityService(t)

	stored := &domain.User{
		ID:       "u1",
		Email:    "alice@example.com",
		Password: mustHash(t, m.hasher, "secret123"),
		Role:     domain.RoleSeller,
		Approved: true,
	}
	m.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestIdentityService_Login_LegacyCredentialUpgraded(t *testing.T) {
	m, svc := newIdentityService(t)

	stored := &domain.User{
		ID:       "u1",
		Email:    "old@example.com",
		Password: "plaintext-secret", // дохэшевая запись
		Role:     domain.RoleSeller,
		Approved: true,
	}
	m.users.EXPECT().GetByEmail(mock.Anything, "old@example.com").Return(stored, nil)
	m.users.EXPECT().UpdatePassword(mock.Anything, "u1", mock.MatchedBy(func(hashed string) bool {
		return strings.HasPrefix(hashed, "$2")
	})).Return(nil)

	user, token, err := svc.Login(context.Background(), "old@example.com", "plaintext-secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, strings.HasPrefix(user.Password, "$2"), "credential must be upgraded in place")
}

func TestIdentityService_Login_LegacyUpgradeFailureIsNotFatal(t *testing.T) {
	m, svc := newIdentityService(t)

	stored := &domain.User{
		ID:       "u1",
		Email:    "old@example.com",
		Password: "plaintext-secret",
		Role:     domain.RoleSeller,
		Approved: true,
	}
	m.users.EXPECT().GetByEmail(mock.Anything, "old@example.com").Return(stored, nil)
	m.users.EXPECT().UpdatePassword(mock.Anything, "u1", mock.Anything).Return(errors.New("db error"))

	_, token, err := svc.Login(context.Background(), "old@example.com", "plaintext-secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestIdentityService_Login_SuspendedSeller(t *testing.T) {
	m, svc := newIdentityService(t)

	stored := &domain.User{
		ID:        "u1",
		Email:     "alice@example.com",
		Password:  mustHash(t, m.hasher, "secret123"),
		Role:      domain.RoleSeller,
		Approved:  true,
		Suspended: true,
	}
	m.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSellerSuspended)
}

func TestIdentityService_Login_UnapprovedSeller(t *testing.T) {
	m, svc := newIdentityService(t)

	stored := &domain.User{
		ID:       "u1",
		Email:    "alice@example.com",
		Password: mustHash(t, m.hasher, "secret123"),
		Role:     domain.RoleSeller,
	}
	m.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSellerNotApproved)
}

func TestIdentityService_Approve_Success(t *testing.T) {
	m, svc := newIdentityService(t)

	seller := &domain.User{ID: "s1", Email: "s@example.com", Role: domain.RoleSeller}
	report := domain.Report{Email: domain.OutcomeSent, WhatsApp: domain.OutcomeNotConfigured}

	m.users.EXPECT().GetSeller(mock.Anything, "s1").Return(seller, nil)
	m.users.EXPECT().SetApproved(mock.Anything, "s1", true).Return(nil)
	m.audit.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyApproval(mock.Anything, seller).Return(report)

	approved, got, err := svc.Approve(context.Background(), "admin", "s1")

	require.NoError(t, err)
	assert.True(t, approved.Approved)
	assert.Equal(t, report, got)
}

func TestIdentityService_Approve_SellerNotFound(t *testing.T) {
	m, svc := newIdentityService(t)

	m.users.EXPECT().GetSeller(mock.Anything, "missing").Return(nil, domain.ErrSellerNotFound)

	_, _, err := svc.Approve(context.Background(), "admin", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSellerNotFound)
}

func TestIdentityService_Approve_AuditFailureIsNotFatal(t *testing.T) {
	m, svc := newIdentityService(t)

	seller := &domain.User{ID: "s1", Email: "s@example.com", Role: domain.RoleSeller}

	m.users.EXPECT().GetSeller(mock.Anything, "s1").Return(seller, nil)
	m.users.EXPECT().SetApproved(mock.Anything, "s1", true).Return(nil)
	m.audit.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("db error"))
	m.notifier.EXPECT().NotifyApproval(mock.Anything, seller).Return(domain.Report{})

	_, _, err := svc.Approve(context.Background(), "admin", "s1")

	require.NoError(t, err)
}

func TestIdentityService_SetTicketLimit_Negative(t *testing.T) {
	_, svc := newIdentityService(t)

	err := svc.SetTicketLimit(context.Background(), "admin", "s1", -5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIdentityService_SetTicketLimit_BelowSold(t *testing.T) {
	m, svc := newIdentityService(t)

	m.users.EXPECT().SetTicketLimit(mock.Anything, "s1", 1).Return(domain.ErrLimitBelowSold)

	err := svc.SetTicketLimit(context.Background(), "admin", "s1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLimitBelowSold)
}

func TestIdentityService_DeleteSeller_NotSuspended(t *testing.T) {
	m, svc := newIdentityService(t)

	m.users.EXPECT().DeleteSellerCascade(mock.Anything, "s1").Return(domain.ErrSellerNotSusp)

	err := svc.DeleteSeller(context.Background(), "admin", "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSellerNotSusp)
}

func TestIdentityService_UpdateProfile_NameRequired(t *testing.T) {
	_, svc := newIdentityService(t)

	_, err := svc.UpdateProfile(context.Background(), "u1", domain.UpdateProfileInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIdentityService_UpdateProfile_WithPasswordChange(t *testing.T) {
	m, svc := newIdentityService(t)

	stored := &domain.User{ID: "u1", Name: "Old", Role: domain.RoleSeller}
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(stored, nil)
	m.users.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().UpdatePassword(mock.Anything, "u1", mock.MatchedBy(func(hashed string) bool {
		return strings.HasPrefix(hashed, "$2")
	})).Return(nil)

	user, err := svc.UpdateProfile(context.Background(), "u1", domain.UpdateProfileInput{
		Name:     "New Name",
		Password: "newsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

func TestIdentityService_UpdateProfile_ShortPasswordLeavesProfileUntouched(t *testing.T) {
	m, svc := newIdentityService(t)

	stored := &domain.User{ID: "u1", Name: "Old", Role: domain.RoleSeller}
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(stored, nil)

	_, err := svc.UpdateProfile(context.Background(), "u1", domain.UpdateProfileInput{
		Name:     "New Name",
		Password: "short",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	// профиль не должен записываться при невалидном пароле
	m.users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	m.users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestIdentityService_EnsureAdmin_SeedsOnce(t *testing.T) {
	m, svc := newIdentityService(t)

	m.users.EXPECT().HasAdmin(mock.Anything).Return(false, nil)
	m.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin && u.Approved
	})).Return(nil)

	err := svc.EnsureAdmin(context.Background(), config.AdminConfig{
		Name:     "Admin User",
		Email:    "admin@party.com",
		Password: "admin123",
	})

	require.NoError(t, err)
}

func TestIdentityService_EnsureAdmin_AlreadySeeded(t *testing.T) {
	m, svc := newIdentityService(t)

	m.users.EXPECT().HasAdmin(mock.Anything).Return(true, nil)

	err := svc.EnsureAdmin(context.Background(), config.AdminConfig{Email: "admin@party.com"})

	require.NoError(t, err)
}
