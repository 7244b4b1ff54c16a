package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/auth"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/config"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports"
)

type IdentityService struct {
	users       ports.UserRepo
	audit       ports.AuditRepo
	notifier    ports.Notifier
	tokens      *auth.TokenManager
	hasher      *auth.PasswordHasher
	minPassword int
	logger      logger.Logger
}

func NewIdentityService(
	users ports.UserRepo,
	audit ports.AuditRepo,
	notifier ports.Notifier,
	tokens *auth.TokenManager,
	hasher *auth.PasswordHasher,
	minPassword int,
	logger logger.Logger,
) *IdentityService {
	return &IdentityService{
		users:       users,
		audit:       audit,
		notifier:    notifier,
		tokens:      tokens,
		hasher:      hasher,
		minPassword: minPassword,
		logger:      logger,
	}
}

func (s *IdentityService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.WhatsApp == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrValidation)
	}
	if len(input.Password) < s.minPassword {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, s.minPassword)
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Password:    hashed,
		Role:        domain.RoleSeller,
		TicketLimit: domain.DefaultTicketLimit,
		WhatsApp:    input.WhatsApp,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create seller: %w", err)
	}

	s.logger.Info("seller registered",
		logger.String("seller_id", user.ID),
		logger.String("email", user.Email),
	)

	return user, nil
}

// Login authenticates, upgrades legacy plaintext credentials to the
// hashed format on first success, and rejects suspended or unapproved
// sellers before a token is issued.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password required", domain.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if !s.hasher.Matches(user.Password, password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	if domain.CredentialFormatOf(user.Password) == domain.CredentialLegacy {
		if err := s.upgradeCredential(ctx, user, password); err != nil {
			s.logger.Error("legacy credential upgrade failed",
				logger.String("user_id", user.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if user.Role == domain.RoleSeller && user.Suspended {
		return nil, "", domain.ErrSellerSuspended
	}
	if user.Role == domain.RoleSeller && !user.Approved {
		return nil, "", domain.ErrSellerNotApproved
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *IdentityService) upgradeCredential(ctx context.Context, user *domain.User, password string) error {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("store upgraded credential: %w", err)
	}
	user.Password = hashed

	s.logger.Info("legacy credential upgraded",
		logger.String("user_id", user.ID),
	)

	return nil
}

func (s *IdentityService) Approve(ctx context.Context, actorID, sellerID string) (*domain.User, domain.Report, error) {
	seller, err := s.users.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, domain.Report{}, fmt.Errorf("get seller: %w", err)
	}

	if err := s.users.SetApproved(ctx, sellerID, true); err != nil {
		return nil, domain.Report{}, fmt.Errorf("approve seller: %w", err)
	}
	seller.Approved = true

	s.appendAudit(ctx, actorID, domain.AuditSellerApproved, "seller", sellerID, seller.Email)

	report := s.notifier.NotifyApproval(ctx, seller)
	return seller, report, nil
}

func (s *IdentityService) Suspend(ctx context.Context, actorID, sellerID string) error {
	if err := s.users.SetSuspended(ctx, sellerID, true); err != nil {
		return fmt.Errorf("suspend seller: %w", err)
	}
	s.appendAudit(ctx, actorID, domain.AuditSellerSuspended, "seller", sellerID, "")
	return nil
}

func (s *IdentityService) Unsuspend(ctx context.Context, actorID, sellerID string) error {
	if err := s.users.SetSuspended(ctx, sellerID, false); err != nil {
		return fmt.Errorf("unsuspend seller: %w", err)
	}
	s.appendAudit(ctx, actorID, domain.AuditSellerReinstated, "seller", sellerID, "")
	return nil
}

func (s *IdentityService) SetTicketLimit(ctx context.Context, actorID, sellerID string, limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: ticket_limit must not be negative", domain.ErrValidation)
	}
	if err := s.users.SetTicketLimit(ctx, sellerID, limit); err != nil {
		return fmt.Errorf("set ticket limit: %w", err)
	}
	s.appendAudit(ctx, actorID, domain.AuditSellerLimitSet, "seller", sellerID, fmt.Sprintf("limit=%d", limit))
	return nil
}

func (s *IdentityService) DeleteSeller(ctx context.Context, actorID, sellerID string) error {
	if err := s.users.DeleteSellerCascade(ctx, sellerID); err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	s.appendAudit(ctx, actorID, domain.AuditSellerDeleted, "seller", sellerID, "")

	s.logger.Info("seller deleted",
		logger.String("seller_id", sellerID),
		logger.String("actor_id", actorID),
	)

	return nil
}

func (s *IdentityService) ListSellers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListSellers(ctx)
}

func (s *IdentityService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *IdentityService) UpdateProfile(ctx context.Context, id string, input domain.UpdateProfileInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.Name = input.Name
	user.WhatsApp = input.WhatsApp
	user.Phone = input.Phone
	user.AvatarURL = input.AvatarURL

	// Пароль валидируется и хэшируется до записи профиля: при ошибке
	// ни одно поле не должно измениться
	var hashed string
	if input.Password != "" {
		if len(input.Password) < s.minPassword {
			return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, s.minPassword)
		}
		hashed, err = s.hasher.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	if hashed != "" {
		if err := s.users.UpdatePassword(ctx, id, hashed); err != nil {
			return nil, fmt.Errorf("update password: %w", err)
		}
	}

	return user, nil
}

// EnsureAdmin seeds the default admin account. Existing admins are left
// untouched, so the seed can run on every startup.
func (s *IdentityService) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	exists, err := s.users.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := s.hasher.Hash(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		ID:          uuid.New().String(),
		Name:        cfg.Name,
		Email:       cfg.Email,
		Password:    hashed,
		Role:        domain.RoleAdmin,
		TicketLimit: domain.DefaultTicketLimit,
		Approved:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	s.logger.Info("admin user seeded",
		logger.String("email", cfg.Email),
	)

	return nil
}

// appendAudit is best-effort: the audit trail is a hardening layer and
// must not fail the operation it records.
func (s *IdentityService) appendAudit(ctx context.Context, actorID, action, targetType, targetID, details string) {
	entry := &domain.AuditLog{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		s.logger.Error("audit append failed",
			logger.String("action", action),
			logger.String("error", err.Error()),
		)
	}
}
