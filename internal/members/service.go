package members

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service implements the membership provider: registration, credentials
// login and token-based resolution of the current member.
type Service struct {
	members *Repository
	config  Config

	logger *zap.Logger
}

func NewService(members *Repository, config Config, logger *zap.Logger) *Service {
	return &Service{
		members: members,
		config:  config,
		logger:  logger,
	}
}

// Register creates a member from a draft, hashing the password with bcrypt.
func (s *Service) Register(ctx context.Context, draft MemberDraft) (*Member, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member, err := s.members.Create(ctx, draft, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info("member registered", zap.String("id", member.ID.String()))
	return member, nil
}

// Login verifies credentials and issues a signed access token. Unknown email
// and wrong password collapse into ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, *Member, error) {
	hash, err := s.members.GetPasswordHash(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	member, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(member)
	if err != nil {
		return "", nil, err
	}

	return token, member, nil
}

// Authenticate resolves the current member from a bearer token.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*Member, error) {
	claims := &JWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrTokenInvalid, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	id, err := uuid.Parse(claims.MemberID)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	return s.members.GetByID(ctx, id)
}

// UpdateContact updates the optional profile fields of a member.
func (s *Service) UpdateContact(ctx context.Context, id uuid.UUID, contact Contact) (*Member, error) {
	return s.members.Update(ctx, id, func(m *Member) error {
		m.Contact = contact
		return nil
	})
}

func (s *Service) issueToken(member *Member) (string, error) {
	claims := NewJWTClaims(
		member.ID.String(),
		member.LoginEmail,
		s.config.Issuer,
		time.Now().Add(s.config.AccessTokenExp),
	)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
