package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Register creates an account and signs the caller in. Self-registration may
// only pick the participant or organizer role.
func (u *Usecase) Register(ctx context.Context, in entities.RegisterInput) (*entities.AuthResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateStruct(in); err != nil {
		return nil, err
	}
	role := entities.RoleParticipant
	if in.Role == entities.RoleOrganizer {
		role = entities.RoleOrganizer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := u.repo.CreateUser(ctx, entities.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Role:         role,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("user registered", "user_id", user.ID, "role", role)
	return u.issue(*user)
}

// Login verifies a username or email with its password.
func (u *Usecase) Login(ctx context.Context, in entities.LoginInput) (*entities.AuthResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateStruct(in); err != nil {
		return nil, err
	}
	user, err := u.repo.GetUserByLogin(ctx, in.Login)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", entities.ErrUnauthorized)
		}
		return nil, err
	}
	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		u.log.Warnw("login rejected", "user_id", user.ID)
		return nil, fmt.Errorf("%w: invalid credentials", entities.ErrUnauthorized)
	}
	return u.issue(*user)
}

// Me returns the profile of the authenticated caller.
func (u *Usecase) Me(ctx context.Context, p entities.Principal) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.GetUser(ctx, p.UserID)
	if errors.Is(err, entities.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: account no longer exists", entities.ErrUnauthorized)
	}
	return user, err
}

// ParseToken verifies an access token and returns its principal. The role
// is read from the account, not the token, so a role change or a deleted
// account takes effect on the next request.
func (u *Usecase) ParseToken(ctx context.Context, token string) (*entities.Principal, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tok, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (any, error) {
		return []byte(u.auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(u.auth.Issuer))
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: bad token", entities.ErrUnauthorized)
	}
	cl, ok := tok.Claims.(*claims)
	if !ok || cl.Subject == "" {
		return nil, fmt.Errorf("%w: bad claims", entities.ErrUnauthorized)
	}
	user, err := u.repo.GetUser(ctx, cl.Subject)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", entities.ErrUnauthorized)
		}
		return nil, err
	}
	if string(user.Role) != cl.Role {
		u.log.Debugw("token role is stale", "user_id", user.ID, "token_role", cl.Role, "role", user.Role)
	}
	return &entities.Principal{UserID: user.ID, Role: user.Role}, nil
}

func (u *Usecase) issue(user entities.User) (*entities.AuthResult, error) {
	now := u.now()
	expires := now.Add(u.auth.TokenTTL)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    u.auth.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := tok.SignedString([]byte(u.auth.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	user.PasswordHash = ""
	return &entities.AuthResult{Token: signed, ExpiresAt: expires, User: user}, nil
}
