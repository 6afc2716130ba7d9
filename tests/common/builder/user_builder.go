//go:build unit || e2e

package builder

import (
	domuser "github.com/angelgmx/reservaIA/internal/domain/user"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	Password     string
	PasswordHash string
	DisplayName  string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "owner@example.com",
		Password:     "super-secret-1",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
		DisplayName:  "Ángel García",
		Role:         string(domuser.RoleCustomer),
		IsActive:     true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	displayName, err := domuser.NewDisplayName(b.DisplayName)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, b.PasswordHash, displayName), nil
}

func (b *UserBuilder) BuildSignUpRequestDTO() reqdto.SignUpRequest {
	return reqdto.SignUpRequest{
		Email:       b.Email,
		Password:    b.Password,
		DisplayName: b.DisplayName,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           uuid.New(),
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		DisplayName:  b.DisplayName,
		Role:         b.Role,
		IsActive:     b.IsActive,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.Password = password
	return b
}

func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.DisplayName = name
	return b
}

func (b *UserBuilder) AsOwner() *UserBuilder {
	b.Role = string(domuser.RoleRestaurantOwner)
	return b
}

func (b *UserBuilder) AsInactive() *UserBuilder {
	b.IsActive = false
	return b
}
