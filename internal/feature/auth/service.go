package auth

import (
	"errors"

	coreauth "storefront-api/internal/core/auth"
	"storefront-api/internal/domain"
	"storefront-api/pkg/utils"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// redirects dispatches the post-login destination per role.
var redirects = map[domain.Role]string{
	domain.RoleAdmin:    "/admin/dashboard",
	domain.RoleCustomer: "/store",
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Contact  string
}

type LoginResult struct {
	User     *domain.User
	Redirect string
	Token    string
}

type Service struct {
	users domain.UserRepository
	jwt   *coreauth.JWTer
}

func New(users domain.UserRepository, jwt *coreauth.JWTer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register stores a new customer with a bcrypt password hash. Email uniqueness
// is checked here and again by the unique index underneath.
func (s *Service) Register(in RegisterInput) (*domain.User, error) {
	existing, err := s.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	u := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		Contact:      in.Contact,
		Role:         domain.RoleCustomer,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password return the same error so account existence never leaks.
func (s *Service) Login(email, password string) (*LoginResult, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	redirect, ok := redirects[u.Role]
	if !ok {
		redirect = redirects[domain.RoleCustomer]
	}

	token, err := s.jwt.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Redirect: redirect, Token: token}, nil
}
