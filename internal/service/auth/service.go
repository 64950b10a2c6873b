package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexhr/hrms-backend-go/internal/domain/auth"
	"github.com/nexhr/hrms-backend-go/internal/domain/employee"
	"github.com/nexhr/hrms-backend-go/internal/domain/user"
	"github.com/nexhr/hrms-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if userData.IsLocked {
		return auth.LoginResponse{}, user.ErrAccountLocked
	}

	var employeeID *string
	if userData.Role == user.RoleEmployee {
		employeeData, err := a.EmployeeRepository.GetByUserID(ctx, userData.ID)
		if err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to get employee for user: %w", err)
		}
		employeeID = &employeeData.ID
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, employeeID, userData.CompanyID, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Role:        string(userData.Role),
	}, nil
}
