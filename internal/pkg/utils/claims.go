package utils

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/user"
)

// Identity is the token payload services act on.
type Identity struct {
	UserID     string
	Email      string
	EmployeeID *string
	CompanyID  string
	Role       user.Role
}

// IdentityFromContext extracts the verified token claims placed on the
// request context by the jwtauth middleware.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	var id Identity

	id.UserID, _ = claims["user_id"].(string)
	if id.UserID == "" {
		return Identity{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	id.CompanyID, _ = claims["company_id"].(string)
	if id.CompanyID == "" {
		return Identity{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	id.Email, _ = claims["email"].(string)

	if v, ok := claims["employee_id"].(string); ok && v != "" {
		id.EmployeeID = &v
	}

	role, _ := claims["role"].(string)
	id.Role = user.Role(role)

	return id, nil
}
