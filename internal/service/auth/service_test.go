package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexhr/hrms-backend-go/internal/domain/auth"
	"github.com/nexhr/hrms-backend-go/internal/domain/employee"
	"github.com/nexhr/hrms-backend-go/internal/domain/user"
	"github.com/nexhr/hrms-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id, companyID string) error {
	return nil
}

type fakeEmployeeRepo struct {
	byUserID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	e, ok := f.byUserID[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id, companyID string) error { return nil }

func newService(t *testing.T) (auth.AuthService, *fakeUserRepo, *fakeEmployeeRepo) {
	t.Helper()
	users := &fakeUserRepo{byEmail: map[string]user.User{}}
	employees := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{}}
	jwtService := jwt.NewJWTService("test-secret", "15m")
	return NewAuthService(users, employees, jwtService), users, employees
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password string, role user.Role, locked bool) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := user.User{
		ID:           "user-" + email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CompanyID:    "company-1",
		IsLocked:     locked,
	}
	users.byEmail[email] = u
	return u
}

func TestLoginAdmin(t *testing.T) {
	svc, users, _ := newService(t)
	seedUser(t, users, "admin@example.com", "s3cret!", user.RoleAdmin, false)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, string(user.RoleAdmin), resp.Role)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLoginEmployeeCarriesEmployeeID(t *testing.T) {
	svc, users, employees := newService(t)
	u := seedUser(t, users, "asha@example.com", "s3cret!", user.RoleEmployee, false)
	employees.byUserID[u.ID] = employee.Employee{ID: "emp-1", UserID: u.ID, CompanyID: "company-1"}

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret", "15m")
	token, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "company-1", claims["company_id"])
	assert.Equal(t, "access", claims["type"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, _ := newService(t)
	seedUser(t, users, "admin@example.com", "s3cret!", user.RoleAdmin, false)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret!",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginLockedAccount(t *testing.T) {
	svc, users, _ := newService(t)
	seedUser(t, users, "admin@example.com", "s3cret!", user.RoleAdmin, true)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret!",
	})
	assert.ErrorIs(t, err, user.ErrAccountLocked)
}

func TestLoginValidation(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email"})
	assert.Error(t, err)
}
