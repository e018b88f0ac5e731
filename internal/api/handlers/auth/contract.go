package auth

import (
	"context"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	authService "github.com/fieldbook/FieldBooking-Service/internal/service/auth"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*authService.LoginResponse, error)
	Login(ctx context.Context, email, password string) (*authService.LoginResponse, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
