package auth

import (
	"context"
	"crypto/subtle"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/auth"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

// Admin is the single account allowed to edit content.
type Admin struct {
	Username     string
	PasswordHash string
}

type LoginUseCase struct {
	admin  Admin
	jwtSvc *auth.JWTService
	logger logger.Logger
}

func NewLoginUseCase(admin Admin, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		admin:  admin,
		jwtSvc: jwtSvc,
		logger: log,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	_, span := tracer.Start(ctx, "Login")
	defer span.End()

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(uc.admin.Username)) == 1
	passOK := uc.admin.PasswordHash != "" && auth.CheckPasswordHash(input.Password, uc.admin.PasswordHash)
	if !userOK || !passOK {
		err := apperror.NewUnauthorized("incorrect username or password", nil)
		span.RecordError(err)
		uc.logger.Warn("Rejected admin login", zap.String("username", input.Username))
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(uc.admin.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("username", uc.admin.Username))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("username", uc.admin.Username))
	return &LoginOutput{AccessToken: token}, nil
}
