package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/auth"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
	"github.com/khoahotran/portfolio-cms/pkg/metrics"
)

const (
	GinContextKeyAdmin = "admin"
)

// AuthMiddleware requires a valid bearer token. When enabled is false every request passes.
func AuthMiddleware(jwtSvc *auth.JWTService, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperror.NewUnauthorized("authorization header is required", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Error(apperror.NewUnauthorized("invalid token format", nil))
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.Error(apperror.NewUnauthorized("invalid or expired token", err))
			c.Abort()
			return
		}

		c.Set(GinContextKeyAdmin, claims.Admin)

		c.Next()
	}
}

func GetAdminFromGinContext(c *gin.Context) (string, bool) {
	admin, ok := c.Get(GinContextKeyAdmin)
	if !ok {
		return "", false
	}
	name, ok := admin.(string)
	return name, ok
}

// ErrorMiddleware renders the last error a handler attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		} else {
			log.Debug("Request rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", status),
				zap.String("error", err.Error()),
			)
		}
		c.AbortWithStatusJSON(status, apperror.ToJSON(err))
	}
}

// Recovery turns a panic into the generic 500 body.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Recovered from panic", nil,
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apperror.GenericMessage})
	})
}

// RequestLogger logs every request and feeds the status and latency metrics.
func RequestLogger(log logger.Logger, rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		rec.RecordHTTPStatus(status)
		rec.RecordRequestLatency(latency)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if admin, ok := GetAdminFromGinContext(c); ok {
			fields = append(fields, zap.String("admin", admin))
		}
		log.Info("HTTP request", fields...)
	}
}

// RateLimit rejects requests once the shared token bucket is empty.
// A nil limiter disables the check.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow() {
			c.Error(apperror.NewTooManyRequests("write rate limit exceeded"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// NewWriteLimiter builds the limiter for mutating routes; perSecond <= 0 disables it.
func NewWriteLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// BodyLimit caps JSON request bodies at limit bytes. Multipart uploads are left
// to gin's multipart handling. limit <= 0 disables the cap.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil &&
			!strings.HasPrefix(c.ContentType(), "multipart/") {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
