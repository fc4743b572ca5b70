package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/middleware"
)

const (
	defaultMaxRefNumberAttempts = 3
	defaultCurrencyCode         = "BOB"
)

// Options holds the settings shared by every service.
type Options struct {
	Clock                domain.Clock
	MaxRefNumberAttempts int
	DefaultCurrency      string
}

// Option is a functional option for configuring the services
type Option func(*Options)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock domain.Clock) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithMaxRefNumberAttempts bounds how often a colliding reference allocation is retried.
func WithMaxRefNumberAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxRefNumberAttempts = n
		}
	}
}

// WithDefaultCurrency sets the currency used when a request names none.
func WithDefaultCurrency(code string) Option {
	return func(o *Options) {
		if code != "" {
			o.DefaultCurrency = code
		}
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		Clock:                domain.SystemClock{},
		MaxRefNumberAttempts: defaultMaxRefNumberAttempts,
		DefaultCurrency:      defaultCurrencyCode,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// BaseService provides common functionality for all services
type BaseService struct {
	Options
}

func newBaseService(opts []Option) BaseService {
	return BaseService{Options: newOptions(opts)}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a rejected request.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// now is the current instant from the configured clock.
func (s *BaseService) now() time.Time {
	return s.Clock.Now()
}

// today is the current date from the configured clock.
func (s *BaseService) today() time.Time {
	return domain.Today(s.Clock)
}

// requireActor rejects calls without a full identity.
func (s *BaseService) requireActor(ctx context.Context, actor domain.Actor) error {
	if !actor.Valid() {
		s.LogDebug(ctx, "Rejected call without actor identity")
		return apperrors.ErrUnauthorized
	}
	return nil
}
