package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/middleware"
	"github.com/SscSPs/timesheet_app/internal/platform/config"
	"github.com/shopspring/decimal"
)

// Settings carries the timesheet rules shared by all services.
type Settings struct {
	Location          *time.Location
	OvertimeThreshold float64
	DefaultCostRate   decimal.Decimal // Budget cost and billing fallback per hour
	BillingMarkup     decimal.Decimal
	WithholdingRate   decimal.Decimal
}

// DefaultSettings returns the rules used when no configuration is supplied.
func DefaultSettings() Settings {
	return Settings{
		Location:          time.UTC,
		OvertimeThreshold: domain.StandardWeekHours,
		DefaultCostRate:   decimal.NewFromInt(100),
		BillingMarkup:     decimal.RequireFromString("1.2"),
		WithholdingRate:   decimal.RequireFromString("0.25"),
	}
}

// SettingsFromConfig maps the loaded configuration onto service settings.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Location:          cfg.Location,
		OvertimeThreshold: cfg.OvertimeThresholdHours,
		DefaultCostRate:   cfg.HourlyCostRate,
		BillingMarkup:     cfg.BillingMarkup,
		WithholdingRate:   cfg.PayrollWithholdingRate,
	}
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithSettings replaces the default settings.
func WithSettings(settings Settings) Option {
	return func(s *BaseService) {
		s.Settings = settings
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// BaseService provides common functionality for all services
type BaseService struct {
	Settings Settings
	Clock    func() time.Time
}

func newBaseService(opts ...Option) BaseService {
	b := BaseService{Settings: DefaultSettings(), Clock: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	if b.Settings.Location == nil {
		b.Settings.Location = time.UTC
	}
	if b.Clock == nil {
		b.Clock = time.Now
	}
	return b
}

// Now returns the current instant from the configured clock.
func (s *BaseService) Now() time.Time {
	return s.Clock()
}

// ResolveWeek turns a week reference into the week start in the configured
// location. An empty reference means the current week.
func (s *BaseService) ResolveWeek(week string) (time.Time, error) {
	if week == "" {
		return domain.WeekStart(s.Now().In(s.Settings.Location)), nil
	}
	return domain.ParseWeek(week, s.Settings.Location)
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

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
