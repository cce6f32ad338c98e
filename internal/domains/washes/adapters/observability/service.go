package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	"github.com/devsystem/carwash-erp/internal/domains/washes/ports"
)

const tracerName = "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/observability/service"

// Service decorates the accounting engine with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core accounting engine.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Create runs the accounting engine with instrumentation.
func (s *Service) Create(ctx context.Context, input ports.CreateInput) (*domain.WashingService, error) {
	ctx, span := s.startSpan(ctx, "Service.Create",
		attribute.Int64("wash.vehicle_type_id", input.VehicleTypeID),
		attribute.Int("wash.minutes", int(input.WashingMinutes)),
	)
	defer span.End()

	s.logInfo(ctx, "creating washing service", slog.Int64("vehicleTypeId", input.VehicleTypeID))
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create washing service", slog.Int64("vehicleTypeId", input.VehicleTypeID))
	}
	s.metrics.recordCreated(ctx)
	s.metrics.recordWaterUsed(ctx, result.WaterUsedL)
	s.logInfo(ctx, "washing service created",
		slog.Int64("serviceId", result.ID),
		slog.Float64("waterUsedL", result.WaterUsedL),
	)
	return result, nil
}

// Delete reverses and removes a wash with instrumentation.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.Int64("wash.id", id))
	defer span.End()

	s.logInfo(ctx, "deleting washing service", slog.Int64("serviceId", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete washing service", slog.Int64("serviceId", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "washing service deleted", slog.Int64("serviceId", id))
	return nil
}

// DeleteAll drops every wash record with instrumentation.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	ctx, span := s.startSpan(ctx, "Service.DeleteAll")
	defer span.End()

	count, err := s.inner.DeleteAll(ctx)
	if err != nil {
		return 0, s.handleError(ctx, span, err, "failed to delete washing services")
	}
	span.SetAttributes(attribute.Int64("wash.deleted.count", count))
	s.logInfo(ctx, "washing services deleted", slog.Int64("count", count))
	return count, nil
}

// List returns all wash records with instrumentation.
func (s *Service) List(ctx context.Context) ([]*domain.WashingService, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list washing services")
	}
	span.SetAttributes(attribute.Int("wash.result.count", len(result)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	washesCreated metric.Int64Counter
	washesDeleted metric.Int64Counter
	waterUsed     metric.Float64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	washesCreated, _ := m.Int64Counter("washes.service.created", metric.WithDescription("Number of washing services created"))
	washesDeleted, _ := m.Int64Counter("washes.service.deleted", metric.WithDescription("Number of washing services deleted"))
	waterUsed, _ := m.Float64Counter("washes.service.water_used_liters", metric.WithDescription("Estimated water usage in liters"))
	return serviceMetrics{
		washesCreated: washesCreated,
		washesDeleted: washesDeleted,
		waterUsed:     waterUsed,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.washesCreated != nil {
		m.washesCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.washesDeleted != nil {
		m.washesDeleted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordWaterUsed(ctx context.Context, liters float64) {
	if m.waterUsed != nil {
		m.waterUsed.Add(ctx, liters)
	}
}

var _ ports.Service = (*Service)(nil)
