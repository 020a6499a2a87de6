package allocator

import (
	"github.com/viant/x"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/talentgrid/allocator/model"
	"github.com/talentgrid/allocator/runtime/allocation"
	"github.com/talentgrid/allocator/service/coordinator"
	"github.com/talentgrid/allocator/service/dao"
	"github.com/talentgrid/allocator/service/matcher"
	"github.com/talentgrid/allocator/service/messaging"
	"github.com/talentgrid/allocator/service/roster"
)

// Option customises the allocator service.
type Option func(s *Service)

// WithConfig applies a serialisable configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithRosterSource sets the employee source.
func WithRosterSource(source roster.Source) Option {
	return func(s *Service) { s.runtime.rosterSource = source }
}

// WithTaskDAO sets the task store.
func WithTaskDAO(dao dao.Service[string, model.Task]) Option {
	return func(s *Service) { s.runtime.taskDAO = dao }
}

// WithProjectDAO sets the project store.
func WithProjectDAO(dao dao.Service[string, model.Project]) Option {
	return func(s *Service) { s.runtime.projectDAO = dao }
}

// WithAllocationDAO sets the allocation store.
func WithAllocationDAO(dao dao.Service[string, allocation.Allocation]) Option {
	return func(s *Service) { s.runtime.allocationDAO = dao }
}

// WithAssignmentDAO sets the assignment store.
func WithAssignmentDAO(dao dao.Service[string, allocation.Assignment]) Option {
	return func(s *Service) { s.runtime.assignmentDAO = dao }
}

// WithSuggestionProvider sets the suggestion provider directly.
func WithSuggestionProvider(provider matcher.SuggestionProvider) Option {
	return func(s *Service) { s.provider = provider }
}

// WithSuggestionProviderName selects a provider from the extension registry
// ("nop", "cooccurrence", or any name registered by the application).
func WithSuggestionProviderName(name string) Option {
	return func(s *Service) { s.providerName = name }
}

// WithQueue sets the assignment event queue.
func WithQueue(queue messaging.Queue[messaging.AssignmentEvent]) Option {
	return func(s *Service) { s.queue = queue }
}

// WithDisplayCap overrides the ranked list cap.
func WithDisplayCap(limit int) Option {
	return func(s *Service) { s.config.Engine.DisplayCap = limit }
}

// WithRetry overrides the commit retry bounds.
func WithRetry(retry *coordinator.Retry) Option {
	return func(s *Service) {
		if retry != nil {
			s.config.Coordinator.Retry = *retry
		}
	}
}

// WithExtensionTypes registers boundary Go types with the extension registry.
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) { s.extensionTypes = types }
}

// WithTracing initialises OpenTelemetry with the stdout exporter; an empty
// outputFile writes spans to os.Stdout.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingInit = func() error {
			return initTracing(serviceName, serviceVersion, outputFile)
		}
	}
}

// WithTracingExporter initialises OpenTelemetry with a custom exporter (OTLP,
// Jaeger, Zipkin).
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingInit = func() error {
			return initTracingExporter(serviceName, serviceVersion, exporter)
		}
	}
}
