package allocator

import (
	"github.com/viant/x"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/talentgrid/allocator/extension"
	"github.com/talentgrid/allocator/service/coordinator"
	allocmem "github.com/talentgrid/allocator/service/dao/allocation/memory"
	assignmem "github.com/talentgrid/allocator/service/dao/assignment/memory"
	projectmem "github.com/talentgrid/allocator/service/dao/project/memory"
	taskmem "github.com/talentgrid/allocator/service/dao/task/memory"
	"github.com/talentgrid/allocator/service/engine"
	"github.com/talentgrid/allocator/service/matcher"
	"github.com/talentgrid/allocator/service/messaging"
	queuemem "github.com/talentgrid/allocator/service/messaging/memory"
	rostermem "github.com/talentgrid/allocator/service/roster/memory"
	"github.com/talentgrid/allocator/tracing"
)

// Service is the allocator facade; construct it with New and drive it through
// Runtime().
type Service struct {
	runtime        *Runtime
	providers      *extension.Providers
	extensionTypes []*x.Type
	provider       matcher.SuggestionProvider
	providerName   string
	queue          messaging.Queue[messaging.AssignmentEvent]
	config         *Config
	tracingInit    func() error
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	if s.tracingInit != nil {
		_ = s.tracingInit()
	}
	s.providers = extension.NewProviders(s.extensionTypes...)
	if s.provider == nil && s.providerName != "" {
		s.provider = s.providers.Lookup(s.providerName)
	}
	if s.provider == nil {
		s.provider = matcher.NewCoOccurrence()
	}
	displayCap := s.config.Engine.DisplayCap
	if displayCap == 0 {
		displayCap = engine.DefaultDisplayCap
	}
	s.runtime.engine = engine.New(s.runtime.allocationDAO, s.provider,
		engine.WithDisplayCap(displayCap))
	s.runtime.coordinator = coordinator.New(s.runtime.allocationDAO, s.runtime.assignmentDAO,
		coordinator.WithRetry(&s.config.Coordinator.Retry),
		coordinator.WithQueue(s.queue))
}

func (s *Service) ensureBaseSetup() {
	if s.runtime.rosterSource == nil {
		s.runtime.rosterSource = rostermem.New()
	}
	if s.runtime.taskDAO == nil {
		s.runtime.taskDAO = taskmem.New()
	}
	if s.runtime.projectDAO == nil {
		s.runtime.projectDAO = projectmem.New()
	}
	if s.runtime.allocationDAO == nil {
		s.runtime.allocationDAO = allocmem.New()
	}
	if s.runtime.assignmentDAO == nil {
		s.runtime.assignmentDAO = assignmem.New()
	}
	if s.queue == nil {
		s.queue = queuemem.NewQueue[messaging.AssignmentEvent](queuemem.DefaultConfig())
	}
}

// Runtime returns the operations handle.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// Queue exposes the assignment event queue so applications can consume
// lifecycle events.
func (s *Service) Queue() messaging.Queue[messaging.AssignmentEvent] {
	return s.queue
}

// RegisterSuggestionProvider adds a named provider to the extension registry.
func (s *Service) RegisterSuggestionProvider(name string, provider matcher.SuggestionProvider) {
	s.providers.Register(name, provider)
}

// RegisterExtensionTypes registers boundary Go types after construction.
func (s *Service) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.providers.Types().Register(types[i])
	}
}

// New creates an allocator service with the supplied options; omitted
// collaborators default to in-memory implementations.
func New(options ...Option) *Service {
	ret := &Service{runtime: &Runtime{}, config: DefaultConfig()}
	ret.init(options)
	return ret
}

func initTracing(serviceName, serviceVersion, outputFile string) error {
	return tracing.Init(serviceName, serviceVersion, outputFile)
}

func initTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	return tracing.InitWithExporter(serviceName, serviceVersion, exporter)
}
