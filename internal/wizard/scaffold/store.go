package scaffold

import (
	"slices"

	"github.com/zjrosen/stackforge/internal/log"
)

// Change describes a single configuration mutation. A zero Field means the
// whole configuration was replaced.
type Change struct {
	Field Field
}

// Store owns the mutable wizard configuration. Listeners run synchronously
// inside Set so cache invalidation completes before the caller's next
// evaluation observes the store. The wizard runs on a single logical thread
// of control, so the store is deliberately not safe for concurrent use.
type Store struct {
	cfg       Config
	listeners []func(Change)
}

// NewStore creates a store with an empty configuration.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith creates a store seeded with an existing configuration.
func NewStoreWith(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// OnChange registers a listener invoked synchronously after every mutation.
func (s *Store) OnChange(fn func(Change)) {
	s.listeners = append(s.listeners, fn)
}

// Snapshot returns the current configuration by value.
func (s *Store) Snapshot() Config {
	cfg := s.cfg
	cfg.AITemplates = slices.Clone(s.cfg.AITemplates)
	cfg.Extras = slices.Clone(s.cfg.Extras)
	return cfg
}

// Set assigns a scalar field and notifies listeners.
func (s *Store) Set(f Field, value string) {
	if f.IsList() {
		log.Warn(log.CatSession, "Set called on list field, ignoring", "field", f)
		return
	}
	switch f {
	case FieldProjectName:
		s.cfg.ProjectName = value
	case FieldProjectDescription:
		s.cfg.ProjectDescription = value
	case FieldNodeVersion:
		s.cfg.NodeVersion = value
	case FieldFrontend:
		s.cfg.FrontendFramework = value
	case FieldBackend:
		s.cfg.BackendFramework = value
	case FieldDatabase:
		s.cfg.Database = value
	case FieldORM:
		s.cfg.ORM = value
	case FieldAuthProvider:
		s.cfg.AuthProvider = value
	case FieldStyling:
		s.cfg.Styling = value
	case FieldAIProvider:
		s.cfg.AIProvider = value
	case FieldVectorStore:
		s.cfg.AIVectorStore = value
	case FieldDeployTarget:
		s.cfg.DeployTarget = value
	default:
		log.Warn(log.CatSession, "Set called with unknown field", "field", f)
		return
	}
	s.notify(Change{Field: f})
}

// SetList assigns a multi-select field and notifies listeners.
func (s *Store) SetList(f Field, values []string) {
	switch f {
	case FieldAITemplates:
		s.cfg.AITemplates = slices.Clone(values)
	case FieldExtras:
		s.cfg.Extras = slices.Clone(values)
	default:
		log.Warn(log.CatSession, "SetList called with non-list field", "field", f)
		return
	}
	s.notify(Change{Field: f})
}

// Replace swaps in a whole configuration and notifies listeners once.
func (s *Store) Replace(cfg Config) {
	s.cfg = cfg
	s.notify(Change{})
}

func (s *Store) notify(change Change) {
	log.Debug(log.CatSession, "configuration changed", "field", change.Field)
	for _, fn := range s.listeners {
		fn(change)
	}
}
