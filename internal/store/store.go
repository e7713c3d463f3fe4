// SPDX-License-Identifier: MPL-2.0

package store

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/plugsmith/plugsmith/pkg/ident"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

type (
	// Observer receives the model after each effective mutation.
	Observer func(plugin.Model) error

	// Option configures a Store.
	Option func(*Store)

	// Store holds the single live Model.
	Store struct {
		mu        sync.Mutex
		model     plugin.Model
		ids       ident.Generator
		logger    *log.Logger
		observers []Observer
		revision  uint64
	}

	// change is applied to a working copy of the model. It reports false
	// when the call turned out to be a no-op.
	change func(m *plugin.Model) bool
)

// WithIDGenerator sets the generator used for every created entity.
func WithIDGenerator(ids ident.Generator) Option {
	return func(s *Store) { s.ids = ids }
}

// WithLogger sets the logger. The default logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithObserver registers an observer. Observers run in registration order.
func WithObserver(obs Observer) Option {
	return func(s *Store) { s.observers = append(s.observers, obs) }
}

// New creates a Store that owns a deep copy of initial.
func New(initial plugin.Model, opts ...Option) *Store {
	s := &Store{
		model:  initial.Clone(),
		ids:    ident.Default(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current model.
func (s *Store) Snapshot() plugin.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Clone()
}

// Revision counts the mutations committed so far. A call that leaves it
// unchanged was a no-op.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// apply runs ch against a working copy, commits it when ch reports a change
// and notifies observers. The returned snapshot is independent of the store.
func (s *Store) apply(op string, ch change) plugin.Model {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.model.Clone()
	if !ch(&next) {
		s.logger.Debug("no-op", "op", op)
		return s.model.Clone()
	}
	s.model = next
	s.revision++

	for _, obs := range s.observers {
		if err := obs(s.model.Clone()); err != nil {
			s.logger.Warn("observer failed", "op", op, "err", err)
		}
	}
	return s.model.Clone()
}

// Reset restores the default model with freshly generated ids.
func (s *Store) Reset() plugin.Model {
	return s.apply("reset", func(m *plugin.Model) bool {
		*m = plugin.DefaultModel(s.ids)
		return true
	})
}

// UpdateMeta replaces one Meta field. A category value outside the Category
// enum leaves the model unchanged.
func (s *Store) UpdateMeta(field plugin.MetaField, value string) plugin.Model {
	return s.apply("update-meta", func(m *plugin.Model) bool {
		switch field {
		case plugin.MetaTitle:
			m.Meta.Title = value
		case plugin.MetaIdentifier:
			m.Meta.Identifier = value
		case plugin.MetaAuthor:
			m.Meta.Author = value
		case plugin.MetaVersion:
			m.Meta.Version = value
		case plugin.MetaEngineVersion:
			m.Meta.EngineVersion = value
		case plugin.MetaCategory:
			if valid, _ := plugin.Category(value).IsValid(); !valid {
				return false
			}
			m.Meta.Category = plugin.Category(value)
		case plugin.MetaDescription:
			m.Meta.Description = value
		default:
			return false
		}
		return true
	})
}

func selectModule(m *plugin.Model, mod *plugin.Module) {
	if mod == nil {
		m.SelectedModuleID = nil
		m.SelectedNodeID = nil
		return
	}
	m.SelectedModuleID = plugin.Ptr(mod.ID)
	m.SelectedNodeID = mod.FirstNodeID()
}

// SelectModule selects the module with the given id and re-derives the node
// selection to its first node. A nil id clears both selections; an unknown id
// is a no-op.
func (s *Store) SelectModule(id *string) plugin.Model {
	return s.apply("select-module", func(m *plugin.Model) bool {
		if id == nil {
			selectModule(m, nil)
			return true
		}
		i := m.FindModule(*id)
		if i < 0 {
			return false
		}
		selectModule(m, &m.Modules[i])
		return true
	})
}

// SelectNode sets the node selection without touching the module selection.
// A node outside the selected module is a no-op; a nil id clears the node
// selection.
func (s *Store) SelectNode(id *string) plugin.Model {
	return s.apply("select-node", func(m *plugin.Model) bool {
		if id == nil {
			m.SelectedNodeID = nil
			return true
		}
		mod := m.SelectedModule()
		if mod == nil || mod.FindNode(*id) < 0 {
			return false
		}
		m.SelectedNodeID = plugin.Ptr(*id)
		return true
	})
}
