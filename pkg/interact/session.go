// Package interact holds the per-mind-map interaction state that the layout
// and merge engines deliberately do not own.
//
// The engines are pure functions over snapshots; everything stateful about
// one growing mind map - which nodes have an expansion in flight, which have
// been expanded before, the per-level style memo - lives in a Session owned
// by the caller. State is explicit rather than module-global so multiple
// concurrent mind-map instances never share it.
//
// The interaction model is single-threaded and event-driven: one Session
// serves one event loop, so no locking is needed. Begin/Finish guard
// re-entrancy across events, not across goroutines.
package interact

import (
	"github.com/google/uuid"

	"github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/merge"
	"github.com/mindweave/mindweave/pkg/style"
)

// Session is the caller-owned context for one mind-map instance.
type Session struct {
	id       string
	inFlight map[string]bool // node id -> expansion request outstanding
	expanded map[string]bool // node id -> expanded at least once
	styles   *style.Memo
}

// NewSession creates an empty session with a fresh identifier.
func NewSession() *Session {
	return &Session{
		id:       uuid.NewString(),
		inFlight: make(map[string]bool),
		expanded: make(map[string]bool),
		styles:   style.NewMemo(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Styles returns the session's per-level style memo.
func (s *Session) Styles() *style.Memo { return s.styles }

// Begin marks an expansion request outstanding for the node. A node must not
// be eligible for a second concurrent expansion while one is in flight, so
// Begin fails if the marker is already set.
func (s *Session) Begin(nodeID string) error {
	if s.inFlight[nodeID] {
		return errors.New(errors.ErrCodeExpansionInFlight, "expansion already in flight for node %q", nodeID)
	}
	s.inFlight[nodeID] = true
	return nil
}

// Finish clears the in-flight marker and records that the node has been
// expanded. Safe to call for a node without a marker.
func (s *Session) Finish(nodeID string) {
	delete(s.inFlight, nodeID)
	s.expanded[nodeID] = true
}

// Abort clears the in-flight marker without recording an expansion, for
// requests that failed or returned a stale target.
func (s *Session) Abort(nodeID string) {
	delete(s.inFlight, nodeID)
}

// InFlight reports whether an expansion is outstanding for the node.
func (s *Session) InFlight(nodeID string) bool { return s.inFlight[nodeID] }

// Expanded reports whether the node has completed at least one expansion.
func (s *Session) Expanded(nodeID string) bool { return s.expanded[nodeID] }

// PolicyFor picks the merge policy for expanding a node: a node the user has
// expanded before is re-expanded with replace-children, a first expansion
// appends.
func (s *Session) PolicyFor(nodeID string) merge.Policy {
	if s.expanded[nodeID] {
		return merge.PolicyReplaceChildren
	}
	return merge.PolicyAppendNew
}

// Forget drops all interaction state for nodes removed by a merge, so a
// later node reusing a removed id starts clean.
func (s *Session) Forget(nodeIDs []string) {
	for _, id := range nodeIDs {
		delete(s.inFlight, id)
		delete(s.expanded, id)
	}
}
