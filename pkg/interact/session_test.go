package interact

import (
	"testing"

	"github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/merge"
)

func TestSessionBeginBlocksReentry(t *testing.T) {
	s := NewSession()

	if err := s.Begin("a"); err != nil {
		t.Fatalf("first Begin: %v", err)
	}
	err := s.Begin("a")
	if err == nil {
		t.Fatal("second Begin for the same node succeeded")
	}
	if !errors.Is(err, errors.ErrCodeExpansionInFlight) {
		t.Errorf("error code = %v, want EXPANSION_IN_FLIGHT", errors.GetCode(err))
	}

	// Other nodes are unaffected.
	if err := s.Begin("b"); err != nil {
		t.Errorf("Begin(b) while a in flight: %v", err)
	}
}

func TestSessionFinishEnablesReexpansion(t *testing.T) {
	s := NewSession()

	_ = s.Begin("a")
	s.Finish("a")

	if s.InFlight("a") {
		t.Error("node still in flight after Finish")
	}
	if !s.Expanded("a") {
		t.Error("node not recorded as expanded")
	}
	if err := s.Begin("a"); err != nil {
		t.Errorf("Begin after Finish: %v", err)
	}
}

func TestSessionAbortDoesNotRecordExpansion(t *testing.T) {
	s := NewSession()

	_ = s.Begin("a")
	s.Abort("a")

	if s.InFlight("a") {
		t.Error("node still in flight after Abort")
	}
	if s.Expanded("a") {
		t.Error("aborted expansion recorded as completed")
	}
}

func TestSessionPolicyFor(t *testing.T) {
	s := NewSession()

	if got := s.PolicyFor("a"); got != merge.PolicyAppendNew {
		t.Errorf("first expansion policy = %v, want append-new", got)
	}

	_ = s.Begin("a")
	s.Finish("a")

	if got := s.PolicyFor("a"); got != merge.PolicyReplaceChildren {
		t.Errorf("re-expansion policy = %v, want replace-children", got)
	}
}

func TestSessionForget(t *testing.T) {
	s := NewSession()
	_ = s.Begin("a")
	s.Finish("a")
	_ = s.Begin("b")

	s.Forget([]string{"a", "b"})

	if s.Expanded("a") || s.InFlight("b") {
		t.Error("Forget left state behind")
	}
	if got := s.PolicyFor("a"); got != merge.PolicyAppendNew {
		t.Errorf("forgotten node policy = %v, want append-new", got)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	if NewSession().ID() == NewSession().ID() {
		t.Error("two sessions share an id")
	}
}
