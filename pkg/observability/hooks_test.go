package observability

import (
	"testing"
	"time"
)

type recordingLayoutHooks struct {
	starts    int
	completes int
	residual  int
}

func (r *recordingLayoutHooks) OnLayoutStart(int) { r.starts++ }
func (r *recordingLayoutHooks) OnLayoutComplete(_ int, residual int, _ time.Duration) {
	r.completes++
	r.residual = residual
}

type recordingMergeHooks struct {
	policy   string
	admitted int
}

func (r *recordingMergeHooks) OnMerge(policy string, admitted, removed int) {
	r.policy = policy
	r.admitted = admitted
}

func TestHookRegistration(t *testing.T) {
	defer Reset()

	rec := &recordingLayoutHooks{}
	SetLayoutHooks(rec)

	Layout().OnLayoutStart(5)
	Layout().OnLayoutComplete(5, 2, time.Millisecond)

	if rec.starts != 1 || rec.completes != 1 || rec.residual != 2 {
		t.Errorf("recorded %+v", rec)
	}
}

func TestMergeHookRegistration(t *testing.T) {
	defer Reset()

	rec := &recordingMergeHooks{}
	SetMergeHooks(rec)

	Merge().OnMerge("append-new", 3, 0)
	if rec.policy != "append-new" || rec.admitted != 3 {
		t.Errorf("recorded %+v", rec)
	}
}

func TestNilRegistrationIgnored(t *testing.T) {
	defer Reset()

	SetLayoutHooks(nil)
	// Must still be callable without panicking.
	Layout().OnLayoutStart(1)
	Merge().OnMerge("append-new", 0, 0)
	Cache().OnCacheMiss("k")
}

func TestResetRestoresNoops(t *testing.T) {
	rec := &recordingLayoutHooks{}
	SetLayoutHooks(rec)
	Reset()

	Layout().OnLayoutStart(1)
	if rec.starts != 0 {
		t.Error("Reset left custom hooks registered")
	}
}
