package style

import "testing"

func TestForLevelDeterministic(t *testing.T) {
	if ForLevel(2) != ForLevel(2) {
		t.Error("same level produced different styles")
	}
	if ForLevel(0).Shape != ShapeRounded {
		t.Errorf("root shape = %q, want rounded", ForLevel(0).Shape)
	}
}

func TestForLevelCyclesPalette(t *testing.T) {
	if ForLevel(0) != ForLevel(len(palette)) {
		t.Error("deep level did not wrap around the palette")
	}
}

func TestForLevelNegativeTreatedAsRoot(t *testing.T) {
	if ForLevel(-3) != ForLevel(0) {
		t.Error("negative level not clamped to root style")
	}
}

func TestMemoMatchesDirectLookup(t *testing.T) {
	m := NewMemo()
	for level := 0; level < 10; level++ {
		if m.ForLevel(level) != ForLevel(level) {
			t.Errorf("memo diverged at level %d", level)
		}
	}
	// Second pass hits the cache and must agree.
	for level := 0; level < 10; level++ {
		if m.ForLevel(level) != ForLevel(level) {
			t.Errorf("memoized lookup diverged at level %d", level)
		}
	}
}
