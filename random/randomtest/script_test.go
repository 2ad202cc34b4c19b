package randomtest

import (
	"testing"

	apperrors "github.com/louisbranch/rollkit/errors"
)

func TestScriptReplaysDraws(t *testing.T) {
	script := NewScript(3, 0, 5)

	for i, want := range []int{3, 0, 5} {
		got, err := script.Next(6)
		if err != nil {
			t.Fatalf("draw %d returned error: %v", i, err)
		}
		if got != want {
			t.Fatalf("draw %d = %d, want %d", i, got, want)
		}
	}
	if script.Drawn() != 3 {
		t.Fatalf("Drawn() = %d, want 3", script.Drawn())
	}
}

func TestScriptFailsWhenExhausted(t *testing.T) {
	script := NewScript(1)
	if _, err := script.Next(6); err != nil {
		t.Fatalf("first draw returned error: %v", err)
	}

	_, err := script.Next(6)
	if !apperrors.IsCode(err, apperrors.CodeRandomSourceFailure) {
		t.Fatalf("expected RANDOM_SOURCE_FAILURE, got %v", err)
	}
}

func TestScriptRejectsOutOfRangeDraw(t *testing.T) {
	script := NewScript(6)

	_, err := script.Next(6)
	if !apperrors.IsCode(err, apperrors.CodeRandomSourceFailure) {
		t.Fatalf("expected RANDOM_SOURCE_FAILURE, got %v", err)
	}
}

func TestFixedReducesIntoBound(t *testing.T) {
	fixed := NewFixed(9)

	got, err := fixed.Next(4)
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if got != 1 {
		t.Fatalf("Next(4) = %d, want 1", got)
	}
}

func TestProviderTracksReleases(t *testing.T) {
	provider := &Provider{Source: NewScript(1)}

	_, release, err := provider.Acquire()
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	release()
	release()

	if provider.Acquires() != 1 {
		t.Fatalf("Acquires() = %d, want 1", provider.Acquires())
	}
	if provider.Releases() != 1 {
		t.Fatalf("Releases() = %d, want 1", provider.Releases())
	}
}
