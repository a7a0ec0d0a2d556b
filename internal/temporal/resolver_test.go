package temporal

import (
	"testing"
	"time"
)

func TestResolve_InTwoHours(t *testing.T) {
	r, err := New("UTC")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ref, _ := time.Parse(time.RFC3339, "2025-12-24T20:10:00+05:30")
	got := r.Resolve("in 2 hours", ref, "Asia/Kolkata")

	if got.TargetTimeISO == nil {
		t.Fatal("expected a grounded instant")
	}
	if *got.TargetTimeISO != "2025-12-24T22:10:00+05:30" {
		t.Errorf("target = %s, want 2025-12-24T22:10:00+05:30", *got.TargetTimeISO)
	}
	if got.SourceOfTime == nil || *got.SourceOfTime != SourceTemporalResolver {
		t.Errorf("source = %v, want %q", got.SourceOfTime, SourceTemporalResolver)
	}
	if got.ResolvedText != "in 2 hours" {
		t.Errorf("resolved text = %q", got.ResolvedText)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r, _ := New("Asia/Ho_Chi_Minh")
	ref := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	a := r.Resolve("remind me on friday at 3pm", ref, "")
	b := r.Resolve("remind me on friday at 3pm", ref, "")
	if *a.TargetTimeISO != *b.TargetTimeISO {
		t.Errorf("non-deterministic: %s vs %s", *a.TargetTimeISO, *b.TargetTimeISO)
	}
	if *a.TargetTimeISO != "2025-03-14T15:00:00+07:00" {
		t.Errorf("target = %s, want 2025-03-14T15:00:00+07:00", *a.TargetTimeISO)
	}
}

func TestResolve_Failure(t *testing.T) {
	r, _ := New("UTC")

	got := r.Resolve("buy milk", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "")
	if got.Grounded() {
		t.Errorf("expected no grounding, got %s", *got.TargetTimeISO)
	}
	if got.SourceOfTime != nil {
		t.Errorf("ungrounded resolution must not carry a source, got %s", *got.SourceOfTime)
	}
}

func TestResolve_OutOfRangeDurationIsUngrounded(t *testing.T) {
	r, _ := New("UTC")
	ref := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	for _, text := range []string{"in 9999999999 hours", "in 9999999999999 minutes"} {
		got := r.Resolve(text, ref, "")
		if got.Grounded() {
			t.Errorf("Resolve(%q) = %s, want no grounding", text, *got.TargetTimeISO)
		}
		if got.SourceOfTime != nil {
			t.Errorf("Resolve(%q) carries source %s", text, *got.SourceOfTime)
		}
	}
}

func TestResolve_DefaultsToNow(t *testing.T) {
	r, _ := New("UTC")
	r.now = func() time.Time { return time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC) }

	got := r.Resolve("in 30 minutes", time.Time{}, "")
	if got.TargetTimeISO == nil || *got.TargetTimeISO != "2030-06-01T10:30:00Z" {
		t.Errorf("target = %v, want 2030-06-01T10:30:00Z", got.TargetTimeISO)
	}
}

func TestResolve_UnknownTimezoneFallsBack(t *testing.T) {
	r, _ := New("UTC")
	ref := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got := r.Resolve("in 1 hour", ref, "Mars/Olympus")
	if got.TargetTimeISO == nil || *got.TargetTimeISO != "2025-01-01T01:00:00Z" {
		t.Errorf("target = %v, want 2025-01-01T01:00:00Z", got.TargetTimeISO)
	}
}

func TestNew_InvalidTimezone(t *testing.T) {
	if _, err := New("Not/AZone"); err == nil {
		t.Fatal("expected error")
	}
}
