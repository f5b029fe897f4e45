package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin("link")
	time.Sleep(time.Millisecond)
	timer.End(idx, "3 files")

	report := timer.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("phases = %d, want 1", len(report.Phases))
	}
	if report.Phases[0].Name != "link" || report.Phases[0].Note != "3 files" {
		t.Fatalf("phase = %+v", report.Phases[0])
	}
	if report.Phases[0].DurationMS <= 0 {
		t.Fatalf("duration not recorded")
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Fatalf("total %v < phase %v", report.TotalMS, report.Phases[0].DurationMS)
	}
}

func TestTimerEndIgnoresBadIndex(t *testing.T) {
	timer := NewTimer()
	timer.End(-1, "")
	timer.End(5, "")
	if got := timer.Report(); len(got.Phases) != 0 {
		t.Fatalf("phases = %d, want 0", len(got.Phases))
	}
}

func TestSummaryMentionsEveryPhase(t *testing.T) {
	timer := NewTimer()
	timer.End(timer.Begin("link"), "")
	timer.End(timer.Begin("validate"), "0 problems")

	out := timer.Summary()
	for _, want := range []string{"link", "validate", "total", "0 problems"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary %q missing %q", out, want)
		}
	}
}
