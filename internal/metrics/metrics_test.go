package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"wasmiot-abc/internal/fsops"
	"wasmiot-abc/internal/mount"
)

// TestRecorderCountsOutcomes verifies calls land under the right labels
func TestRecorderCountsOutcomes(t *testing.T) {
	rec := NewRecorder()
	fake := fsops.NewFakeFS(nil)
	fx := mount.New(fake, nil, mount.WithObserver(rec))

	fx.A(0, 0) // deploy missing
	fake.Files["deployFile"] = []byte("d")
	fx.A(0, 0) // exec missing
	fake.Files["execFile"] = []byte("e")
	fx.A(0, 0)
	fx.B()
	fx.C()
	fake.ReadOnly = true
	fx.C()

	tests := []struct {
		function, outcome string
		want              float64
	}{
		{"a", "deploy", 1},
		{"a", "exec", 1},
		{"a", OutcomeOK, 1},
		{"b", OutcomeOK, 1},
		{"c", OutcomeOK, 1},
		{"c", "out", 1},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(rec.CallsTotal.WithLabelValues(tt.function, tt.outcome))
		if got != tt.want {
			t.Errorf("calls_total{%s,%s} = %v, expected %v", tt.function, tt.outcome, got, tt.want)
		}
	}

	if got := testutil.ToFloat64(rec.LastResult.WithLabelValues("c")); got != 404 {
		t.Errorf("last_result{c} = %v, expected 404", got)
	}
	if got := testutil.ToFloat64(rec.LastResult.WithLabelValues("b")); got != float64(mount.ConstResult) {
		t.Errorf("last_result{b} = %v, expected %v", got, mount.ConstResult)
	}
}

// TestRecordersAreIsolated verifies two recorders do not share a registry
func TestRecordersAreIsolated(t *testing.T) {
	first := NewRecorder()
	second := NewRecorder()

	first.Observe(mount.Call{Function: "b", Result: 4.2})

	if got := testutil.ToFloat64(second.CallsTotal.WithLabelValues("b", OutcomeOK)); got != 0 {
		t.Errorf("second recorder saw %v calls, expected 0", got)
	}
	if n := testutil.CollectAndCount(first.CallsTotal); n != 1 {
		t.Errorf("expected 1 series, got %d", n)
	}
}

// TestWriteTextfile verifies the exposition format written to disk
func TestWriteTextfile(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(mount.Call{Function: "c", Result: 404, Failure: mount.Out})

	path := filepath.Join(t.TempDir(), "abc.prom")
	if err := rec.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		`abc_calls_total{function="c",outcome="out"} 1`,
		`abc_last_result{function="c"} 404`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q:\n%s", want, text)
		}
	}

	if err := rec.WriteTextfile(filepath.Join(t.TempDir(), "missing", "abc.prom")); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestOutcome(t *testing.T) {
	if got := Outcome(mount.Call{Function: "a", Failure: mount.Deploy}); got != "deploy" {
		t.Errorf("Outcome = %q, expected deploy", got)
	}
	if got := Outcome(mount.Call{Function: "a", Result: -1}); got != OutcomeOK {
		t.Errorf("Outcome = %q, expected ok", got)
	}
}
