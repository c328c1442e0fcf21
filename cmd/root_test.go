package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fchimpan/gh-kusa-map/internal/config"
	"github.com/fchimpan/gh-kusa-map/internal/heatmap"
)

type fakeTerminal struct {
	tty     bool
	color   bool
	width   int
	sizeErr error
}

func (f fakeTerminal) IsTerminalOutput() bool  { return f.tty }
func (f fakeTerminal) IsColorEnabled() bool    { return f.color }
func (f fakeTerminal) Size() (int, int, error) { return f.width, 24, f.sizeErr }

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func testDeps(t *testing.T, stdin string, stdout, stderr *bytes.Buffer) Deps {
	t.Helper()
	return Deps{
		Open: func(path string) (io.ReadCloser, error) {
			t.Fatalf("Open should not be called, got %q", path)
			return nil, nil
		},
		Create: func(path string) (io.WriteCloser, error) {
			t.Fatalf("Create should not be called, got %q", path)
			return nil, nil
		},
		RunTUI: func(title string, h heatmap.Heatmap, style config.Style, color bool) error {
			t.Fatalf("RunTUI should not be called")
			return nil
		},
		Terminal: func() Terminal { return fakeTerminal{} },
		Now:      func() time.Time { return time.Date(2023, 6, 30, 15, 0, 0, 0, time.UTC) },
		Stdin:    strings.NewReader(stdin),
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

func TestRootCmd_SVGFromStdin(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := testDeps(t, `[{"date":"2023-01-03","count":4}]`, &stdout, &stderr)

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"-o", "svg", "--from", "2023-01-01", "--to", "2023-01-31", "--base-color", "#216e39"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "<svg ") {
		t.Fatalf("expected svg output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), `fill="#216e39"`) {
		t.Fatalf("base color not applied")
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRootCmd_PrintsRangeHint(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := testDeps(t, "[]", &stdout, &stderr)

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"--from", "2023-12-31", "--to", "2023-01-01"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(stderr.String(), "hint: --from must be on or before --to") {
		t.Fatalf("expected range hint, got stderr=%q", stderr.String())
	}
}

func TestRootCmd_PrintsFormatHintOnParseError(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := testDeps(t, "2023-01-01,lots\n", &stdout, &stderr)

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"--to", "2023-01-31"})
	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "record 1") {
		t.Fatalf("expected record in error, got %q", err.Error())
	}
	if !strings.Contains(stderr.String(), "hint: expected JSON") {
		t.Fatalf("expected format hint, got stderr=%q", stderr.String())
	}
}

func TestRootCmd_RejectsBadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		hint bool
	}{
		{name: "variance", args: []string{"--variance", "1"}},
		{name: "color", args: []string{"--base-color", "grass"}, hint: true},
		{name: "palette size", args: []string{"--colors", "#000000,#ffffff"}},
		{name: "output", args: []string{"-o", "png"}},
		{name: "format", args: []string{"--format", "xml"}},
		{name: "date", args: []string{"--from", "2023/01/01"}},
	}
	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		deps := testDeps(t, "[]", &stdout, &stderr)
		cmd := NewRootCmd(deps)
		cmd.SetArgs(tt.args)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
		if got := strings.Contains(stderr.String(), "hint:"); got != tt.hint {
			t.Fatalf("%s: hint=%v, stderr=%q", tt.name, got, stderr.String())
		}
	}
}

func TestRootCmd_DefaultRangeEndsToday(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := testDeps(t, `[{"date":"2023-06-30","count":2},{"date":"2020-01-01","count":1}]`, &stdout, &stderr)

	cmd := NewRootCmd(deps)
	cmd.SetArgs([]string{"-o", "summary"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "2022-06\t") || !strings.Contains(out, "2023-06\t") {
		t.Fatalf("expected months 2022-06..2023-06, got:\n%s", out)
	}
	if !strings.Contains(stderr.String(), "warning: ignored 1 observation(s) outside 2022-06-29..2023-06-30") {
		t.Fatalf("expected out-of-range warning, got %q", stderr.String())
	}
}
