package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/pablasso/fillbar/internal/bar"
	"github.com/pablasso/fillbar/internal/config"
	"github.com/pablasso/fillbar/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithOptions(t, args...)
	return out, err
}

func executeWithOptions(t *testing.T, args ...string) (string, *rootOptions, error) {
	t.Helper()
	cmd, opts := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := opts.run(cmd)
	return out.String(), opts, err
}

func TestRender_JSON(t *testing.T) {
	testutil.SetupTestDir(t)

	out, err := execute(t, "render", "--progress", "0.5", "--format", "json")
	if err != nil {
		t.Fatalf("render failed: %v\n%s", err, out)
	}

	var snap bar.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not a snapshot: %v\n%s", err, out)
	}
	if snap.Progress != 0.5 {
		t.Errorf("expected progress 0.5, got %v", snap.Progress)
	}
	if snap.Fill.Extent != 5 {
		t.Errorf("expected extent 5 on the default 10-wide bar, got %v", snap.Fill.Extent)
	}
	if snap.Label.Text != "50%" || !snap.Label.Visible {
		t.Errorf("expected visible 50%% label, got %+v", snap.Label)
	}
}

func TestRender_FlagsOverrideDefaults(t *testing.T) {
	testutil.SetupTestDir(t)

	out, err := execute(t, "render", "--progress", "1.5", "--angle=-90", "--width", "4", "--format", "json")
	if err != nil {
		t.Fatalf("render failed: %v\n%s", err, out)
	}

	var snap bar.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not a snapshot: %v", err)
	}
	if snap.Progress != 1 {
		t.Errorf("expected progress clamped to 1, got %v", snap.Progress)
	}
	if snap.Config.Angle != 270 {
		t.Errorf("expected angle normalized to 270, got %v", snap.Config.Angle)
	}
	if snap.Fill.Extent != 4 {
		t.Errorf("expected extent 4 along the bar, got %v", snap.Fill.Extent)
	}
	if snap.Fill.Size.X != 0.3 || snap.Fill.Size.Y != 4 {
		t.Errorf("expected an upright 0.3x4 fill, got %+v", snap.Fill.Size)
	}
	if snap.Label.Visible {
		t.Error("expected label hidden at 100%")
	}
}

func TestRender_Text(t *testing.T) {
	testutil.SetupTestDir(t)

	out, err := execute(t, "render", "--progress", "0.25", "--cols", "60", "--rows", "12")
	if err != nil {
		t.Fatalf("render failed: %v\n%s", err, out)
	}

	plain := ansi.Strip(out)
	if !strings.Contains(plain, "25%") {
		t.Errorf("expected frame to contain 25%%, got:\n%s", plain)
	}
	if lines := strings.Count(plain, "\n"); lines != 12 {
		t.Errorf("expected 12 lines, got %d", lines)
	}
}

func TestRender_InvalidFormat(t *testing.T) {
	testutil.SetupTestDir(t)

	_, err := execute(t, "render", "--format", "svg")
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("expected invalid format error, got %v", err)
	}
}

func TestRender_InvalidBar(t *testing.T) {
	testutil.SetupTestDir(t)

	_, err := execute(t, "render", "--width", "-1")
	if err == nil || !strings.Contains(err.Error(), "invalid width") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRender_UsesConfigFile(t *testing.T) {
	dir := testutil.SetupTestDir(t)
	path := testutil.WriteFile(t, dir, "bar.yaml", "bar:\n  width: 4\n  show_percentage: false\n")

	out, err := execute(t, "render", "--config", path, "--progress", "0.25", "--format", "json")
	if err != nil {
		t.Fatalf("render failed: %v\n%s", err, out)
	}

	var snap bar.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not a snapshot: %v", err)
	}
	if snap.Fill.Extent != 1 {
		t.Errorf("expected extent 1 on a 4-wide bar, got %v", snap.Fill.Extent)
	}
	if snap.Label.Visible {
		t.Error("expected label disabled by config")
	}
}

func TestInit(t *testing.T) {
	t.Run("writes default config", func(t *testing.T) {
		testutil.SetupTestDir(t)

		out, err := execute(t, "init")
		if err != nil {
			t.Fatalf("init failed: %v", err)
		}
		if !strings.Contains(out, "Wrote "+config.FileName) {
			t.Errorf("expected confirmation, got %q", out)
		}
		if _, err := os.Stat(config.FileName); err != nil {
			t.Fatalf("expected %s to exist: %v", config.FileName, err)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		testutil.SetupTestDir(t)

		if _, err := execute(t, "init"); err != nil {
			t.Fatalf("first init failed: %v", err)
		}
		_, err := execute(t, "init")
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Errorf("expected already exists error, got %v", err)
		}
	})

	t.Run("custom path", func(t *testing.T) {
		testutil.SetupTestDir(t)

		if _, err := execute(t, "init", filepath.Join("scenes", "demo.yaml")); err != nil {
			t.Fatalf("init failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join("scenes", "demo.yaml")); err != nil {
			t.Errorf("expected custom config to exist: %v", err)
		}
	})
}

func TestDebugLogging(t *testing.T) {
	testutil.SetupTestDir(t)

	if _, err := execute(t, "--debug", "render", "--format", "json"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(debugLogFile)
	if err != nil {
		t.Fatalf("expected debug log: %v", err)
	}
	if !strings.Contains(string(data), "bar created") {
		t.Errorf("expected bar creation in debug log, got %q", string(data))
	}
}

func TestDebugLogging_ClosedOnError(t *testing.T) {
	testutil.SetupTestDir(t)

	_, opts, err := executeWithOptions(t, "--debug", "render", "--format", "svg")
	if err == nil {
		t.Fatal("expected invalid format error")
	}
	if opts.logFile != nil {
		t.Error("expected debug log to be closed after a failed command")
	}

	data, err := os.ReadFile(debugLogFile)
	if err != nil {
		t.Fatalf("expected debug log: %v", err)
	}
	if !strings.Contains(string(data), "debug logging enabled") {
		t.Errorf("expected startup record in debug log, got %q", string(data))
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, "fillbar version") {
		t.Errorf("unexpected version output %q", out)
	}
}
