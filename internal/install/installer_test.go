package install

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"kaspa-setup-tool/internal/config"
	"kaspa-setup-tool/internal/console"
	"kaspa-setup-tool/internal/model"
)

func testInstallConfig() *config.Config {
	return &config.Config{
		Install: config.InstallConfig{
			ComposeFallbackVersion: "v2.24.0",
			DownloadTimeout:        5 * time.Second,
			Retry:                  config.RetryConfig{MaxRetries: 0, BaseDelay: time.Millisecond},
		},
	}
}

// newRecordingInstaller returns an installer whose commands are recorded and
// replaced by a no-op.
func newRecordingInstaller(t *testing.T, succeed bool) (*Installer, *[][]string, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	var recorded [][]string

	i := NewInstaller(testInstallConfig(), console.New(strings.NewReader(""), &out), zerolog.Nop())
	i.runner.execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		recorded = append(recorded, append([]string{name}, args...))
		if succeed {
			return exec.Command("true")
		}
		return exec.Command("false")
	}
	return i, &recorded, &out
}

func commandLines(recorded [][]string) []string {
	lines := make([]string, len(recorded))
	for i, cmd := range recorded {
		lines[i] = strings.Join(cmd, " ")
	}
	return lines
}

func TestInstallArch_CommandSequence(t *testing.T) {
	t.Setenv("SUDO_USER", "tester")
	inst, recorded, _ := newRecordingInstaller(t, true)

	if err := inst.installArch(context.Background()); err != nil {
		t.Fatalf("installArch() error = %v", err)
	}

	lines := commandLines(*recorded)
	wantSubstrings := []string{
		"pacman -S --noconfirm docker docker-compose",
		"systemctl enable --now docker",
		"usermod -aG docker tester",
	}
	for i, want := range wantSubstrings {
		if i >= len(lines) {
			t.Fatalf("only %d commands recorded, want %d", len(lines), len(wantSubstrings))
		}
		if !strings.Contains(lines[i], want) {
			t.Errorf("command %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
}

func TestInstallRHEL_CommandSequence(t *testing.T) {
	t.Setenv("SUDO_USER", "tester")
	inst, recorded, _ := newRecordingInstaller(t, true)

	if err := inst.installRHEL(context.Background()); err != nil {
		t.Fatalf("installRHEL() error = %v", err)
	}

	joined := strings.Join(commandLines(*recorded), "\n")
	for _, want := range []string{
		"yum install -y yum-utils",
		"yum-config-manager --add-repo",
		"docker-ce docker-ce-cli containerd.io",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("recorded commands missing %q:\n%s", want, joined)
		}
	}
}

func TestInstall_StopsOnFirstFailure(t *testing.T) {
	inst, recorded, _ := newRecordingInstaller(t, false)

	err := inst.installArch(context.Background())
	if err == nil {
		t.Fatal("installArch() should fail when a step fails")
	}
	if len(*recorded) != 1 {
		t.Errorf("recorded %d commands after failure, want 1", len(*recorded))
	}
}

func TestRunnerStep_ErrorIncludesOutput(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(console.New(strings.NewReader(""), &out), zerolog.Nop())
	r.execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.Command("sh", "-c", "echo boom >&2; exit 3")
	}

	err := r.Step(context.Background(), "失败的步骤", "whatever")
	if err == nil {
		t.Fatal("Step() should propagate the command failure")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error should carry command output: %v", err)
	}
	if !strings.Contains(out.String(), "失败的步骤") {
		t.Errorf("step description not printed: %q", out.String())
	}
}

func TestLatestComposeVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tag_name": "v2.39.2"}`))
	}))
	defer srv.Close()

	orig := composeReleaseAPI
	composeReleaseAPI = srv.URL
	defer func() { composeReleaseAPI = orig }()

	inst, _, _ := newRecordingInstaller(t, true)
	if got := inst.latestComposeVersion(context.Background()); got != "v2.39.2" {
		t.Errorf("latestComposeVersion() = %q, want v2.39.2", got)
	}
}

func TestLatestComposeVersion_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	orig := composeReleaseAPI
	composeReleaseAPI = srv.URL
	defer func() { composeReleaseAPI = orig }()

	inst, _, _ := newRecordingInstaller(t, true)
	if got := inst.latestComposeVersion(context.Background()); got != "v2.24.0" {
		t.Errorf("latestComposeVersion() = %q, want fallback v2.24.0", got)
	}
}

func TestSudoArgs(t *testing.T) {
	name, args := sudoArgs("apt-get", "update")
	if os.Geteuid() == 0 {
		if name != "apt-get" {
			t.Errorf("root should not get a sudo prefix, got %q", name)
		}
	} else {
		if name != "sudo" || len(args) != 2 || args[0] != "apt-get" {
			t.Errorf("sudoArgs() = %q %v, want sudo prefix", name, args)
		}
	}
}

func TestDebianRepoDistro(t *testing.T) {
	tests := []struct {
		distro string
		want   string
	}{
		{"ubuntu", "ubuntu"},
		{"linuxmint", "ubuntu"},
		{"debian", "debian"},
		{"raspbian", "debian"},
		{"unknown", "debian"},
	}

	for _, tt := range tests {
		if got := debianRepoDistro(tt.distro); got != tt.want {
			t.Errorf("debianRepoDistro(%q) = %q, want %q", tt.distro, got, tt.want)
		}
	}
}

func TestStrategyFor(t *testing.T) {
	inst, _, _ := newRecordingInstaller(t, true)

	if _, err := inst.strategyFor(model.OSFamily("plan9")); err == nil {
		t.Error("strategyFor() should reject an unsupported OS")
	}

	strat, err := inst.strategyFor(model.OSDarwin)
	if err != nil {
		t.Fatalf("strategyFor(darwin) error = %v", err)
	}
	if _, ok := strat.(darwinStrategy); !ok {
		t.Errorf("strategyFor(darwin) = %T, want darwinStrategy", strat)
	}

	strat, err = inst.strategyFor(model.OSWindows)
	if err != nil {
		t.Fatalf("strategyFor(windows) error = %v", err)
	}
	if err := strat.InstallCompose(context.Background()); err != nil {
		t.Errorf("windows InstallCompose should be a no-op, got %v", err)
	}
}

func TestTail(t *testing.T) {
	got := tail("a\nb\nc\nd\n", 2)
	if got != "c\nd" {
		t.Errorf("tail() = %q, want %q", got, "c\nd")
	}
	if got := tail("only\n", 5); got != "only" {
		t.Errorf("tail() = %q, want %q", got, "only")
	}
}
