package service

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaspa-setup-tool/internal/model"
)

// withFakeCommands replaces command execution for the duration of the test.
func withFakeCommands(t *testing.T, script string, found bool) {
	t.Helper()
	origExec, origLook := execCommand, lookPath
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.Command("sh", "-c", script)
	}
	lookPath = func(name string) (string, error) {
		if found {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() {
		execCommand, lookPath = origExec, origLook
	})
}

// =============================================================================
// 操作系统检查测试
// =============================================================================

func TestCheckOS(t *testing.T) {
	c, _ := newTestChecker(t, testConfig(), t.TempDir())

	c.profile = &model.HostProfile{OS: model.OSLinux, OSVersion: "Ubuntu 22.04.3 LTS"}
	results := c.checkOS(context.Background())
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
	assert.Equal(t, "Ubuntu 22.04.3 LTS", results[0].Detail)

	c.profile = &model.HostProfile{OS: model.OSUnknown}
	results = c.checkOS(context.Background())
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
}

// =============================================================================
// Docker 命令检查测试
// =============================================================================

func TestCheckDocker_NotOnPath(t *testing.T) {
	withFakeCommands(t, "exit 0", false)
	c, _ := newTestChecker(t, testConfig(), t.TempDir())

	cr := c.checkDocker(context.Background())[0]
	assert.False(t, cr.Passed)
	assert.Contains(t, cr.Detail, "install")
}

func TestCheckDocker_VersionReported(t *testing.T) {
	withFakeCommands(t, "echo 'Docker version 27.0.3, build 7d4bcd8'", true)
	c, _ := newTestChecker(t, testConfig(), t.TempDir())

	cr := c.checkDocker(context.Background())[0]
	require.True(t, cr.Passed)
	assert.Equal(t, "Docker version 27.0.3, build 7d4bcd8", cr.Detail)
}

func TestCheckCompose_PluginForm(t *testing.T) {
	withFakeCommands(t, "echo 'Docker Compose version v2.39.2'", true)
	c, _ := newTestChecker(t, testConfig(), t.TempDir())

	cr := c.checkCompose(context.Background())[0]
	require.True(t, cr.Passed)
	assert.Contains(t, cr.Detail, "v2.39.2")
}

func TestCheckCompose_NeitherForm(t *testing.T) {
	withFakeCommands(t, "exit 1", false)
	c, _ := newTestChecker(t, testConfig(), t.TempDir())

	cr := c.checkCompose(context.Background())[0]
	assert.False(t, cr.Passed)
}

func TestCheckDaemon(t *testing.T) {
	withFakeCommands(t, "exit 1", true)
	c, _ := newTestChecker(t, testConfig(), t.TempDir())

	cr := c.checkDaemon(context.Background())[0]
	assert.False(t, cr.Passed)

	withFakeCommands(t, "exit 0", true)
	cr = c.checkDaemon(context.Background())[0]
	assert.True(t, cr.Passed)
	assert.Equal(t, "运行中", cr.Detail)
}
