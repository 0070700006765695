package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"kaspa-setup-tool/internal/platform"
)

// composeReleaseAPI is a variable so tests can point it at a local server.
var composeReleaseAPI = "https://api.github.com/repos/docker/compose/releases/latest"

const composeBinPath = "/usr/local/bin/docker-compose"

// composeRelease is the subset of the GitHub release payload we need.
type composeRelease struct {
	TagName string `json:"tag_name"`
}

// installCompose installs the standalone docker-compose binary. Modern engine
// packages ship the compose plugin already, so this path only runs when
// neither form is present.
func (i *Installer) installCompose(ctx context.Context) error {
	if runtime.GOOS != "linux" {
		// Docker Desktop bundles compose on macOS and Windows.
		return fmt.Errorf("standalone compose install is only supported on Linux")
	}

	arch := platform.ComposeArch()
	if arch == "" {
		return fmt.Errorf("unsupported architecture for compose: %s", runtime.GOARCH)
	}

	version := i.latestComposeVersion(ctx)
	url := fmt.Sprintf("https://github.com/docker/compose/releases/download/%s/docker-compose-linux-%s",
		version, arch)
	i.console.Printf("⏳ 下载 Docker Compose %s", version)

	tmp := filepath.Join(os.TempDir(), "docker-compose")
	resp, err := i.client.R().SetContext(ctx).SetOutput(tmp).Get(url)
	if err != nil {
		return fmt.Errorf("failed to download compose: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to download compose: status %d", resp.StatusCode())
	}
	defer os.Remove(tmp)

	cctx, cancel := stepContext(ctx)
	defer cancel()
	if err := i.step(cctx, "安装 docker-compose 到 "+composeBinPath, "mv", tmp, composeBinPath); err != nil {
		return err
	}
	return i.step(cctx, "设置可执行权限", "chmod", "0755", composeBinPath)
}

// latestComposeVersion asks the GitHub API for the newest release tag and
// falls back to the configured pin when the API is unreachable or rate
// limited.
func (i *Installer) latestComposeVersion(ctx context.Context) string {
	var release composeRelease
	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.github+json").
		SetResult(&release).
		Get(composeReleaseAPI)

	if err != nil || resp.IsError() || release.TagName == "" {
		i.logger.Warn().Err(err).Msg("failed to query latest compose release, using fallback version")
		return i.cfg.Install.ComposeFallbackVersion
	}
	return release.TagName
}
