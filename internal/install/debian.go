package install

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"kaspa-setup-tool/internal/platform"
)

const (
	dockerKeyringPath = "/etc/apt/keyrings/docker.gpg"
	dockerListPath    = "/etc/apt/sources.list.d/docker.list"
)

// dockerPackages is the set installed on apt and yum based systems.
var dockerPackages = []string{
	"docker-ce", "docker-ce-cli", "containerd.io",
	"docker-buildx-plugin", "docker-compose-plugin",
}

// installDebian sets up Docker's official apt repository and installs the
// engine packages from it.
func (i *Installer) installDebian(ctx context.Context) error {
	cctx, cancel := stepContext(ctx)
	defer cancel()

	repoDistro := debianRepoDistro(platform.DetectDistro())

	if err := i.step(cctx, "更新软件包索引", "apt-get", "update"); err != nil {
		return err
	}
	if err := i.step(cctx, "安装前置依赖",
		"apt-get", "install", "-y", "ca-certificates", "curl", "gnupg", "lsb-release"); err != nil {
		return err
	}

	keyPath, err := i.downloadGPGKey(cctx, repoDistro)
	if err != nil {
		return err
	}
	defer os.Remove(keyPath)

	if err := i.step(cctx, "创建密钥目录", "install", "-m", "0755", "-d", "/etc/apt/keyrings"); err != nil {
		return err
	}
	if err := i.step(cctx, "导入 Docker GPG 密钥",
		"gpg", "--dearmor", "--yes", "-o", dockerKeyringPath, keyPath); err != nil {
		// Older hosts without gnupg2 still carry apt-key.
		i.console.Warnf("gpg 导入失败，回退到 apt-key")
		if err := i.step(cctx, "导入 Docker GPG 密钥（apt-key）", "apt-key", "add", keyPath); err != nil {
			return err
		}
	}

	codename, err := i.debianCodename(cctx)
	if err != nil {
		return err
	}
	repoLine := fmt.Sprintf("deb [arch=%s signed-by=%s] https://download.docker.com/linux/%s %s stable",
		platform.PackageArch(), dockerKeyringPath, repoDistro, codename)
	if err := i.step(cctx, "配置 Docker 软件源",
		"sh", "-c", fmt.Sprintf("echo '%s' > %s", repoLine, dockerListPath)); err != nil {
		return err
	}

	if err := i.step(cctx, "刷新软件包索引", "apt-get", "update"); err != nil {
		return err
	}
	if err := i.step(cctx, "安装 Docker Engine",
		append([]string{"apt-get", "install", "-y"}, dockerPackages...)...); err != nil {
		return err
	}

	return i.addUserToDockerGroup(cctx)
}

// step runs one privileged installation command.
func (i *Installer) step(ctx context.Context, desc string, cmd ...string) error {
	name, args := sudoArgs(cmd[0], cmd[1:]...)
	return i.runner.Step(ctx, desc, name, args...)
}

// downloadGPGKey fetches Docker's repository signing key to a temp file.
func (i *Installer) downloadGPGKey(ctx context.Context, repoDistro string) (string, error) {
	url := fmt.Sprintf("https://download.docker.com/linux/%s/gpg", repoDistro)
	i.console.Printf("⏳ 下载 Docker GPG 密钥 (%s)", url)

	tmp := filepath.Join(os.TempDir(), "docker-archive-keyring.asc")
	resp, err := i.client.R().SetContext(ctx).SetOutput(tmp).Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to download GPG key: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to download GPG key: status %d", resp.StatusCode())
	}
	return tmp, nil
}

// debianCodename resolves the release codename the repo line needs,
// preferring os-release over a lsb_release subprocess.
func (i *Installer) debianCodename(ctx context.Context) (string, error) {
	if content, err := os.ReadFile("/etc/os-release"); err == nil {
		for _, line := range strings.Split(string(content), "\n") {
			if value, found := strings.CutPrefix(strings.TrimSpace(line), "VERSION_CODENAME="); found {
				if codename := strings.Trim(value, `"`); codename != "" {
					return codename, nil
				}
			}
		}
	}

	out, err := i.runner.Output(ctx, "lsb_release", "-cs")
	if err != nil {
		return "", fmt.Errorf("failed to determine release codename: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// debianRepoDistro maps derivatives onto the repository Docker actually
// publishes for them.
func debianRepoDistro(distro string) string {
	switch distro {
	case "ubuntu", "linuxmint":
		return "ubuntu"
	default:
		return "debian"
	}
}

func (i *Installer) addUserToDockerGroup(ctx context.Context) error {
	username := os.Getenv("SUDO_USER")
	if username == "" {
		if u, err := user.Current(); err == nil {
			username = u.Username
		}
	}
	if username == "" || username == "root" {
		return nil
	}

	if err := i.step(ctx, fmt.Sprintf("将用户 %s 加入 docker 组", username),
		"usermod", "-aG", "docker", username); err != nil {
		return err
	}
	i.console.Warnf("组变更需要重新登录后才会生效")
	return nil
}
