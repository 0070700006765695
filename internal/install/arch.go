package install

import "context"

// installArch installs Docker from the distribution repositories. Arch ships
// current Docker packages, so no third-party repo is needed.
func (i *Installer) installArch(ctx context.Context) error {
	cctx, cancel := stepContext(ctx)
	defer cancel()

	if err := i.step(cctx, "安装 Docker Engine",
		"pacman", "-S", "--noconfirm", "docker", "docker-compose"); err != nil {
		return err
	}
	if err := i.step(cctx, "启动 Docker 服务", "systemctl", "enable", "--now", "docker"); err != nil {
		return err
	}

	return i.addUserToDockerGroup(cctx)
}
