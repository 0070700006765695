package install

import "context"

// installRHEL installs Docker from the official repository on yum based
// systems (CentOS, RHEL, Fedora, Rocky, AlmaLinux).
func (i *Installer) installRHEL(ctx context.Context) error {
	cctx, cancel := stepContext(ctx)
	defer cancel()

	if err := i.step(cctx, "安装 yum-utils", "yum", "install", "-y", "yum-utils"); err != nil {
		return err
	}
	if err := i.step(cctx, "配置 Docker 软件源",
		"yum-config-manager", "--add-repo",
		"https://download.docker.com/linux/centos/docker-ce.repo"); err != nil {
		return err
	}
	if err := i.step(cctx, "安装 Docker Engine",
		append([]string{"yum", "install", "-y"}, dockerPackages...)...); err != nil {
		return err
	}
	if err := i.step(cctx, "启动 Docker 服务", "systemctl", "enable", "--now", "docker"); err != nil {
		return err
	}

	return i.addUserToDockerGroup(cctx)
}
