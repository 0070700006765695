package service

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"kaspa-setup-tool/internal/model"
)

// Overridable in tests.
var (
	execCommand = exec.CommandContext
	lookPath    = exec.LookPath
)

// minGoVersion is the oldest toolchain release the binary is supported on.
const (
	minGoMajor = 1
	minGoMinor = 22
)

func (c *Checker) checkOS(ctx context.Context) []*model.CheckResult {
	cr := &model.CheckResult{Name: "操作系统"}

	profile := c.profileOrEmpty()
	if profile.OS.Supported() {
		cr.Passed = true
		cr.Detail = string(profile.OS)
		if profile.OSVersion != "" {
			cr.Detail = profile.OSVersion
		}
	} else {
		cr.Detail = fmt.Sprintf("不支持的操作系统: %s", runtime.GOOS)
	}
	return []*model.CheckResult{cr}
}

func (c *Checker) checkRuntimeVersion(ctx context.Context) []*model.CheckResult {
	cr := &model.CheckResult{Name: "运行环境"}

	version := runtime.Version()
	major, minor, ok := parseGoVersion(version)
	switch {
	case !ok:
		cr.Detail = fmt.Sprintf("无法解析运行时版本: %s", version)
	case major > minGoMajor || (major == minGoMajor && minor >= minGoMinor):
		cr.Passed = true
		cr.Detail = version
	default:
		cr.Detail = fmt.Sprintf("%s 低于最低要求 go%d.%d", version, minGoMajor, minGoMinor)
	}
	return []*model.CheckResult{cr}
}

func (c *Checker) checkDocker(ctx context.Context) []*model.CheckResult {
	cr := &model.CheckResult{Name: "Docker"}

	if _, err := lookPath("docker"); err != nil {
		cr.Detail = "未找到 docker 命令，请先运行 install 子命令"
		return []*model.CheckResult{cr}
	}

	out, err := c.runCommand(ctx, "docker", "--version")
	if err != nil {
		cr.Detail = fmt.Sprintf("docker --version 执行失败: %v", err)
		return []*model.CheckResult{cr}
	}
	cr.Passed = true
	cr.Detail = strings.TrimSpace(out)
	return []*model.CheckResult{cr}
}

func (c *Checker) checkCompose(ctx context.Context) []*model.CheckResult {
	cr := &model.CheckResult{Name: "Docker Compose"}

	// Plugin form first, standalone binary as fallback.
	if out, err := c.runCommand(ctx, "docker", "compose", "version"); err == nil {
		cr.Passed = true
		cr.Detail = strings.TrimSpace(out)
		return []*model.CheckResult{cr}
	}
	if _, err := lookPath("docker-compose"); err == nil {
		if out, err := c.runCommand(ctx, "docker-compose", "--version"); err == nil {
			cr.Passed = true
			cr.Detail = strings.TrimSpace(out)
			return []*model.CheckResult{cr}
		}
	}

	cr.Detail = "未找到 Docker Compose 插件或独立二进制"
	return []*model.CheckResult{cr}
}

func (c *Checker) checkDaemon(ctx context.Context) []*model.CheckResult {
	cr := &model.CheckResult{Name: "Docker 守护进程"}

	if _, err := c.runCommand(ctx, "docker", "info"); err != nil {
		cr.Detail = "无法连接 Docker 守护进程，请确认服务已启动且当前用户有权限"
		return []*model.CheckResult{cr}
	}
	cr.Passed = true
	cr.Detail = "运行中"
	return []*model.CheckResult{cr}
}

// checkPorts verifies each configured port can be bound locally. The probe
// listener is closed immediately so repeated runs see the same free state.
func (c *Checker) checkPorts(ctx context.Context) []*model.CheckResult {
	results := make([]*model.CheckResult, 0, len(c.cfg.Checks.Ports))
	for _, port := range c.cfg.Checks.Ports {
		cr := &model.CheckResult{Name: fmt.Sprintf("端口 %d", port)}

		ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		if err != nil {
			cr.Detail = "端口被占用"
		} else {
			ln.Close()
			cr.Passed = true
			cr.Detail = "可用"
		}
		results = append(results, cr)
	}
	return results
}

func (c *Checker) checkDisk(ctx context.Context) []*model.CheckResult {
	cr := &model.CheckResult{Name: "磁盘空间"}

	freeGiB := model.GiB(c.profileOrEmpty().DiskFree)
	if freeGiB >= c.cfg.Checks.MinDiskGiB {
		cr.Passed = true
		cr.Detail = fmt.Sprintf("可用 %.1f GiB（要求 %.0f GiB）", freeGiB, c.cfg.Checks.MinDiskGiB)
	} else {
		cr.Detail = fmt.Sprintf("可用 %.1f GiB，低于要求的 %.0f GiB", freeGiB, c.cfg.Checks.MinDiskGiB)
	}
	return []*model.CheckResult{cr}
}

func (c *Checker) checkMemory(ctx context.Context) []*model.CheckResult {
	cr := &model.CheckResult{Name: "可用内存"}

	freeGiB := model.GiB(c.profileOrEmpty().MemoryFree)
	if freeGiB >= c.cfg.Checks.MinMemoryGiB {
		cr.Passed = true
		cr.Detail = fmt.Sprintf("可用 %.1f GiB（要求 %.0f GiB）", freeGiB, c.cfg.Checks.MinMemoryGiB)
	} else {
		cr.Detail = fmt.Sprintf("可用 %.1f GiB，低于要求的 %.0f GiB", freeGiB, c.cfg.Checks.MinMemoryGiB)
	}
	return []*model.CheckResult{cr}
}

func (c *Checker) checkFiles(ctx context.Context) []*model.CheckResult {
	results := make([]*model.CheckResult, 0, len(c.cfg.Checks.RequiredFiles))
	for _, name := range c.cfg.Checks.RequiredFiles {
		cr := &model.CheckResult{Name: fmt.Sprintf("文件 %s", name)}

		path := filepath.Join(c.workDir, name)
		info, err := os.Stat(path)
		switch {
		case err != nil:
			cr.Detail = "不存在"
		case info.IsDir():
			cr.Detail = "是目录而非文件"
		default:
			cr.Passed = true
			cr.Detail = "存在"
		}
		results = append(results, cr)
	}
	return results
}

func (c *Checker) runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, c.cfg.Checks.CommandTimeout)
	defer cancel()

	out, err := execCommand(cctx, name, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s failed: %w", name, err)
	}
	return string(out), nil
}

func (c *Checker) profileOrEmpty() *model.HostProfile {
	if c.profile != nil {
		return c.profile
	}
	return &model.HostProfile{}
}

// parseGoVersion extracts major and minor numbers from strings like
// "go1.25.5". Development builds ("devel ...") do not parse and are treated
// as unknown by the caller.
func parseGoVersion(version string) (major, minor int, ok bool) {
	version = strings.TrimPrefix(version, "go")
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
