package install

import (
	"context"
	"fmt"

	"kaspa-setup-tool/internal/model"
	"kaspa-setup-tool/internal/platform"
)

// platformStrategy is the capability set each supported platform variant
// implements: install the engine, install Compose, verify the result.
type platformStrategy interface {
	InstallDocker(ctx context.Context) error
	InstallCompose(ctx context.Context) error
	Verify(ctx context.Context) error
}

// linuxBase carries the pieces all Linux variants share. Compose comes
// from the standalone binary when the engine packages did not bundle the
// plugin.
type linuxBase struct {
	ins *Installer
}

func (b linuxBase) InstallCompose(ctx context.Context) error { return b.ins.installCompose(ctx) }
func (b linuxBase) Verify(ctx context.Context) error         { return b.ins.verify(ctx) }

type debianStrategy struct{ linuxBase }

func (s debianStrategy) InstallDocker(ctx context.Context) error { return s.ins.installDebian(ctx) }

type rhelStrategy struct{ linuxBase }

func (s rhelStrategy) InstallDocker(ctx context.Context) error { return s.ins.installRHEL(ctx) }

type archStrategy struct{ linuxBase }

func (s archStrategy) InstallDocker(ctx context.Context) error { return s.ins.installArch(ctx) }

type darwinStrategy struct{ ins *Installer }

func (s darwinStrategy) InstallDocker(ctx context.Context) error { return s.ins.installDarwin(ctx) }

// Docker Desktop bundles the compose plugin.
func (s darwinStrategy) InstallCompose(context.Context) error { return nil }

func (s darwinStrategy) Verify(ctx context.Context) error { return s.ins.verify(ctx) }

type windowsStrategy struct{ ins *Installer }

func (s windowsStrategy) InstallDocker(context.Context) error { return s.ins.windowsGuidance() }

func (s windowsStrategy) InstallCompose(context.Context) error { return nil }

func (s windowsStrategy) Verify(ctx context.Context) error { return s.ins.verify(ctx) }

// strategyFor selects the install strategy for the detected platform.
func (i *Installer) strategyFor(osFamily model.OSFamily) (platformStrategy, error) {
	switch osFamily {
	case model.OSDarwin:
		return darwinStrategy{ins: i}, nil
	case model.OSWindows:
		return windowsStrategy{ins: i}, nil
	case model.OSLinux:
		distro := platform.DetectDistro()
		i.logger.Info().Str("distro", distro).Msg("selected install strategy")

		switch platform.FamilyOf(distro) {
		case platform.FamilyDebian:
			return debianStrategy{linuxBase{ins: i}}, nil
		case platform.FamilyRHEL:
			return rhelStrategy{linuxBase{ins: i}}, nil
		case platform.FamilyArch:
			return archStrategy{linuxBase{ins: i}}, nil
		default:
			return nil, fmt.Errorf("unsupported Linux distribution: %s", distro)
		}
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", osFamily)
	}
}
