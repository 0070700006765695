// Package score converts a hardware profile into a heuristic performance
// score and tier. Scoring is a pure, deterministic function of the profile:
// it never touches the host and never fails, even when storage or CPU
// detection produced unknown values.
package score

import "kaspa-setup-tool/internal/model"

// Threshold bands for the overall score.
const (
	thresholdExcellent = 90
	thresholdVeryGood  = 75
	thresholdGood      = 60
	thresholdFair      = 45
)

// Compute derives the performance score from a host profile.
func Compute(profile *model.HostProfile) *model.PerformanceScore {
	if profile == nil {
		profile = &model.HostProfile{Storage: model.StorageUnknown}
	}

	cpu := CPUScore(profile.CPUPhysical)
	mem := MemoryScore(profile.MemoryTotal)
	storage := StorageScore(profile.Storage)
	overall := float64(cpu+mem+storage) / 3.0

	return &model.PerformanceScore{
		CPU:      cpu,
		Memory:   mem,
		Storage:  storage,
		Overall:  overall,
		Tier:     TierOf(overall),
		Adequate: overall >= thresholdFair,
	}
}

// CPUScore maps the physical core count onto [20,100] via a step function.
// Anything below 2 cores lands in the lowest bucket.
func CPUScore(physicalCores int) int {
	switch {
	case physicalCores >= 16:
		return 100
	case physicalCores >= 8:
		return 80
	case physicalCores >= 4:
		return 60
	case physicalCores >= 2:
		return 40
	default:
		return 20
	}
}

// MemoryScore maps total memory onto [10,100] via a step function over GiB.
// Anything below 4 GiB lands in the lowest bucket.
func MemoryScore(totalBytes uint64) int {
	gib := model.GiB(totalBytes)
	switch {
	case gib >= 64:
		return 100
	case gib >= 32:
		return 90
	case gib >= 16:
		return 70
	case gib >= 8:
		return 50
	case gib >= 4:
		return 30
	default:
		return 10
	}
}

// StorageScore maps the storage medium classification onto a fixed score.
// Unclassifiable storage scores conservatively rather than failing.
func StorageScore(storage model.StorageType) int {
	switch storage {
	case model.StorageNVMe:
		return 100
	case model.StorageSSD:
		return 80
	case model.StorageHDD:
		return 40
	default:
		return 20
	}
}

// TierOf maps an overall score to its tier label.
func TierOf(overall float64) model.Tier {
	switch {
	case overall >= thresholdExcellent:
		return model.TierExcellent
	case overall >= thresholdVeryGood:
		return model.TierVeryGood
	case overall >= thresholdGood:
		return model.TierGood
	case overall >= thresholdFair:
		return model.TierFair
	default:
		return model.TierPoor
	}
}

// TierAdvice returns the operator-facing advisory text for a tier. The BPS
// figures are indicative sync throughput, not live measurements.
func TierAdvice(tier model.Tier) string {
	switch tier {
	case model.TierExcellent:
		return "硬件配置极佳，可流畅同步主网（10 BPS 亦可胜任）"
	case model.TierVeryGood:
		return "硬件配置很好，主网节点运行无压力"
	case model.TierGood:
		return "硬件配置良好，可以运行主网节点"
	case model.TierFair:
		return "硬件配置一般，同步速度可能较慢（约 1 BPS）"
	default:
		return "硬件配置不足，不建议运行节点"
	}
}
