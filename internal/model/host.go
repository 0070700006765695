// Package model provides data models for the setup toolkit.
package model

// OSFamily represents the host operating system family.
type OSFamily string

const (
	OSLinux   OSFamily = "linux"   // Linux 发行版
	OSDarwin  OSFamily = "darwin"  // macOS
	OSWindows OSFamily = "windows" // Windows
	OSUnknown OSFamily = "unknown" // 无法识别
)

// Supported reports whether the OS family is in the supported set.
func (o OSFamily) Supported() bool {
	switch o {
	case OSLinux, OSDarwin, OSWindows:
		return true
	default:
		return false
	}
}

// StorageType classifies the storage medium backing the working volume.
// Detection is best-effort; callers must treat StorageUnknown as a valid
// outcome, never as an error.
type StorageType string

const (
	StorageUnknown StorageType = "unknown"  // 无法识别
	StorageHDD     StorageType = "hdd"      // 机械硬盘
	StorageSSD     StorageType = "ssd"      // 固态硬盘
	StorageNVMe    StorageType = "nvme-ssd" // NVMe 固态硬盘
)

// DisplayName returns the operator-facing name of the storage type.
func (s StorageType) DisplayName() string {
	switch s {
	case StorageNVMe:
		return "NVMe SSD"
	case StorageSSD:
		return "SSD"
	case StorageHDD:
		return "HDD"
	default:
		return "未知"
	}
}

// HostProfile is a snapshot of the host hardware, recomputed fresh on every
// run. It carries no identity beyond the current process.
type HostProfile struct {
	OS            OSFamily    `json:"os"`             // 操作系统
	OSVersion     string      `json:"os_version"`     // 操作系统版本
	Distro        string      `json:"distro"`         // Linux 发行版 ID（非 Linux 为空）
	CPUPhysical   int         `json:"cpu_physical"`   // 物理核心数
	CPULogical    int         `json:"cpu_logical"`    // 逻辑核心数
	CPUModel      string      `json:"cpu_model"`      // CPU 型号
	MemoryTotal   uint64      `json:"memory_total"`   // 内存总量（bytes）
	MemoryFree    uint64      `json:"memory_free"`    // 可用内存（bytes）
	Storage       StorageType `json:"storage"`        // 存储介质类型
	DiskFree      uint64      `json:"disk_free"`      // 工作卷可用空间（bytes）
	DiskTotal     uint64      `json:"disk_total"`     // 工作卷总容量（bytes）
}

// GiB converts a byte count to GiB.
func GiB(bytes uint64) float64 {
	return float64(bytes) / (1 << 30)
}
