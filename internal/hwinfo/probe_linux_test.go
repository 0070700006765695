//go:build linux

package hwinfo

import (
	"testing"

	"github.com/mackerelio/go-osstat/memory"

	"kaspa-setup-tool/internal/model"
)

func TestParseCPUInfo(t *testing.T) {
	// Two physical packages with two cores each, hyperthreaded to 8 entries.
	const twoSocket = `processor	: 0
physical id	: 0
core id		: 0
model name	: Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz

processor	: 1
physical id	: 0
core id		: 1
model name	: Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz

processor	: 2
physical id	: 1
core id		: 0
model name	: Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz

processor	: 3
physical id	: 1
core id		: 1
model name	: Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz

processor	: 4
physical id	: 0
core id		: 0
model name	: Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz

processor	: 5
physical id	: 0
core id		: 1
model name	: Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz

processor	: 6
physical id	: 1
core id		: 0
model name	: Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz

processor	: 7
physical id	: 1
core id		: 1
model name	: Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz
`

	cores, modelName := ParseCPUInfo(twoSocket)
	if cores != 4 {
		t.Errorf("cores = %d, want 4", cores)
	}
	if modelName != "Intel(R) Xeon(R) CPU E5-2680 v4 @ 2.40GHz" {
		t.Errorf("model name = %q", modelName)
	}
}

func TestParseCPUInfo_NoTopologyFields(t *testing.T) {
	// ARM kernels often omit physical id and core id entirely.
	const arm = `processor	: 0
model name	: ARMv8 Processor rev 3 (v8l)

processor	: 1
model name	: ARMv8 Processor rev 3 (v8l)

processor	: 2
model name	: ARMv8 Processor rev 3 (v8l)

processor	: 3
model name	: ARMv8 Processor rev 3 (v8l)
`

	cores, modelName := ParseCPUInfo(arm)
	if cores != 4 {
		t.Errorf("cores = %d, want 4", cores)
	}
	if modelName != "ARMv8 Processor rev 3 (v8l)" {
		t.Errorf("model name = %q", modelName)
	}
}

func TestParseCPUInfo_Empty(t *testing.T) {
	cores, modelName := ParseCPUInfo("")
	if cores != 0 || modelName != "" {
		t.Errorf("ParseCPUInfo(\"\") = (%d, %q), want (0, \"\")", cores, modelName)
	}
}

func TestParsePrettyName(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "ubuntu",
			content: "NAME=\"Ubuntu\"\nPRETTY_NAME=\"Ubuntu 22.04.3 LTS\"\nID=ubuntu\n",
			want:    "Ubuntu 22.04.3 LTS",
		},
		{
			name:    "unquoted",
			content: "PRETTY_NAME=Arch Linux\n",
			want:    "Arch Linux",
		},
		{
			name:    "missing",
			content: "NAME=\"Debian\"\nID=debian\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePrettyName(tt.content); got != tt.want {
				t.Errorf("ParsePrettyName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyBlockDevice(t *testing.T) {
	tests := []struct {
		name       string
		rotational string
		want       model.StorageType
	}{
		{"nvme0n1", "0", model.StorageNVMe},
		{"nvme1n1", "1", model.StorageNVMe}, // name wins over the flag
		{"sda", "0", model.StorageSSD},
		{"sda", "1", model.StorageHDD},
		{"vda", "", model.StorageUnknown},
	}

	for _, tt := range tests {
		if got := ClassifyBlockDevice(tt.name, tt.rotational); got != tt.want {
			t.Errorf("ClassifyBlockDevice(%q, %q) = %v, want %v", tt.name, tt.rotational, got, tt.want)
		}
	}
}

func TestIsVirtualBlockDevice(t *testing.T) {
	virtual := []string{"loop0", "ram1", "zram0", "dm-0", "sr0", "md127"}
	for _, name := range virtual {
		if !isVirtualBlockDevice(name) {
			t.Errorf("isVirtualBlockDevice(%q) = false, want true", name)
		}
	}
	physical := []string{"sda", "nvme0n1", "vda", "xvda", "mmcblk0"}
	for _, name := range physical {
		if isVirtualBlockDevice(name) {
			t.Errorf("isVirtualBlockDevice(%q) = true, want false", name)
		}
	}
}

func TestAvailableMemory(t *testing.T) {
	// A warm page cache leaves MemFree far below MemAvailable; the probe
	// must report the latter.
	stats := &memory.Stats{Free: 100 << 20, Available: 5 << 30}
	if got := availableMemory(stats); got != 5<<30 {
		t.Errorf("availableMemory() = %d, want Available (%d)", got, uint64(5<<30))
	}

	// Kernels without MemAvailable leave it zero.
	stats = &memory.Stats{Free: 100 << 20}
	if got := availableMemory(stats); got != 100<<20 {
		t.Errorf("availableMemory() = %d, want Free (%d)", got, uint64(100<<20))
	}
}

func TestDiskUsage(t *testing.T) {
	free, total, err := diskUsage(t.TempDir())
	if err != nil {
		t.Fatalf("diskUsage() error = %v", err)
	}
	if total == 0 {
		t.Error("total bytes = 0, want > 0")
	}
	if free > total {
		t.Errorf("free %d > total %d", free, total)
	}
}
