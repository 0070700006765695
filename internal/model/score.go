// Package model provides data models for the setup toolkit.
package model

// Tier is the discrete performance grade derived from the overall score.
type Tier string

const (
	TierExcellent Tier = "Excellent" // ≥ 90
	TierVeryGood  Tier = "Very Good" // ≥ 75
	TierGood      Tier = "Good"      // ≥ 60
	TierFair      Tier = "Fair"      // ≥ 45
	TierPoor      Tier = "Poor"      // < 45
)

// PerformanceScore holds the component scores, the unweighted overall mean,
// and the resulting tier. It is a pure function of HostProfile and carries
// no mutable state.
type PerformanceScore struct {
	CPU      int     `json:"cpu"`      // CPU 评分 [0,100]
	Memory   int     `json:"memory"`   // 内存评分 [0,100]
	Storage  int     `json:"storage"`  // 存储评分 [0,100]
	Overall  float64 `json:"overall"`  // 三项算术平均
	Tier     Tier    `json:"tier"`     // 性能等级
	Adequate bool    `json:"adequate"` // 是否满足最低硬件要求（overall ≥ 45）
}
