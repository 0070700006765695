// Package model provides data models for the setup toolkit.
package model

import "time"

// CheckResult represents the outcome of a single pre-flight probe.
// Checks are fully independent: one failing never prevents the rest from
// running, and results carry no ordering dependency.
type CheckResult struct {
	Name     string `json:"name"`               // 检查项名称
	Passed   bool   `json:"passed"`             // 是否通过
	Detail   string `json:"detail,omitempty"`   // 人类可读的附加说明
	Optional bool   `json:"optional,omitempty"` // 可选项：失败不计入汇总
}

// CheckSummary provides aggregated statistics about a pre-flight run.
// Optional checks are excluded from the pass/fail counting.
type CheckSummary struct {
	Total  int `json:"total"`  // 检查总数
	Passed int `json:"passed"` // 通过数
	Failed int `json:"failed"` // 失败数
}

// AllPassed reports whether every counted check passed.
func (s *CheckSummary) AllPassed() bool {
	return s.Failed == 0
}

// NewCheckSummary builds a CheckSummary from a list of check results.
func NewCheckSummary(checks []*CheckResult) *CheckSummary {
	summary := &CheckSummary{}
	for _, c := range checks {
		if c == nil || c.Optional {
			continue
		}
		summary.Total++
		if c.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// PreflightResult is the complete outcome of a pre-flight run: the probe
// results, the hardware profile they were computed from, and the derived
// performance score.
type PreflightResult struct {
	StartedAt time.Time         `json:"started_at"` // 开始时间
	Duration  time.Duration     `json:"duration"`   // 总耗时
	Checks    []*CheckResult    `json:"checks"`     // 检查结果列表
	Summary   *CheckSummary     `json:"summary"`    // 汇总统计
	Profile   *HostProfile      `json:"profile"`    // 硬件快照
	Score     *PerformanceScore `json:"score"`      // 硬件评分
	Version   string            `json:"version"`    // 工具版本
}

// NewPreflightResult creates an empty PreflightResult with the start time set.
func NewPreflightResult(startedAt time.Time) *PreflightResult {
	return &PreflightResult{
		StartedAt: startedAt,
		Checks:    make([]*CheckResult, 0),
	}
}

// AddCheck appends a check result.
func (r *PreflightResult) AddCheck(c *CheckResult) {
	if c != nil {
		r.Checks = append(r.Checks, c)
	}
}

// Finalize computes the summary and the total duration.
func (r *PreflightResult) Finalize(endedAt time.Time) {
	r.Summary = NewCheckSummary(r.Checks)
	r.Duration = endedAt.Sub(r.StartedAt)
}
