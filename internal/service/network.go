package service

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/go-resty/resty/v2"

	"kaspa-setup-tool/internal/model"
)

// checkDNS resolves the registry host. Pulling images is impossible without
// working name resolution, so this check is fatal.
func (c *Checker) checkDNS(ctx context.Context) []*model.CheckResult {
	cr := &model.CheckResult{Name: "DNS 解析"}

	cctx, cancel := context.WithTimeout(ctx, c.cfg.Checks.ProbeTimeout)
	defer cancel()

	addrs, err := net.DefaultResolver.LookupHost(cctx, c.cfg.Checks.ProbeHost)
	if err != nil || len(addrs) == 0 {
		cr.Detail = fmt.Sprintf("无法解析 %s，请检查网络或 DNS 配置", c.cfg.Checks.ProbeHost)
		return []*model.CheckResult{cr}
	}
	cr.Passed = true
	cr.Detail = fmt.Sprintf("%s -> %s", c.cfg.Checks.ProbeHost, strings.Join(addrs, ", "))
	return []*model.CheckResult{cr}
}

// checkHTTPS probes outbound HTTPS reachability. Some networks pass DNS but
// block outbound TLS traffic; the probe is advisory only and never fails the
// overall run.
func (c *Checker) checkHTTPS(ctx context.Context) []*model.CheckResult {
	cr := &model.CheckResult{Name: "HTTPS 连通性", Optional: true}

	client := resty.New().
		SetTimeout(c.cfg.Checks.ProbeTimeout).
		SetRetryCount(0)

	resp, err := client.R().SetContext(ctx).Get(c.cfg.Checks.ProbeURL)
	switch {
	case err != nil:
		cr.Detail = fmt.Sprintf("访问 %s 失败（不影响检查结论）: %v", c.cfg.Checks.ProbeURL, err)
	case resp.StatusCode() >= 500:
		cr.Detail = fmt.Sprintf("%s 返回 %d（不影响检查结论）", c.cfg.Checks.ProbeURL, resp.StatusCode())
	default:
		cr.Passed = true
		cr.Detail = fmt.Sprintf("%s 返回 %d", c.cfg.Checks.ProbeURL, resp.StatusCode())
	}
	return []*model.CheckResult{cr}
}
