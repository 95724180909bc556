package section

import (
	"math"
	"sort"
)

// Check is one profile evaluated against the required section properties.
// Utilisations are requirement/capacity, so <= 1 passes.
type Check struct {
	Profile
	ULSUtil float64 `json:"uls_utilisation"`
	SLSUtil float64 `json:"sls_utilisation"`
	PassULS bool    `json:"pass_uls"`
	PassSLS bool    `json:"pass_sls"`
	Pass    bool    `json:"pass"`
}

// Evaluate computes utilisations for every profile and orders the table the
// way the results view shows it: passing profiles first, most efficient
// (highest SLS utilisation) on top, then failing profiles closest to passing
// first. Profiles with zero capacity are treated as failing.
func Evaluate(profiles []Profile, zReqCm3, iReqCm4 float64) []Check {
	checks := make([]Check, 0, len(profiles))
	for _, p := range profiles {
		c := Check{Profile: p, ULSUtil: math.Inf(1), SLSUtil: math.Inf(1)}
		if p.ZCm3 > 0 {
			c.ULSUtil = zReqCm3 / p.ZCm3
		}
		if p.ICm4 > 0 {
			c.SLSUtil = iReqCm4 / p.ICm4
		}
		c.PassULS = c.ULSUtil <= 1.0
		c.PassSLS = c.SLSUtil <= 1.0
		c.Pass = c.PassULS && c.PassSLS
		checks = append(checks, c)
	}

	sort.SliceStable(checks, func(i, j int) bool {
		a, b := checks[i], checks[j]
		if a.Pass != b.Pass {
			return a.Pass
		}
		if a.Pass {
			return a.SLSUtil > b.SLSUtil
		}
		return math.Max(a.ULSUtil, a.SLSUtil) < math.Max(b.ULSUtil, b.SLSUtil)
	})
	return checks
}

// Recommend picks the passing profile at minimum depth, breaking depth ties
// by the highest combined utilisation (closest to fully used). Returns nil
// when nothing passes.
func Recommend(checks []Check) *Check {
	var best *Check
	for i := range checks {
		c := &checks[i]
		if !c.Pass {
			continue
		}
		if best == nil || c.DepthMM < best.DepthMM ||
			(c.DepthMM == best.DepthMM && c.distance() > best.distance()) {
			best = c
		}
	}
	return best
}

func (c *Check) distance() float64 {
	return math.Sqrt(c.ULSUtil*c.ULSUtil + c.SLSUtil*c.SLSUtil)
}
