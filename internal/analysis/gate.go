package analysis

import (
	"fmt"
	"strings"

	"painreliefmap/domain/effect"
)

// CheckSufficiency enforces the minimum-sample-size policy before any
// statistic is computed. The floors exist because t-tests and bootstrap
// resampling are unreliable below them; the policy trades recall for
// precision. On failure the shortfall message states exactly how many more
// days of each window type the subject still needs, so callers can render
// guidance rather than a bare error.
func CheckSufficiency(before, after effect.AnalysisWindow, opts effect.Options) effect.GateResult {
	opts = opts.Normalize()

	needBefore := opts.MinBeforeDays - before.N()
	if needBefore < 0 {
		needBefore = 0
	}
	needAfter := opts.MinAfterDays - after.N()
	if needAfter < 0 {
		needAfter = 0
	}

	if needBefore == 0 && needAfter == 0 {
		return effect.GateResult{OK: true}
	}

	return effect.GateResult{
		OK:         false,
		NeedBefore: needBefore,
		NeedAfter:  needAfter,
		Shortfall:  shortfallMessage(needBefore, needAfter),
	}
}

func shortfallMessage(needBefore, needAfter int) string {
	var parts []string
	if needBefore > 0 {
		parts = append(parts, fmt.Sprintf("%d more %s of logging before starting this therapy", needBefore, dayWord(needBefore)))
	}
	if needAfter > 0 {
		parts = append(parts, fmt.Sprintf("%d more %s after starting this therapy", needAfter, dayWord(needAfter)))
	}
	return "Need " + strings.Join(parts, " and ")
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
