package ai

import "strings"

const (
	maxReportedChanges = 10
	minChangeLineLen   = 10
)

// diffChanges summarizes what an enhancement added: lines present in the
// enhanced resume but not in the original, compared case-insensitively on the
// raw lines. Re-indented or reflowed text therefore counts as a change.
// Reported lines are trimmed, short fragments are skipped, and the list is
// capped. The result is a sample of the additions, not an ordered diff, so no
// ordering is promised.
func diffChanges(original, enhanced string) []string {
	originalLines := make(map[string]struct{})
	for _, line := range strings.Split(strings.ToLower(original), "\n") {
		originalLines[line] = struct{}{}
	}

	added := make(map[string]struct{})
	for _, line := range strings.Split(strings.ToLower(enhanced), "\n") {
		if _, ok := originalLines[line]; ok {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= minChangeLineLen {
			continue
		}
		added[trimmed] = struct{}{}
	}

	changes := make([]string, 0, len(added))
	for line := range added {
		if len(changes) == maxReportedChanges {
			break
		}
		changes = append(changes, line)
	}
	return changes
}
