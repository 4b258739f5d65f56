package ai

import (
	"fmt"
	"strings"
	"testing"
)

func TestDiffChanges(t *testing.T) {
	original := "John Doe\nSoftware Engineer\nDeveloped internal tooling in Go"
	enhanced := "John Doe\n" +
		"Software Engineer\n" +
		"Developed internal tooling in Go\n" +
		"Deployed services to Kubernetes clusters\n" +
		"Go\n" // too short to report

	changes := diffChanges(original, enhanced)

	if len(changes) != 1 {
		t.Fatalf("diffChanges() = %v, want exactly one reported change", changes)
	}
	if changes[0] != "deployed services to kubernetes clusters" {
		t.Errorf("changes[0] = %q", changes[0])
	}
}

func TestDiffChangesIgnoresCase(t *testing.T) {
	original := "Led a team of five engineers"
	enhanced := "LED A TEAM OF FIVE ENGINEERS"

	changes := diffChanges(original, enhanced)
	if len(changes) != 0 {
		t.Errorf("diffChanges() = %v, want no changes for a case-only difference", changes)
	}
}

func TestDiffChangesReportsReindentedLines(t *testing.T) {
	original := "Led a team of five engineers"
	enhanced := "  Led a team of five engineers"

	// Raw lines are compared, so a whitespace-only reflow counts as a
	// change. The reported line is trimmed.
	changes := diffChanges(original, enhanced)
	if len(changes) != 1 {
		t.Fatalf("diffChanges() = %v, want the reindented line reported", changes)
	}
	if changes[0] != "led a team of five engineers" {
		t.Errorf("changes[0] = %q", changes[0])
	}
}

func TestDiffChangesCap(t *testing.T) {
	var lines []string
	for i := 0; i < 25; i++ {
		lines = append(lines, fmt.Sprintf("added accomplishment number %d for the record", i))
	}
	enhanced := strings.Join(lines, "\n")

	changes := diffChanges("original resume text", enhanced)
	if len(changes) != maxReportedChanges {
		t.Errorf("len(changes) = %d, want cap of %d", len(changes), maxReportedChanges)
	}

	// Every reported change must come from the enhanced text. Order is not
	// guaranteed, so check membership only.
	valid := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		valid[line] = struct{}{}
	}
	for _, change := range changes {
		if _, ok := valid[change]; !ok {
			t.Errorf("Unexpected change %q", change)
		}
	}
}

func TestDiffChangesShortLinesSkipped(t *testing.T) {
	changes := diffChanges("original", "ten chars!\nexactly 10\nthis one is long enough")
	if len(changes) != 1 {
		t.Fatalf("diffChanges() = %v, want only the long line", changes)
	}
	if changes[0] != "this one is long enough" {
		t.Errorf("changes[0] = %q", changes[0])
	}
}
