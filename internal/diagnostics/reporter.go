// Package diagnostics turns analysis results and parse failures into
// one uniform, structured report surface.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/machina-fsm/machina/internal/analysis"
	"github.com/machina-fsm/machina/pkg/domain"
	"github.com/machina-fsm/machina/pkg/schema"
)

// Severity ranks an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue codes emitted by the reporter. Parse-stage reports reuse the
// schema error codes directly.
const (
	CodeUnreachableState = "UNREACHABLE_STATE"
	CodeDeadEnd          = "DEAD_END"
	CodeCycleDetected    = "CYCLE_DETECTED"
	// CodeParseFailure is the fallback for load errors that carry no
	// schema error code.
	CodeParseFailure = "PARSE_FAILURE"
)

// Status is the overall report verdict.
type Status string

const (
	StatusValid   Status = "valid"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Issue is one finding: a code, a severity, a human message, an
// optional locating path and the state ids it concerns.
type Issue struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path,omitempty"`
	Related  []string `json:"related,omitempty"`
}

// Metrics summarizes graph size. Complexity is a cycle-count proxy
// (cycles + 1), a simplification rather than McCabe complexity.
type Metrics struct {
	StateCount      int `json:"stateCount"`
	TransitionCount int `json:"transitionCount"`
	Complexity      int `json:"complexity"`
}

// Report is the full diagnostic surface handed to callers, whether
// the failure happened before or after graph construction.
type Report struct {
	Status  Status  `json:"status"`
	Issues  []Issue `json:"issues"`
	Summary string  `json:"summary"`
	Metrics Metrics `json:"metrics"`
}

// Reporter builds reports. It is a pure transform; every call returns
// a fresh value.
type Reporter struct{}

// NewReporter creates a new reporter instance.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report converts a graph and its analysis into a diagnostic report:
// one warning per orphan, one warning per dead end, one info per
// cycle.
func (r *Reporter) Report(g *domain.MachineGraph, res *analysis.Result) *Report {
	var issues []Issue

	for _, id := range res.Orphans {
		issues = append(issues, Issue{
			Code:     CodeUnreachableState,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("State '%s' is unreachable from the initial state", id),
			Path:     "states." + id,
			Related:  []string{id},
		})
	}

	for _, id := range res.DeadEnds {
		issues = append(issues, Issue{
			Code:     CodeDeadEnd,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("State '%s' is reachable, not final, and has no outgoing transitions", id),
			Path:     "states." + id,
			Related:  []string{id},
		})
	}

	for _, cycle := range res.Cycles {
		issues = append(issues, Issue{
			Code:     CodeCycleDetected,
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("Cycle detected: %s", strings.Join(cycle, " -> ")),
			Related:  append([]string(nil), cycle...),
		})
	}

	metrics := Metrics{
		StateCount:      g.StateCount(),
		TransitionCount: g.TransitionCount(),
		Complexity:      len(res.Cycles) + 1,
	}

	report := &Report{
		Status:  overallStatus(issues),
		Issues:  issues,
		Metrics: metrics,
	}
	report.Summary = summarize(g.ID, report)
	return report
}

// ReportError converts a load failure into the same report shape: a
// single error issue and zero metrics.
func (r *Reporter) ReportError(err error) *Report {
	issue := Issue{
		Code:     CodeParseFailure,
		Severity: SeverityError,
		Message:  err.Error(),
	}
	if pe, ok := schema.AsParseError(err); ok {
		issue.Code = string(pe.Code)
		issue.Path = pe.Path
		issue.Message = pe.Message
	}

	return &Report{
		Status:  StatusError,
		Issues:  []Issue{issue},
		Summary: fmt.Sprintf("Machine definition is invalid: %s", issue.Message),
	}
}

func overallStatus(issues []Issue) Status {
	status := StatusValid
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			return StatusError
		case SeverityWarning:
			status = StatusWarning
		}
	}
	return status
}

func summarize(machineID string, report *Report) string {
	warnings, infos := 0, 0
	for _, issue := range report.Issues {
		switch issue.Severity {
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}

	base := fmt.Sprintf("Machine '%s': %d states, %d transitions",
		machineID, report.Metrics.StateCount, report.Metrics.TransitionCount)
	if warnings == 0 && infos == 0 {
		return base + ", no issues found"
	}
	return fmt.Sprintf("%s, %d warning(s), %d informational finding(s)", base, warnings, infos)
}

// Markdown renders the report as a markdown document for terminal
// display.
func (r *Report) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Diagnostics: %s\n\n", r.Status)
	fmt.Fprintf(&sb, "%s\n\n", r.Summary)

	if len(r.Issues) > 0 {
		sb.WriteString("## Issues\n\n")
		for _, issue := range r.Issues {
			if issue.Path != "" {
				fmt.Fprintf(&sb, "- **%s** (%s) at `%s`: %s\n", issue.Code, issue.Severity, issue.Path, issue.Message)
			} else {
				fmt.Fprintf(&sb, "- **%s** (%s): %s\n", issue.Code, issue.Severity, issue.Message)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Metrics\n\n")
	fmt.Fprintf(&sb, "| States | Transitions | Complexity |\n|---|---|---|\n| %d | %d | %d |\n",
		r.Metrics.StateCount, r.Metrics.TransitionCount, r.Metrics.Complexity)
	return sb.String()
}
