package validate

import (
	"fmt"
	"strings"

	"editorbot/internal/plan"
)

// Error is one validation finding.
type Error struct {
	Code     Code     `json:"code" yaml:"code"`
	Message  string   `json:"message" yaml:"message"`
	Location string   `json:"location" yaml:"location"`
	Severity Severity `json:"severity" yaml:"severity"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s %s at %s: %s", e.Severity, e.Code, e.Location, e.Message)
}

// Result collects every finding for one plan.
type Result struct {
	Passed       bool    `json:"passed" yaml:"passed"`
	Errors       []Error `json:"errors" yaml:"errors"`
	FatalCount   int     `json:"fatal_count" yaml:"fatal_count"`
	WarningCount int     `json:"warning_count" yaml:"warning_count"`
}

// Fatal returns the fatal findings in rule order.
func (r Result) Fatal() []Error { return r.filter(Fatal) }

// Warnings returns the warning findings in rule order.
func (r Result) Warnings() []Error { return r.filter(Warning) }

func (r Result) filter(severity Severity) []Error {
	var out []Error
	for _, e := range r.Errors {
		if e.Severity == severity {
			out = append(out, e)
		}
	}
	return out
}

// Summary is a one-line description of the result.
func (r Result) Summary() string {
	if r.Passed {
		if r.WarningCount == 0 {
			return "validation passed"
		}
		return fmt.Sprintf("validation passed with %d warning(s)", r.WarningCount)
	}
	return fmt.Sprintf("validation failed: %d fatal, %d warning(s)", r.FatalCount, r.WarningCount)
}

// FatalMessages joins the fatal messages with "; ".
func (r Result) FatalMessages() string {
	fatal := r.Fatal()
	messages := make([]string, 0, len(fatal))
	for _, e := range fatal {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, "; ")
}

type rule func(p plan.Plan) []Error

var rules = []rule{
	checkResolution,
	checkDuration,
	checkScenes,
	checkAudioTracks,
	checkSubtitles,
	checkOutput,
	checkKinds,
}

// Validate runs every rule against p.
func Validate(p plan.Plan) Result {
	var errs []Error
	for _, check := range rules {
		errs = append(errs, check(p)...)
	}
	result := Result{Errors: errs}
	for _, e := range errs {
		switch e.Severity {
		case Fatal:
			result.FatalCount++
		case Warning:
			result.WarningCount++
		}
	}
	result.Passed = result.FatalCount == 0
	return result
}

func fatal(code Code, location, format string, args ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...), Location: location, Severity: Fatal}
}

func warning(code Code, location, format string, args ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...), Location: location, Severity: Warning}
}
