package inlineasm

import (
	"errors"
	"fmt"
	"log"

	"github.com/Urethramancer/inlineasm/token"
)

// Severity indicates how serious a diagnostic is.
type Severity int

const (
	// SeverityWarning is advisory and never stops a directive being built.
	SeverityWarning Severity = iota
	// SeverityError marks the directive as wrong, though parsing goes on.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic messages.
const (
	MsgTemplateNotLiteral = "inline assembly must be a string literal"
	MsgOutputLacksWrite   = "output operand constraint lacks '=' or '+'"
	MsgInputHasEquals     = "input operand constraint contains '='"
	MsgInputHasPlus       = "input operand constraint contains '+'"
	MsgClobberIsOption    = "expected a clobber, found an option"
	MsgUnknownOption      = "unrecognized option"
)

// Diagnostic is one message tied to a source location.
type Diagnostic struct {
	Severity Severity
	Span     token.Span
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Span, d.Severity, d.Message)
}

// Error lets a diagnostic travel as an error value.
func (d Diagnostic) Error() string {
	return d.String()
}

// Diagnostics is an ordered batch of messages from one directive.
type Diagnostics []Diagnostic

func (ds *Diagnostics) add(sev Severity, span token.Span, msg string) {
	*ds = append(*ds, Diagnostic{Severity: sev, Span: span, Message: msg})
}

func (ds *Diagnostics) errorAt(span token.Span, msg string) {
	ds.add(SeverityError, span, msg)
}

func (ds *Diagnostics) warnAt(span token.Span, msg string) {
	ds.add(SeverityWarning, span, msg)
}

func (ds Diagnostics) filter(sev Severity) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Errors returns the error-severity entries.
func (ds Diagnostics) Errors() Diagnostics {
	return ds.filter(SeverityError)
}

// Warnings returns the warning-severity entries.
func (ds Diagnostics) Warnings() Diagnostics {
	return ds.filter(SeverityWarning)
}

// HasErrors reports whether any entry is an error.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Report hands every entry to sink in order.
func (ds Diagnostics) Report(sink Sink) {
	for _, d := range ds {
		switch d.Severity {
		case SeverityError:
			sink.Error(d.Span, d.Message)
		default:
			sink.Warning(d.Span, d.Message)
		}
	}
}

// Err joins the error-severity entries, or returns nil when there are none.
func (ds Diagnostics) Err() error {
	var errs []error
	for _, d := range ds.Errors() {
		errs = append(errs, d)
	}
	return errors.Join(errs...)
}

// Sink receives diagnostics. Calls must not block.
type Sink interface {
	Error(span token.Span, msg string)
	Warning(span token.Span, msg string)
}

// LogSink prints diagnostics prefixed with their position.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Error(span token.Span, msg string) {
	s.Logger.Printf("%s: error: %s", span, msg)
}

func (s LogSink) Warning(span token.Span, msg string) {
	s.Logger.Printf("%s: warning: %s", span, msg)
}
