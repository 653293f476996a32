package diag

import (
	"graviton/internal/source"
)

// Reporter consumes diagnostics as they are produced by the lexer and
// parser. Реализации: BagReporter (кладёт в Bag), NopReporter,
// MultiReporter (fan-out).
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Note) {}

// MultiReporter forwards each diagnostic to every child reporter.
type MultiReporter struct{ Reporters []Reporter }

func (m MultiReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	for _, r := range m.Reporters {
		r.Report(code, sev, primary, msg, notes)
	}
}
