// Package ui renders reqforge console output with lipgloss styles.
package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/reqforge/reqforge/pkg/httpreq"
	"github.com/reqforge/reqforge/pkg/mutant"
)

const dividerWidth = 60

// Printer writes styled console output to w.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer on w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Section prints a section header followed by a divider.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w, SectionStyle.Render("> "+title))
	fmt.Fprintln(p.w, DividerStyle.Render(strings.Repeat("-", dividerWidth)))
}

// Field prints one "label: value" line.
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.w, "  %s %s\n", LabelStyle.Render(label+":"), ValueStyle.Render(value))
}

// Request prints the structured view of a parsed request.
func (p *Printer) Request(req *httpreq.Request) {
	p.Section("Request")
	p.Field("method", req.Method())
	p.Field("target", TargetStyle.Render(req.TargetURI()))
	p.Field("version", req.Version())
	p.Field("kind", req.Kind().String())
	for _, f := range req.Header().Fields() {
		p.Field("header", f.Name+": "+f.Value)
	}
	if req.HasCookie() {
		for i, c := range req.Cookie().Pairs() {
			p.Field(fmt.Sprintf("cookie[%d]", i), c.Name+"="+c.Value)
		}
	}
	if req.Body() != "" {
		p.Field("body", fmt.Sprintf("%d bytes", len(req.Body())))
	}
}

// Mutant prints one mutant line in bracketed form:
//
//	[n] [kind] target value
func (p *Printer) Mutant(n int, m *mutant.Mutant) {
	var b strings.Builder
	b.WriteString(bracket(LabelStyle.Render(fmt.Sprintf("%d", n))))
	b.WriteString(bracket(KindStyle(m.Kind().Slug()).Render(m.Kind().Slug())))
	b.WriteString(TargetStyle.Render(m.TargetURI()))
	b.WriteByte(' ')
	b.WriteString(ValueHighlightStyle.Render(m.Value()))
	fmt.Fprintln(p.w, b.String())
	fmt.Fprintln(p.w, "    "+LabelStyle.Render(m.PrintValue()))
}

// Summary prints per-kind mutant counts sorted by kind name.
func (p *Printer) Summary(counts map[mutant.Kind]int, total int) {
	p.Section("Summary")
	kinds := make([]mutant.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].Slug() < kinds[j].Slug() })
	for _, k := range kinds {
		p.Field(k.Slug(), fmt.Sprintf("%d", counts[k]))
	}
	p.Field("total", fmt.Sprintf("%d", total))
}

// Success prints a success line.
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.w, SuccessStyle.Render("  [+] "+message))
}

// Warning prints a warning line.
func (p *Printer) Warning(message string) {
	fmt.Fprintln(p.w, WarningStyle.Render("  [!] "+message))
}

// Error prints an error line.
func (p *Printer) Error(message string) {
	fmt.Fprintln(p.w, ErrorStyle.Render("  [X] "+message))
}

func bracket(s string) string {
	return BracketStyle.Render("[") + s + BracketStyle.Render("] ")
}
