package main

import (
	"io"

	"github.com/reqforge/reqforge/pkg/defaults"
	"github.com/reqforge/reqforge/pkg/jsonutil"
	"github.com/reqforge/reqforge/pkg/mutant"
	"github.com/reqforge/reqforge/pkg/ui"
)

func writeMutants(w io.Writer, opts *mutateOptions, runID, target, method string, mutants []*mutant.Mutant) error {
	switch opts.format {
	case defaults.FormatJSON:
		report := mutateReport{
			RunID:   runID,
			Target:  target,
			Method:  method,
			Count:   len(mutants),
			ByKind:  make(map[string]int),
			Mutants: make([]mutant.Record, 0, len(mutants)),
		}
		for k, n := range mutant.CountByKind(mutants) {
			report.ByKind[k.Slug()] = n
		}
		for _, m := range mutants {
			report.Mutants = append(report.Mutants, m.Record(opts.raw))
		}
		return jsonutil.WriteIndent(w, report)

	case defaults.FormatJSONL:
		lw := jsonutil.NewLineWriter(w)
		for _, m := range mutants {
			if err := lw.Write(m.Record(opts.raw)); err != nil {
				return err
			}
		}
		return lw.Flush()

	default:
		p := ui.NewPrinter(w)
		p.Section("Mutants of " + method + " " + target)
		for i, m := range mutants {
			p.Mutant(i+1, m)
		}
		p.Summary(mutant.CountByKind(mutants), len(mutants))
		return nil
	}
}
