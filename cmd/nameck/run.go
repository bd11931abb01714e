package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/pcj/mobyprogress"

	"github.com/stackb/nameset/pkg/manifest"
	"github.com/stackb/nameset/pkg/nameset"
	"github.com/stackb/nameset/pkg/segment"
	"github.com/stackb/nameset/pkg/segspec"
)

func run(cfg *Config, stdout, stderr io.Writer) error {
	var progress mobyprogress.Output
	if cfg.Progress {
		progress = mobyprogress.NewProgressOutput(mobyprogress.NewOut(stderr))
	}

	filenames, err := collectFiles(cfg)
	if err != nil {
		return err
	}

	specs, err := segspec.ReadSegmentSpecs(filenames)
	if err != nil {
		return err
	}
	writeLoadProgress(progress, len(filenames), len(specs))

	set, err := segspec.NewSet(specs)
	if err != nil {
		return err
	}

	ns := nameset.New(nameset.WithLogger(cfg.Logger))
	ns.Update(set)
	writeIndexProgress(progress, ns.Stats(), len(cfg.Drop) == 0)

	if len(cfg.Drop) > 0 {
		for _, id := range cfg.Drop {
			if set, err = dropSegment(set, id); err != nil {
				return err
			}
		}
		ns.Update(set)
		writeIndexProgress(progress, ns.Stats(), true)
	}

	q := &querier{
		nameset: ns,
		reader:  nameset.NewReader(ns),
		out:     stdout,
		dump:    cfg.Dump,
	}
	q.labels(cfg.Labels)
	q.symbols(cfg.Symbols)
	q.floats(cfg.Floats)
	q.disjoint(cfg.Disjoint)
	if cfg.GlobalDvs {
		q.globalDvs()
	}
	return q.err
}

// dropSegment removes the segment from both the collection and its order.
func dropSegment(set *segment.Set, id segment.SegmentID) (*segment.Set, error) {
	order, ok := set.Order.(*segment.ListOrder)
	if !ok || !order.Contains(id) {
		return nil, fmt.Errorf("-drop: unknown segment %d", id)
	}
	next := set.Without(id)
	next.Order = order.Remove(id)
	return next, nil
}

func collectFiles(cfg *Config) ([]string, error) {
	var filenames []string
	if cfg.Manifest != "" {
		m, err := manifest.LoadFile(cfg.Manifest, func(format string, args ...any) {
			cfg.Logger.Info().Msgf(format, args...)
		})
		if err != nil {
			return nil, err
		}
		filenames = append(filenames, m.Segments...)
	}
	return append(filenames, cfg.Files...), nil
}

func writeLoadProgress(output mobyprogress.Output, files, segments int) {
	if output == nil {
		return
	}
	output.WriteProgress(mobyprogress.Progress{
		ID:      "load",
		Message: fmt.Sprintf("read %d segments from %d files", segments, files),
	})
}

func writeIndexProgress(output mobyprogress.Output, stats nameset.Stats, lastUpdate bool) {
	if output == nil {
		return
	}
	output.WriteProgress(mobyprogress.Progress{
		ID:         "index",
		Action:     "indexing",
		Current:    int64(stats.Segments),
		Total:      int64(stats.Segments),
		Units:      "segments",
		LastUpdate: lastUpdate,
	})
}

// querier prints lookup results, remembering the first write error.
type querier struct {
	nameset *nameset.Nameset
	reader  *nameset.Reader
	out     io.Writer
	dump    bool
	err     error
}

func (q *querier) printf(format string, args ...any) {
	if q.err != nil {
		return
	}
	_, q.err = fmt.Fprintf(q.out, format, args...)
}

func (q *querier) dumpValue(v any) {
	if q.dump && q.err == nil {
		spew.Fdump(q.out, v)
	}
}

func (q *querier) labels(names []string) {
	for _, name := range names {
		got, ok := q.reader.LookupLabel(name)
		if !ok {
			q.printf("label %s: not found\n", name)
			continue
		}
		q.printf("label %s: %v\n", name, got.Address)
		q.dumpValue(got)
	}
}

func (q *querier) symbols(names []string) {
	for _, name := range names {
		got, ok := q.reader.LookupSymbol(name)
		if !ok {
			q.printf("symbol %s: not found\n", name)
			continue
		}
		constAddress := "none"
		if got.ConstAddress != nil {
			constAddress = got.ConstAddress.String()
		}
		q.printf("symbol %s: %v %v at %v (constant at %s)\n", name, got.Type, got.Atom, got.Address, constAddress)
		q.dumpValue(got)
	}
}

func (q *querier) floats(names []string) {
	for _, name := range names {
		got, ok := q.reader.LookupFloat(name)
		if !ok {
			q.printf("float %s: not found\n", name)
			continue
		}
		q.printf("float %s: %s %s %s at %v\n", name, got.Label, got.Typecode, name, got.Address)
		q.dumpValue(got)
	}
}

func (q *querier) disjoint(names []string) {
	for _, name := range names {
		a, err := q.nameset.Atom(name)
		if err != nil {
			q.printf("disjoint %s: not found\n", name)
			continue
		}
		q.printf("disjoint %s:", name)
		for _, v := range q.reader.DisjointFrom(a) {
			q.printf(" %s", q.nameset.AtomName(v))
		}
		q.printf("\n")
	}
}

func (q *querier) globalDvs() {
	for _, dv := range q.reader.LookupGlobalDv() {
		q.printf("dv %v:", dv.Address)
		for _, v := range dv.Vars {
			q.printf(" %s", q.nameset.AtomName(v))
		}
		q.printf("\n")
		q.dumpValue(dv)
	}
}

