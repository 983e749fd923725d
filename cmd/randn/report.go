package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/fumitoshi0524/randn/tensor"
)

type report struct {
	op      string
	elapsed time.Duration
	summary tensor.Summary
}

func (r report) write(w io.Writer) {
	s := r.summary
	fmt.Fprintf(w, "run      %s\n", uuid.NewString())
	fmt.Fprintf(w, "op       %s\n", r.op)
	fmt.Fprintf(w, "values   %s (%s)\n", humanize.Comma(int64(s.Count)), humanize.IBytes(uint64(s.Count)*8))
	fmt.Fprintf(w, "elapsed  %s\n", r.elapsed)
	if s.Count == 0 {
		return
	}
	fmt.Fprintf(w, "mean     %.6f\n", s.Mean)
	fmt.Fprintf(w, "std      %.6f\n", s.StdDev)
	fmt.Fprintf(w, "min      %.6f\n", s.Min)
	fmt.Fprintf(w, "max      %.6f\n", s.Max)
}

// summarize describes each tensor in place and merges the results, so no
// values are copied.
func summarize(ts ...*tensor.Tensor) tensor.Summary {
	var s tensor.Summary
	for _, t := range ts {
		s = s.Merge(t.Describe())
	}
	return s
}
