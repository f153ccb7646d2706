package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/apsp/johnson"
)

// render writes the distance matrix. aligned pads columns with a header row
// and row labels for terminals; otherwise rows are space-separated.
func render(w io.Writer, res *johnson.Result, aligned bool) error {
	if !aligned {
		_, err := io.WriteString(w, res.String())
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	n := res.N()
	header := make([]string, 0, n+1)
	header = append(header, "")
	for j := 0; j < n; j++ {
		header = append(header, fmt.Sprint(j))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for i := 0; i < n; i++ {
		row, err := res.Row(i)
		if err != nil {
			return err
		}
		cells := make([]string, 0, n+1)
		cells = append(cells, fmt.Sprint(i))
		for _, d := range row {
			cells = append(cells, johnson.FormatDistance(d))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	return tw.Flush()
}

// renderPaths writes "i→j: v0 v1 … (d)" for every reachable pair i ≠ j.
func renderPaths(w io.Writer, res *johnson.Result) error {
	n := res.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !res.Reachable(i, j) {
				continue
			}
			p, err := res.Path(i, j)
			if err != nil {
				return err
			}
			d, _ := res.At(i, j)
			parts := make([]string, len(p))
			for k, v := range p {
				parts[k] = fmt.Sprint(v)
			}
			if _, err = fmt.Fprintf(w, "%d→%d: %s (%d)\n", i, j, strings.Join(parts, " "), d); err != nil {
				return err
			}
		}
	}

	return nil
}
