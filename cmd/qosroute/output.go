package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/qosroute/qos"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPath(p []int) string {
	if len(p) == 0 {
		return "-"
	}
	s := make([]string, len(p))
	for i, v := range p {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, " -> ")
}

func writeResult(w io.Writer, r qos.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "algorithm:\t%s\n", r.Algorithm)
	fmt.Fprintf(tw, "status:\t%s\n", r.Status)
	fmt.Fprintf(tw, "path:\t%s\n", formatPath(r.Path))
	if r.Status != qos.StatusNoPath {
		b := r.Breakdown
		fmt.Fprintf(tw, "delay:\t%.4f ms\n", b.TotalDelay)
		fmt.Fprintf(tw, "reliability cost:\t%.4f\n", b.ReliabilityCost)
		fmt.Fprintf(tw, "resource cost:\t%.4f\n", b.ResourceCost)
		fmt.Fprintf(tw, "total cost:\t%.4f\n", b.TotalCost)
	}
	if r.Note != "" {
		fmt.Fprintf(tw, "note:\t%s\n", r.Note)
	}
	fmt.Fprintf(tw, "run id:\t%s\n", r.RunID)
	return tw.Flush()
}

// writeTable prints one row per result; label heads the first column.
func writeTable(w io.Writer, label string, keys []string, rs []qos.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tSTATUS\tDELAY\tREL.COST\tRES.COST\tTOTAL\tPATH\n", strings.ToUpper(label))
	for i, r := range rs {
		b := r.Breakdown
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%s\n",
			keys[i], r.Status, b.TotalDelay, b.ReliabilityCost, b.ResourceCost, b.TotalCost, formatPath(r.Path))
	}
	return tw.Flush()
}
