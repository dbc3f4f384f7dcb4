package utils

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const SeriesSeparator = "|"

func formatKV(w io.Writer, key string, value string) (int, error) {
	return fmt.Fprintf(w, "%s=%s", key, value)
}

func printSep(w io.Writer) (int, error) {
	return fmt.Fprintf(w, "%s", SeriesSeparator)
}

// SeriesID identifies one time series: a metric name plus its label set.
type SeriesID struct {
	Name   string
	Labels map[string]string
}

// Canonical renders the series as "__name__=<name>|k1=v1|k2=v2" with label keys sorted.
func (s SeriesID) Canonical() string {
	keys := make([]string, 0, len(s.Labels))
	for k := range s.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	formatKV(&b, "__name__", s.Name)
	for _, k := range keys {
		printSep(&b)
		formatKV(&b, k, s.Labels[k])
	}

	return b.String()
}
