package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"sort"
	"strconv"
	"strings"

	lazysort "github.com/scale-rs/lazysort-linear-mem"
	"github.com/scale-rs/lazysort-linear-mem/loser"
	"github.com/scale-rs/lazysort-linear-mem/metrics"
	"github.com/scale-rs/lazysort-linear-mem/monitoring"
)

const stdinName = "-"

type input struct {
	name   string
	values []float64
}

type params struct {
	limit   int
	reverse bool
	opts    []lazysort.Option
	logger  monitoring.Logger
	metrics *metrics.Registry
}

// readInputs reads every named file, or stdin when there are none.
func readInputs(names []string, stdin io.Reader) ([]input, error) {
	if len(names) == 0 {
		values, err := readNumbers(stdinName, stdin)
		if err != nil {
			return nil, err
		}
		return []input{{name: stdinName, values: values}}, nil
	}

	inputs := make([]input, 0, len(names))
	for _, name := range names {
		values, err := readFile(name)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: name, values: values})
	}
	return inputs, nil
}

func readFile(name string) ([]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readNumbers(name, f)
}

// readNumbers parses whitespace separated numbers.
func readNumbers(name string, r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []float64
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q", name, scanner.Text())
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return values, nil
}

// topK writes the first p.limit values of the merged inputs to w, one per line. Each input
// gets its own session, so an input only sorts as far as the merge reads from it.
func topK(w io.Writer, inputs []input, p params) error {
	less := lazysort.Less[float64]
	if p.reverse {
		less = lazysort.Greater[float64]
	}
	opts := append(p.opts[:len(p.opts):len(p.opts)], lazysort.WithLogger(p.logger))

	sessions := make([]*lazysort.Sorter[float64], 0, len(inputs))
	seqs := make([]iter.Seq[float64], 0, len(inputs))
	for _, in := range inputs {
		s, err := lazysort.NewOrdered(in.values, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		sessions = append(sessions, s)
		if p.reverse {
			seqs = append(seqs, s.Backward())
		} else {
			seqs = append(seqs, s.All())
		}
	}

	bw := bufio.NewWriter(w)
	n := 0
	for v := range loser.Merge(less, seqs...) {
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		bw.WriteByte('\n')
		n++
		if p.limit > 0 && n == p.limit {
			break
		}
	}

	for i, s := range sessions {
		s.Close()
		if p.metrics != nil {
			s.Stats().Publish(p.metrics, map[string]string{"input": inputs[i].name})
		}
	}
	return bw.Flush()
}

// printStats writes every recorded metric value as name{labels} value.
func printStats(w io.Writer, reg *metrics.Registry) error {
	values := reg.GetMetrics()
	for _, name := range reg.Names() {
		for _, v := range values[name] {
			if _, err := fmt.Fprintf(w, "%s%s %g\n", name, formatLabels(v.Labels), v.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%q", k, labels[k])
	}
	b.WriteByte('}')
	return b.String()
}
