package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/diversity/mdp"
)

// Report formats.
const (
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// column is one report column: a header and how to render a row.
type column struct {
	header string
	value  func(Summary) string
}

var (
	colProblem = column{"Problem", func(s Summary) string { return problem(s) }}
	colN       = column{"n", func(s Summary) string { return strconv.Itoa(s.N) }}
	colK       = column{"k", func(s Summary) string { return strconv.Itoa(s.K) }}
	colM       = column{"m", func(s Summary) string { return strconv.Itoa(s.Case.Options.Size) }}
	colIter    = column{"Iter", func(s Summary) string { return strconv.Itoa(s.Case.Options.Iterations) }}
	colRCL     = column{`\|LRC\|`, func(s Summary) string { return strconv.Itoa(s.Case.Options.RCLSize) }}
	colTenure  = column{"Tabu tenure", func(s Summary) string { return strconv.Itoa(s.Case.Options.Tenure) }}
	colZ       = column{"z", func(s Summary) string { return strconv.FormatFloat(s.Z.Best, 'f', 3, 64) }}
	colS       = column{"S", func(s Summary) string { return s.Best.Solution }}
	colCPU     = column{"CPU", func(s Summary) string { return strconv.FormatFloat(s.CPU.Mean, 'f', 0, 64) }}
	colNodes   = column{"number of generated nodes", func(s Summary) string { return strconv.Itoa(s.Best.Generated) }}
)

// columnsFor returns the Markdown layout of an algorithm's report.
func columnsFor(a mdp.Algorithm) []column {
	lead := []column{colProblem, colN, colK, colM}
	tail := []column{colZ, colS, colCPU}
	switch a {
	case mdp.AlgoRandomizedGreedy:
		return append(append(lead, colRCL), tail...)
	case mdp.AlgoGRASP:
		return append(append(lead, colIter, colRCL), tail...)
	case mdp.AlgoTabu:
		return append(append(lead, colIter, colTenure), tail...)
	case mdp.AlgoBranchAndBound, mdp.AlgoDeepBranchBound:
		return append(append(lead, tail...), colNodes)
	default:
		return append(lead, tail...)
	}
}

func problem(s Summary) string {
	if s.Case.Instance.Path != "" {
		return s.Case.Instance.Path
	}

	return s.Case.Instance.Name
}

// WriteMarkdown renders rows as a pipe table. The layout follows the
// algorithm of the first row; CPU is the mean run time in microseconds
// and z, S are those of the best run.
func WriteMarkdown(w io.Writer, rows []Summary) error {
	if len(rows) == 0 {
		return nil
	}
	cols := columnsFor(rows[0].Case.Options.Algorithm)

	var sb strings.Builder
	sb.WriteByte('|')
	for _, c := range cols {
		sb.WriteString(c.header)
		sb.WriteByte('|')
	}
	sb.WriteString("\n|")
	for range cols {
		sb.WriteString("---|")
	}
	sb.WriteByte('\n')
	for _, r := range rows {
		sb.WriteByte('|')
		for _, c := range cols {
			sb.WriteString(c.value(r))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

var csvHeader = []string{
	"experiment", "algorithm", "problem", "n", "k", "m",
	"iterations", "rcl_size", "tenure", "runs",
	"z_best", "z_mean", "z_std",
	"cpu_best_us", "cpu_mean_us", "cpu_std_us",
	"generated_nodes", "seed", "run_id", "solution",
}

// WriteCSV renders rows with full statistics, one line per case.
func WriteCSV(w io.Writer, rows []Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		o := r.Case.Options
		row := []string{
			r.Case.Experiment,
			string(o.Algorithm),
			problem(r),
			strconv.Itoa(r.N),
			strconv.Itoa(r.K),
			strconv.Itoa(o.Size),
			strconv.Itoa(o.Iterations),
			strconv.Itoa(o.RCLSize),
			strconv.Itoa(o.Tenure),
			strconv.Itoa(r.Z.N),
			ftoa(r.Z.Best),
			ftoa(r.Z.Mean),
			ftoa(r.Z.Std),
			ftoa(r.CPU.Best),
			ftoa(r.CPU.Mean),
			ftoa(r.CPU.Std),
			strconv.Itoa(r.Best.Generated),
			strconv.FormatInt(r.Best.Seed, 10),
			r.Best.ID.String(),
			r.Best.Solution,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteReports writes one file per experiment into dir, named after the
// experiment, and returns the paths in experiment order.
func WriteReports(dir, format string, rows []Summary) ([]string, error) {
	var (
		ext   string
		write func(io.Writer, []Summary) error
	)
	switch format {
	case FormatMarkdown, "":
		ext, write = ".md", WriteMarkdown
	case FormatCSV:
		ext, write = ".csv", WriteCSV
	default:
		return nil, fmt.Errorf("report format %q: unsupported", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var (
		order  []string
		groups = make(map[string][]Summary)
	)
	for _, r := range rows {
		if _, ok := groups[r.Case.Experiment]; !ok {
			order = append(order, r.Case.Experiment)
		}
		groups[r.Case.Experiment] = append(groups[r.Case.Experiment], r)
	}

	paths := make([]string, 0, len(order))
	for _, name := range order {
		path := filepath.Join(dir, name+ext)
		if err := writeFile(path, groups[name], write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeFile(path string, rows []Summary, write func(io.Writer, []Summary) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f, rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
