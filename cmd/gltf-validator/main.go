// Package main implements the gltf-validator CLI tool.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	gv "github.com/gogltf/validator"
	"github.com/gogltf/validator/engine"
	"github.com/gogltf/validator/pkg/logger"
	"github.com/gogltf/validator/worker"
)

const usage = `gltf-validator - glTF 2.0 cross-reference validator

Usage:
  gltf-validator [options] <file>...
  gltf-validator [options] -          (read from stdin)
  cat scene.gltf | gltf-validator -

Examples:
  gltf-validator scene.gltf
  gltf-validator -output json scene.gltf
  gltf-validator -strict -dup-targets *.gltf

Options:
`

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Config holds CLI configuration.
type Config struct {
	Output      OutputFormat
	Strict      bool
	DupTargets  bool
	Workers     int
	Quiet       bool
	Verbose     bool
	ShowVersion bool
	Files       []string
}

// FileOutput is the JSON output structure for one validated file.
type FileOutput struct {
	File     string     `json:"file"`
	Valid    bool       `json:"valid"`
	Errors   int        `json:"errors"`
	Warnings int        `json:"warnings"`
	Issues   []gv.Issue `json:"issues,omitempty"`
	Failure  string     `json:"failure,omitempty"`
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	okColor      = color.New(color.FgGreen)
)

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("gltf-validator v%s (glTF %s)\n", gv.Version, gv.SupportedGLTFVersion)
		os.Exit(0)
	}

	if len(config.Files) == 0 {
		flag.Usage()
		os.Exit(0)
	}

	if config.Verbose {
		logger.SetLevel(logger.LevelDebug)
	} else if config.Quiet {
		logger.Disable()
	}

	os.Exit(run(config))
}

func parseFlags() *Config {
	config := &Config{}

	var output string
	flag.StringVar(&output, "output", "text", "Output format: text, json")
	flag.BoolVar(&config.Strict, "strict", false, "Treat warnings as errors")
	flag.BoolVar(&config.DupTargets, "dup-targets", false, "Report duplicate animation targets")
	flag.IntVar(&config.Workers, "workers", 0, "Workers for multi-file validation (0 = NumCPU)")
	flag.BoolVar(&config.Quiet, "quiet", false, "Suppress log output")
	flag.BoolVar(&config.Verbose, "verbose", false, "Show detailed output")
	flag.BoolVar(&config.ShowVersion, "v", false, "Show version")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	config.Output = OutputFormat(output)
	config.Files = flag.Args()
	return config
}

func run(config *Config) int {
	v := engine.New(
		gv.WithStrictMode(config.Strict),
		gv.WithDuplicateTargets(config.DupTargets),
		gv.WithWorkerCount(config.Workers),
	)

	jobs := make([]worker.Job, 0, len(config.Files))
	for _, file := range config.Files {
		data, err := readInput(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gltf-validator: %v\n", err)
			return 2
		}
		jobs = append(jobs, worker.Job{ID: file, Document: data})
	}

	results := validateAll(v, jobs, config.Workers)

	exitCode := 0
	for _, r := range results {
		if !printResult(config, r) {
			exitCode = 1
		}
	}
	return exitCode
}

// validateAll validates jobs, using the worker pool only when there is
// enough input to justify it.
func validateAll(v *engine.Validator, jobs []worker.Job, workers int) []*worker.JobResult {
	ctx := context.Background()

	if len(jobs) <= 2 {
		results := make([]*worker.JobResult, 0, len(jobs))
		for _, job := range jobs {
			result, err := v.ValidateBytes(ctx, job.Document)
			results = append(results, &worker.JobResult{ID: job.ID, Result: result, Error: err})
		}
		return results
	}

	pool := worker.NewPool(v, workers)
	for _, job := range jobs {
		pool.Submit(job)
	}
	batch := pool.CloseAndWait()

	// The pool finishes jobs in arbitrary order; report in input order.
	byID := make(map[string]*worker.JobResult, len(batch.Results))
	for _, r := range batch.Results {
		byID[r.ID] = r
	}
	results := make([]*worker.JobResult, 0, len(jobs))
	for _, job := range jobs {
		if r, ok := byID[job.ID]; ok {
			results = append(results, r)
		}
	}
	return results
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

// printResult reports one file's outcome, returning false if the file
// failed to decode or validate cleanly.
func printResult(config *Config, r *worker.JobResult) bool {
	if config.Output == OutputJSON {
		return printJSON(r)
	}
	return printText(config, r)
}

func printJSON(r *worker.JobResult) bool {
	out := FileOutput{File: r.ID}
	if r.Error != nil {
		out.Failure = r.Error.Error()
	} else {
		out.Valid = r.Result.Valid
		out.Errors = r.Result.ErrorCount()
		out.Warnings = r.Result.WarningCount()
		out.Issues = r.Result.Issues
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
	return r.Error == nil && out.Valid
}

func printText(config *Config, r *worker.JobResult) bool {
	if r.Error != nil {
		errorColor.Fprintf(os.Stdout, "%s: %v\n", r.ID, r.Error)
		return false
	}

	result := r.Result
	for _, issue := range result.Issues {
		switch {
		case issue.IsError():
			errorColor.Fprintf(os.Stdout, "  error  ")
		case issue.IsWarning():
			warningColor.Fprintf(os.Stdout, "  warn   ")
		default:
			fmt.Fprintf(os.Stdout, "  info   ")
		}
		fmt.Fprintf(os.Stdout, "%s at %s\n", issue.Diagnostics, issue.Path)
	}

	if result.Valid {
		if !config.Quiet {
			okColor.Fprintf(os.Stdout, "%s: valid\n", r.ID)
		}
		return true
	}
	errorColor.Fprintf(os.Stdout, "%s: %d error(s), %d warning(s)\n",
		r.ID, result.ErrorCount(), result.WarningCount())
	return false
}
