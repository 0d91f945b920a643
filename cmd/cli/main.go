// Command suspension-engine reads a session JSON from a file argument (or stdin),
// runs the kinematic analysis, and writes the report to stdout as JSON, CSV, or
// a Sufni suspension telemetry linkage file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cxd309/suspension-engine/internal/engine"
	"github.com/cxd309/suspension-engine/internal/kinematics"
	"github.com/cxd309/suspension-engine/internal/linkage"
	"github.com/cxd309/suspension-engine/internal/session"
)

func main() {
	format := flag.String("format", "json", "output format: json, csv or sst")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn or error")
	flag.Parse()

	if err := run(os.Stdout, *format, *logLevel, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run analyses the session in path (stdin when empty) and writes the report
// to w. The logger is flushed before it returns.
func run(w io.Writer, format, logLevel, path string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	defer logger.Sync()
	kinematics.SetLogger(logger)

	var data []byte
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	s, err := session.Parse(data)
	if err != nil {
		return err
	}

	report := engine.Run(s)
	logger.Info("analysis complete",
		zap.Stringer("id", report.ID),
		zap.String("name", report.Name),
		zap.Int("samples", report.Summary.Samples),
		zap.Int("degenerate", report.Summary.Degenerate),
	)

	if err := write(w, format, report); err != nil {
		return fmt.Errorf("writing %s output: %w", format, err)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func write(w io.Writer, format string, report engine.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		return enc.Encode(report)
	case "csv":
		return linkage.WriteCSV(w, report.Results)
	case "sst":
		return linkage.WriteSST(w, report.Results)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
