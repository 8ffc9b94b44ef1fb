package python

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	domain "osmcad/internal/domain/conversion"
)

// defaultInterpreters are probed in order; the first that answers a
// --version call is used.
var defaultInterpreters = []string{"python3", "python"}

// Runner wraps invocations of the external OSM-to-DXF converter script.
type Runner struct {
	ScriptPath   string
	Interpreters []string
}

// NewRunner creates a converter adapter for the given script path.
func NewRunner(scriptPath string) *Runner {
	return &Runner{ScriptPath: scriptPath, Interpreters: defaultInterpreters}
}

// Locate probes the candidate interpreters and returns the first usable
// one. Probe failures are not errors, only "nothing available".
func (r *Runner) Locate() (string, bool) {
	for _, name := range r.Interpreters {
		if err := exec.Command(name, "--version").Run(); err == nil {
			return name, true
		}
	}
	return "", false
}

// Run executes the converter and streams its stdout line by line into
// onOutput. A non-zero exit returns an error carrying the captured stderr.
func (r *Runner) Run(ctx context.Context, interpreter, inputPath, outputPath, statsPath string, opts domain.Options, onOutput func(chunk string)) error {
	args := buildArgs(r.ScriptPath, inputPath, outputPath, statsPath, opts)
	cmd := exec.CommandContext(ctx, interpreter, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s failed to start: %w", interpreter, err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if onOutput != nil {
			onOutput(scanner.Text() + "\n")
		}
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", interpreter, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func buildArgs(script, inputPath, outputPath, statsPath string, opts domain.Options) []string {
	args := []string{
		script,
		inputPath,
		"-o", outputPath,
		"--projection", opts.Projection,
		"--plan-type", string(opts.PlanType),
	}
	if !opts.UseColors {
		args = append(args, "--no-colors")
	}
	if statsPath != "" {
		args = append(args, "--stats-output", statsPath)
	}
	return args
}
