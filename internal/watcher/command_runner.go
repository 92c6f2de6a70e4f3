package watcher

import (
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// CommandRunner runs a shell-style command line, streaming its output to the
// current process
type CommandRunner struct {
	name   string
	args   []string
	logger *zap.Logger
}

// NewCommandRunner parses a command line like "go test ./..." into a runner
func NewCommandRunner(commandLine string, logger *zap.Logger) (*CommandRunner, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, os.ErrInvalid
	}
	return &CommandRunner{
		name:   fields[0],
		args:   fields[1:],
		logger: logger,
	}, nil
}

// Run executes the command once and waits for it to finish
func (r *CommandRunner) Run() error {
	r.logger.Info("Running command",
		zap.String("command", r.name),
		zap.Strings("args", r.args),
	)

	cmd := exec.Command(r.name, r.args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
