package integrationtests

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"testing"
)

// findersBinary is built by "go build -o finders ./cmd/finders" at the repository root.
const findersBinary = "../finders"

// commandResult is the outcome of one finished command.
type commandResult struct {
	stdout   string
	stderr   string
	exitCode int
}

func runCommand(ctx context.Context, t *testing.T, cmdStr string,
	args ...string) (commandResult, error) {

	if _, err := os.Stat(cmdStr); err != nil {
		return commandResult{}, fmt.Errorf("no such executable '%s', please compile first: %v", cmdStr, err)
	}

	t.Log("Running command", cmdStr, strings.Join(args, " "))
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, cmdStr, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	t.Log("Done running command!", err)

	result := commandResult{
		stdout:   stdout.String(),
		stderr:   stderr.String(),
		exitCode: exitCodeFromError(err),
	}
	if _, ok := err.(*exec.ExitError); ok {
		// A non-zero exit code is part of the result.
		err = nil
	}
	return result, err
}

func exitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	if exitError, ok := err.(*exec.ExitError); ok {
		if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
			return status.ExitStatus()
		}
	}
	return -1
}
