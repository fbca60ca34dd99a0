package cmd

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions, and read by Configure.
const (
	EnvDataset = "HAC_DATASET"
	EnvSite    = "HAC_SITE"
	EnvPlain   = "HAC_PLAIN"
	EnvVerbose = "HAC_VERBOSE"
)

// RunExtension attempts to find and execute an external hac-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "hac-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("no extension in PATH", "name", name, "err", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// global flags are passed as environment variables
	cmd.Env = append(os.Environ(),
		EnvDataset+"="+*datasetFile,
		EnvSite+"="+*siteFile,
		EnvPlain+"="+strconv.FormatBool(*plain),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		slog.Error("cannot execute extension", "name", name, "err", err)
		return true, 1
	}
	return true, 0
}
