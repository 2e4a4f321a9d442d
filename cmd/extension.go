package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external cookies-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// Extensions receive the global flags as environment variables, so that they
// can reconcile the same exports.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "cookies-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if verbose() {
			log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvDCFile+"="+DCFile())
	cmd.Env = append(cmd.Env, EnvSCFile+"="+SCFile())
	cmd.Env = append(cmd.Env, EnvConfig+"="+ConfigFile())
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(verbose()))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
