// Command repocheck verifies that a git worktree has no uncommitted changes
// before cloud operations. CI consumes its exit code:
//
//	0  clean
//	1  uncommitted changes present
//	2  tool error (not a repository, status failure)
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mfigueroa/finlib/logging"
	"github.com/mfigueroa/finlib/repocheck"
)

const maxListed = 5

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("repocheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	strict := fs.Bool("strict", false, "also treat untracked files as uncommitted changes")
	repoDir := fs.String("repo", ".", "repository path (searched upward for .git)")
	quiet := fs.Bool("quiet", false, "suppress the report, exit code only")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logging.New(logging.Config{Level: *logLevel, Pretty: true})

	rep, err := repocheck.Check(*repoDir)
	if err != nil {
		log.Error().Err(err).Str("repo", *repoDir).Msg("status check failed")
		return 2
	}
	log.Debug().
		Int("staged", len(rep.Staged)).
		Int("modified", len(rep.Modified)).
		Int("untracked", len(rep.Untracked)).
		Msg("worktree status")

	if !*quiet {
		printReport(stdout, rep, *strict)
	}

	if rep.Dirty(*strict) {
		return 1
	}
	return 0
}

func printReport(w io.Writer, rep repocheck.Report, strict bool) {
	if !rep.Dirty(strict) {
		fmt.Fprintln(w, "No uncommitted changes.")
		if len(rep.Untracked) > 0 {
			fmt.Fprintf(w, "%d untracked file(s) present (use -strict to fail on them).\n", len(rep.Untracked))
		}
		return
	}

	fmt.Fprintln(w, "Uncommitted changes detected:")
	printGroup(w, "staged, not committed", rep.Staged)
	printGroup(w, "modified, not staged", rep.Modified)
	if strict {
		printGroup(w, "untracked", rep.Untracked)
	} else if len(rep.Untracked) > 0 {
		fmt.Fprintf(w, "%d untracked file(s) present (use -strict to fail on them).\n", len(rep.Untracked))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commit (git add . && git commit), discard (git restore .), or stash (git stash) before retrying.")
}

func printGroup(w io.Writer, label string, files []string) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintf(w, "%d file(s) %s:\n", len(files), label)
	for i, f := range files {
		if i == maxListed {
			fmt.Fprintf(w, "   ... and %d more\n", len(files)-maxListed)
			break
		}
		fmt.Fprintf(w, "   - %s\n", f)
	}
}
