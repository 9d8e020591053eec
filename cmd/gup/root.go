package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/gup/internal/config"
	"github.com/raphi011/gup/internal/git"
	"github.com/raphi011/gup/internal/log"
	"github.com/raphi011/gup/internal/output"
	"github.com/raphi011/gup/internal/update"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jobs    int
	dirFlag string

	// Shared state injected into commands
	cfg *config.Config

	// Exit code computed from the update results
	exitCode int
)

// rootCmd is the base command; gup has no subcommands besides completion.
var rootCmd = &cobra.Command{
	Use:   "gup",
	Short: "Update the primary branch of your git repositories",
	Long: `gup brings the primary branch (master or main) of one repository or a
whole directory of repositories up to date with origin, without disturbing
your current work: it records your branch, stashes uncommitted changes,
fast-forwards master/main, and restores everything afterwards.

If the target directory is itself a git repository, only that repository is
updated. Otherwise every repository directly inside it is updated in
parallel.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		return git.CheckGit()
	},
	RunE: runRoot,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for the summary)
	ctx = output.WithPrinter(ctx, os.Stdout)
	ctx = config.WithConfig(ctx, cfg)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gup -h' for help")
		return 1
	}
	return exitCode
}

func runRoot(cmd *cobra.Command, _ []string) error {
	// Logger is created here, after cobra parsed the flags
	logger := log.New(os.Stderr, verbose, quiet)
	ctx := log.WithLogger(cmd.Context(), logger)
	p := output.FromContext(ctx)

	if t := cfg.GitTimeout(); t > 0 {
		git.SetDefaultTimeout(t)
	}

	dir, single, err := resolveTarget()
	if err != nil {
		return err
	}

	var paths []string
	if !single {
		paths, err = git.FindRepos(dir)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			p.Printf("No git repositories found in %s\n", dir)
			exitCode = update.ExitSuccess
			return nil
		}
		logger.Printf("Updating %d repositories in %s\n", len(paths), dir)
	}

	opts := update.Options{
		Workers: workerCount(),
		// Keep interleaved `$ git ...` logs readable
		Sequential: verbose,
	}

	start := time.Now()
	u := update.New()

	var results []update.Result
	if single {
		results = []update.Result{u.Update(ctx, dir, newRepoCallbacks(ctx))}
	} else {
		factory, stop := newWorkspaceCallbacks(ctx, len(paths))
		results = u.UpdateAll(ctx, paths, factory, opts)
		stop()
	}

	printSummary(p, results, time.Since(start))

	exitCode = update.ExitCode(results)
	return nil
}

// resolveTarget determines the directory to operate on and whether it is a
// single repository. Precedence: --dir flag, then the current directory if it
// is a repository, then the configured workspace directory, then the current
// directory.
func resolveTarget() (dir string, single bool, err error) {
	dir = dirFlag
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", false, fmt.Errorf("get working directory: %w", err)
		}
		if git.IsRepo(cwd) {
			return cwd, true, nil
		}
		if cfg.WorkspaceDir != "" {
			dir = cfg.WorkspaceDir
		} else {
			dir = cwd
		}
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", dirFlag, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", false, fmt.Errorf("directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", false, fmt.Errorf("%s is not a directory", dir)
	}

	return dir, git.IsRepo(dir), nil
}

// workerCount resolves the worker-pool size: flag, then config, then the
// built-in default.
func workerCount() int {
	if jobs > 0 {
		return jobs
	}
	if cfg.Jobs > 0 {
		return cfg.Jobs
	}
	return 0 // update.Options falls back to DefaultWorkers
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed (updates run sequentially)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output, print the summary only")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of repositories to update in parallel")
	rootCmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory to update instead of the current one")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newCompletionCmd())
}
