package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/gitweb/internal/browse"
	"github.com/goliatone/gitweb/pkg/config"
	"github.com/goliatone/gitweb/pkg/di"
)

// cli carries the state shared between the cobra hooks of one invocation.
type cli struct {
	options []di.Option
	getEnv  func(string) string
	getwd   func() (string, error)

	container di.Container
	cfg       *config.Config
}

func newCLI(opts ...di.Option) *cli {
	return &cli{
		options: opts,
		getEnv:  os.Getenv,
		getwd:   os.Getwd,
	}
}

// newRootCommand creates the root cobra command with all subcommands
func newRootCommand() *cobra.Command {
	return newCLI().rootCommand()
}

func (c *cli) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitweb",
		Short: "Open the current repository on its hosting service",
		Long: `gitweb opens the web page of the current git repository in a browser.

It reads the URL of a remote (origin by default), works out the hosting
service and builds the page for the current branch, a given branch, tag or
commit, or the list of pull/merge requests.

Reference precedence: --commit, then --tag/--latest, then --branch, then the
checked out branch.

Browser selection: --browser, then $BROWSER, then the system default.
Pass --browser "" to print the URL instead of opening it.

Configuration Sources (in precedence order):
  1. Command-line flags (highest priority)
  2. Environment variables (GITWEB_*)
  3. Configuration file ($XDG_CONFIG_HOME/gitweb/config.yaml)
  4. Built-in defaults (lowest priority)

Exit Codes:
  0 - Success
  1 - Not in a git repository
  2 - No remote matching the given name
  3 - The remote has no URL
  4 - Not able to open the system browser
  5 - The given browser is not available
  6 - Unable to parse the remote URL
  7 - Unsupported view for an unknown provider
  8 - Configuration or flag usage error
  9 - Any other error

Examples:
  gitweb
  gitweb --branch develop
  gitweb --commit 1a2b3c4 --browser firefox
  gitweb --merge-request --remote upstream
  gitweb --latest --browser ""`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initializeContainer(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.cleanupContainer()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd)
		},
	}

	// Override Cobra's default error handling to use structured errors
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newConfigError("invalid flag usage", err)
	})

	config.AddFlags(cmd)

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return newConfigError(fmt.Sprintf("unexpected argument %q for %q", args[0], cmd.CommandPath()), nil)
	}
	return nil
}

// initializeContainer sets up the dependency injection container with configuration
func (c *cli) initializeContainer(cmd *cobra.Command) error {
	start := time.Now()

	var configFile string
	if cmd.Flags().Changed("config") {
		configFile, _ = cmd.Flags().GetString("config")
	}

	cfg, err := config.NewBuilder(config.WithEnvGetter(c.getEnv)).
		FromFile(configFile). // Use explicit config file or auto-discover
		FromEnv().            // Load from environment
		FromFlags(cmd).       // Load from command flags (highest precedence)
		Build()
	if err != nil {
		return newConfigError("failed to build configuration", err)
	}
	c.cfg = cfg

	options := []di.Option{
		di.WithConfig(cfg),
		di.WithLogOutput(cmd.ErrOrStderr()),
	}
	if cfg.Logging.Level == "debug" {
		options = append(options, di.WithInstrumentation())
	}
	options = append(options, c.options...)

	c.container, err = di.New(options...)
	if err != nil {
		return newConfigError("failed to initialize dependencies", err)
	}

	c.container.Logger().Debug("CLI container initialized",
		"command", cmd.CommandPath(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}

// cleanupContainer performs cleanup of container resources
func (c *cli) cleanupContainer() {
	if c.container == nil {
		return
	}
	if err := c.container.Close(); err != nil {
		c.container.Logger().Warn("Container cleanup errors", "error", err)
	}
}

// runBrowse resolves the reference and remote, builds the URL and either
// prints or opens it.
func (c *cli) runBrowse(cmd *cobra.Command) error {
	logger := c.container.Logger()
	cfg := c.cfg

	dir, err := c.getwd()
	if err != nil {
		return newGenericError("failed to determine working directory", err)
	}

	repo, err := c.container.OpenRepository(dir)
	if err != nil {
		return classify("not in a git repository", err)
	}

	sel := browse.Selection{
		Commit: cfg.Reference.Commit,
		Tag:    cfg.Reference.Tag,
		Branch: cfg.Reference.Branch,
	}
	if cfg.Reference.Latest && sel.Commit == "" && !cfg.MergeRequest {
		tag, err := repo.LatestTag()
		if err != nil {
			return classify("failed to resolve latest tag", err)
		}
		logger.Debug("resolved latest tag", "tag", tag)
		sel.Tag = tag
	}

	ref := browse.Resolve(sel, repo.CurrentBranch)
	logger.Debug("resolved reference", "kind", ref.Kind, "name", ref.Name)

	remoteURL, err := repo.RemoteURL(cfg.Remote)
	if err != nil {
		return classify(fmt.Sprintf("failed to read remote %q", cfg.Remote), err)
	}
	logger.Debug("resolved remote", "remote", cfg.Remote, "url", remoteURL)

	url, err := c.container.URLBuilder().URL(browse.Request{
		RemoteURL:     remoteURL,
		Reference:     ref,
		MergeRequests: cfg.MergeRequest,
	})
	if err != nil {
		return classify("failed to build url", err)
	}

	if cfg.PrintOnly() {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), url)
		return err
	}

	logger.Debug("opening url", "url", url)
	if err := c.container.Launcher().Launch(cfg.Browser, url); err != nil {
		return classify("failed to open browser", err)
	}

	return nil
}
