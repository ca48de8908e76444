package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playlist-builder/internal/aggregator"
	"playlist-builder/internal/builder"
	"playlist-builder/internal/database"
	"playlist-builder/internal/runner"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Overridden in tests.
var (
	stdinIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

func main() {
	// A missing .env is not an error
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	historyFlag := &cli.StringFlag{
		Name:    "history",
		Usage:   "SQLite database recording each run",
		EnvVars: []string{"HISTORY_DB"},
	}

	return &cli.App{
		Name:  "playlist-builder",
		Usage: "Generate XSPF playlists for a media directory tree.",
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "Purge, regenerate and combine every playlist under a root directory",
				ArgsUsage: "[root]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "order",
						Usage:   "combined playlist order: directory, natural or filename",
						Value:   aggregator.OrderDirectory.String(),
						EnvVars: []string{"COMBINE_ORDER"},
					},
					historyFlag,
				},
				Action: buildAction,
			},
			{
				Name:      "directory",
				Usage:     "Write the playlist of the media files directly inside one directory",
				ArgsUsage: "<dir>",
				Action:    directoryAction,
			},
			{
				Name:      "storyline",
				Usage:     "Write the Storyline.xspf of one directory from its Storyline.txt",
				ArgsUsage: "<dir>",
				Action:    storylineAction,
			},
			{
				Name:  "history",
				Usage: "List recorded runs, newest first",
				Flags: []cli.Flag{
					historyFlag,
					&cli.IntFlag{
						Name:  "limit",
						Usage: "number of runs to show",
						Value: database.DefaultRunLimit,
					},
				},
				Action: historyAction,
			},
		},
	}
}

// promptRoot asks for the root directory when none was given on the
// command line. Without a terminal there is nobody to ask.
func promptRoot(root string) (string, error) {
	if root != "" || !stdinIsTerminal() {
		return root, nil
	}

	err := huh.NewInput().
		Title("Enter the media directory to build playlists for").
		Value(&root).
		Run()
	return root, err
}

func buildAction(c *cli.Context) error {
	root, err := promptRoot(c.Args().First())
	if err != nil {
		return err
	}
	if root == "" {
		return aggregator.ErrNoRoot
	}

	order, err := aggregator.ParseOrder(c.String("order"))
	if err != nil {
		return err
	}

	var history runner.History
	if path := c.String("history"); path != "" {
		db, err := database.New(c.Context, path)
		if err != nil {
			return err
		}
		defer db.Close()
		history = db
	}

	r := runner.New(history, root, order)

	var result runner.Result
	build := func(ctx context.Context) error {
		var err error
		result, err = r.Build(ctx)
		return err
	}

	if stdoutIsTerminal() {
		err = spinner.New().Title("Building playlists...").Context(c.Context).ActionWithErr(build).Run()
	} else {
		err = build(c.Context)
	}
	if err != nil {
		return err
	}

	printResult(c.App.Writer, result)
	return nil
}

func printResult(w io.Writer, result runner.Result) {
	for _, line := range result.Report {
		fmt.Fprintln(w, okStyle.Render(line))
	}

	s := result.Summary
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%s directories visited, %s stale playlists removed, %s documents skipped in %s.",
		humanize.Comma(int64(s.Directories)),
		humanize.Comma(int64(s.Purged)),
		humanize.Comma(int64(s.Skipped)),
		s.Duration.Round(time.Millisecond),
	)))
	if result.Run != nil {
		fmt.Fprintln(w, dimStyle.Render("Run "+result.Run.ID))
	}
}

func directoryAction(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		return aggregator.ErrNoRoot
	}

	n, err := builder.BuildDirectory(dir)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(c.App.Writer, dimStyle.Render("No media files found, no playlist written."))
		return nil
	}
	fmt.Fprintln(c.App.Writer, okStyle.Render(fmt.Sprintf("Playlist written with %s files.", humanize.Comma(int64(n)))))
	return nil
}

func storylineAction(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		return aggregator.ErrNoRoot
	}

	n, err := builder.BuildStoryline(dir)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(c.App.Writer, dimStyle.Render("No storyline tracks resolved, no playlist written."))
		return nil
	}
	fmt.Fprintln(c.App.Writer, okStyle.Render(fmt.Sprintf("Storyline written with %s files.", humanize.Comma(int64(n)))))
	return nil
}

func historyAction(c *cli.Context) error {
	path := c.String("history")
	if path == "" {
		return errors.New("no history database given (use --history or HISTORY_DB)")
	}

	db, err := database.New(c.Context, path)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(c.Context, c.Int("limit"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No runs recorded."))
		return nil
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d most recent runs", len(runs))))
	for _, run := range runs {
		status := okStyle.Render(run.Status)
		if run.Status != database.StatusSuccess {
			status = errStyle.Render(run.Status)
		}
		fmt.Fprintf(w, "%s  %-8s  %s  %s playlists, %s files, %s combined  %s\n",
			run.ID,
			status,
			humanize.Time(run.StartedAt),
			humanize.Comma(int64(run.Playlists)),
			humanize.Comma(int64(run.Files)),
			humanize.Comma(int64(run.Combined)),
			dimStyle.Render(run.Root),
		)
		if run.Error != "" {
			fmt.Fprintln(w, "    "+errStyle.Render(run.Error))
		}
	}
	return nil
}
