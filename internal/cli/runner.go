package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/planner/internal/config"
	"github.com/idilsaglam/planner/internal/form"
	"github.com/idilsaglam/planner/internal/store/jsonstore"
	"github.com/idilsaglam/planner/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Group   bool   // group ls output by pending/done
	DataDir string // override data directory
	Theme   string // override color theme
	Verbose bool   // debug logging
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2
// usage). Without a subcommand it opens the interactive app.
func Run(args []string, opt Options) int {
	cfg, err := config.Load(config.Overrides{
		DataDir: opt.DataDir,
		Theme:   opt.Theme,
		Verbose: opt.Verbose,
	})
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	ui.SetTheme(cfg.Theme)

	st, err := jsonstore.New(cfg.DataDir, newLogger(cfg))
	if err != nil {
		ui.Fail("store: " + err.Error())
		return 1
	}

	if len(args) == 0 {
		return doUI(st)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		return doUI(st)

	case "ls":
		return doList(st, opt)

	case "add":
		fs := flag.NewFlagSet("add", flag.ContinueOnError)
		due := fs.String("due", "", "due date (YYYY-MM-DD)")
		if err := fs.Parse(a); err != nil {
			return 2
		}
		if len(fs.Args()) == 0 {
			ui.Fail("usage: planner add -due YYYY-MM-DD <title...>")
			return 2
		}
		return doAdd(st, strings.Join(fs.Args(), " "), *due)

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: planner done <id>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doToggle(st, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: planner rm <id>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(st, n)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func newLogger(cfg config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLogLevel(cfg.LogLevel),
		ReportTimestamp: false,
		Prefix:          "planner",
	})
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

func PrintHelp() {
	fmt.Printf(`planner - track tasks with due dates

Usage:
  planner [flags] [subcommand]

Without a subcommand the interactive app opens
(h home, n new task, l task list).

Subcommands:
  add -due YYYY-MM-DD <title...>   Add a task
  ls                               List tasks
  done <id>                        Toggle completion for the task with id
  rm <id>                          Remove the task with id
  ui                               Open the interactive app
  help                             Show this help

Flags:
  -group          Group ls output by pending/done
  -data <dir>     Data directory (default ~/.planner)
  -theme <name>   Color theme: classic, neon or mono
  -verbose        Debug logging

Examples:
  planner add -due 2026-12-01 "Renew passport"
  planner -group ls
  planner done 2
  planner rm 3
`)
}

// -------------- subcommand impls ----------------

func doUI(st *jsonstore.Store) int {
	if err := ui.Run(st); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	return 0
}

func doList(st *jsonstore.Store, opt Options) int {
	col, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	tasks := col.All()
	rows := ui.BuildRows(tasks)

	d, p := ui.Stats(tasks)
	var lines []string
	lines = append(lines, ui.Header(tasks))
	lines = append(lines, ui.Muted(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, ui.GroupedLines(rows)...)
	} else {
		lines = append(lines, ui.Lines(rows)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Muted(`Tip: add with `+"`planner add -due 2026-12-01 \"Renew passport\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(st *jsonstore.Store, title, due string) int {
	col, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	res := form.New().Validate(form.Values{Title: title, DueDate: due})
	if !res.Valid {
		for _, msg := range res.Messages() {
			ui.Fail("add: " + msg)
		}
		return 2
	}

	t, err := st.Create(col, strings.TrimSpace(title), strings.TrimSpace(due))
	if err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("added #%d", t.ID))
	return 0
}

func doToggle(st *jsonstore.Store, id int) int {
	col, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	t, err := st.Toggle(col, id)
	if err != nil {
		if errors.Is(err, jsonstore.ErrNotFound) {
			ui.Fail(fmt.Sprintf("done: no task with id %d", id))
			fmt.Fprintln(os.Stderr, ui.Muted("Hint: run `planner ls` to see ids"))
			return 2
		}
		ui.Fail("save: " + err.Error())
		return 1
	}
	if t.Completed {
		ui.OK(fmt.Sprintf("done #%d", t.ID))
	} else {
		ui.OK(fmt.Sprintf("reopened #%d", t.ID))
	}
	return 0
}

func doRemove(st *jsonstore.Store, id int) int {
	col, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	if _, _, err := st.Remove(col, id); err != nil {
		if errors.Is(err, jsonstore.ErrNotFound) {
			ui.Fail(fmt.Sprintf("rm: no task with id %d", id))
			fmt.Fprintln(os.Stderr, ui.Muted("Hint: run `planner ls` to see ids"))
			return 2
		}
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("removed #%d", id))
	return 0
}
