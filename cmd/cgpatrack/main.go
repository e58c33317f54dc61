package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/teamit2026-cmd/cgpatracker/internal/bootstrap"
	gradingdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/config"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/logging"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/components"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Log.WithError(err).Warn("could not read .env")
	}
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir    string
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "cgpatrack",
		Short:         "Credit-weighted CGPA calculator and tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "dir", "", "data directory (default ~/.cgpatrack)")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default <dir>/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newCatalogCmd(opts))
	root.AddCommand(newComputeCmd(opts))
	root.AddCommand(newClassifyCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newExportCmd(opts))
	return root
}

func loadApp(opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.New(opts.dataDir, opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return bootstrap.New(cfg)
}

// withApp builds the application for a single command and releases its stores afterwards.
func withApp(opts *rootOptions, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logging.Log.WithError(closeErr).Warn("close stores")
		}
	}()
	return fn(app)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the cgpatrack terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(opts, bootstrap.RunTUI)
		},
	}
}

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	catalog := &cobra.Command{Use: "catalog", Short: "Browse the built-in curriculum"}

	catalog.AddCommand(&cobra.Command{
		Use:   "departments",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				departments, err := app.CatalogCLI.Departments(context.Background())
				if err != nil {
					return err
				}
				for _, d := range departments {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), d)
				}
				return nil
			})
		},
	})

	var department string
	semesters := &cobra.Command{
		Use:   "semesters --dept <code>",
		Short: "List semesters with subjects for a department",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(department) == "" {
				return fmt.Errorf("--dept is required")
			}
			return withApp(opts, func(app *bootstrap.App) error {
				list, err := app.CatalogCLI.Semesters(context.Background(), department)
				if err != nil {
					return err
				}
				if len(list) == 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no semesters for %s\n", department)
					return nil
				}
				for _, s := range list {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
				}
				return nil
			})
		},
	}
	semesters.Flags().StringVar(&department, "dept", "", "department code")

	var subjectsDept string
	var semester int
	subjects := &cobra.Command{
		Use:   "subjects --dept <code> --sem <n>",
		Short: "List the subjects of a semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.CatalogCLI.Subjects(context.Background(), subjectsDept, semester)
				if err != nil {
					return err
				}
				if len(out.Subjects) == 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no subjects for %s semester %d\n", subjectsDept, semester)
					return nil
				}
				printSubjects(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	subjects.Flags().StringVar(&subjectsDept, "dept", "IT", "department code")
	subjects.Flags().IntVar(&semester, "sem", 1, "semester (1-8)")

	catalog.AddCommand(semesters, subjects)
	return catalog
}

func newComputeCmd(opts *rootOptions) *cobra.Command {
	compute := &cobra.Command{Use: "compute", Short: "Compute a CGPA"}

	var department, all string
	var semester int
	var grades []string
	var save bool
	curriculum := &cobra.Command{
		Use:   "curriculum --dept <code> --sem <n> --grade CODE=LETTER...",
		Short: "Compute from the curriculum of a department and semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			selections, err := parseGrades(grades)
			if err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				if all != "" {
					subjects, err := app.CatalogCLI.Subjects(ctx, department, semester)
					if err != nil {
						return err
					}
					for _, s := range subjects.Subjects {
						if _, ok := selections[s.Code]; !ok {
							selections[s.Code] = all
						}
					}
				}
				out, err := app.GradingCLI.ComputeCurriculum(ctx, department, semester, selections)
				if err != nil {
					return err
				}
				return reportResult(cmd, app, out, save)
			})
		},
	}
	curriculum.Flags().StringVar(&department, "dept", "IT", "department code")
	curriculum.Flags().IntVar(&semester, "sem", 1, "semester (1-8)")
	curriculum.Flags().StringArrayVar(&grades, "grade", nil, "grade for a subject as CODE=LETTER (repeatable)")
	curriculum.Flags().StringVar(&all, "all", "", "grade for every subject without an explicit --grade")
	curriculum.Flags().BoolVar(&save, "save", false, "save the result to history")

	var customSubjects, customGrades []string
	var customSave bool
	custom := &cobra.Command{
		Use:   "custom --subject NAME,CODE,CREDITS... --grade CODE=LETTER...",
		Short: "Compute from custom subjects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			subjects := make([]gradingdto.CustomSubjectInput, 0, len(customSubjects))
			for _, raw := range customSubjects {
				s, err := parseCustomSubject(raw)
				if err != nil {
					return err
				}
				subjects = append(subjects, s)
			}
			selections, err := parseGrades(customGrades)
			if err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.GradingCLI.ComputeCustom(context.Background(), subjects, selections)
				if err != nil {
					return err
				}
				return reportResult(cmd, app, out, customSave)
			})
		},
	}
	custom.Flags().StringArrayVar(&customSubjects, "subject", nil, "custom subject as NAME,CODE,CREDITS (repeatable)")
	custom.Flags().StringArrayVar(&customGrades, "grade", nil, "grade for a subject as CODE=LETTER (repeatable)")
	custom.Flags().BoolVar(&customSave, "save", false, "save the result to history")

	compute.AddCommand(curriculum, custom)
	return compute
}

// reportResult prints out and, when asked, saves it. A failed save leaves the printed result in place.
func reportResult(cmd *cobra.Command, app *bootstrap.App, out gradingdto.ComputeOutput, save bool) error {
	printResult(cmd.OutOrStdout(), out)
	if !save {
		return nil
	}
	if err := app.HistoryCLI.Save(context.Background(), components.SaveInput(out)); err != nil {
		return fmt.Errorf("result not saved: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved to history (%s backend)\n", app.Backend)
	return nil
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <cgpa>",
		Short: "Show the band and message for a CGPA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cgpa, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("invalid cgpa %q", args[0])
			}
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.GradingCLI.Classify(context.Background(), cgpa)
				if err != nil {
					return err
				}
				printClassification(cmd.OutOrStdout(), cgpa, out)
				return nil
			})
		},
	}
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Saved results"}

	history.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved results, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				results, err := app.HistoryCLI.List(context.Background())
				if err != nil {
					return err
				}
				if len(results) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no saved results")
					return nil
				}
				printHistory(cmd.OutOrStdout(), results)
				return nil
			})
		},
	})

	history.AddCommand(&cobra.Command{
		Use:   "latest",
		Short: "Show the most recently saved result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				latest, ok, err := app.HistoryCLI.Latest(context.Background())
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no saved results")
					return nil
				}
				printSaved(cmd.OutOrStdout(), latest)
				return nil
			})
		},
	})

	var department string
	var semester int
	var custom bool
	show := &cobra.Command{
		Use:   "show --dept <code> --sem <n> | --custom",
		Short: "Show the latest result saved for a semester or for custom mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := gradingdto.ModeCurriculum
			if custom {
				mode = gradingdto.ModeCustom
			}
			return withApp(opts, func(app *bootstrap.App) error {
				result, ok, err := app.HistoryCLI.Show(context.Background(), mode, department, semester)
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no saved result for that context")
					return nil
				}
				printSaved(cmd.OutOrStdout(), result)
				return nil
			})
		},
	}
	show.Flags().StringVar(&department, "dept", "IT", "department code")
	show.Flags().IntVar(&semester, "sem", 1, "semester (1-8)")
	show.Flags().BoolVar(&custom, "custom", false, "show the latest custom result")

	history.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Summarize saved results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				stats, err := app.HistoryCLI.Stats(context.Background())
				if err != nil {
					return err
				}
				if stats.Count == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no saved results")
					return nil
				}
				printStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	})

	var height int
	chart := &cobra.Command{
		Use:   "chart",
		Short: "Draw the progress chart of saved results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				results, err := app.HistoryCLI.List(context.Background())
				if err != nil {
					return err
				}
				if len(results) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no saved results")
					return nil
				}
				values := make([]float64, len(results))
				for i, r := range results {
					values[i] = r.Value
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), components.Chart(values, height))
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "trend %s  %s\n", components.Trend(values), components.Sparkline(values))
				return nil
			})
		},
	}
	chart.Flags().IntVar(&height, "height", 5, "chart height in rows")

	history.AddCommand(show, chart)
	return history
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var title, dir string
	export := &cobra.Command{
		Use:   "export [--title <title>]",
		Short: "Write saved results to a markdown report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				target := dir
				if target == "" {
					target = app.ReportDir
				}
				out, err := app.ReportCLI.Export(context.Background(), title, target)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d results to %s\n", out.Count, out.Path)
				return nil
			})
		},
	}
	export.Flags().StringVar(&title, "title", "", "report title (default \"CGPA Report\")")
	export.Flags().StringVar(&dir, "out", "", "output directory (default <dir>/reports)")
	return export
}

// parseGrades turns CODE=LETTER pairs into a selection map. Letters are validated by the engine.
func parseGrades(pairs []string) (map[string]string, error) {
	selections := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		code, letter, ok := strings.Cut(pair, "=")
		code = strings.TrimSpace(code)
		if !ok || code == "" {
			return nil, fmt.Errorf("invalid --grade %q, want CODE=LETTER", pair)
		}
		selections[code] = strings.TrimSpace(letter)
	}
	return selections, nil
}

// parseCustomSubject reads NAME,CODE,CREDITS. The name may itself contain commas.
func parseCustomSubject(raw string) (gradingdto.CustomSubjectInput, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 3 {
		return gradingdto.CustomSubjectInput{}, fmt.Errorf("invalid --subject %q, want NAME,CODE,CREDITS", raw)
	}
	n := len(parts)
	return gradingdto.CustomSubjectInput{
		Name:    strings.Join(parts[:n-2], ","),
		Code:    parts[n-2],
		Credits: parts[n-1],
	}, nil
}
