package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/C0deXG/model-evalV7/pkg/core"
	"github.com/C0deXG/model-evalV7/pkg/dataset"
	"github.com/C0deXG/model-evalV7/pkg/reporter"
	"github.com/C0deXG/model-evalV7/pkg/reviewlog"
	"github.com/C0deXG/model-evalV7/pkg/scorer"
	"github.com/C0deXG/model-evalV7/pkg/session"
)

func newReviewCommand() *cobra.Command {
	var (
		datasetPath string
		pageIndex   int
		allPages    bool
		format      string
		outputPath  string
		seed        int64
		pageSize    int
		scorerName  string
		logDir      string
		logFormat   string
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Show evaluation samples in presentation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveString(datasetPath, appConfig.Dataset)
			if path == "" {
				return errors.New("dataset path is required")
			}
			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = "table"
			}
			outputResolved := resolveString(outputPath, appConfig.Output)
			scorerResolved := resolveString(scorerName, appConfig.Scorer)
			logDirResolved := resolveString(logDir, appConfig.LogDir)
			logFormatResolved := resolveString(logFormat, appConfig.LogFormat)
			if logFormatResolved == "" {
				logFormatResolved = "none"
			}

			sc, err := buildScorer(scorerResolved)
			if err != nil {
				return err
			}

			ds := dataset.NewFileDataset(path)
			records, err := ds.Load(context.Background())
			if err != nil {
				return err
			}

			s := session.New(ds.Name(), records, session.Options{
				PageSize: resolveInt(pageSize, appConfig.PageSize, 0),
				Seed:     resolveInt64(seed, appConfig.Seed),
				Scorer:   sc,
				Logger:   logger,
			})

			report := s.Report()
			if !allPages {
				if pageIndex > 0 {
					s.GoTo(pageIndex - 1)
				}
				single := report
				single.Pages = []core.Page{s.Page()}
				report = single
			}

			writer := cmd.OutOrStdout()
			if outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			rep, err := buildReporter(formatResolved, writer)
			if err != nil {
				return err
			}
			if err := rep.Report(report); err != nil {
				return err
			}

			if logFormatResolved != "none" {
				if logDirResolved == "" {
					logDirResolved = "./logs"
				}
				// The exported log always covers the whole session,
				// not just the rendered page.
				if err := writeReviewLog(logFormatResolved, logDirResolved, s.Report()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "path to evaluation results file")
	cmd.Flags().IntVar(&pageIndex, "page", 0, "1-based page to show (default first)")
	cmd.Flags().BoolVar(&allPages, "all", false, "show every page")
	cmd.Flags().StringVar(&format, "format", "", "output format (table, json, html, markdown, csv)")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed (0 = random)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "samples per page")
	cmd.Flags().StringVar(&scorerName, "scorer", "", "match scorer (exact, includes, cer)")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "directory for review logs")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "review log format (json, review, none)")

	return cmd
}

func buildScorer(name string) (core.Scorer, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "exact":
		return scorer.ExactMatch{CaseSensitive: false, NormalizeWhitespace: true}, nil
	case "includes":
		return scorer.Includes{CaseSensitive: false, NormalizeWhitespace: true}, nil
	case "cer":
		return scorer.CER{CaseSensitive: false, NormalizeWhitespace: true}, nil
	default:
		return nil, fmt.Errorf("unknown scorer: %s", name)
	}
}

func buildReporter(format string, writer io.Writer) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatTable:
		return reporter.TableReporter{Writer: writer, Color: reporter.IsTerminal(writer)}, nil
	case reporter.FormatHTML:
		return reporter.HTMLReporter{Writer: writer}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	case reporter.FormatCSV:
		return reporter.CSVReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func writeReviewLog(format, dir string, report core.ReviewReport) error {
	log := reviewlog.FromReport(report)
	var (
		path string
		err  error
	)
	switch format {
	case "json":
		path, err = reviewlog.WriteJSON(dir, log)
	case "review":
		path, err = reviewlog.WriteBundle(dir, log)
	default:
		return fmt.Errorf("unknown log format: %s", format)
	}
	if err != nil {
		return err
	}
	logger.Info("review log written", zap.String("path", path))
	return nil
}
