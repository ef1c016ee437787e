package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/orayew2002/xlfluent/coord"
	"github.com/orayew2002/xlfluent/processor"
	"github.com/orayew2002/xlfluent/sample"
	"github.com/orayew2002/xlfluent/server"
	"github.com/orayew2002/xlfluent/template"
	"github.com/orayew2002/xlfluent/workbook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func coordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coord",
		Short: "Inspect and shift cell coordinates",
	}

	emit := func(cmd *cobra.Command, v any) {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "parse <coordinates>",
			Short: "Print the addresses of a cell or range",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				rng, err := coord.ParseRange(args[0])
				if err != nil {
					return err
				}
				emit(cmd, rng.Origin)
				if rng.Multi() {
					emit(cmd, rng.Corner)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "origin <coordinates>",
			Short: "Print the first address of a cell or range",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := coord.Origin(args[0])
				if err != nil {
					return err
				}
				emit(cmd, a)
				return nil
			},
		},
		&cobra.Command{
			Use:   "width <coordinates>",
			Short: "Print the column delta between the range ends",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := coord.RangeWidth(args[0])
				if err != nil {
					return err
				}
				emit(cmd, w)
				return nil
			},
		},
		&cobra.Command{
			Use:   "height <coordinates>",
			Short: "Print the row delta between the range ends",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				h, err := coord.RangeHeight(args[0])
				if err != nil {
					return err
				}
				emit(cmd, h)
				return nil
			},
		},
		&cobra.Command{
			Use:   "translate <coordinates> <columns> <rows>",
			Short: "Shift a cell or range",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				dc, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("columns: %w", err)
				}
				dr, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("rows: %w", err)
				}
				out, err := coord.Translate(args[0], dc, dr)
				if err != nil {
					return err
				}
				emit(cmd, out)
				return nil
			},
		},
		&cobra.Command{
			Use:   "column <name|number>",
			Short: "Convert between column names and zero-based numbers",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if n, err := strconv.Atoi(args[0]); err == nil {
					if n < 0 {
						return fmt.Errorf("column number %d is negative", n)
					}
					emit(cmd, coord.ColumnName(n))
					return nil
				}
				n, err := coord.ColumnNumber(args[0])
				if err != nil {
					return err
				}
				emit(cmd, n)
				return nil
			},
		},
	)

	return cmd
}

func sampleCmd(name, short string) *cobra.Command {
	var (
		output string
		asPDF  bool
	)

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := sample.Builders[name](engine)
			if err != nil {
				return err
			}
			defer wb.Close()

			if output == "" {
				output = workbook.DefaultXLSXName
				if asPDF {
					output = workbook.DefaultPDFName
				}
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()

			if asPDF {
				err = wb.WritePDF(f, engine.PageSetup())
			} else {
				_, err = wb.WriteTo(f)
			}
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}

			log.WithFields(logrus.Fields{"sample": name, "output": output}).Info("workbook written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&asPDF, "pdf", false, "Render as PDF instead of XLSX")

	return cmd
}

func renderCmd() *cobra.Command {
	var (
		input  string
		output string
		sets   []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fill a template workbook",
		Long: `render replaces {{key}} placeholders with the --set values, outlines
cells marked with &border and finally applies [rows:cols] merge codes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseSets(sets)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("open %s: %w", input, err)
			}

			// Merge codes run last so inserted rows cannot shift their anchors.
			fill := template.New()
			replace := template.NewReplaceHandler()
			for _, kv := range values {
				replace.Add("{{"+kv[0]+"}}", kv[1])
			}
			replace.Register(fill)
			template.RegisterBorderHandler(fill)

			merge := template.New()
			template.RegisterMergeHandler(merge)

			for i, registry := range []*template.Registry{fill, merge} {
				if registry.Len() == 0 {
					continue
				}
				data, err = processor.New(engine, registry).ProcessBytes(data)
				if err != nil {
					return fmt.Errorf("pass %d: %w", i+1, err)
				}
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("save %s: %w", output, err)
			}

			log.WithFields(logrus.Fields{
				"input":  input,
				"output": output,
				"keys":   len(values),
			}).Info("template rendered")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "table.xlsx", "Template workbook")
	cmd.Flags().StringVarP(&output, "output", "o", "result.xlsx", "Output workbook")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Placeholder value as key=value (repeatable)")

	return cmd
}

func parseSets(sets []string) ([][2]string, error) {
	out := make([][2]string, 0, len(sets))
	for _, s := range sets {
		key, val, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want key=value", s)
		}
		out = append(out, [2]string{key, val})
	}
	return out, nil
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve workbook exports over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Server.Addr
			}

			log.WithField("addr", addr).Info("listening")
			err := http.ListenAndServe(addr, server.New(engine, log))
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
