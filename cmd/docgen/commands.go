package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/inkfold/docgen/api"
	"github.com/inkfold/docgen/draft"
	"github.com/inkfold/docgen/layout"
	"github.com/inkfold/docgen/model"
	"github.com/inkfold/docgen/render/htmldoc"
	"github.com/inkfold/docgen/render/pdf"
	"github.com/inkfold/docgen/render/preview"
	"github.com/inkfold/docgen/render/svg"
)

var validFormats = []string{"pdf", "svg", "png", "jpeg", "html"}

// bindFileFlag attaches the shared document-file flag to a flag set.
func bindFileFlag(fs *pflag.FlagSet, file *string) {
	fs.StringVarP(file, "file", "f", "", "document file (YAML or JSON)")
}

func newGenerateCommand() *cobra.Command {
	var (
		file    string
		formats []string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a document file to one or more output formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := model.LoadFile(file)
			if err != nil {
				return err
			}

			if bad, ok := lo.Find(formats, func(f string) bool {
				return !lo.Contains(validFormats, f)
			}); ok {
				return fmt.Errorf("unknown format %q (valid: %s)", bad, strings.Join(validFormats, ", "))
			}

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
			}

			plan, err := layout.Build(doc, layout.DefaultPage(doc), api.NewCoreMeasurer())
			if err != nil {
				return err
			}

			for _, format := range formats {
				data, err := renderFormat(doc, plan, format)
				if err != nil {
					return fmt.Errorf("rendering %s: %w", format, err)
				}

				path := filepath.Join(outDir, outputName(doc, format))
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				logger.Infof("wrote %s (%d bytes)", path, len(data))
			}
			return nil
		},
	}

	bindFileFlag(cmd.Flags(), &file)
	cmd.Flags().StringSliceVar(&formats, "format", []string{"pdf"}, "output formats: pdf, svg, png, jpeg, html")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default: current)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func renderFormat(doc model.Document, plan *layout.Plan, format string) ([]byte, error) {
	switch format {
	case "pdf":
		return pdf.NewRenderer().Render(plan)

	case "svg":
		r := svg.NewRenderer()
		if slip, ok := doc.(*model.FeeSlip); ok {
			return r.RenderSlip(plan, slip.CopyLabels())
		}
		return r.Render(plan)

	case "png", "jpeg":
		rast, err := svg.NewRasterizer()
		if err != nil {
			return nil, err
		}
		var copies []string
		if slip, ok := doc.(*model.FeeSlip); ok {
			copies = slip.CopyLabels()
		}
		img, err := rast.RenderImage(plan, copies)
		if err != nil {
			return nil, err
		}
		return rast.Encode(img, format)

	case "html":
		return htmldoc.Render(doc)

	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func outputName(doc model.Document, format string) string {
	base := map[model.Kind]string{
		model.KindInvoice: "Invoice",
		model.KindChallan: "Challan",
		model.KindFeeSlip: "FeeSlip",
	}[doc.Kind()]

	number := strings.ReplaceAll(doc.Head().Number, string(filepath.Separator), "_")
	if number == "" {
		number = "draft"
	}
	return fmt.Sprintf("%s-%s.%s", base, number, format)
}

func newPreviewCommand() *cobra.Command {
	var (
		file  string
		width int
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a document as a scaled terminal preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := model.LoadFile(file)
			if err != nil {
				return err
			}

			plan, err := layout.Build(doc, layout.DefaultPage(doc), api.NewCoreMeasurer())
			if err != nil {
				return err
			}

			r := preview.NewRenderer()
			r.Width = width
			r.Plain = plain
			out, err := r.Render(plan)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	bindFileFlag(cmd.Flags(), &file)
	cmd.Flags().IntVar(&width, "width", 0, "force preview width in columns (default: detect)")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable ANSI styling")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next <number>",
		Short: "Print the next document number in a sequence",
		Long: `Increments the trailing numeric suffix of a document number while
preserving its zero padding, e.g. INV-0099 becomes INV-0100. Numbers without
a trailing digit run get "-1" appended.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(model.NextNumber(args[0]))
		},
	}
}

func newDraftCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Save, load, list and delete document drafts",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "draft database path (default: ~/.local/share/docgen/drafts.db)")

	openRepo := func() (*draft.Repository, error) {
		return draft.Open(draft.Config{DBPath: dbPath})
	}

	var saveFile, saveID string
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Save a document file as a draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := model.LoadFile(saveFile)
			if err != nil {
				return err
			}
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.Save(saveID, doc); err != nil {
				return err
			}
			logger.Infof("saved draft %q", saveID)
			return nil
		},
	}
	bindFileFlag(saveCmd.Flags(), &saveFile)
	saveCmd.Flags().StringVar(&saveID, "id", "default", "draft slot id")
	_ = saveCmd.MarkFlagRequired("file")

	var loadID, loadOut string
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load a draft and print (or write) it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			doc, err := repo.Load(loadID)
			if err != nil {
				return err
			}

			out, err := marshalWithKind(doc)
			if err != nil {
				return err
			}
			if loadOut == "" {
				fmt.Println(string(out))
				return nil
			}
			return os.WriteFile(loadOut, append(out, '\n'), 0o644)
		},
	}
	loadCmd.Flags().StringVar(&loadID, "id", "default", "draft slot id")
	loadCmd.Flags().StringVarP(&loadOut, "output", "o", "", "write to file instead of stdout")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			infos, err := repo.List()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("no saved drafts found")
				return nil
			}
			for _, info := range infos {
				fmt.Printf("%-20s %-10s %s\n", info.ID, info.Kind, info.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.Delete(args[0]); err != nil {
				return err
			}
			logger.Infof("deleted draft %q", args[0])
			return nil
		},
	}

	cmd.AddCommand(saveCmd, loadCmd, listCmd, deleteCmd)
	return cmd
}

// marshalWithKind serializes a document as JSON with its kind inlined, so
// the output round-trips back through model.Load.
func marshalWithKind(doc model.Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["kind"] = doc.Kind()
	return json.MarshalIndent(fields, "", "  ")
}
