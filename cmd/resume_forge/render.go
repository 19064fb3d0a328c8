package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/extraction"
	"github.com/jonathan/resume-forge/internal/observability"
	"github.com/jonathan/resume-forge/internal/rendering"
	"github.com/jonathan/resume-forge/internal/segmentation"
	"github.com/jonathan/resume-forge/internal/templates"
	"github.com/jonathan/resume-forge/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume text file into styled documents",
	Long:  "Render segments a plain resume text file into canonical sections and produces PDF, DOCX, and/or plain text documents using the selected template.",
	RunE:  runRender,
}

var (
	renderInputFile     string
	renderTemplateID    string
	renderFormats       []string
	renderOutDir        string
	renderCustomization string
	renderConfigFile    string
	renderVerbose       bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to the raw resume text file (required)")
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", "", "Template id (default: classic)")
	renderCmd.Flags().StringSliceVarP(&renderFormats, "format", "f", nil, "Output formats: pdf, docx, txt (default: pdf)")
	renderCmd.Flags().StringVarP(&renderOutDir, "out-dir", "o", "", "Directory to write rendered documents to (default: current directory)")
	renderCmd.Flags().StringVarP(&renderCustomization, "customization", "c", "", "Path to customization overrides JSON")
	renderCmd.Flags().StringVar(&renderConfigFile, "config", "", "Path to a JSON config file")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print extracted contact, segmentation, and artifact summaries")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if renderConfigFile != "" {
		loaded, err := config.LoadConfig(renderConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.Merge(renderInputFile, renderTemplateID, renderCustomization, renderOutDir, renderFormats, renderVerbose)

	if cfg.Input == "" {
		return fmt.Errorf("input file is required (use --in or the config file)")
	}
	if cfg.Template == "" {
		cfg.Template = "classic"
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"pdf"}
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := observability.NewLogger(os.Stderr, level)
	runID := uuid.New().String()
	logger = logger.With(slog.String("run_id", runID))

	rawBytes, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	rawText := string(rawBytes)

	tmpl, err := templates.Resolve(cfg.Template)
	if err != nil {
		return err
	}

	cust := templates.DefaultCustomization()
	if cfg.Customization != "" {
		overrides, err := os.ReadFile(cfg.Customization)
		if err != nil {
			return fmt.Errorf("failed to read customization file: %w", err)
		}
		cust, err = templates.ResolveCustomization(overrides)
		if err != nil {
			return err
		}
	}
	styled := templates.Apply(tmpl, cust)

	logger.Info("segmenting resume", slog.String("input", cfg.Input), slog.String("template", styled.ID))

	seg := segmentation.Segment(rawText)
	contact := extraction.ExtractContact(rawText)

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintContact(contact)
		printer.PrintSegmentation(seg)
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Render the requested formats concurrently; each format is independent.
	var (
		mu   sync.Mutex
		docs []types.RenderedDocument
	)
	var g errgroup.Group
	for _, format := range cfg.Formats {
		format := format
		g.Go(func() error {
			doc, err := renderFormat(format, rawText, seg, contact, styled, cust)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", format, err)
			}
			mu.Lock()
			docs = append(docs, doc)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, doc := range docs {
		path := filepath.Join(cfg.OutDir, doc.Filename)
		if err := os.WriteFile(path, doc.Data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("wrote document",
			slog.String("file", path),
			slog.String("mime_type", doc.MIMEType),
			slog.Int("bytes", len(doc.Data)))
		if cfg.Verbose {
			printer.PrintRendered(doc)
		}
	}

	fmt.Fprintf(os.Stdout, "Rendered %d document(s) to %s\n", len(docs), cfg.OutDir)
	return nil
}

func renderFormat(format, rawText string, seg types.SegmentedResume, contact types.ContactInfo, tmpl types.Template, cust types.Customization) (types.RenderedDocument, error) {
	switch strings.ToLower(format) {
	case "pdf":
		return rendering.RenderPDF(seg, contact, tmpl, cust)
	case "docx":
		return rendering.RenderDOCX(seg, contact, tmpl)
	case "txt":
		return rendering.RenderPlainText(rawText, contact.Name), nil
	default:
		return types.RenderedDocument{}, fmt.Errorf("unknown format %q", format)
	}
}
