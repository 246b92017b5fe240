package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/roufai-ne/crou-management-system-sub010/internal/bootstrap"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/model"
)

// Command flags
var (
	inputPath  string
	outputDir  string
	outputKind string
)

// reportPayload is the on-disk request format: one JSON document carrying
// the request descriptor and the assembled report content.
type reportPayload struct {
	Config model.ReportConfig `json:"config"`
	Data   model.ReportData   `json:"data"`
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Génère un rapport à partir d'une charge utile JSON",
	Long: `Génère un rapport à partir d'un fichier JSON contenant la
configuration de la demande et les données du rapport.

Exemples:
  # Générer un PDF à partir d'une charge utile
  reportgen generate -i rapport-financier.json

  # Forcer la sortie en classeur Excel
  reportgen generate -i rapport-stock.json --output-kind workbook

  # Choisir le répertoire de sortie
  reportgen generate -i rapport.json -o ./exports`,
	Run: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "fichier JSON de la demande (obligatoire)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "répertoire de sortie")
	generateCmd.Flags().StringVar(&outputKind, "output-kind", "", "format de sortie (document, workbook, flat-table)")

	_ = generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg, err := bootstrap.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "échec du chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := bootstrap.InitLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	payload, err := loadPayload(inputPath)
	if err != nil {
		logger.Errorw("failed to load payload", "path", inputPath, "error", err)
		fmt.Fprintf(os.Stderr, "échec de la lecture de la demande: %v\n", err)
		os.Exit(1)
	}

	applyDefaults(cfg, payload)

	engine := bootstrap.InitEngine(cfg, logger)
	defer engine.Close()

	ctx, cancel := context.WithTimeout(context.Background(), engine.RenderTimeout)
	defer cancel()

	result := engine.Generator.Generate(ctx, payload.Config, payload.Data)
	if !result.Success {
		fmt.Fprintf(os.Stderr, "échec de la génération: %s\n", result.Error)
		os.Exit(1)
	}

	destDir := outputDir
	if destDir == "" {
		destDir = cfg.OutputDir
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		logger.Errorw("failed to create output directory", "path", destDir, "error", err)
		fmt.Fprintf(os.Stderr, "échec de la création du répertoire de sortie: %v\n", err)
		os.Exit(1)
	}

	destPath := filepath.Join(destDir, result.Filename)
	if err := os.WriteFile(destPath, result.Data, 0o644); err != nil {
		logger.Errorw("failed to write report", "path", destPath, "error", err)
		fmt.Fprintf(os.Stderr, "échec de l'écriture du rapport: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("rapport généré: %s (%d octets, %d enregistrements, %s)\n",
		destPath, result.Size, result.Metadata.RecordCount, result.Metadata.Duration.Round(time.Millisecond))
}

// loadPayload reads and decodes the request file.
func loadPayload(path string) (*reportPayload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var payload reportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid payload JSON: %w", err)
	}

	return &payload, nil
}

// applyDefaults fills request gaps from flags and configuration: the
// output-kind flag wins over the payload, locale settings fall back to the
// configured institution defaults, and a missing generation timestamp is
// pinned now so the result metadata stays coherent.
func applyDefaults(cfg *bootstrap.Config, payload *reportPayload) {
	if outputKind != "" {
		payload.Config.OutputKind = outputKind
	}

	if payload.Config.Options.Locale == "" {
		payload.Config.Options.Locale = cfg.Report.Locale
	}

	if payload.Config.Options.Currency == "" {
		payload.Config.Options.Currency = cfg.Report.Currency
	}

	if payload.Config.Options.Timezone == "" {
		payload.Config.Options.Timezone = cfg.Report.Timezone
	}

	if payload.Data.GeneratedAt.IsZero() {
		payload.Data.GeneratedAt = time.Now().UTC()
	}
}
