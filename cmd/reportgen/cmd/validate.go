package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roufai-ne/crou-management-system-sub010/internal/bootstrap"
	"github.com/roufai-ne/crou-management-system-sub010/internal/report/templates"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Valide une charge utile sans générer de rapport",
	Long: `Valide la configuration et la charge utile de la demande sans
lancer la génération. Signale les champs obligatoires manquants, un
format de sortie inconnu ou une période personnalisée incomplète.`,
	Run: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "fichier JSON de la demande (obligatoire)")

	_ = validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) {
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

	payload, err := loadPayload(validateInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "échec de la lecture de la demande: %v\n", err)
		os.Exit(1)
	}

	applyDefaults(cfg, payload)

	engine := bootstrap.InitEngine(cfg, logger)
	defer engine.Close()

	if err := engine.Generator.Validate(payload.Config); err != nil {
		fmt.Fprintf(os.Stderr, "demande invalide: %v\n", err)
		os.Exit(1)
	}

	if !constant.IsKnownDomain(payload.Config.Domain) {
		fmt.Printf("avertissement: domaine inconnu %q, la mise en page %q sera utilisée\n",
			payload.Config.Domain, constant.NormalizeDomain(payload.Config.Domain))
	}

	fmt.Printf("demande valide: domaine %s (%s), format %s, %d section(s)\n",
		payload.Config.Domain,
		templates.DomainLabel(payload.Config.Domain),
		payload.Config.OutputKind,
		len(payload.Data.Sections))
}
