// Package cmd provides the CLI commands for the report generator.
package cmd

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information, injected at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Global flags
var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "reportgen",
	Short: "Générateur de rapports CROU",
	Long: `Générateur de rapports pour le Centre Régional des Œuvres
Universitaires (CROU). Produit des documents PDF paginés, des classeurs
Excel et des exports CSV à partir d'une charge utile JSON décrivant le
rapport (domaine, période, sections, options régionales).

Domaines pris en charge: financial, stock, housing, transport,
workflow, dashboard, audit.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "chemin du fichier de configuration YAML")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "niveau de journalisation (debug, info, warn, error)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// GetVersionInfo returns formatted version information.
func GetVersionInfo() string {
	return Version + "\n" +
		"Build Time: " + BuildTime + "\n" +
		"Git Commit: " + GitCommit + "\n" +
		"Go Version: " + runtime.Version() + "\n" +
		"OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH
}
