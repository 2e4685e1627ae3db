package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Warinthorn/carelink_backend/cmd/http"
	systemcmd "github.com/Warinthorn/carelink_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "carelink",
	Short: "CareLink backend for patient health tracking and caregiver monitoring.",
	Long: `CareLink is the backend for a health-tracking app for elderly patients and
their caregivers. Patients record medications, measurements and appointments;
caregivers follow linked patients in real time through a shareable smart ID.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
