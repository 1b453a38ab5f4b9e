package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/daykeep/daykeep/internal/daemon"
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the daykeep API server",
	Long:  `Start the local JSON API the web frontend talks to.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := daemon.New()
	if err != nil {
		return err
	}

	// Override config from flags
	if serveHost != "" {
		a.Config.API.Host = serveHost
	}
	if servePort > 0 {
		a.Config.API.Port = servePort
	}

	return a.Serve(context.Background())
}
