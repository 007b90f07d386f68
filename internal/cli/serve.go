package cli

import (
	"lsbsteg/internal/server"

	"github.com/spf13/cobra"
)

func (a *app) serveCommand() *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography over the web",
		Example: "lsbsteg serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config
			if port != "" {
				cfg.Server.Port = port
			}
			return server.StartServer(cmd.Context(), cfg, a.logger)
		},
	}

	command.Flags().StringVar(&port, "port", "", "Port on which to start the server, overrides server.port from the config file")

	return command
}
