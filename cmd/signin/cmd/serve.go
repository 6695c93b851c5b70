package cmd

import (
	"github.com/nfrund/signin/internal/app"
	"github.com/nfrund/signin/internal/config"
	"github.com/nfrund/signin/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if addr != "" {
				cfg.Addr = addr
			}
			s, err := server.New(app.NewInjector(cfg))
			if err != nil {
				return err
			}
			if err := s.RegisterRoutes(); err != nil {
				return err
			}
			return s.Start()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides APP_ADDR)")
	return cmd
}
