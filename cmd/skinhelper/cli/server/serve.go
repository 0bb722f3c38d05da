package server

import (
	"context"
	"fmt"

	"github.com/skinhelper/catalog/internal/server"
	"github.com/spf13/cobra"

	config "github.com/skinhelper/catalog/internal/config/server"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the SkinHelper Catalog Server",
		Long:  `Start the SkinHelper Catalog Server`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load server configuration: %w", err)
			}

			catalog := server.NewServer(cfg)
			if err := catalog.Serve(context.Background()); err != nil {
				return err
			}

			return nil
		},
	}

	return cmd
}
