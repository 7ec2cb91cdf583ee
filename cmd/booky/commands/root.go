package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

var (
	configPath string

	cfg *config.Config
	log *logger.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "booky",
		Short:         "Room booking engine and reservation store",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			// Загружаем конфигурацию
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Инициализируем логгер
			log, err = logger.New(cfg.Logs.File, cfg.Logs.Level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			log.Info("Configuration loaded from %s", configPath)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				log.Close()
			}
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to the TOML config file")

	root.AddCommand(serveCmd(), storeCmd(), migrateCmd())
	return root.Execute()
}
