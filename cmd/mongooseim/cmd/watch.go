package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hateftavakkoli/MongooseIM/internal/core/config"
	"github.com/hateftavakkoli/MongooseIM/internal/core/state"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Compile a configuration document and recompile it on every change",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	res, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}
	store := state.NewStore(state.Assemble(res))
	reloader := state.NewReloader(configFile, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- reloader.Run(ctx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
		slog.Info("shutting down")
		cancel()
		<-errChan
		return nil
	}
}
