package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spigell/spkit/internal/diagnostics"
	"github.com/spigell/spkit/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Register the configured diagnostic areas and categories",
	Long: `Diagnostics runs the ensure-sources job over the areas listed under
"diagnostics.areas". With --interval it keeps running until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runDiagnostics,
}

func init() {
	rootCmd.AddCommand(diagnosticsCmd)

	diagnosticsCmd.Flags().Duration("interval", 0, "repeat the job with this interval (default runs once)")

	viper.BindPFlag("diagnostics.interval", diagnosticsCmd.Flags().Lookup("interval"))
}

func runDiagnostics(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer l.Sync()

	config, err := getConfig()
	if err != nil {
		return fmt.Errorf("getting a config: %w", err)
	}

	areas := config.Diagnostics.Areas
	if len(areas) == 0 {
		areas = diagnostics.DefaultAreas()
	}

	job := diagnostics.NewJob(areas, nil, logger.NewTracer(l))
	job.Interval = config.Diagnostics.Interval

	l.Info("starting job", zap.String("title", job.Title), zap.Duration("interval", job.Interval))

	if err := job.Run(ctx); err != nil {
		return err
	}

	for _, path := range job.Registry.Paths() {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	return nil
}
