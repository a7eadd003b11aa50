package cmd

import (
	"fmt"
	"log"

	"github.com/spigell/spkit/internal/logger"
	"github.com/spigell/spkit/internal/markup"
	"github.com/spigell/spkit/internal/source"
	"github.com/spigell/spkit/internal/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// eventTruncateOverflow is the trace event id reported when markup is too complex.
const eventTruncateOverflow = 200

var truncateCmd = &cobra.Command{
	Use:   "truncate [markup]",
	Short: "Truncate markup to a number of visible characters, closing open tags",
	Long: `Truncate reads markup from the argument, --file or stdin and cuts it to
--limit visible characters. Tags left open at the cut are closed in reverse order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTruncate,
}

func init() {
	rootCmd.AddCommand(truncateCmd)

	truncateCmd.Flags().IntP("limit", "l", 0, "number of visible characters to keep")
	truncateCmd.Flags().String("ellipsis", "", "marker appended to truncated output (default \"... \")")
	truncateCmd.Flags().Bool("escape-cut", false, "re-encode entities in the cut text fragment")
	truncateCmd.Flags().Bool("skip-void", false, "treat void elements, comments and declarations as self-closing")
	truncateCmd.Flags().Int("max-iterations", 0, "scan iteration cap (default 999)")
	truncateCmd.Flags().StringP("file", "f", "", "read markup from file")

	viper.BindPFlag("truncate.limit", truncateCmd.Flags().Lookup("limit"))
	viper.BindPFlag("truncate.ellipsis", truncateCmd.Flags().Lookup("ellipsis"))
	viper.BindPFlag("truncate.escape-cut", truncateCmd.Flags().Lookup("escape-cut"))
	viper.BindPFlag("truncate.skip-void", truncateCmd.Flags().Lookup("skip-void"))
	viper.BindPFlag("truncate.max-iterations", truncateCmd.Flags().Lookup("max-iterations"))
}

func runTruncate(cmd *cobra.Command, args []string) error {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		return fmt.Errorf("getting a config: %w", err)
	}

	input, err := loadInput(cmd, args)
	if err != nil {
		return err
	}

	logger.Debug("loaded markup", zap.String("preview", utils.TruncateForLog(input, 80)))

	res := markup.TruncateWith(input, config.Truncate.Limit, truncateOptions(config.Truncate))
	fmt.Fprintln(cmd.OutOrStdout(), res.String())

	if err := res.Err(); err != nil {
		traceOverflow(logger, input)
		return fmt.Errorf("truncating markup: %w", err)
	}

	logger.Debug("markup truncated",
		zap.String("status", res.Status.String()),
		zap.Int("visible", res.Visible),
		zap.Strings("closed", res.Closed),
	)

	return nil
}

func truncateOptions(cfg *TruncateConfig) markup.Options {
	return markup.Options{
		Ellipsis:      cfg.Ellipsis,
		MaxIterations: cfg.MaxIterations,
		EscapeCut:     cfg.EscapeCut,
		SkipVoid:      cfg.SkipVoid,
	}
}

func loadInput(cmd *cobra.Command, args []string) (string, error) {
	src := source.Source{
		Name:   "markup",
		Reader: cmd.InOrStdin(),
	}
	if len(args) > 0 {
		src.Value = args[0]
	}
	if flag := cmd.Flags().Lookup("file"); flag != nil {
		src.File = flag.Value.String()
	}

	return source.Load(src)
}

func traceOverflow(l *zap.Logger, input string) {
	logger.NewTracer(l).TraceSeverity(
		"markup too complex to truncate: "+utils.TruncateForLog(input, 80),
		eventTruncateOverflow,
		logger.SeverityHigh,
		logger.DefaultAreaCategory(),
	)
}
