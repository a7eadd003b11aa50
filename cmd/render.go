package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spigell/spkit/internal/failure"
	"github.com/spigell/spkit/internal/logger"
	"github.com/spigell/spkit/internal/pipeline"
	"github.com/spigell/spkit/internal/textutil"
	"github.com/spigell/spkit/internal/utils"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptPrint  = "Print the result"
	PromptDump   = "Dump the result to file"
	PromptReport = "Show pipeline report"
	PromptExit   = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptPrint, PromptDump, PromptReport, PromptExit},
}

var renderCmd = &cobra.Command{
	Use:   "render [markup]",
	Short: "Run markup through the configured pipeline",
	Long: `Render passes markup through the steps listed under "pipeline" in the
config file. Without a pipeline the truncate settings are used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("file", "f", "", "read markup from file")
	renderCmd.Flags().StringP("name", "n", "document", "document name used in logs")
	renderCmd.Flags().BoolP("yes", "y", false, "print the result without asking")
	renderCmd.Flags().Bool("error-html", false, "print failures as an HTML error block")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	doc, steps, err := render(ctx, cmd, args, logger)
	if err != nil {
		if html, _ := cmd.Flags().GetBool("error-html"); html {
			fmt.Fprintln(cmd.OutOrStdout(), failure.ErrorHTML(err, "render", ""))
		}
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return handleAction(PromptPrint, cmd.OutOrStdout(), logger, doc, steps)
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}

		if err := handleAction(action, cmd.OutOrStdout(), logger, doc, steps); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

func render(ctx context.Context, cmd *cobra.Command, args []string, logger *zap.Logger) (*pipeline.Document, []pipeline.Step, error) {
	config, err := getConfig()
	if err != nil {
		return nil, nil, failure.Wrap(err, "The configuration could not be read", cfgFile)
	}

	steps, err := buildSteps(config)
	if err != nil {
		return nil, nil, err
	}

	input, err := loadInput(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	name, _ := cmd.Flags().GetString("name")
	logger.Debug("loaded markup",
		zap.String("document", name),
		zap.String("preview", utils.TruncateForLog(input, 80)),
	)

	doc, err := pipeline.Run(ctx, pipeline.Deps{Logger: logger}, steps, &pipeline.Document{Name: name, Body: input})
	if err != nil {
		return nil, nil, failure.Wrap(err, "The markup could not be rendered", name)
	}

	return doc, steps, nil
}

// buildSteps prefers the configured pipeline and falls back to normalize+truncate.
func buildSteps(config *Config) ([]pipeline.Step, error) {
	if len(config.Pipeline) > 0 {
		return pipeline.Build(config.Pipeline)
	}

	if config.Truncate == nil || config.Truncate.Limit <= 0 {
		return nil, failure.MissingSetting("pipeline or truncate.limit")
	}

	return []pipeline.Step{
		pipeline.NewNormalize(),
		pipeline.NewTruncate(pipeline.TruncateOptions{
			Limit:         config.Truncate.Limit,
			Ellipsis:      config.Truncate.Ellipsis,
			EscapeCut:     config.Truncate.EscapeCut,
			SkipVoid:      config.Truncate.SkipVoid,
			MaxIterations: config.Truncate.MaxIterations,
		}),
	}, nil
}

func handleAction(action string, out io.Writer, logger *zap.Logger, doc *pipeline.Document, steps []pipeline.Step) error {
	switch action {
	case PromptPrint:
		fmt.Fprintln(out, doc.Body)
		return nil
	case PromptDump:
		filename, err := dumpToTmpFile(doc)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptReport:
		pretty, _ := json.MarshalIndent(pipeline.Describe(steps), "", "  ")
		logger.Info(string(pretty), zap.Bool("truncated", doc.Truncated))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func dumpToTmpFile(doc *pipeline.Document) (string, error) {
	f, err := os.CreateTemp("", fmt.Sprintf("%s-%s-*.html", app, textutil.Timestamp(time.Now())))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteString(doc.Body); err != nil {
		return "", err
	}

	return f.Name(), nil
}
