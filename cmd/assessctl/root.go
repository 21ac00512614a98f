package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"grammologue/internal/client"
	"grammologue/internal/config"
	"grammologue/internal/logger"
	"grammologue/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli holds the state shared by every subcommand
type cli struct {
	apiURL       string
	inferenceURL string
	timeout      time.Duration
	debug        bool

	client  *client.Client
	service service.AssessmentService
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cli{})
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "assessctl",
		Short:         "Call the speaking assessment inference service from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "General API base URL (overrides API_BASE_URL_API)")
	rootCmd.PersistentFlags().StringVar(&c.inferenceURL, "inference-url", "", "Inference service base URL (overrides API_FASTAPI_URL)")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "Per-request timeout, 0 for none (overrides HTTP_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&c.debug, "debug", "d", false, "Log requests and responses")

	rootCmd.AddCommand(
		c.newIdealAnswerCmd(),
		c.newProcessAudioCmd(),
		c.newAnalyzeCmd(),
		c.newCheckCmd(),
		c.newGenerateCmd(),
		c.newEvaluateCmd(),
		c.newPingCmd(),
	)

	return rootCmd
}

func (c *cli) init(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.applyOverrides(cmd, cfg)

	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.client, err = client.New(cfg, logger.Get().Named("client"))
	if err != nil {
		return err
	}
	c.service = service.NewAssessmentService(c.client, c.client)
	logger.Get().Debug("client ready",
		zap.String("api_url", cfg.API.BaseURL),
		zap.String("inference_url", cfg.Inference.BaseURL),
	)
	return nil
}

// applyOverrides copies the flags given on the command line onto cfg.
func (c *cli) applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if c.apiURL != "" {
		cfg.API.BaseURL = c.apiURL
	}
	if c.inferenceURL != "" {
		cfg.Inference.BaseURL = c.inferenceURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.HTTP.Timeout = c.timeout
	}
	if c.debug {
		cfg.Logger.Level = "debug"
	}
}

// printJSON writes v indented. Raw bodies that are not valid JSON are written as is.
func printJSON(out io.Writer, v interface{}) error {
	var raw []byte
	switch body := v.(type) {
	case json.RawMessage:
		raw = body
	default:
		var err error
		if raw, err = json.Marshal(v); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(raw)
	}
	buf.WriteByte('\n')
	_, err := out.Write(buf.Bytes())
	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
