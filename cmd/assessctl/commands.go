package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"grammologue/internal/domain"
	"grammologue/internal/validation"

	"github.com/spf13/cobra"
)

func (c *cli) newIdealAnswerCmd() *cobra.Command {
	var question, answer string

	cmd := &cobra.Command{
		Use:   "ideal-answer",
		Short: "Get the ideal answer and an analysis of the user's answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.service.GetIdealAnswer(commandContext(cmd), question, answer)
			if err != nil {
				return err
			}
			body, err := env.Body()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
	cmd.Flags().StringVar(&question, "question", "", "Question that was asked")
	cmd.Flags().StringVar(&answer, "answer", "", "User's answer")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func (c *cli) newProcessAudioCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "process-audio <file>",
		Short: "Upload a recording for transcription and fluency analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open audio file: %w", err)
			}
			defer f.Close()

			body, err := c.service.ProcessAudio(commandContext(cmd), domain.AudioFile{
				Filename: filepath.Base(args[0]),
				Content:  f,
				Language: language,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "Spoken language (server default: English)")
	return cmd
}

func (c *cli) newAnalyzeCmd() *cobra.Command {
	var question string

	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Get grammar, pronunciation and fluency feedback for a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var questionPtr *string
			if cmd.Flags().Changed("question") {
				questionPtr = &question
			}
			body, err := c.service.AnalyzeText(commandContext(cmd), args[0], questionPtr)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
	cmd.Flags().StringVar(&question, "question", "", "Question the transcript answers")
	return cmd
}

func (c *cli) newCheckCmd() *cobra.Command {
	var question, answer string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Score an answer's relevance and quality",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := c.service.CheckAnswer(commandContext(cmd), question, answer)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
	cmd.Flags().StringVar(&question, "question", "", "Question that was asked")
	cmd.Flags().StringVar(&answer, "answer", "", "User's answer")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func (c *cli) newGenerateCmd() *cobra.Command {
	var setupPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate assessment questions from a JSON setup record",
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if setupPath == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(setupPath)
			}
			if err != nil {
				return fmt.Errorf("read setup: %w", err)
			}

			setup, errs := validation.NewValidator().ValidateSetup(data)
			if len(errs) > 0 {
				return errs
			}

			body, err := c.service.GenerateQuestions(commandContext(cmd), setup)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
	cmd.Flags().StringVar(&setupPath, "setup", "-", "Path to the setup JSON file, - for stdin")
	return cmd
}

func (c *cli) newEvaluateCmd() *cobra.Command {
	var question, answer string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Analyze, check and get the ideal answer for one transcribed answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			eval, err := c.service.EvaluateResponse(commandContext(cmd), question, answer)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), eval)
		},
	}
	cmd.Flags().StringVar(&question, "question", "", "Question that was asked")
	cmd.Flags().StringVar(&answer, "answer", "", "Transcribed answer")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func (c *cli) newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that both backends answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := c.service.Readiness(commandContext(cmd))
			if err := printJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.Ready {
				return fmt.Errorf("not all backends are reachable")
			}
			return nil
		},
	}
}
