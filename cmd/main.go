// Command teens-language is a developer CLI that runs the search and comic
// flows from the terminal, without the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"teens-language/config"
	"teens-language/internal/app"
	"teens-language/internal/core/comic"
	"teens-language/internal/core/locale"
	"teens-language/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "teens-language",
	Short:         "Decode youth slang, emoji and internet expressions",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the JSON results
		logger.GetLogger().SetOutput(cmd.ErrOrStderr())

		path, _ := cmd.Flags().GetString("config")
		if err := config.Init(path); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return logger.SetLevel(string(config.Cfg.LogLevel))
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Interpret a term and list related terms",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := languageFlag(cmd)
		if err != nil {
			return err
		}
		out := app.New().Orchestrator.PerformSearch(context.Background(), strings.Join(args, " "), lang)
		return printJSON(cmd, out)
	},
}

var relatedCmd = &cobra.Command{
	Use:   "related <query>",
	Short: "List related terms only",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		terms, err := app.New().Suggester.Suggest(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(cmd, terms)
	},
}

var comicCmd = &cobra.Command{
	Use:   "comic",
	Short: "Draw a four-panel comic for a term",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := languageFlag(cmd)
		if err != nil {
			return err
		}
		term, _ := cmd.Flags().GetString("term")
		sentences, _ := cmd.Flags().GetStringArray("sentence")
		outPath, _ := cmd.Flags().GetString("out")

		out := app.New().Orchestrator.GenerateComic(context.Background(), comic.Request{
			TermPhrase:       term,
			ExampleSentences: sentences,
			Language:         lang,
		})
		if outPath == "" || out.Data == nil {
			return printJSON(cmd, out)
		}

		img, err := comic.ParseDataURI(*out.Data)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, img.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d bytes)\n", outPath, img.MimeType, len(img.Data))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "path to the yaml config file")

	searchCmd.Flags().String("lang", string(locale.English), "interpretation language (en, id)")
	rootCmd.AddCommand(searchCmd)

	rootCmd.AddCommand(relatedCmd)

	comicCmd.Flags().String("term", "", "term or phrase the comic is about")
	comicCmd.Flags().StringArray("sentence", nil, "example sentence (repeatable)")
	comicCmd.Flags().String("lang", string(locale.English), "language for error messages (en, id)")
	comicCmd.Flags().String("out", "", "write the image to this file instead of printing the data URI")
	_ = comicCmd.MarkFlagRequired("term")
	rootCmd.AddCommand(comicCmd)
}

func languageFlag(cmd *cobra.Command) (locale.Language, error) {
	tag, _ := cmd.Flags().GetString("lang")
	return locale.Parse(tag)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err, "command failed")
		os.Exit(1)
	}
}
