// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/scriptura"
	"github.com/poiesic/scriptura/ai"
)

func main() {
	app := &cli.App{
		Name:  "scriptura",
		Usage: "Tiered scripture search and guidance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search for verses by reference, keyword, or topic",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     serviceFlags(),
			},
			{
				Name:      "guidance",
				Usage:     "Get guidance for a personal situation",
				ArgsUsage: "<situation>",
				Action:    guidanceCommand,
				Flags:     serviceFlags(),
			},
			{
				Name:  "corpus",
				Usage: "Manage stored translations",
				Subcommands: []*cli.Command{
					{
						Name:      "upload",
						Usage:     "Upload a translation document from a JSON file",
						ArgsUsage: "<translation-id> <file>",
						Action:    corpusUploadCommand,
						Flags:     serviceFlags(),
					},
					{
						Name:   "list",
						Usage:  "List stored translation IDs",
						Action: corpusListCommand,
						Flags:  serviceFlags(),
					},
					{
						Name:      "delete",
						Usage:     "Delete a stored translation",
						ArgsUsage: "<translation-id>",
						Action:    corpusDeleteCommand,
						Flags:     serviceFlags(),
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "openai-host",
			Usage: "OpenAI-compatible service host URL",
		},
		&cli.StringFlag{
			Name:  "openai-model",
			Usage: "Model name on the OpenAI-compatible service",
		},
	}
}

func openService(c *cli.Context) (*scriptura.Service, error) {
	var configOpts []ai.ConfigOption
	if host := c.String("openai-host"); host != "" {
		configOpts = append(configOpts, ai.WithOpenAIHost(host))
	}
	if model := c.String("openai-model"); model != "" {
		configOpts = append(configOpts, ai.WithOpenAIModel(model))
	}

	return scriptura.NewService(c.String("db"), scriptura.WithAIConfig(ai.DefaultConfig(configOpts...)))
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	svc, err := openService(c)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close()

	response, err := svc.Search(context.Background(), query)
	if err != nil {
		return err
	}

	return printJSON(response)
}

func guidanceCommand(c *cli.Context) error {
	situation := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if situation == "" {
		return fmt.Errorf("situation is required")
	}

	svc, err := openService(c)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close()

	result, err := svc.GetGuidance(context.Background(), situation)
	if err != nil {
		return err
	}

	return printJSON(result)
}

func corpusUploadCommand(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("usage: corpus upload <translation-id> <file>")
	}
	id := c.Args().Get(0)

	data, err := os.ReadFile(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("failed to read translation file: %w", err)
	}

	svc, err := openService(c)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close()

	digest, err := svc.Store().UploadTranslation(context.Background(), id, data)
	if err != nil {
		return fmt.Errorf("failed to upload translation: %w", err)
	}

	fmt.Printf("stored %s (digest %s)\n", id, digest)
	return nil
}

func corpusListCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close()

	for _, id := range svc.Store().ListTranslations(context.Background()) {
		fmt.Println(id)
	}
	return nil
}

func corpusDeleteCommand(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("translation-id is required")
	}

	svc, err := openService(c)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close()

	if err := svc.Store().DeleteTranslation(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete translation: %w", err)
	}

	fmt.Printf("deleted %s\n", id)
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
