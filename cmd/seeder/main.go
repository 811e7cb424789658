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
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/scriptura/corpus"
	"github.com/poiesic/scriptura/storage/badger"
)

// seeder bulk-loads translation JSON documents into a store. The translation
// ID is taken from the file name: kjv.json becomes "kjv".
func main() {
	app := &cli.App{
		Name:      "seeder",
		Usage:     "Bulk-load translation documents into a scriptura database",
		ArgsUsage: "<file.json> [file.json ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB database directory",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "continue-on-error",
				Usage: "Skip files that fail to load instead of aborting",
			},
		},
		Action: seedCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one translation file is required")
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	blob, err := badger.NewBlobStore(backend)
	if err != nil {
		return fmt.Errorf("failed to create blob store: %w", err)
	}

	store, err := corpus.NewStore(blob)
	if err != nil {
		return err
	}

	ctx := context.Background()
	loaded := 0
	for _, path := range c.Args().Slice() {
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		data, err := os.ReadFile(path)
		if err == nil {
			_, err = store.UploadTranslation(ctx, id, data)
		}
		if err != nil {
			if c.Bool("continue-on-error") {
				slog.Warn("skipping translation", "file", path, "err", err)
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}

		slog.Info("loaded translation", "translation", id, "file", path)
		loaded++
	}

	fmt.Printf("loaded %d translation(s)\n", loaded)
	return nil
}
