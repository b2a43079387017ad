// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads cedict configuration from a YAML file and the
// environment.
package config

import (
	"log/slog"
	"time"

	"github.com/ianlewis/go-cedict"
	"github.com/ianlewis/go-cedict/internal/folding"
)

// Config is the root configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig holds dictionary loading settings.
type DictionaryConfig struct {
	Path          string `yaml:"path"           env:"CEDICT_PATH"`
	SkipMalformed bool   `yaml:"skip_malformed" env:"CEDICT_SKIP_MALFORMED" env-default:"false"`
	StripHTML     bool   `yaml:"strip_html"     env:"CEDICT_STRIP_HTML"     env-default:"false"`
	FoldSpaces    bool   `yaml:"fold_spaces"    env:"CEDICT_FOLD_SPACES"    env-default:"false"`
}

// CacheConfig holds tokenization cache settings.
type CacheConfig struct {
	Size int           `yaml:"size" env:"CEDICT_CACHE_SIZE" env-default:"1024"`
	TTL  time.Duration `yaml:"ttl"  env:"CEDICT_CACHE_TTL"  env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Options returns the dictionary load options for the configuration.
func (c DictionaryConfig) Options(logger *slog.Logger) *cedict.Options {
	opts := &cedict.Options{
		SkipMalformed: c.SkipMalformed,
		StripHTML:     c.StripHTML,
		Logger:        logger,
	}
	if c.FoldSpaces {
		opts.Folder = folding.NewSpaceRemover
	}
	return opts
}

// HandleOptions returns the Handle options for the configuration.
func (c CacheConfig) HandleOptions() *cedict.HandleOptions {
	return &cedict.HandleOptions{
		CacheSize: c.Size,
		CacheTTL:  c.TTL,
	}
}
