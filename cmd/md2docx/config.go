package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rgonek/md-docx-converter/converter"
	"github.com/rgonek/md-docx-converter/document"
	"github.com/rgonek/md-docx-converter/logging"
	"github.com/rgonek/md-docx-converter/logging/gologger"
)

const envPrefix = "MD2DOCX"

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"preset":        "preset",
	"mode":          "mode",
	"title":         "title",
	"author":        "author",
	"code-theme":    "codeTheme",
	"image-timeout": "imageTimeout",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

// settings is the resolved CLI configuration.
type settings struct {
	Options   converter.Options
	LogLevel  string
	LogFormat string
}

// loadSettings resolves configuration with precedence flag > env > file >
// preset. The style section of the file is overlaid on the preset style.
func loadSettings(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	flags := cmd.Flags()
	for flag, key := range flagKeys {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	configPath, _ := flags.GetString("config")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return settings{}, fmt.Errorf("read config %s: %w", configPath, err)
			}
		}
	}

	style, err := presetStyle(v.GetString("preset"))
	if err != nil {
		return settings{}, err
	}
	if v.IsSet("style") {
		if err := v.UnmarshalKey("style", &style); err != nil {
			return settings{}, fmt.Errorf("decode style: %w", err)
		}
	}

	return settings{
		Options: converter.Options{
			Style:        style,
			Mode:         document.Mode(strings.ToLower(v.GetString("mode"))),
			Title:        v.GetString("title"),
			Author:       v.GetString("author"),
			CodeTheme:    v.GetString("codeTheme"),
			ImageTimeout: v.GetDuration("imageTimeout"),
		},
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
	}, nil
}

func (s settings) logger() (logging.Logger, error) {
	root, err := gologger.New(gologger.Config{Level: s.LogLevel, Format: s.LogFormat})
	if err != nil {
		return nil, err
	}
	return gologger.Named(root, "md2docx"), nil
}

// forInput fills options that depend on the input location.
func (s settings) forInput(path string) converter.Options {
	opts := s.Options
	if path != "-" {
		opts.BaseDir = filepath.Dir(path)
	}
	return opts
}
