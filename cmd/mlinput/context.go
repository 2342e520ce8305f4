package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mlinput/internal/clipboard"
	"mlinput/internal/config"
	"mlinput/internal/document"
	"mlinput/internal/editor"
	"mlinput/internal/language"
	"mlinput/internal/logging"
	"mlinput/internal/merge"
	"mlinput/internal/notify"
	"mlinput/internal/record"
)

type commandContext struct {
	configFlag *string
	quietFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, quietFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		quietFlag:  quietFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		def := config.Default()
		return &def
	}
	return cfg
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.configValue(), uuid.NewString())
		if err != nil {
			c.loggerErr = err
			return
		}
		if c.quietFlag != nil && *c.quietFlag {
			logger = logging.WithLevelOverride(logger, slog.LevelWarn)
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) catalog() *language.Catalog {
	return language.NewCatalog(c.configValue().Catalog.Extra)
}

func (c *commandContext) codec() clipboard.Codec {
	return clipboard.Codec{StrictSeparator: c.configValue().Clipboard.StrictSeparator}
}

// operationLogger tags the log lines of one document mutation.
func (c *commandContext) operationLogger(op, path string) (*slog.Logger, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return logger.With(
		logging.String(logging.FieldOperationID, uuid.NewString()),
		logging.String("operation", op),
		logging.String(logging.FieldDocument, path),
	), nil
}

// newEditor builds an editor over rec using the configured props, codec and
// catalog.
func (c *commandContext) newEditor(rec *record.Record, logger *slog.Logger, decider merge.Decider) (*editor.Editor, error) {
	cfg := c.configValue()
	return editor.New(rec, notify.NewLogging(logger),
		editor.WithProps(editor.Props{
			ReadOnly:  cfg.Editor.ReadOnly,
			MinLength: cfg.Editor.MinLength,
			MaxLength: cfg.Editor.MaxLength,
		}),
		editor.WithCollapseDelay(cfg.CollapseDelay()),
		editor.WithDecider(decider),
		editor.WithLogger(logger),
		editor.WithCodec(c.codec()),
		editor.WithCatalog(c.catalog()),
	)
}

// editDocument runs fn against an editor over the locked document and saves
// the editor's record afterwards.
func (c *commandContext) editDocument(ctx context.Context, op, path string, decider merge.Decider, fn func(*editor.Editor) error) (*record.Record, error) {
	logger, err := c.operationLogger(op, path)
	if err != nil {
		return nil, err
	}
	store, err := openStore(path)
	if err != nil {
		return nil, err
	}
	return store.Update(ctx, func(current *record.Record) (*record.Record, error) {
		ed, err := c.newEditor(current, logger, decider)
		if err != nil {
			return nil, err
		}
		defer ed.Close()
		if err := fn(ed); err != nil {
			return nil, err
		}
		return ed.Record(), nil
	})
}

func (c *commandContext) readDocument(ctx context.Context, path string) (*record.Record, error) {
	store, err := openStore(path)
	if err != nil {
		return nil, err
	}
	return store.Read(ctx)
}

func openStore(path string) (*document.Store, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("resolve document path: %w", err)
	}
	if expanded == "" {
		return nil, fmt.Errorf("document path is required")
	}
	return document.Open(expanded), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
