package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"imgtools/internal/config"
	"imgtools/internal/logging"
)

const skipConfigAnnotation = "skipConfigLoad"

// Context carries the persistent flags and lazily loaded configuration of one
// invocation.
type Context struct {
	configFlag string
	verbose    bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

// NewContext returns an empty Context; call BindFlags before executing.
func NewContext() *Context {
	return &Context{}
}

// BindFlags registers --config and --verbose on root and loads configuration
// before any subcommand that does not opt out.
func (c *Context) BindFlags(root *cobra.Command) {
	root.PersistentFlags().StringVarP(&c.configFlag, "config", "c", "", "Configuration file path")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if shouldSkipConfig(cmd) {
			return nil
		}
		_, err := c.Config()
		return err
	}
}

// Config loads and validates the configuration on first use.
func (c *Context) Config() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// Logger returns the invocation logger tagged with a fresh run_id and the
// given component.
func (c *Context) Logger(component string) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.Config()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg.Logging, c.verbose)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	})
	if c.loggerErr != nil {
		return nil, c.loggerErr
	}
	return logging.NewComponentLogger(c.logger, component), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for cur := cmd; cur != nil; cur = cur.Parent() {
		if cur.Annotations != nil && cur.Annotations[skipConfigAnnotation] == "true" {
			return true
		}
	}
	return false
}
