package cmd

import (
	"fmt"
	"strings"

	"github.com/rubiojr/folio/pkg/config"
	"github.com/rubiojr/folio/pkg/log"
	"github.com/rubiojr/folio/pkg/searchapi"
	"github.com/urfave/cli/v3"
)

// loadSettings loads the configuration named by --config, applies the
// --api-url override and configures logging.
func loadSettings(c *cli.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := applyOverrides(cfg, c.String("api-url")); err != nil {
		return nil, err
	}

	configureLogging(c.Bool("debug"), cfg)
	return cfg, nil
}

// applyOverrides replaces the configured upstream with apiURL when set.
func applyOverrides(cfg *config.Config, apiURL string) error {
	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" {
		return nil
	}
	cfg.APIURL = apiURL
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid --api-url: %w", err)
	}
	return nil
}

func configureLogging(debug bool, cfg *config.Config) {
	log.SetGlobalDebug(debug)
	log.ConfigureDebug(cfg.DebugServices)
}

// newClient builds the search API client described by cfg.
func newClient(cfg *config.Config) *searchapi.Client {
	return searchapi.NewClient(cfg.APIURL, searchapi.WithTimeout(cfg.Timeout.Duration))
}
