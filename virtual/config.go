package virtual

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/patternbook/patternbook/catalog"
	"github.com/pelletier/go-toml/v2"
)

// configFile is the site settings file at the root of the tree.
const configFile = "patternbook.cfg"

// Config contains configuration data from the patternbook.cfg file.
type Config struct {
	Expires       catalog.Duration  `toml:"expires"`       // Expiry for rendered pages
	StaticExpires catalog.Duration  `toml:"staticexpires"` // Expiry for static files
	Headers       map[string]string `toml:"headers"`       // Extra response headers
}

// Config returns configuration from the patternbook.cfg file.
// It is not an error if the file does not exist.
func (vfs *FS) Config() (*Config, error) {
	var cfg Config
	cfgBytes, err := fs.ReadFile(vfs.fs, configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}
	err = toml.Unmarshal(cfgBytes, &cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}
	return &cfg, nil
}
