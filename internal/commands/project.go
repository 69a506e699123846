package commands

import (
	"fmt"
	"path/filepath"

	"github.com/tilikirja-dev/tilikirja/internal/config"
	"github.com/tilikirja-dev/tilikirja/internal/ledger"
)

// openProject loads the configuration and ledger database of the
// project rooted at dir. The caller closes the store.
func openProject(dir string) (*config.Config, *ledger.Store, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, nil, fmt.Errorf("not a bookkeeping project (run init first): %w", err)
	}

	store, err := ledger.Open(filepath.Join(dir, cfg.Ledger.Path))
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}
