package lsp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/lsp/types"
)

// GetConfig returns the current server configuration
func (s *Server) GetConfig() types.ServerConfig {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.config
}

// SetConfig replaces the server configuration and propagates the debounce
// delay to the validation pipeline.
func (s *Server) SetConfig(config types.ServerConfig) {
	config = config.Normalize()

	s.configMu.Lock()
	s.config = config
	s.configMu.Unlock()

	if s.debouncer != nil {
		s.debouncer.SetDelay(config.DebounceDelay())
	}
}

// LoadWorkspaceConfig reads .schema-workbench.yaml from the workspace root.
// A missing file is not an error; the defaults stay in effect.
func (s *Server) LoadWorkspaceConfig() error {
	rootPath := s.RootPath()
	if rootPath == "" {
		return nil // No workspace, nothing to load
	}

	configPath := filepath.Join(rootPath, types.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no %s in workspace, using defaults", types.ConfigFileName)
			s.SetConfig(types.DefaultConfig())
			return nil
		}
		return fmt.Errorf("reading %s: %w", types.ConfigFileName, err)
	}

	config := types.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing %s: %w", types.ConfigFileName, err)
	}

	log.Info("Loaded workspace config from %s", configPath)
	s.SetConfig(config)
	return nil
}
