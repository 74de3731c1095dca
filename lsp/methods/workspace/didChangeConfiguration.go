package workspace

import (
	"fmt"

	json "github.com/goccy/go-json"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/lsp/types"
)

// DidChangeConfiguration handles the workspace/didChangeConfiguration notification
func DidChangeConfiguration(req *types.RequestContext, params *protocol.DidChangeConfigurationParams) error {
	log.Info("Configuration changed")

	config, err := parseConfiguration(params.Settings)
	if err != nil {
		log.Warn("failed to parse configuration, keeping current: %v", err)
		return nil
	}

	req.Server.SetConfig(config)
	log.Debug("New configuration: %+v", config)

	// Schema globs may have changed, so the catalog has to be rebuilt.
	if err := req.Server.LoadCatalog(); err != nil {
		LogWarning(req.GLSP, "failed to reload schema catalog: %v", err)
	}

	return nil
}

// parseConfiguration extracts our settings from the client's settings object.
// Settings arrive as a nested object: { "schemaWorkbench": { ... } }.
func parseConfiguration(settings any) (types.ServerConfig, error) {
	config := types.DefaultConfig()

	if settings == nil {
		return config, nil
	}

	settingsMap, ok := settings.(map[string]any)
	if !ok {
		return config, fmt.Errorf("settings is not a map")
	}

	var ourSettings any
	if val, exists := settingsMap["schemaWorkbench"]; exists {
		ourSettings = val
	} else if val, exists := settingsMap["schema-workbench"]; exists {
		ourSettings = val
	} else {
		return config, nil
	}

	jsonBytes, err := json.Marshal(ourSettings)
	if err != nil {
		return config, fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, &config); err != nil {
		return config, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return config.Normalize(), nil
}
