// internal/core/plugin.go
package core

import "sync"

// Plugin is the interface for all modules/plugins.
type Plugin interface {
	Name() string
	Description() string
	Category() string
	Options() []ModuleOption
	Run(target string, options map[string]interface{}) (interface{}, error)
}

// ModuleOption describes a single configurable option of a plugin.
type ModuleOption struct {
	Name        string
	Type        string
	Default     interface{}
	Description string
	Required    bool
}

var (
	pluginMu sync.Mutex
	plugins  []Plugin
)

// RegisterPlugin adds a plugin to the registry. Called from module init().
func RegisterPlugin(p Plugin) {
	pluginMu.Lock()
	defer pluginMu.Unlock()
	plugins = append(plugins, p)
}

// ListPlugins returns all registered plugins.
func ListPlugins() []Plugin {
	pluginMu.Lock()
	defer pluginMu.Unlock()
	out := make([]Plugin, len(plugins))
	copy(out, plugins)
	return out
}

// GetPlugin looks a plugin up by name, nil when absent.
func GetPlugin(name string) Plugin {
	pluginMu.Lock()
	defer pluginMu.Unlock()
	for _, p := range plugins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}
