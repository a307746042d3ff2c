package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":   {"ctrl+b", "show/hide commands"},
	"QuitApp":    {"q", "quit"},
	"AddTask":    {"a", "add task"},
	"DeleteTask": {"d", "delete selected task"},
	"GrabTask":   {"m", "grab selected task to move it"},
	"MoveLeft":   {"left", "shift grabbed task a day earlier"},
	"MoveRight":  {"right", "shift grabbed task a day later"},
}

type KeyMap struct {
	ShowHelp   key.Binding
	QuitApp    key.Binding
	AddTask    key.Binding
	DeleteTask key.Binding
	GrabTask   key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddTask":
			km.AddTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteTask":
			km.DeleteTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "GrabTask":
			km.GrabTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "MoveLeft":
			km.MoveLeft = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "MoveRight":
			km.MoveRight = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
