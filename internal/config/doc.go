// Package config loads the optional acronymcreator configuration file.
//
// The config file supplies default generation options and extra stop
// words. It is entirely optional — a missing file yields an empty
// configuration, not an error. Explicit CLI flags always override
// configured defaults.
//
// Two formats are supported, selected by file extension:
//   - YAML (.yaml / .yml), parsed with gopkg.in/yaml.v3
//   - JSON with comments (.json / .jsonc), parsed with
//     github.com/tidwall/jsonc to strip comments before the standard
//     encoding/json pass
//
// Resolution order: the --config flag path (which must exist), then
// $XDG_CONFIG_HOME/acronymcreator/, then ~/.config/acronymcreator/,
// trying config.yaml, config.yml, config.json, config.jsonc in each.
package config
