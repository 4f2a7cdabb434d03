package config

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// format is the serialization used for a config path, picked by file extension.
type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatFor(path string) (format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported config file type %q (supported: .toml, .yaml, .yml)", ext)
	}
}

// decode parses data into cfg. For TOML it also returns the keys present in the
// document that do not map onto Config, so callers can warn about typos.
func decode(f format, data []byte, cfg *Config) ([]string, error) {
	switch f {
	case formatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, err
		}
		var unknown []string
		for _, key := range md.Undecoded() {
			unknown = append(unknown, key.String())
		}
		return unknown, nil
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, err
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown config format %d", f)
	}
}

// encode serializes cfg.
func encode(f format, cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case formatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
	case formatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown config format %d", f)
	}
	return buf.Bytes(), nil
}

// Marshal serializes cfg in the format implied by path's extension.
func Marshal(path string, cfg *Config) ([]byte, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	return encode(f, cfg)
}
