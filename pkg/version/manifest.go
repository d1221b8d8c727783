// Package version provides the embedded protocol manifest: a
// human-readable YAML description of the wire tables this library
// implements (ports, header layout, and the packet-kind registry).
//
// The manifest is documentation that cannot drift: a test cross-checks
// it against the compiled tables in pkg/wire, so a change to either
// without the other fails the build's test run.
package version

import (
	"embed"
	"encoding/hex"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed specs/*.yaml
var specFS embed.FS

// Manifest describes one revision of the protocol.
type Manifest struct {
	// Name of the protocol family.
	Name string `yaml:"name"`

	// Revision of this protocol description.
	Revision int `yaml:"revision"`

	// Description is free-form prose about the protocol.
	Description string `yaml:"description"`

	// Magic is the ten-byte packet header, hex encoded.
	Magic string `yaml:"magic"`

	// DeviceNameLength is the fixed size of the device-name field.
	DeviceNameLength int `yaml:"device_name_length"`

	// Ports maps role names to UDP port numbers.
	Ports map[string]int `yaml:"ports"`

	// Kinds lists every known packet kind.
	Kinds []KindDef `yaml:"kinds"`
}

// KindDef is one packet kind as described by the manifest.
type KindDef struct {
	// Name is the kind's display name.
	Name string `yaml:"name"`

	// Value is the type byte carried on the wire.
	Value byte `yaml:"value"`

	// Port is the UDP port on which the kind is received.
	Port int `yaml:"port"`
}

// MagicBytes decodes the manifest's hex-encoded magic header.
func (m *Manifest) MagicBytes() ([]byte, error) {
	b, err := hex.DecodeString(m.Magic)
	if err != nil {
		return nil, fmt.Errorf("invalid magic in manifest: %w", err)
	}
	return b, nil
}

var (
	loadOnce sync.Once
	loaded   *Manifest
	loadErr  error
)

// Load returns the embedded protocol manifest. The manifest is parsed
// once and cached; all callers share the same instance and must treat
// it as read-only.
func Load() (*Manifest, error) {
	loadOnce.Do(func() {
		data, err := specFS.ReadFile("specs/protocol.yaml")
		if err != nil {
			loadErr = fmt.Errorf("reading embedded manifest: %w", err)
			return
		}
		var m Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			loadErr = fmt.Errorf("parsing embedded manifest: %w", err)
			return
		}
		loaded = &m
	})
	return loaded, loadErr
}
