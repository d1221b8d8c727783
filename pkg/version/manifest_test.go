package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djlink-protocol/djlink-go/pkg/wire"
)

func TestLoad(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "DJ Link", m.Name)
	assert.Equal(t, 1, m.Revision)
	assert.Equal(t, wire.DeviceNameLength, m.DeviceNameLength)
	assert.Equal(t, wire.AnnouncementPort, m.Ports["announcement"])
	assert.Equal(t, wire.BeatPort, m.Ports["beat"])
	assert.Equal(t, wire.UpdatePort, m.Ports["update"])

	// Load caches: every caller shares one parsed instance.
	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, m, again)
}

func TestManifestMagicMatchesWire(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)

	magic, err := m.MagicBytes()
	require.NoError(t, err)
	assert.Equal(t, wire.MagicHeader(), magic)
}

func TestManifestMatchesRegistry(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)

	require.Len(t, m.Kinds, len(wire.PacketTypes()),
		"manifest and compiled registry must list the same number of kinds")

	for _, kind := range m.Kinds {
		pt, ok := wire.LookupType(kind.Port, kind.Value)
		require.True(t, ok, "manifest kind %q (port %d, value 0x%02x) missing from registry",
			kind.Name, kind.Port, kind.Value)
		assert.Equal(t, kind.Name, pt.String())
		assert.Equal(t, kind.Value, pt.Value())
		assert.Equal(t, kind.Port, pt.Port())
	}
}
