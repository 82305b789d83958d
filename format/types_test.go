package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtocolVersion_String(t *testing.T) {
	require.Equal(t, "Legacy", ProtocolLegacy.String())
	require.Equal(t, "Protobuf", ProtocolProtobuf.String())
	require.Equal(t, "Unknown", ProtocolVersion(0).String())
	require.Equal(t, "Unknown", ProtocolVersion(0xFF).String())
}

func TestProtocolVersion_IsValid(t *testing.T) {
	require.True(t, ProtocolLegacy.IsValid())
	require.True(t, ProtocolProtobuf.IsValid())
	require.False(t, ProtocolVersion(0).IsValid())
	require.False(t, ProtocolVersion(3).IsValid())
}
