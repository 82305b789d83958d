package format

type ProtocolVersion uint8

const (
	ProtocolLegacy   ProtocolVersion = 0x1 // ProtocolLegacy is the pre-protobuf flat byte layout.
	ProtocolProtobuf ProtocolVersion = 0x2 // ProtocolProtobuf is the length-prefixed structured message format.
)

func (p ProtocolVersion) String() string {
	switch p {
	case ProtocolLegacy:
		return "Legacy"
	case ProtocolProtobuf:
		return "Protobuf"
	default:
		return "Unknown"
	}
}

// IsValid reports whether p is a known protocol version.
func (p ProtocolVersion) IsValid() bool {
	return p == ProtocolLegacy || p == ProtocolProtobuf
}
