package filter

const hexDigits = "0123456789ABCDEF"

// prettyBytes renders b as a double-quoted string for logs. Printable ASCII is
// kept, quotes and backslashes are escaped and everything else becomes \xHH.
// A nil slice renders as null.
func prettyBytes(b []byte) string {
	if b == nil {
		return "null"
	}

	out := make([]byte, 0, len(b)+2)
	out = append(out, '"')
	for _, c := range b {
		switch {
		case c == '"' || c == '\\':
			out = append(out, '\\', c)
		case c >= 0x20 && c < 0x7F:
			out = append(out, c)
		default:
			out = append(out, '\\', 'x', hexDigits[c>>4], hexDigits[c&0x0F])
		}
	}
	out = append(out, '"')

	return string(out)
}
