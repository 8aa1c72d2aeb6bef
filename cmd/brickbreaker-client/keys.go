// File: cmd/brickbreaker-client/keys.go
package main

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

func arrowKey(final byte) (string, bool) {
	switch final {
	case 'D':
		return "ArrowLeft", true
	case 'C':
		return "ArrowRight", true
	}
	return "", false
}

// decodeKeys splits a raw-mode stdin read into game key names. Arrows are
// recognised in normal (CSI), application (SS3) and modified forms; other
// escape sequences are skipped whole. quit is set for q, Ctrl-C or a lone Escape.
func decodeKeys(buf []byte) (keys []string, quit bool) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == keyCtrlC || b == 'q' || b == 'Q':
			return keys, true
		case b == keyEscape:
			if i+1 == len(buf) {
				return keys, true
			}
			switch buf[i+1] {
			case '[':
				// Parameter and intermediate bytes run until a final byte in 0x40-0x7e.
				j := i + 2
				for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
					j++
				}
				if j < len(buf) {
					if key, ok := arrowKey(buf[j]); ok {
						keys = append(keys, key)
					}
				}
				i = j
			case 'O':
				if i+2 < len(buf) {
					if key, ok := arrowKey(buf[i+2]); ok {
						keys = append(keys, key)
					}
				}
				i += 2
			default:
				// Alt+key.
				i++
			}
		case b == '\r' || b == '\n':
			keys = append(keys, "Enter")
		case b >= ' ' && b < 0x7f:
			keys = append(keys, string(rune(b)))
		}
	}
	return keys, false
}
