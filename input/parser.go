package input

const (
	byteEscape = 0x1b
	byteCtrlC  = 0x03
)

// parseChunk scans one drained input chunk and reduces it to a single signal.
//
// Quit bytes win over any direction present in the same chunk. Otherwise the
// LAST complete arrow sequence wins: under OS key repeat a chunk commonly
// holds several queued sequences, and honoring only the most recent one keeps
// rapid direction changes from lagging behind the backlog.
//
// Arrow sequences are matched as contiguous triples, both CSI (ESC [ A..D)
// and SS3 (ESC O A..D, sent in application cursor mode). A partial sequence
// split at the chunk boundary is discarded for this tick; if the key is still
// held, repeat events re-deliver it next tick. All other bytes are ignored.
func parseChunk(chunk []byte) Signal {
	last := None

	for i := 0; i < len(chunk); i++ {
		switch chunk[i] {
		case 'q', 'Q', byteCtrlC:
			return Quit

		case byteEscape:
			if i+2 >= len(chunk) {
				continue // Partial sequence at chunk boundary
			}
			if chunk[i+1] != '[' && chunk[i+1] != 'O' {
				continue
			}
			switch chunk[i+2] {
			case 'A':
				last = Up
			case 'B':
				last = Down
			case 'C':
				last = Right
			case 'D':
				last = Left
			default:
				continue // Unrecognized sequence, ignore
			}
			i += 2
		}
	}

	return last
}
