package list

const (
	printBuffSize    = 16
	reallocThreshold = 8
)

// Formatter writes a textual rendering of payload into out and returns
// the number of bytes written. out is guaranteed to have at least
// reallocThreshold bytes of room; a formatter needing more than len(out)
// bytes must return an error rather than write past the slice.
type Formatter func(payload, out []byte) (int, error)

// Print renders every node from the receiver onwards into a single
// buffer using format. The buffer starts at a small fixed capacity and
// doubles whenever the headroom left after appending a node drops below
// a threshold; the newly exposed tail is zeroed. If format fails for any
// node the whole buffer is discarded and the error returned. On success
// the used portion of the buffer is returned and belongs to the caller.
func (n *Node) Print(format Formatter) ([]byte, error) {
	if format == nil {
		return nil, ErrNilFormatter
	}

	size := printBuffSize
	buff := make([]byte, size)
	used := 0
	for ; n != nil; n = n.next {
		written, err := format(n.payload, buff[used:])
		if err != nil {
			return nil, err
		}
		used += written
		if used > size-reallocThreshold {
			grown := make([]byte, size*2)
			copy(grown, buff[:used])
			buff = grown
			size *= 2
		}
	}
	return buff[:used], nil
}
