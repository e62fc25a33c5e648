package list

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/karlseguin/expect"
)

type PrintTests struct {
}

func Test_Print(t *testing.T) {
	Expectify(new(PrintTests), t)
}

func (_ *PrintTests) WritesEveryPayloadInOrder() {
	root := listFromStrings("a", "b", "c")
	out, err := root.Print(copyFormatter)
	Expect(err).To.Equal(nil)
	Expect(string(out)).To.Equal("abc")
}

func (_ *PrintTests) ZeroWritingFormatterYieldsEmptyBuffer() {
	root := listFromStrings("a", "b", "c")
	out, err := root.Print(func(payload, out []byte) (int, error) {
		return 0, nil
	})
	Expect(err).To.Equal(nil)
	Expect(out == nil).To.Equal(false)
	Expect(len(out)).To.Equal(0)
}

func (_ *PrintTests) FormatterFailureDiscardsTheBuffer() {
	root := listFromStrings("a", "b", "c", "d")
	fail := errors.New("cannot render payload")
	calls := 0
	out, err := root.Print(func(payload, out []byte) (int, error) {
		calls++
		if calls == 3 {
			return 0, fail
		}
		return copyFormatter(payload, out)
	})
	Expect(out == nil).To.Equal(true)
	Expect(err).To.Equal(fail)
	// nodes past the failing one are never formatted
	Expect(calls).To.Equal(3)
}

func (_ *PrintTests) NilFormatterIsRejected() {
	root := Init([]byte("a"))
	out, err := root.Print(nil)
	Expect(out == nil).To.Equal(true)
	Expect(err).To.Equal(ErrNilFormatter)
}

func (_ *PrintTests) BufferDoublesAsOutputGrows() {
	root := Init([]byte("00"))
	expected := "00"
	for i := 1; i < 30; i++ {
		payload := fmt.Sprintf("%02d", i)
		root, _ = root.Insert([]byte(payload), root.Len())
		expected += payload
	}

	out, err := root.Print(copyFormatter)
	Expect(err).To.Equal(nil)
	Expect(string(out)).To.Equal(expected)
	// 60 bytes of output forces the 16 byte buffer through 32 and 64 to 128
	Expect(cap(out)).To.Equal(128)
}

func (_ *PrintTests) FormatterAlwaysSeesMinimumHeadroom() {
	root := listFromStrings("aaaa", "bbbb", "cccc", "dddd", "eeee", "ffff")
	_, err := root.Print(func(payload, out []byte) (int, error) {
		if len(out) < reallocThreshold {
			return 0, fmt.Errorf("headroom %d", len(out))
		}
		return copyFormatter(payload, out)
	})
	Expect(err).To.Equal(nil)
}

func copyFormatter(payload, out []byte) (int, error) {
	if len(payload) > len(out) {
		return 0, errors.New("payload does not fit")
	}
	return copy(out, payload), nil
}
