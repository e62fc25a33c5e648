// A wrapper around *testing.T. I hate the if a != b { t.ErrorF(....) } pattern.
package assert

import (
	"bytes"
	"reflect"
	"testing"
)

// a == b
func Equal[T comparable](t *testing.T, actual T, expected T) {
	t.Helper()
	if actual != expected {
		t.Errorf("expected '%v' to equal '%v'", actual, expected)
		t.FailNow()
	}
}

// Two byte slices hold the same bytes
func Bytes(t *testing.T, actual []byte, expected []byte) {
	t.Helper()
	if !bytes.Equal(actual, expected) {
		t.Errorf("expected %q to equal %q", actual, expected)
		t.FailNow()
	}
}

// Two lists are equal (same length & same values in the same order)
func List[T comparable](t *testing.T, actuals []T, expecteds []T) {
	t.Helper()
	Equal(t, len(actuals), len(expecteds))

	for i, actual := range actuals {
		Equal(t, actual, expecteds[i])
	}
}

// A value is nil
func Nil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual != nil && !reflect.ValueOf(actual).IsNil() {
		t.Errorf("expected %v to be nil", actual)
		t.FailNow()
	}
}

// A value is not nil
func NotNil(t *testing.T, actual interface{}) {
	t.Helper()
	if actual == nil || reflect.ValueOf(actual).IsNil() {
		t.Errorf("expected %v to be not nil", actual)
		t.FailNow()
	}
}

// A value is true
func True(t *testing.T, actual bool) {
	t.Helper()
	if !actual {
		t.Error("expected true, got false")
		t.FailNow()
	}
}

// A value is false
func False(t *testing.T, actual bool) {
	t.Helper()
	if actual {
		t.Error("expected false, got true")
		t.FailNow()
	}
}

func Error(t *testing.T, actual error, expected error) {
	t.Helper()
	if actual != expected {
		t.Errorf("expected '%s' to be '%s'", actual, expected)
		t.FailNow()
	}
}
