package testutil

import "testing"

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", context, err)
	}
}

// AssertError checks that an error is non-nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}

// AssertStringsEqual checks two string slices for equality, order included
func AssertStringsEqual(t *testing.T, actual, expected []string, context string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Errorf("%s: expected %v, got %v", context, expected, actual)
		return
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("%s: expected %v, got %v", context, expected, actual)
			return
		}
	}
}
