package strutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRemoveContentIntoBrackets(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "test_round_brackets",
			in:       "US Dollar (USD)",
			expected: "US Dollar ",
		},
		{
			name:     "test_square_brackets",
			in:       "Euro [EUR]",
			expected: "Euro ",
		},
		{
			name:     "test_no_brackets",
			in:       "Japanese Yen",
			expected: "Japanese Yen",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.expected, RemoveContentIntoBrackets(tc.in)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveExtraSpaces(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "test_collapse_runs",
			in:       "US  Dollar   (USD)",
			expected: "US Dollar (USD)",
		},
		{
			name:     "test_trim_ends",
			in:       "\n\t US Dollar \n",
			expected: "US Dollar",
		},
		{
			name:     "test_newline_run_becomes_space",
			in:       "2021/06/18\n16:00",
			expected: "2021/06/18 16:00",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.expected, RemoveExtraSpaces(tc.in)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestCamelCase(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "test_two_words",
			in:       "us dollar",
			expected: "UsDollar",
		},
		{
			name:     "test_mixed_case",
			in:       "New Taiwan DOLLAR",
			expected: "NewTaiwanDollar",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.expected, CamelCase(tc.in)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
