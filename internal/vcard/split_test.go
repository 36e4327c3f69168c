package vcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitEntries(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:    "two entries with trailing newline",
			content: "BEGIN:VCARD\nFN:A\nEND:VCARD\nBEGIN:VCARD\nFN:B\nEND:VCARD\n",
			expected: []string{
				"BEGIN:VCARD\nFN:A\nEND:VCARD",
				"BEGIN:VCARD\nFN:B\nEND:VCARD",
			},
		},
		{
			name:     "CRLF line endings",
			content:  "BEGIN:VCARD\r\nFN:A\r\nEND:VCARD\r\n",
			expected: []string{"BEGIN:VCARD\nFN:A\nEND:VCARD"},
		},
		{
			name:     "no delimiter keeps the whole file",
			content:  "BEGIN:VCARD\nFN:A\n",
			expected: []string{"BEGIN:VCARD\nFN:A\nEND:VCARD"},
		},
		{
			name:     "whitespace only",
			content:  " \n\t\n",
			expected: []string{},
		},
		{
			name:     "trailing content after last marker becomes an entry",
			content:  "BEGIN:VCARD\nFN:A\nEND:VCARD\nNOTE:stray",
			expected: []string{"BEGIN:VCARD\nFN:A\nEND:VCARD", "NOTE:stray\nEND:VCARD"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, SplitEntries(tc.content))
		})
	}
}

func TestSplitEntries_CountMatchesMarkers(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 25; i++ {
		b.WriteString("BEGIN:VCARD\nVERSION:3.0\nFN:Someone\nEND:VCARD\n")
	}
	content := b.String()

	require.Len(t, SplitEntries(content), CountMarkers(content))
	require.Equal(t, 25, CountMarkers(content))
}
