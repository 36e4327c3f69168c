package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

func TestObject_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	o := NewObject()
	o.Set("b", "1")
	o.Set("a", "2")
	o.Set("b", "3")

	// --- Act ---
	data, err := json.Marshal(o)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, `{"b":"3","a":"2"}`, string(data))
	assert.Equal(t, 2, o.Len())
}

func TestObject_Delete(t *testing.T) {
	t.Parallel()

	o := NewObject()
	o.Set("a", "1")
	o.Set("b", "2")
	o.Set("c", "3")
	o.Delete("b")
	o.Delete("missing")

	require.Equal(t, []Entry{{Key: "a", Value: "1"}, {Key: "c", Value: "3"}}, o.Entries())
}

func TestObject_NoHTMLEscaping(t *testing.T) {
	t.Parallel()

	o := NewObject()
	o.Set("URL", "https://example.com/?a=1&b=<2>")

	data, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"URL":"https://example.com/?a=1&b=<2>"}`, string(data))
}

func TestBuild(t *testing.T) {
	t.Parallel()

	records := []vcard.Contact{
		{
			{Label: "Name: First", Value: "John"},
			{Label: "Name: Last", Value: "Doe"},
			{Label: "Email: Work", Value: "a@b.c"},
			{Label: "Email: Work", Value: "d@e.f"},
			{Label: "Note", Value: `line one\nline two`},
			{Label: "Unknown", Value: "X-ONE:1"},
			{Label: "Unknown", Value: "X-ONE:1"},
			{Label: "Unknown", Value: "X-TWO:2"},
		},
		{
			{Label: "Email: Work", Value: "solo@b.c"},
		},
	}
	headers := []string{"Name: First", "Name: Last", "Email: Work", "Note", "Unknown"}

	docs := Build(records, headers)
	require.Len(t, docs, 2)

	data, err := json.Marshal(docs)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{
			"Name": {"First": "John", "Last": "Doe"},
			"Email": {"Work": ["a@b.c", "d@e.f"]},
			"Note": "line one\nline two",
			"Unknown": ["X-ONE:1", "X-TWO:2"]
		},
		{
			"Email": {"Work": "solo@b.c"}
		}
	]`, string(data))

	// Nested keys follow header order.
	entries := docs[0].Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "Name", entries[0].Key)
	assert.Equal(t, "Email", entries[1].Key)
	assert.Equal(t, "Note", entries[2].Key)
	assert.Equal(t, "Unknown", entries[3].Key)
}

func TestBuild_OmitsEmpty(t *testing.T) {
	t.Parallel()

	records := []vcard.Contact{
		{{Label: "Phone: Cell", Value: ""}},
		{{Label: "Note", Value: "kept"}},
	}

	docs := Build(records, []string{"Note", "Phone: Cell"})

	require.Len(t, docs, 1)
	v, ok := docs[0].Get("Note")
	require.True(t, ok)
	assert.Equal(t, "kept", v)
	_, ok = docs[0].Get("Phone")
	assert.False(t, ok)
}
