package columns

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

func TestOrder_SortedWhenReorderDisabled(t *testing.T) {
	t.Parallel()

	got := Order([]string{"Phone: Cell", "Is Company", "Name: First", "Note", "Note"}, false)
	require.Equal(t, []string{"Is Company", "Name: First", "Note", "Phone: Cell"}, got)
}

func TestOrder_Reordered(t *testing.T) {
	t.Parallel()

	labels := []string{
		"Unknown",
		"Note",
		"Address: Home",
		"Email: Other",
		"Email: Home",
		"Email: Work (Preferred)",
		"Email: Work",
		"Fax: Work",
		"Pager",
		"Phone: Main",
		"Phone: Cell",
		"Phone: iPhone",
		"Name: Nickname",
		"Name: Last",
		"Name: First",
		"Organization: Title",
		"Organization: Name",
		"Is Company",
		"Date: Birthday",
		"Relationship: Spouse",
		"Social: Twitter",
	}

	expected := []string{
		"Is Company",
		"Organization: Name",
		"Organization: Title",
		"Name: First",
		"Name: Last",
		"Name: Nickname",
		"Phone: iPhone",
		"Phone: Cell",
		"Phone: Main",
		"Pager",
		"Fax: Work",
		"Email: Work",
		"Email: Work (Preferred)",
		"Email: Home",
		"Email: Other",
		"Address: Home",
		"Date: Birthday",
		"Relationship: Spouse",
		"Note",
		"Social: Twitter",
		"Unknown",
	}

	if diff := cmp.Diff(expected, Order(labels, true)); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_IsCompanyFirstAndUnrecognizedLast(t *testing.T) {
	t.Parallel()

	got := Order([]string{"Zeta", "Alpha", "Is Company", "Phone: Cell"}, true)
	require.Equal(t, []string{"Is Company", "Phone: Cell", "Alpha", "Zeta"}, got)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	records := []vcard.Contact{
		{{Label: "Phone: Cell", Value: "1"}, {Label: "Email: Work", Value: "a"}},
		{{Label: "Email: Work", Value: "b"}, {Label: "Note", Value: "n"}},
	}
	require.Equal(t, []string{"Email: Work", "Note", "Phone: Cell"}, Labels(records))
}
