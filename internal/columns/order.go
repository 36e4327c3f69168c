// Package columns decides the order in which field labels become output
// columns.
package columns

import (
	"slices"
	"strings"

	"github.com/specialistvlad/vcfconvert/internal/vcard"
)

// leading is the fixed head of the reordered layout: company flag,
// organization, names, then the common phone kinds.
var leading = []string{
	vcard.LabelIsCompany,
	vcard.LabelOrgName,
	vcard.LabelOrgNamePhonetic,
	vcard.LabelOrgDepartment,
	vcard.LabelOrgTitle,
	vcard.LabelNameFull,
	vcard.LabelNamePrefix,
	vcard.LabelNameFirst,
	vcard.LabelNameMiddle,
	vcard.LabelNameLast,
	vcard.LabelNameMaiden,
	vcard.LabelNameSuffix,
	vcard.LabelNameFirstPhonetic,
	vcard.LabelNameMiddlePhonetic,
	vcard.LabelNameLastPhonetic,
	vcard.LabelNameNickname,
	"Phone: iPhone",
	"Phone: iPhone" + vcard.PreferredSuffix,
	"Phone: Cell",
	"Phone: Cell" + vcard.PreferredSuffix,
	"Phone: Work",
	"Phone: Work" + vcard.PreferredSuffix,
	"Phone: Home",
	"Phone: Home" + vcard.PreferredSuffix,
}

var emails = []string{
	"Email: Work",
	"Email: Work" + vcard.PreferredSuffix,
	"Email: Home",
	"Email: Home" + vcard.PreferredSuffix,
}

var (
	phonePrefixes = []string{vcard.NSPhone, vcard.NSPager, vcard.NSFax}
	laterPrefixes = []string{vcard.NSEmail, vcard.NSAddress, vcard.NSDate, vcard.NSRelationship}
)

// Labels returns the unique labels used across records, sorted.
func Labels(records []vcard.Contact) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range records {
		for _, f := range c {
			if _, ok := seen[f.Label]; ok {
				continue
			}
			seen[f.Label] = struct{}{}
			out = append(out, f.Label)
		}
	}
	slices.Sort(out)
	return out
}

// Order arranges labels for output. With reorder off the labels are simply
// sorted. With reorder on they follow the fixed layout: company, organization,
// names, phones (fixed kinds first, then any other Phone/Pager/Fax label),
// emails (Work and Home first), then the remaining Email, Address, Date and
// Relationship labels, and finally everything else in sorted order.
func Order(labels []string, reorder bool) []string {
	sorted := slices.Clone(labels)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if !reorder {
		return sorted
	}

	layout := slices.Clone(leading)
	layout = appendByPrefix(layout, sorted, phonePrefixes)
	layout = append(layout, emails...)
	layout = appendByPrefix(layout, sorted, laterPrefixes)

	present := make(map[string]bool, len(sorted))
	for _, l := range sorted {
		present[l] = true
	}

	out := make([]string, 0, len(sorted))
	used := make(map[string]bool, len(sorted))
	for _, l := range layout {
		if present[l] && !used[l] {
			out = append(out, l)
			used[l] = true
		}
	}
	for _, l := range sorted {
		if !used[l] {
			out = append(out, l)
		}
	}
	return out
}

func appendByPrefix(layout, sorted, prefixes []string) []string {
	for _, prefix := range prefixes {
		for _, l := range sorted {
			if strings.HasPrefix(l, prefix) && !slices.Contains(layout, l) && !slices.Contains(emails, l) {
				layout = append(layout, l)
			}
		}
	}
	return layout
}
