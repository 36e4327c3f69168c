package vcard

// Labels produced by the parser. Labels built from vCard type tokens or
// X-ABLabel values (for example "Phone: Cell" or "Email: Work") are assembled
// at parse time and have no constant.
const (
	LabelUnknown   = "Unknown"
	LabelIsCompany = "Is Company"

	LabelNameLast           = "Name: Last"
	LabelNameFirst          = "Name: First"
	LabelNameMiddle         = "Name: Middle"
	LabelNamePrefix         = "Name: Prefix"
	LabelNameSuffix         = "Name: Suffix"
	LabelNameFull           = "Name: Full"
	LabelNameNickname       = "Name: Nickname"
	LabelNameMaiden         = "Name: Maiden"
	LabelNameFirstPhonetic  = "Name: First (Phonetic)"
	LabelNameMiddlePhonetic = "Name: Middle (Phonetic)"
	LabelNameLastPhonetic   = "Name: Last (Phonetic)"

	LabelOrgName         = "Organization: Name"
	LabelOrgDepartment   = "Organization: Department"
	LabelOrgNamePhonetic = "Organization: Name (Phonetic)"
	LabelOrgTitle        = "Organization: Title"

	LabelNote     = "Note"
	LabelBirthday = "Date: Birthday"

	// PreferredSuffix is appended to the label of a preferred duplicate.
	PreferredSuffix = " (Preferred)"
)

// Label namespaces used for assembled labels.
const (
	NSEmail        = "Email"
	NSPhone        = "Phone"
	NSFax          = "Fax"
	NSPager        = "Pager"
	NSAddress      = "Address"
	NSSocial       = "Social"
	NSURL          = "URL"
	NSDate         = "Date"
	NSRelationship = "Relationship"
	NSIMPP         = "IMPP"
)

// join builds a namespaced label such as "Phone: Cell".
func join(ns, sub string) string { return ns + ": " + sub }
