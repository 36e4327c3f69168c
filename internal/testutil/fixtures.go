package testutil

// AppleContact is a single contact as exported by macOS Contacts, including a
// folded PHOTO block and grouped itemN. properties.
const AppleContact = `BEGIN:VCARD
VERSION:3.0
PRODID:-//Apple Inc.//macOS 14.0//EN
N:Appleseed;Johnny;Q;Dr.;Jr.
FN:Dr. Johnny Q Appleseed Jr.
NICKNAME:Johnny
ORG:Apple Inc.;Engineering
TITLE:Engineer
EMAIL;type=INTERNET;type=WORK;type=pref:johnny@apple.com
EMAIL;type=INTERNET;type=HOME:johnny@example.com
TEL;type=CELL;type=VOICE;type=pref:(408) 555-0100
TEL;type=WORK;type=VOICE:+1 408 555 0101
TEL;type=WORK;type=FAX:408-555-0102
item1.ADR;type=WORK;type=pref:;;1 Infinite Loop;Cupertino;CA;95014;United States
item1.X-ABADR:us
item2.URL;type=pref:https://apple.com
item2.X-ABLabel:_$!<HomePage>!$_
item3.X-ABDATE;X-APPLE-OMIT-YEAR=1604:1604-04-01
item3.X-ABLabel:_$!<Anniversary>!$_
item4.X-ABRELATEDNAMES;type=pref:Jane Appleseed
item4.X-ABLabel:_$!<Spouse>!$_
X-SOCIALPROFILE;type=twitter:https://twitter.com/johnny
BDAY;X-APPLE-OMIT-YEAR=1604:1604-08-15
NOTE:First line\nSecond line
PHOTO;ENCODING=b;TYPE=JPEG:/9j/4AAQSkZJRgABAQAAAQABAAD
 /2wBDAAgGBgcGBQgHBwcJCQgKDBQNDAsLDBkSEw8UHRofHh0a
 HBwgJC4nICIsIxwcKDcpLDAxNDQ0Hyc5PTgyPC4zNDL/
X-ABShowAs:COMPANY
X-UNHANDLED:value
END:VCARD
`

// PlainContact is a minimal second contact.
const PlainContact = `BEGIN:VCARD
VERSION:3.0
N:Roe;Jane;;;
FN:Jane Roe
EMAIL;type=INTERNET;type=WORK:jane@example.com
END:VCARD
`
