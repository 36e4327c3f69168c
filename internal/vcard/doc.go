// Package vcard turns Apple-style vCard exports into flat lists of labeled
// fields, one list per contact.
//
// Parsing happens in three stages:
//
//   - SplitEntries cuts the file into entries on the END:VCARD marker.
//   - The line classifier walks an entry top to bottom and runs each line
//     through an ordered rule table. The first matching rule wins. Lines that
//     no rule understands are kept under the "Unknown" label.
//   - The group resolver joins Apple's itemN.* line pairs (a data line plus an
//     X-ABLabel or X-ABADR line) into labeled fields once the entry is done.
//
// All mutable state (PHOTO continuation skipping, pending item groups) lives
// in a per-entry struct, so a Parser can be reused across entries and files.
package vcard
