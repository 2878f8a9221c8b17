// Package syntax classifies document content for colorization.
package syntax

// Tag labels one display byte with its highlight class.
type Tag uint8

// Classification tags.
const (
	TagPlain Tag = iota
	TagLineComment
	TagBlockComment
	TagKeywordPrimary
	TagKeywordSecondary
	TagString
	TagNumber
	TagMatch

	// TagCount is the number of distinct tags.
	TagCount
)

// tagNames maps tags to their string names.
var tagNames = []string{
	TagPlain:            "plain",
	TagLineComment:      "comment",
	TagBlockComment:     "block-comment",
	TagKeywordPrimary:   "keyword",
	TagKeywordSecondary: "type",
	TagString:           "string",
	TagNumber:           "number",
	TagMatch:            "match",
}

// String returns the tag's name.
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// TagFromString returns the tag with the given name.
func TagFromString(name string) (Tag, bool) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	return TagPlain, false
}

// IsComment returns true for comment tags.
func (t Tag) IsComment() bool {
	return t == TagLineComment || t == TagBlockComment
}
