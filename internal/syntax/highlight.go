package syntax

import (
	"bytes"
	"strings"
)

// separators delimit words for keyword and number detection, together with
// whitespace and NUL.
const separators = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Highlighter classifies display bytes according to a profile.
// A nil profile classifies everything as TagPlain.
type Highlighter struct {
	profile *Profile
}

// NewHighlighter creates a highlighter for the given profile.
func NewHighlighter(p *Profile) *Highlighter {
	return &Highlighter{profile: p}
}

// Profile returns the active profile, which may be nil.
func (h *Highlighter) Profile() *Profile {
	return h.profile
}

// SetProfile replaces the active profile. Callers must reclassify any
// rows derived under the previous profile.
func (h *Highlighter) SetProfile(p *Profile) {
	h.profile = p
}

// ClassifyRow classifies one row of display bytes in a single left-to-right
// pass. entering reports whether the row starts inside an unterminated block
// comment carried over from the previous row. The returned slice holds one
// tag per display byte; the returned bool reports whether a block comment is
// still open at the end of the row.
//
// At each byte the checks apply in fixed priority order: line comment,
// block comment, string, number, keyword.
func (h *Highlighter) ClassifyRow(display []byte, entering bool) ([]Tag, bool) {
	tags := make([]Tag, len(display))
	p := h.profile
	if p == nil {
		return tags, false
	}

	lineMark := []byte(p.LineComment)
	blockStart := []byte(p.BlockCommentStart)
	blockEnd := []byte(p.BlockCommentEnd)

	prevSep := true
	var inString byte
	inComment := entering

	i := 0
	for i < len(display) {
		c := display[i]
		prevTag := TagPlain
		if i > 0 {
			prevTag = tags[i-1]
		}

		if len(lineMark) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(display[i:], lineMark) {
				fill(tags[i:], TagLineComment)
				break
			}
		}

		if len(blockStart) > 0 && len(blockEnd) > 0 && inString == 0 {
			if inComment {
				tags[i] = TagBlockComment
				if bytes.HasPrefix(display[i:], blockEnd) {
					fill(tags[i:i+len(blockEnd)], TagBlockComment)
					i += len(blockEnd)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(display[i:], blockStart) {
				fill(tags[i:i+len(blockStart)], TagBlockComment)
				i += len(blockStart)
				inComment = true
				continue
			}
		}

		if p.Strings {
			if inString != 0 {
				tags[i] = TagString
				if c == '\\' && i+1 < len(display) {
					tags[i+1] = TagString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				tags[i] = TagString
				i++
				continue
			}
		}

		if p.Numbers {
			if (isDigit(c) && (prevSep || prevTag == TagNumber)) ||
				(c == '.' && prevTag == TagNumber) {
				tags[i] = TagNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, tag := matchKeyword(display, i, p); n > 0 {
				fill(tags[i:i+n], tag)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return tags, inComment
}

// matchKeyword reports the longest keyword match at position i, or zero.
// A keyword only matches when followed by a separator or the end of the row.
func matchKeyword(display []byte, i int, p *Profile) (int, Tag) {
	best := 0
	tag := TagPlain
	for _, kw := range p.PrimaryKeywords {
		if len(kw) > best && keywordAt(display, i, kw) {
			best, tag = len(kw), TagKeywordPrimary
		}
	}
	for _, kw := range p.SecondaryKeywords {
		if len(kw) > best && keywordAt(display, i, kw) {
			best, tag = len(kw), TagKeywordSecondary
		}
	}
	return best, tag
}

func keywordAt(display []byte, i int, kw string) bool {
	end := i + len(kw)
	if end > len(display) {
		return false
	}
	if string(display[i:end]) != kw {
		return false
	}
	return end == len(display) || isSeparator(display[end])
}

func fill(tags []Tag, t Tag) {
	for i := range tags {
		tags[i] = t
	}
}
