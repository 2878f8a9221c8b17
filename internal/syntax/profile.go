package syntax

import (
	"path/filepath"
	"strings"
)

// Profile describes one language's highlighting rules.
// A profile is not modified after construction.
type Profile struct {
	// Name is the filetype label shown in the status bar.
	Name string

	// FilePatterns select this profile by file name. A pattern starting
	// with a dot matches the file extension exactly; any other pattern
	// matches as a substring of the file name.
	FilePatterns []string

	// PrimaryKeywords and SecondaryKeywords are matched at word
	// boundaries. Secondary keywords are typically type names.
	PrimaryKeywords   []string
	SecondaryKeywords []string

	// LineComment starts a comment running to end of row. Empty disables.
	LineComment string

	// BlockCommentStart and BlockCommentEnd delimit comments that may
	// span rows. Both must be set to enable block comments.
	BlockCommentStart string
	BlockCommentEnd   string

	// Numbers and Strings enable literal highlighting.
	Numbers bool
	Strings bool
}

// Detect returns the first profile whose file patterns match name,
// or nil if none match.
func Detect(name string, profiles []*Profile) *Profile {
	if name == "" {
		return nil
	}
	ext := filepath.Ext(name)
	for _, p := range profiles {
		for _, pat := range p.FilePatterns {
			if strings.HasPrefix(pat, ".") {
				if ext == pat {
					return p
				}
			} else if strings.Contains(name, pat) {
				return p
			}
		}
	}
	return nil
}

// Builtin returns the built-in profiles.
func Builtin() []*Profile {
	return []*Profile{
		{
			Name:         "c",
			FilePatterns: []string{".c", ".h", ".cpp"},
			PrimaryKeywords: []string{
				"switch", "if", "while", "for", "break", "continue",
				"return", "else", "struct", "union", "typedef",
				"static", "enum", "class", "case",
			},
			SecondaryKeywords: []string{
				"int", "long", "double", "float", "char", "unsigned",
				"signed", "void",
			},
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Numbers:           true,
			Strings:           true,
		},
		{
			Name:         "go",
			FilePatterns: []string{".go"},
			PrimaryKeywords: []string{
				"break", "case", "chan", "const", "continue", "default",
				"defer", "else", "fallthrough", "for", "func", "go",
				"goto", "if", "import", "interface", "map", "package",
				"range", "return", "select", "struct", "switch", "type",
				"var",
			},
			SecondaryKeywords: []string{
				"bool", "byte", "complex64", "complex128", "error",
				"float32", "float64", "int", "int8", "int16", "int32",
				"int64", "rune", "string", "uint", "uint8", "uint16",
				"uint32", "uint64", "uintptr", "true", "false", "nil",
				"iota",
			},
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Numbers:           true,
			Strings:           true,
		},
		{
			Name:         "lua",
			FilePatterns: []string{".lua"},
			PrimaryKeywords: []string{
				"and", "break", "do", "else", "elseif", "end", "for",
				"function", "if", "in", "local", "not", "or", "repeat",
				"return", "then", "until", "while",
			},
			SecondaryKeywords: []string{
				"nil", "true", "false", "print", "pairs", "ipairs",
				"tostring", "tonumber", "type",
			},
			// "--[[" starts with the line marker, which wins at every
			// byte, so block markers here would never fire.
			LineComment: "--",
			Numbers:     true,
			Strings:     true,
		},
		{
			Name:         "python",
			FilePatterns: []string{".py"},
			PrimaryKeywords: []string{
				"and", "as", "assert", "break", "class", "continue",
				"def", "del", "elif", "else", "except", "finally",
				"for", "from", "global", "if", "import", "in", "is",
				"lambda", "not", "or", "pass", "raise", "return", "try",
				"while", "with", "yield",
			},
			SecondaryKeywords: []string{
				"int", "float", "str", "list", "dict", "set", "tuple",
				"bool", "bytes", "None", "True", "False",
			},
			LineComment: "#",
			Numbers:     true,
			Strings:     true,
		},
	}
}
