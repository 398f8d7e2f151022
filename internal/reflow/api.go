package reflow

// Options controls how MATLAB comments are reflowed.
type Options struct {
	// LineLength is the maximum display width of an emitted comment line,
	// counting the leading whitespace, the % marker and the separating space.
	LineLength int
	// IgnoreIndented leaves comment bodies with an inner indentation of at
	// least two spaces untouched.
	IgnoreIndented bool
	// AlternateCapitalHandling starts a new comment block at every comment
	// line whose body begins with an upper-case letter.
	AlternateCapitalHandling bool
}

// Text rewraps the comment lines of MATLAB source text to fit the
// configured line length. Code lines, blank comment lines and (when
// enabled) inner-indented comment lines pass through unchanged.
func Text(text string, opts Options) string {
	return reflowDocument(text, opts)
}
