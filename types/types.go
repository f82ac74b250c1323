package types

// Metadata is the normalized header of a single post. It is built once by
// the metadata parser and never mutated afterwards.
type Metadata struct {
	Title string
	// Created is the canonical YYYY-MM-DD form of the human-written date.
	// Comparing these strings lexicographically compares them chronologically.
	Created string
	Draft   bool
}

// Post couples a parsed header with the file it came from. SrcPath is the
// only link back to disk and is what the output filename is derived from.
type Post struct {
	Meta    Metadata
	SrcPath string
	// Body is everything in the source file after the header.
	Body []byte
}

type CSS struct {
	Data []byte
}
