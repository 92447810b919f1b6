package parser

import "errors"

// ErrNoOpenSection indicates a body row that needs a section before any
// bold header opened one.
var ErrNoOpenSection = errors.New("no open section")

// ErrDiagramSectionNotFound indicates a diagram reference on a sheet that
// has no "Diagrams" marker row.
var ErrDiagramSectionNotFound = errors.New("diagram section not found")
