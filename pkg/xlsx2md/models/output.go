package models

import "path/filepath"

// Placement assigns a record to a location in the output tree.
type Placement struct {
	// Record is the placed record.
	Record *Record `json:"record"`
	// Dir is the directory relative to the output root ("" for the root).
	Dir string `json:"dir"`
	// Filename is the base name without extension ("index" or "_index").
	Filename string `json:"filename"`
}

// OutputFile represents a rendered document ready to be written.
type OutputFile struct {
	// Dir is the directory relative to the output root.
	Dir string `json:"dir"`
	// Filename is the base name without extension.
	Filename string `json:"filename"`
	// Ext is the file extension without the leading dot.
	Ext string `json:"ext"`
	// Content is the rendered text.
	Content string `json:"-"`
}

// Path returns the file path relative to the output root.
func (o OutputFile) Path() string {
	name := o.Filename
	if o.Ext != "" {
		name += "." + o.Ext
	}
	return filepath.Join(o.Dir, name)
}
