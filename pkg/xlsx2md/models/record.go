package models

// RecordKind identifies the sheet type a record was extracted from.
type RecordKind string

const (
	// KindTestCase is the root record of a document.
	KindTestCase RecordKind = "Test Case"
	// KindTestSpecification hangs below the test case.
	KindTestSpecification RecordKind = "Test Specification"
	// KindExperimentSpecification hangs below a test specification.
	KindExperimentSpecification RecordKind = "Experiment Specification"
)

// Kinds lists all record kinds in hierarchy order.
var Kinds = []RecordKind{KindTestCase, KindTestSpecification, KindExperimentSpecification}

// Depth returns how many directory levels below the output root the kind is written.
func (k RecordKind) Depth() int {
	switch k {
	case KindTestSpecification:
		return 1
	case KindExperimentSpecification:
		return 2
	default:
		return 0
	}
}

// Record represents one Test Case, Test Specification or Experiment Specification.
type Record struct {
	// Kind is the sheet type marker.
	Kind RecordKind `json:"kind"`
	// Sheet is the name of the sheet the record was read from.
	Sheet string `json:"sheet"`
	// ID is the record identity (cell C2).
	ID string `json:"id"`
	// Name is the record name.
	Name string `json:"name"`
	// Parent is the parent record id (Test/Experiment Specification only).
	Parent string `json:"parent,omitempty"`
	// Sections contains the body sections in row order.
	Sections []Section `json:"sections"`

	// Header fields, filled in at assembly time.
	Title       string `json:"title,omitempty"`
	LinkTitle   string `json:"link_title,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}
