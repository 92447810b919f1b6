package xlsx2md

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// ErrInputNotFound indicates the input file cannot be opened or decoded.
var ErrInputNotFound = errors.New("input not found")

// ExtractionError reports a record sheet that does not follow the layout
// closely enough to be extracted. It aborts the whole conversion.
type ExtractionError struct {
	SheetName string
	Kind      models.RecordKind
	// Stage is the step that failed: "record" or "filter".
	Stage string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s sheet %q: %s: %v", e.Kind, e.SheetName, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func extractionError(sheet string, kind models.RecordKind, stage string, err error) error {
	return &ExtractionError{SheetName: sheet, Kind: kind, Stage: stage, Err: err}
}
