package xlsx2md

import (
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/parser"
)

// Document holds the records extracted from one workbook, in sheet order.
type Document struct {
	TestCase                 *models.Record
	TestSpecifications       []*models.Record
	ExperimentSpecifications []*models.Record
}

// Classify returns the record kind named by the sheet's A1 marker.
// The match is exact and case-sensitive.
func Classify(sheet parser.Sheet) (models.RecordKind, bool) {
	marker := sheet.Cell(1, 1).Value
	for _, kind := range models.Kinds {
		if marker == string(kind) {
			return kind, true
		}
	}
	return "", false
}

// Assemble classifies every sheet of wb and extracts its record. Sheets
// without a type marker, records without an id and records rejected by
// filter are skipped. Only the first Test Case is kept.
func Assemble(wb parser.Workbook, filter *Filter) (*Document, error) {
	doc := &Document{}
	for _, sheet := range wb.Sheets() {
		log := logrus.WithField("sheet", sheet.Name())

		kind, ok := Classify(sheet)
		if !ok {
			log.Debug("no record type marker, skipping sheet")
			continue
		}

		rec, err := parser.ExtractRecord(kind, sheet)
		if err != nil {
			return nil, extractionError(sheet.Name(), kind, "record", err)
		}
		if rec == nil {
			log.WithField("kind", kind).Debug("no id, skipping sheet")
			continue
		}

		keep, err := filter.Keep(rec)
		if err != nil {
			return nil, extractionError(sheet.Name(), kind, "filter", err)
		}
		if !keep {
			log.WithField("id", rec.ID).Debug("filtered out")
			continue
		}

		switch kind {
		case models.KindTestCase:
			if doc.TestCase != nil {
				log.WithFields(logrus.Fields{
					"id":   rec.ID,
					"kept": doc.TestCase.ID,
				}).Warn("more than one Test Case, ignoring sheet")
				continue
			}
			doc.TestCase = rec
		case models.KindTestSpecification:
			doc.TestSpecifications = append(doc.TestSpecifications, rec)
		case models.KindExperimentSpecification:
			doc.ExperimentSpecifications = append(doc.ExperimentSpecifications, rec)
		}
	}
	return doc, nil
}
