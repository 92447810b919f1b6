package output

import (
	"encoding/json"

	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// ToJSON serializes placements, records included, to JSON.
func ToJSON(placements []models.Placement, pretty bool) ([]byte, error) {
	if placements == nil {
		placements = []models.Placement{}
	}
	if pretty {
		return json.MarshalIndent(placements, "", "  ")
	}
	return json.Marshal(placements)
}
