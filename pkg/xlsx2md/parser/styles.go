package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// fillTable records, per cell format (xf) index, whether the format's
// fill foreground is a theme colour. excelize resolves theme colours to
// RGB when reading styles, so the theme attribute is read from
// xl/styles.xml directly.
type fillTable struct {
	themedXf []bool
}

// readFillTable reads the themed-fill table of an xlsx file.
func readFillTable(xlsxPath string) (*fillTable, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := readZipFile(&r.Reader, "xl/styles.xml")
	if err != nil {
		return nil, err
	}
	return parseFillTable(data), nil
}

// Themed reports whether the cell format at xf uses a themed fill.
func (t *fillTable) Themed(xf int) bool {
	if t == nil || xf < 0 || xf >= len(t.themedXf) {
		return false
	}
	return t.themedXf[xf]
}

// parseFillTable parses styles.xml content.
func parseFillTable(data []byte) *fillTable {
	var themedFills []bool
	var xfFills []int

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "fills":
			themedFills = parseFills(decoder)
		case "cellXfs":
			xfFills = parseCellXfs(decoder)
		}
	}

	t := &fillTable{themedXf: make([]bool, len(xfFills))}
	for i, fillID := range xfFills {
		if fillID >= 0 && fillID < len(themedFills) {
			t.themedXf[i] = themedFills[fillID]
		}
	}
	return t
}

// parseFills reads <fill> children of <fills>, reporting for each whether
// its pattern foreground carries a theme attribute.
func parseFills(decoder *xml.Decoder) []bool {
	var result []bool
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "fill":
				result = append(result, false)
			case "fgColor":
				if len(result) > 0 && hasAttr(t, "theme") {
					result[len(result)-1] = true
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return result
}

// parseCellXfs reads the fillId of each <xf> child of <cellXfs>.
func parseCellXfs(decoder *xml.Decoder) []int {
	var result []int
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "xf" && depth == 2 {
				fillID := 0
				for _, attr := range t.Attr {
					if attr.Name.Local == "fillId" {
						if v, err := strconv.Atoi(attr.Value); err == nil {
							fillID = v
						}
					}
				}
				result = append(result, fillID)
			}
		case xml.EndElement:
			depth--
		}
	}
	return result
}

func hasAttr(se xml.StartElement, name string) bool {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return true
		}
	}
	return false
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
