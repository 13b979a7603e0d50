package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const mainDocumentPart = "word/document.xml"

// extractWord reads an OOXML word package. The structured pass concatenates
// body paragraphs, table cells row by row, section headers and footers in
// that order. When it yields nothing, a raw pass walks every text node of
// the main document part, which tolerates packages the structured pass
// cannot interpret.
func (x *Extractor) extractWord(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("opening word package: %w", err)
	}

	text, err := structuredWordText(zr)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			x.logger.Warn("structured word extraction failed, trying raw document markup", zap.Error(err))
		}
		raw, rawErr := rawWordText(zr)
		if rawErr != nil {
			if err != nil {
				return "", fmt.Errorf("structured pass: %w; raw pass: %v", err, rawErr)
			}
			return "", rawErr
		}
		if strings.TrimSpace(raw) == "" {
			return "", fmt.Errorf("no text content found in word document")
		}
		return raw, nil
	}
	return text, nil
}

// wordParts holds text collected from the main document part, split into
// paragraph lines and table-row lines.
type wordParts struct {
	paragraphs []string
	rows       []string
}

func structuredWordText(zr *zip.Reader) (string, error) {
	doc := zipFile(zr, mainDocumentPart)
	if doc == nil {
		return "", fmt.Errorf("%s not found in package", mainDocumentPart)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", mainDocumentPart, err)
	}
	defer func() { _ = rc.Close() }()

	parts, err := parseDocumentParts(rc)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", mainDocumentPart, err)
	}

	lines := make([]string, 0, len(parts.paragraphs)+len(parts.rows))
	lines = append(lines, parts.paragraphs...)
	lines = append(lines, parts.rows...)

	for _, name := range sectionPartNames(zr, "word/header") {
		if text := sectionPartText(zr, name); text != "" {
			lines = append(lines, text)
		}
	}
	for _, name := range sectionPartNames(zr, "word/footer") {
		if text := sectionPartText(zr, name); text != "" {
			lines = append(lines, text)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// parseDocumentParts streams the document XML once, collecting body
// paragraphs and table rows separately. Run text (w:t) inside a table cell
// accumulates into the cell; everything else accumulates into the current
// paragraph.
func parseDocumentParts(r io.Reader) (*wordParts, error) {
	dec := xml.NewDecoder(r)

	var (
		parts      wordParts
		tableDepth int
		inText     bool
		para       strings.Builder
		cell       strings.Builder
		row        strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "t":
				inText = false
			case "p":
				if tableDepth == 0 {
					if s := strings.TrimSpace(para.String()); s != "" {
						parts.paragraphs = append(parts.paragraphs, s)
					}
					para.Reset()
				} else {
					cell.WriteString(" ")
				}
			case "tc":
				if s := strings.TrimSpace(cell.String()); s != "" {
					if row.Len() > 0 {
						row.WriteString(" ")
					}
					row.WriteString(s)
				}
				cell.Reset()
			case "tr":
				if s := strings.TrimSpace(row.String()); s != "" {
					parts.rows = append(parts.rows, s)
				}
				row.Reset()
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if tableDepth > 0 {
				cell.Write(t)
			} else {
				para.Write(t)
			}
		}
	}

	return &parts, nil
}

// rawWordText walks every character-data node of the main document part,
// keeping whatever text survives. The decoder runs in non-strict mode and a
// mid-stream error ends the walk without discarding what was collected.
func rawWordText(zr *zip.Reader) (string, error) {
	doc := zipFile(zr, mainDocumentPart)
	if doc == nil {
		return "", fmt.Errorf("%s not found in package", mainDocumentPart)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", mainDocumentPart, err)
	}
	defer func() { _ = rc.Close() }()

	dec := xml.NewDecoder(rc)
	dec.Strict = false

	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			if s := strings.TrimSpace(string(cd)); s != "" {
				sb.WriteString(s)
				sb.WriteString(" ")
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

func zipFile(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// sectionPartNames lists package parts like word/header1.xml in a stable
// order.
func sectionPartNames(zr *zip.Reader, prefix string) []string {
	var names []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, prefix) && strings.HasSuffix(f.Name, ".xml") {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

func sectionPartText(zr *zip.Reader, name string) string {
	f := zipFile(zr, name)
	if f == nil {
		return ""
	}
	rc, err := f.Open()
	if err != nil {
		return ""
	}
	defer func() { _ = rc.Close() }()

	dec := xml.NewDecoder(rc)
	var (
		sb     strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if s := strings.TrimSpace(string(t)); s != "" {
				if sb.Len() > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(s)
			}
		}
	}
	return sb.String()
}
