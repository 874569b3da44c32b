package inspect

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strings"
)

// relationship is one entry of an OOXML .rels part.
type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// readPart returns the content of a package part, or nil if it is absent.
func readPart(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, nil
}

// readRels returns the relationships of part, or nil when it has none.
func readRels(r *zip.Reader, part string) ([]relationship, error) {
	dir, file := path.Split(part)
	data, err := readPart(r, path.Join(dir, "_rels", file+".rels"))
	if err != nil || data == nil {
		return nil, err
	}
	var doc struct {
		Rels []relationship `xml:"Relationship"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Rels, nil
}

// resolveTarget resolves a relationship target against the directory of
// the part that owns the relationship.
func resolveTarget(part, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(part), target)
}

// relType reports whether rel has the given relationship type suffix,
// e.g. "/drawing" or "/chart".
func relType(rel relationship, suffix string) bool {
	return strings.HasSuffix(rel.Type, suffix)
}

// sheetParts maps sheet names to their worksheet part paths.
func sheetParts(r *zip.Reader) (map[string]string, error) {
	const workbook = "xl/workbook.xml"
	data, err := readPart(r, workbook)
	if err != nil || data == nil {
		return nil, err
	}
	var doc struct {
		Sheets []struct {
			Name string `xml:"name,attr"`
			RID  string `xml:"id,attr"`
		} `xml:"sheets>sheet"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	rels, err := readRels(r, workbook)
	if err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels))
	for _, rel := range rels {
		if relType(rel, "/worksheet") {
			targets[rel.ID] = resolveTarget(workbook, rel.Target)
		}
	}

	result := make(map[string]string)
	for _, s := range doc.Sheets {
		if part, ok := targets[s.RID]; ok {
			result[s.Name] = part
		}
	}
	return result, nil
}
