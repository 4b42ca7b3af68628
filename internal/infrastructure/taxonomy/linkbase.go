package taxonomy

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/tiw/gaap-web-service/internal/domain/entity"
)

// XBRL linkbase namespaces. The codification-part namespace carries the
// release year, so it is matched by prefix.
const (
	nsLinkbase           = "http://www.xbrl.org/2003/linkbase"
	nsXLink              = "http://www.w3.org/1999/xlink"
	nsRef                = "http://www.xbrl.org/2006/ref"
	nsCodificationPrefix = "http://fasb.org/codification-part/"
)

// labelIndex holds the lookup tables built from one pass over a label
// linkbase: anchor href to local identifier, identifier to label text, and
// the arc indirection between identifiers. First binding wins throughout,
// matching linkbase document order.
type labelIndex struct {
	locLabel  map[string]string // xlink:href -> xlink:label
	labelText map[string]string // xlink:label -> label text
	arcTo     map[string]string // xlink:from -> xlink:to
}

// referenceIndex holds the lookup tables built from one pass over a
// reference linkbase. Arcs and reference resources accumulate in document
// order; only the anchor index is first-wins.
type referenceIndex struct {
	locLabel map[string]string             // xlink:href -> xlink:label
	arcTo    map[string][]string           // xlink:from -> xlink:to...
	refs     map[string][]entity.Reference // xlink:label -> references
}

// resolve follows the two-hop lookup: direct label text for the anchor's
// identifier, else one arc hop and retry.
func (idx *labelIndex) resolve(locID string) (string, bool) {
	if text, ok := idx.labelText[locID]; ok {
		return text, true
	}
	if to, ok := idx.arcTo[locID]; ok {
		if text, ok := idx.labelText[to]; ok {
			return text, true
		}
	}
	return "", false
}

// resolve accumulates every reference reachable from the anchor's
// identifier through its arcs.
func (idx *referenceIndex) resolve(locID string) []entity.Reference {
	var out []entity.Reference
	for _, to := range idx.arcTo[locID] {
		out = append(out, idx.refs[to]...)
	}
	return out
}

func parseLabelLinkbase(r io.Reader) (*labelIndex, error) {
	idx := &labelIndex{
		locLabel:  make(map[string]string),
		labelText: make(map[string]string),
		arcTo:     make(map[string]string),
	}

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Space != nsLinkbase {
			continue
		}

		switch se.Name.Local {
		case "loc":
			href := xlinkAttr(se, "href")
			label := xlinkAttr(se, "label")
			if href != "" && label != "" {
				if _, seen := idx.locLabel[href]; !seen {
					idx.locLabel[href] = label
				}
			}

		case "label":
			label := xlinkAttr(se, "label")
			text, err := collectText(dec)
			if err != nil {
				return nil, err
			}
			if label != "" {
				if _, seen := idx.labelText[label]; !seen {
					idx.labelText[label] = text
				}
			}

		case "labelArc":
			from := xlinkAttr(se, "from")
			to := xlinkAttr(se, "to")
			if from != "" && to != "" {
				if _, seen := idx.arcTo[from]; !seen {
					idx.arcTo[from] = to
				}
			}
		}
	}

	return idx, nil
}

func parseReferenceLinkbase(r io.Reader) (*referenceIndex, error) {
	idx := &referenceIndex{
		locLabel: make(map[string]string),
		arcTo:    make(map[string][]string),
		refs:     make(map[string][]entity.Reference),
	}

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Space != nsLinkbase {
			continue
		}

		switch se.Name.Local {
		case "loc":
			href := xlinkAttr(se, "href")
			label := xlinkAttr(se, "label")
			if href != "" && label != "" {
				if _, seen := idx.locLabel[href]; !seen {
					idx.locLabel[href] = label
				}
			}

		case "referenceArc":
			from := xlinkAttr(se, "from")
			to := xlinkAttr(se, "to")
			if from != "" && to != "" {
				idx.arcTo[from] = append(idx.arcTo[from], to)
			}

		case "reference":
			label := xlinkAttr(se, "label")
			ref, err := parseReference(dec)
			if err != nil {
				return nil, err
			}
			if label != "" && !ref.IsZero() {
				idx.refs[label] = append(idx.refs[label], ref)
			}
		}
	}

	return idx, nil
}

// parseReference reads the children of one link:reference element and
// extracts whichever citation parts are present.
func parseReference(dec *xml.Decoder) (entity.Reference, error) {
	var ref entity.Reference
	depth := 1

	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return ref, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			field := referenceField(&ref, t.Name)
			if field != nil {
				text, err := collectText(dec)
				if err != nil {
					return ref, err
				}
				if *field == "" {
					*field = text
				}
			} else {
				depth++
			}

		case xml.EndElement:
			depth--
		}
	}

	return ref, nil
}

// referenceField maps a reference part element to its Reference field.
// URI/Topic/SubTopic live in the FASB codification-part namespace,
// Section/Paragraph in the standard XBRL ref namespace.
func referenceField(ref *entity.Reference, name xml.Name) *string {
	if strings.HasPrefix(name.Space, nsCodificationPrefix) {
		switch name.Local {
		case "URI":
			return &ref.URI
		case "Topic":
			return &ref.Topic
		case "SubTopic":
			return &ref.SubTopic
		}
		return nil
	}
	if name.Space == nsRef {
		switch name.Local {
		case "Section":
			return &ref.Section
		case "Paragraph":
			return &ref.Paragraph
		}
	}
	return nil
}

// collectText consumes tokens up to the end of the current element and
// returns the concatenated character data.
func collectText(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1

	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(t)
		}
	}

	return sb.String(), nil
}

// xlinkAttr returns the value of an xlink-namespaced attribute
func xlinkAttr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Space == nsXLink && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
