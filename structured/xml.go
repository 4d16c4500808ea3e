package structured

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Pseudo-keys used when lowering XML elements into mappings.
const (
	AttributesKey = "@attributes"
	TextKey       = "text"
)

// DecodeXML strictly decodes an XML document into a Value. The root is
// wrapped as a single-member mapping keyed by the root tag. Each element
// becomes a mapping: attributes under "@attributes", trimmed character
// data under "text", children keyed by tag; a repeated child tag turns
// the member into a sequence.
func DecodeXML(text string) (Value, error) {
	dec := xml.NewDecoder(strings.NewReader(text))

	root, rootTag, err := decodeRoot(dec)
	if err != nil {
		return Value{}, fmt.Errorf("structured: xml: %w", err)
	}
	return Mapping(Member{Key: rootTag, Value: root}), nil
}

func decodeRoot(dec *xml.Decoder) (Value, string, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			v, err := decodeElement(dec, t)
			if err != nil {
				return Value{}, "", err
			}
			if err := expectEOF(dec); err != nil {
				return Value{}, "", err
			}
			return v, t.Name.Local, nil
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return Value{}, "", fmt.Errorf("text before root element")
			}
		case xml.ProcInst, xml.Comment, xml.Directive:
			// Prolog; skip.
		default:
			return Value{}, "", fmt.Errorf("unexpected token before root element")
		}
	}
}

// expectEOF allows only whitespace and comments after the root element.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return fmt.Errorf("trailing data after root element")
			}
		case xml.Comment:
		default:
			return fmt.Errorf("trailing data after root element")
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (Value, error) {
	var members []Member

	if len(start.Attr) > 0 {
		attrs := make([]Member, 0, len(start.Attr))
		for _, a := range start.Attr {
			attrs = append(attrs, Member{Key: a.Name.Local, Value: Scalar(a.Value)})
		}
		members = append(members, Member{Key: AttributesKey, Value: Mapping(attrs...)})
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return Value{}, err
			}
			members = appendChild(members, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if s := strings.TrimSpace(text.String()); s != "" {
				members = append(members, Member{Key: TextKey, Value: Scalar(s)})
			}
			return Mapping(members...), nil
		case xml.Comment, xml.ProcInst, xml.Directive:
			// Ignored inside elements.
		}
	}
}

// appendChild keys a child by tag; a repeated tag converts the existing
// member into a sequence and appends.
func appendChild(members []Member, tag string, child Value) []Member {
	for i, m := range members {
		if m.Key != tag {
			continue
		}
		if m.Value.Kind == KindSequence {
			members[i].Value.Items = append(members[i].Value.Items, child)
		} else {
			members[i].Value = Sequence(m.Value, child)
		}
		return members
	}
	return append(members, Member{Key: tag, Value: child})
}
