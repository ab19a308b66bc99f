package keyring

import (
	"encoding/xml"
	"fmt"
)

// Element is one key document supplied by the hosting key-management
// framework. Raw holds the canonical XML text; ID and FriendlyName mirror the
// root element's attributes and may be empty.
type Element struct {
	ID           string
	FriendlyName string
	Raw          []byte
}

// elementAttrs captures the root element attributes without binding to a
// particular root element name.
type elementAttrs struct {
	ID           string `xml:"id,attr"`
	FriendlyName string `xml:"friendlyName,attr"`
}

// ParseElement parses a stored parameter value as a key XML document.
// Malformed XML fails; the caller decides whether that is fatal (a write
// path) or a skip (the listing path).
func ParseElement(value []byte) (Element, error) {
	var attrs elementAttrs
	if err := xml.Unmarshal(value, &attrs); err != nil {
		return Element{}, fmt.Errorf("parse element: %w", err)
	}
	return Element{ID: attrs.ID, FriendlyName: attrs.FriendlyName, Raw: value}, nil
}
