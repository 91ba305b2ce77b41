package kradoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// element is a generic view of one XML element: tag name, ordered
// attributes, and ordered child elements. The builder reads attributes
// by name with typed default-value fallbacks.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
}

// parseXML decodes a maindoc.xml payload into an element tree. A leading
// byte order mark is stripped and legacy charsets declared in the XML
// prolog are honored.
func parseXML(data []byte) (*element, error) {
	src := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(transform.Nop))

	dec := xml.NewDecoder(src)
	dec.CharsetReader = charset.NewReaderLabel

	var root element
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing document XML: %w", err)
	}
	return &root, nil
}

// child returns the first child element with the given tag name, or nil.
func (e *element) child(name string) *element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

// attr returns the named attribute's value, or def when absent.
func (e *element) attr(name, def string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return def
}

// attrInt returns the named attribute as an integer, or def when absent
// or unparsable.
func (e *element) attrInt(name string, def int) int {
	v := e.attr(name, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// attrBool reads a boolean-as-integer attribute ("0"/"1").
func (e *element) attrBool(name string, def bool) bool {
	v := e.attr(name, "")
	if v == "" {
		return def
	}
	return v != "0"
}
