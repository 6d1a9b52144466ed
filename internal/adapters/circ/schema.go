package circ

import (
	"encoding/xml"
	"strings"
)

// projectXML is the root element of a design file.
type projectXML struct {
	XMLName  xml.Name     `xml:"project"`
	Libs     []libXML     `xml:"lib"`
	Circuits []circuitXML `xml:"circuit"`
}

// libXML declares a library. Logisim writes the library id in the name attribute.
type libXML struct {
	Name string `xml:"name,attr"`
	ID   string `xml:"id,attr"`
	Desc string `xml:"desc,attr"`
}

// circuitXML keeps every child element so that components and wires stay in file order.
type circuitXML struct {
	Name     string       `xml:"name,attr"`
	Children []elementXML `xml:",any"`
}

// elementXML is a child of a circuit: comp, wire, or circuit-level attributes.
type elementXML struct {
	XMLName xml.Name
	Lib     string    `xml:"lib,attr"`
	Name    string    `xml:"name,attr"`
	From    string    `xml:"from,attr"`
	To      string    `xml:"to,attr"`
	Attrs   []attrXML `xml:"a"`
}

// attrXML is a component attribute. Long values are written as element text instead of val.
type attrXML struct {
	Name string  `xml:"name,attr"`
	Val  *string `xml:"val,attr"`
	Text string  `xml:",chardata"`
}

func (a attrXML) value() string {
	if a.Val != nil {
		return *a.Val
	}
	return strings.TrimSpace(a.Text)
}
