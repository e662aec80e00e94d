// Package document converts route books to and from their flat XML document form.
//
// A document holds one root element whose children are route records; each record
// carries destination, number and time child elements in any order:
//
//	<routes>
//	  <route>
//	    <destination>Park</destination>
//	    <number>5</number>
//	    <time>08:30</time>
//	  </route>
//	</routes>
//
// Records missing any of the three fields are skipped.
package document

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"github.com/rmrobinson/routebook/services/routes"
	"golang.org/x/net/html/charset"
)

const (
	rootElementName   = "routes"
	recordElementName = "route"
	indent            = "  "
)

var (
	// ErrMalformedDocument is returned if the supplied bytes are not a well-formed route document.
	ErrMalformedDocument = errors.New("malformed route document")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// MalformedError describes why a document could not be parsed.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return ErrMalformedDocument.Error() + ": " + e.Err.Error()
}

// Unwrap returns ErrMalformedDocument so callers can match with errors.Is.
func (e *MalformedError) Unwrap() error {
	return ErrMalformedDocument
}

type routeElement struct {
	XMLName     xml.Name         `xml:"route"`
	Destination string           `xml:"destination"`
	Number      int              `xml:"number"`
	Time        routes.TimeOfDay `xml:"time"`
}

type routesElement struct {
	XMLName xml.Name       `xml:"routes"`
	Routes  []routeElement `xml:"route"`
}

// recordFields accumulates the fields of a single record element.
// A nil field was either absent or empty.
type recordFields struct {
	Destination *string `xml:"destination"`
	Number      *string `xml:"number"`
	Time        *string `xml:"time"`
}

func (rf *recordFields) complete() bool {
	return nonEmpty(rf.Destination) && nonEmpty(rf.Number) && nonEmpty(rf.Time)
}

func (rf *recordFields) route() (routes.Route, error) {
	number, err := routes.ParseNumber(*rf.Number)
	if err != nil {
		return routes.Route{}, err
	}

	departure, err := routes.ParseTimeOfDay(*rf.Time)
	if err != nil {
		return routes.Route{}, err
	}

	return routes.Route{
		Destination: *rf.Destination,
		Number:      number,
		Departure:   departure,
	}, nil
}

func nonEmpty(s *string) bool {
	return s != nil && len(*s) > 0
}

// Encode produces the document form of the supplied routes, in order.
// The output is deterministic for a given input.
func Encode(rs []routes.Route) ([]byte, error) {
	doc := routesElement{
		Routes: make([]routeElement, 0, len(rs)),
	}
	for _, r := range rs {
		doc.Routes = append(doc.Routes, routeElement{
			Destination: r.Destination,
			Number:      r.Number,
			Time:        r.Departure,
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

// Decode parses a route document.
func Decode(data []byte) ([]routes.Route, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader parses a route document from the supplied reader.
// The root and record element names are not checked; any direct child of the root is
// treated as a record. Incomplete records are omitted from the result.
// A leading UTF-8 byte order mark is skipped.
func DecodeReader(r io.Reader) ([]routes.Route, error) {
	br := bufio.NewReader(r)
	if prefix, _ := br.Peek(len(utf8BOM)); bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	d := xml.NewDecoder(br)
	d.CharsetReader = charset.NewReaderLabel

	ret := []routes.Route{}
	depth := 0
	sawRoot := false

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, malformed(err)
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if sawRoot {
					return nil, malformed(errors.New("multiple root elements"))
				}
				sawRoot = true
				depth++
				continue
			}

			var fields recordFields
			if err = d.DecodeElement(&fields, &ty); err != nil {
				return nil, malformed(err)
			}
			if !fields.complete() {
				continue
			}

			route, err := fields.route()
			if err != nil {
				return nil, err
			}
			ret = append(ret, route)
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(ty)) > 0 {
				return nil, malformed(errors.New("text outside of root element"))
			}
		}
	}

	if !sawRoot {
		return nil, malformed(io.ErrUnexpectedEOF)
	}
	return ret, nil
}

func malformed(err error) error {
	return &MalformedError{Err: err}
}
