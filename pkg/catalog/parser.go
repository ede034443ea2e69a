package catalog

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"

	"github.com/go-errors/errors"
	"github.com/spkg/bom"
)

// The ts* types mirror the XML layout. They only exist to be decoded and are
// converted to the exported model straight away.
type tsDocument struct {
	XMLName        xml.Name    `xml:"TS"`
	Version        string      `xml:"version,attr"`
	Language       string      `xml:"language,attr"`
	SourceLanguage string      `xml:"sourcelanguage,attr"`
	Contexts       []tsContext `xml:"context"`
	Extras         []tsRaw     `xml:",any"`
}

type tsContext struct {
	Name     string      `xml:"name"`
	Comment  string      `xml:"comment"`
	Messages []tsMessage `xml:"message"`
	Extras   []tsRaw     `xml:",any"`
}

type tsMessage struct {
	ID                string        `xml:"id,attr"`
	Numerus           string        `xml:"numerus,attr"`
	Locations         []tsLocation  `xml:"location"`
	Source            string        `xml:"source"`
	OldSource         string        `xml:"oldsource"`
	Comment           string        `xml:"comment"`
	OldComment        string        `xml:"oldcomment"`
	ExtraComment      string        `xml:"extracomment"`
	TranslatorComment string        `xml:"translatorcomment"`
	Translation       tsTranslation `xml:"translation"`
	Extras            []tsRaw       `xml:",any"`
}

type tsLocation struct {
	Filename string `xml:"filename,attr"`
	Line     string `xml:"line,attr"`
}

type tsTranslation struct {
	Type           string          `xml:"type,attr"`
	Variants       string          `xml:"variants,attr"`
	Text           string          `xml:",chardata"`
	LengthVariants []string        `xml:"lengthvariant"`
	NumerusForms   []tsNumerusForm `xml:"numerusform"`
}

type tsNumerusForm struct {
	Variants       string   `xml:"variants,attr"`
	Text           string   `xml:",chardata"`
	LengthVariants []string `xml:"lengthvariant"`
}

// tsRaw catches elements such as <userdata>, <extra-*> or <dependencies>
type tsRaw struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	InnerXML string     `xml:",innerxml"`
}

// Parser decodes .ts documents
type Parser struct {
	strict bool
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithStrictParsing makes unknown translation types a parse error. Otherwise
// they are read as unfinished.
func WithStrictParsing(strict bool) ParserOption {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a new .ts parser
func NewParser(options ...ParserOption) *Parser {
	p := &Parser{}
	for _, option := range options {
		option(p)
	}
	return p
}

// Parse decodes a catalog with the default parser
func Parse(data []byte) (*Catalog, error) {
	return NewParser().Parse(data)
}

// ParseFile decodes the catalog stored at path with the default parser
func ParseFile(path string) (*Catalog, error) {
	return NewParser().ParseFile(path)
}

// ParseFile reads and decodes the catalog stored at path
func (p *Parser) ParseFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapPrefix(err, "catalog: failed to read file "+path, 0)
	}

	c, err := p.Parse(data)
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return c, nil
}

// ParseReader decodes a catalog read from r
func (p *Parser) ParseReader(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapPrefix(err, "catalog: failed to read", 0)
	}
	return p.Parse(data)
}

// Parse decodes a catalog. A leading byte order mark is ignored.
func (p *Parser) Parse(data []byte) (*Catalog, error) {
	var doc tsDocument

	decoder := xml.NewDecoder(bytes.NewReader(bom.Clean(data)))
	decoder.Strict = true
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.WrapPrefix(err, "catalog: failed to parse", 0)
	}

	c := &Catalog{
		Version:        doc.Version,
		Language:       doc.Language,
		SourceLanguage: doc.SourceLanguage,
		Contexts:       make([]*Context, 0, len(doc.Contexts)),
		Extras:         convertRaw(doc.Extras),
	}

	for _, tc := range doc.Contexts {
		ctx := &Context{
			Name:     tc.Name,
			Comment:  tc.Comment,
			Messages: make([]*Message, 0, len(tc.Messages)),
			Extras:   convertRaw(tc.Extras),
		}
		for _, tm := range tc.Messages {
			msg, err := p.convertMessage(tm)
			if err != nil {
				return nil, errors.WrapPrefix(err, "catalog: context "+tc.Name, 0)
			}
			ctx.Messages = append(ctx.Messages, msg)
		}
		c.Contexts = append(c.Contexts, ctx)
	}

	return c, nil
}

func (p *Parser) convertMessage(tm tsMessage) (*Message, error) {
	status, err := ParseStatus(tm.Translation.Type)
	if err != nil {
		if p.strict {
			return nil, err
		}
		status = Unfinished
	}

	msg := &Message{
		ID:                tm.ID,
		Source:            tm.Source,
		OldSource:         tm.OldSource,
		Comment:           tm.Comment,
		OldComment:        tm.OldComment,
		ExtraComment:      tm.ExtraComment,
		TranslatorComment: tm.TranslatorComment,
		Status:            status,
		Numerus:           tm.Numerus == "yes",
		Extras:            convertRaw(tm.Extras),
	}

	for _, loc := range tm.Locations {
		msg.Locations = append(msg.Locations, Location(loc))
	}

	// the chardata of a translation with child elements is just the
	// indentation between them
	switch {
	case msg.Numerus:
		msg.NumerusForms = []string{}
		for i, form := range tm.Translation.NumerusForms {
			if form.Variants != "yes" {
				msg.NumerusForms = append(msg.NumerusForms, form.Text)
				continue
			}
			if msg.NumerusVariants == nil {
				msg.NumerusVariants = make([][]string, len(tm.Translation.NumerusForms))
			}
			msg.NumerusVariants[i] = nonNil(form.LengthVariants)
			msg.NumerusForms = append(msg.NumerusForms, firstNonEmpty(form.LengthVariants, ""))
		}
	case tm.Translation.Variants == "yes":
		msg.Variants = true
		msg.LengthVariants = nonNil(tm.Translation.LengthVariants)
	default:
		msg.Translation = tm.Translation.Text
	}

	return msg, nil
}

func nonNil(texts []string) []string {
	if texts == nil {
		return []string{}
	}
	return texts
}

func convertRaw(raws []tsRaw) []RawElement {
	if len(raws) == 0 {
		return nil
	}
	elements := make([]RawElement, 0, len(raws))
	for _, raw := range raws {
		element := RawElement{Name: raw.XMLName.Local, InnerXML: raw.InnerXML}
		for _, attr := range raw.Attrs {
			element.Attrs = append(element.Attrs, Attr{Name: attr.Name.Local, Value: attr.Value})
		}
		elements = append(elements, element)
	}
	return elements
}
