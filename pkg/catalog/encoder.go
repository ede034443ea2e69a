package catalog

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/go-errors/errors"
)

// the same entities lupdate uses, so that a file it wrote comes back
// unchanged
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
	"\r", "&#xd;",
)

const (
	contextIndent     = "    "
	messageIndent     = "        "
	numerusFormIndent = "            "
	variantIndent     = "    "
)

// Marshal returns the canonical lupdate layout of the catalog
func Marshal(c *Catalog) []byte {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	buf.WriteString("<!DOCTYPE TS>\n")

	version := c.Version
	if version == "" {
		version = DefaultVersion
	}
	buf.WriteString(`<TS version="` + escape(version) + `"`)
	if c.Language != "" {
		buf.WriteString(` language="` + escape(c.Language) + `"`)
	}
	if c.SourceLanguage != "" {
		buf.WriteString(` sourcelanguage="` + escape(c.SourceLanguage) + `"`)
	}
	buf.WriteString(">\n")

	writeRawElements(&buf, "", c.Extras)
	for _, ctx := range c.Contexts {
		writeContext(&buf, ctx)
	}

	buf.WriteString("</TS>\n")
	return buf.Bytes()
}

// Encode writes the canonical layout of the catalog to w
func Encode(w io.Writer, c *Catalog) error {
	if _, err := w.Write(Marshal(c)); err != nil {
		return errors.WrapPrefix(err, "catalog: failed to write", 0)
	}
	return nil
}

// WriteFile stores the catalog at path, replacing any existing file
func WriteFile(path string, c *Catalog) error {
	if err := os.WriteFile(path, Marshal(c), 0o644); err != nil {
		return errors.WrapPrefix(err, "catalog: failed to write file "+path, 0)
	}
	return nil
}

func escape(s string) string {
	return textEscaper.Replace(s)
}

func writeElement(buf *bytes.Buffer, indent, name, text string) {
	buf.WriteString(indent + "<" + name + ">" + escape(text) + "</" + name + ">\n")
}

func writeOptionalElement(buf *bytes.Buffer, indent, name, text string) {
	if text == "" {
		return
	}
	writeElement(buf, indent, name, text)
}

func writeContext(buf *bytes.Buffer, ctx *Context) {
	buf.WriteString("<context>\n")
	writeElement(buf, contextIndent, "name", ctx.Name)
	writeOptionalElement(buf, contextIndent, "comment", ctx.Comment)
	writeRawElements(buf, contextIndent, ctx.Extras)
	for _, msg := range ctx.Messages {
		writeMessage(buf, msg)
	}
	buf.WriteString("</context>\n")
}

func writeMessage(buf *bytes.Buffer, msg *Message) {
	buf.WriteString(contextIndent + "<message")
	if msg.ID != "" {
		buf.WriteString(` id="` + escape(msg.ID) + `"`)
	}
	if msg.Numerus {
		buf.WriteString(` numerus="yes"`)
	}
	buf.WriteString(">\n")

	for _, loc := range msg.Locations {
		buf.WriteString(messageIndent + `<location filename="` + escape(loc.Filename) + `"`)
		if loc.Line != "" {
			buf.WriteString(` line="` + escape(loc.Line) + `"`)
		}
		buf.WriteString("/>\n")
	}

	writeElement(buf, messageIndent, "source", msg.Source)
	writeOptionalElement(buf, messageIndent, "oldsource", msg.OldSource)
	writeOptionalElement(buf, messageIndent, "comment", msg.Comment)
	writeOptionalElement(buf, messageIndent, "oldcomment", msg.OldComment)
	writeOptionalElement(buf, messageIndent, "extracomment", msg.ExtraComment)
	writeOptionalElement(buf, messageIndent, "translatorcomment", msg.TranslatorComment)

	buf.WriteString(messageIndent + "<translation")
	if status := msg.Status.String(); status != "" {
		buf.WriteString(` type="` + status + `"`)
	}

	switch {
	case msg.Numerus:
		buf.WriteString(">\n")
		for i, form := range msg.NumerusForms {
			if i < len(msg.NumerusVariants) && msg.NumerusVariants[i] != nil {
				buf.WriteString(numerusFormIndent + "<numerusform")
				writeVariants(buf, numerusFormIndent, msg.NumerusVariants[i])
				buf.WriteString("</numerusform>\n")
				continue
			}
			writeElement(buf, numerusFormIndent, "numerusform", form)
		}
		buf.WriteString(messageIndent)
	case msg.Variants:
		writeVariants(buf, messageIndent, msg.LengthVariants)
	default:
		buf.WriteString(">" + escape(msg.Translation))
	}
	buf.WriteString("</translation>\n")

	writeRawElements(buf, messageIndent, msg.Extras)
	buf.WriteString(contextIndent + "</message>\n")
}

// writeVariants finishes an open tag and writes its length variants, one per
// line, leaving the buffer ready for the closing tag
func writeVariants(buf *bytes.Buffer, indent string, variants []string) {
	buf.WriteString(` variants="yes">`)
	for _, variant := range variants {
		buf.WriteString("\n" + indent + variantIndent + "<lengthvariant>" + escape(variant) + "</lengthvariant>")
	}
	buf.WriteString("\n" + indent)
}

func writeRawElements(buf *bytes.Buffer, indent string, elements []RawElement) {
	for _, element := range elements {
		buf.WriteString(indent + "<" + element.Name)
		for _, attr := range element.Attrs {
			buf.WriteString(" " + attr.Name + `="` + escape(attr.Value) + `"`)
		}
		if element.InnerXML == "" {
			buf.WriteString("/>\n")
			continue
		}
		buf.WriteString(">" + element.InnerXML + "</" + element.Name + ">\n")
	}
}
