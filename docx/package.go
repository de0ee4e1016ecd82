package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const (
	nsMain    = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRels    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgRels = "http://schemas.openxmlformats.org/package/2006/relationships"

	relOfficeDocument = nsRels + "/officeDocument"
	relCore           = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtended       = nsRels + "/extended-properties"
	relStyles         = nsRels + "/styles"
	relNumbering      = nsRels + "/numbering"
	relSettings       = nsRels + "/settings"
	relComments       = nsRels + "/comments"
	relHyperlink      = nsRels + "/hyperlink"
	relImage          = nsRels + "/image"
)

var fixedRelationships = []relationship{
	{id: "rId1", relType: relStyles, target: "styles.xml"},
	{id: "rId2", relType: relNumbering, target: "numbering.xml"},
	{id: "rId3", relType: relSettings, target: "settings.xml"},
	{id: "rId4", relType: relComments, target: "comments.xml"},
}

type part struct {
	name string
	data []byte
}

// writePackage assembles every part into the zip container. Parts are
// written in a fixed order so output is deterministic for a given input.
func (s *state) writePackage(title string) ([]byte, error) {
	parts := []part{
		{name: "[Content_Types].xml", data: []byte(contentTypesXML())},
		{name: "_rels/.rels", data: []byte(rootRelsXML())},
		{name: "docProps/core.xml", data: []byte(coreXML(title, s.options.Author, s.options.Created))},
		{name: "docProps/app.xml", data: []byte(appXML())},
		{name: "word/document.xml", data: []byte(s.documentXML())},
		{name: "word/styles.xml", data: []byte(stylesXML(s.options.Style))},
		{name: "word/numbering.xml", data: []byte(numberingXML(s.orderedLists))},
		{name: "word/settings.xml", data: []byte(settingsXML())},
		{name: "word/comments.xml", data: []byte(s.commentsXML())},
		{name: "word/_rels/document.xml.rels", data: []byte(s.documentRelsXML())},
	}
	for _, media := range s.media {
		parts = append(parts, part{name: "word/" + media.target, data: media.data})
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		header := &zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: s.options.Created,
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func contentTypesXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	b.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
	overrides := [][2]string{
		{"/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
		{"/word/styles.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
		{"/word/numbering.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"},
		{"/word/settings.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"},
		{"/word/comments.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.comments+xml"},
		{"/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml"},
		{"/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml"},
	}
	for _, o := range overrides {
		fmt.Fprintf(&b, `<Override PartName="%s" ContentType="%s"/>`, o[0], o[1])
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func rootRelsXML() string {
	return relationshipsXML([]relationship{
		{id: "rId1", relType: relOfficeDocument, target: "word/document.xml"},
		{id: "rId2", relType: relCore, target: "docProps/core.xml"},
		{id: "rId3", relType: relExtended, target: "docProps/app.xml"},
	})
}

func (s *state) documentRelsXML() string {
	rels := make([]relationship, 0, len(fixedRelationships)+len(s.rels))
	rels = append(rels, fixedRelationships...)
	rels = append(rels, s.rels...)
	return relationshipsXML(rels)
}

func relationshipsXML(rels []relationship) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsPkgRels)
	for _, rel := range rels {
		mode := ""
		if rel.external {
			mode = ` TargetMode="External"`
		}
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"%s/>`, rel.id, rel.relType, escape(rel.target), mode)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func coreXML(title, author string, created time.Time) string {
	stamp := created.Format(time.RFC3339)
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	if title != "" {
		fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, escape(title))
	}
	fmt.Fprintf(&b, `<dc:creator>%s</dc:creator>`, escape(author))
	fmt.Fprintf(&b, `<cp:lastModifiedBy>%s</cp:lastModifiedBy>`, escape(author))
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, stamp)
	fmt.Fprintf(&b, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, stamp)
	b.WriteString(`</cp:coreProperties>`)
	return b.String()
}

func appXML() string {
	return xmlHeader +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
		`<Application>md2docx</Application><DocSecurity>0</DocSecurity></Properties>`
}

// settingsXML asks Word to refresh fields on open so the TOC is populated.
func settingsXML() string {
	return xmlHeader +
		`<w:settings xmlns:w="` + nsMain + `">` +
		`<w:updateFields w:val="true"/>` +
		`<w:defaultTabStop w:val="720"/>` +
		`<w:compat><w:compatSetting w:name="compatibilityMode" w:uri="http://schemas.microsoft.com/office/word" w:val="15"/></w:compat>` +
		`</w:settings>`
}

func (s *state) documentXML() string {
	var b strings.Builder
	b.Grow(s.body.Len() + 1024)
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document xmlns:w="` + nsMain + `" xmlns:r="` + nsRels + `"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
		` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`)
	b.WriteString(`<w:body>`)
	b.WriteString(s.body.String())
	fmt.Fprintf(&b, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`, pageWidthTwips, pageHeightTwips)
	fmt.Fprintf(&b, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		pageMarginTwips, pageMarginTwips, pageMarginTwips, pageMarginTwips)
	b.WriteString(`</w:sectPr></w:body></w:document>`)
	return b.String()
}
