// Package rss builds and serializes RSS 2.0 documents.
package rss

import (
	"bytes"
	"encoding/xml"
	"io"
	"time"
)

// timeFormat is the RFC 822 variant RSS readers expect (four-digit year, GMT).
const timeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

type Document struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel Channel  `xml:"channel"`
}

type Channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	Language      string `xml:"language,omitempty"`
	LastBuildDate string `xml:"lastBuildDate,omitempty"`
	Items         []Item `xml:"item"`
}

type Item struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	GUID        *GUID   `xml:"guid,omitempty"`
	PubDate     string  `xml:"pubDate,omitempty"`
	Source      *Source `xml:"source,omitempty"`
}

type GUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type Source struct {
	URL   string `xml:"url,attr,omitempty"`
	Value string `xml:",chardata"`
}

// New returns an empty RSS 2.0 document with the channel header filled in.
func New(title, link, description string) Document {
	return Document{
		Version: "2.0",
		Channel: Channel{
			Title:       title,
			Link:        link,
			Description: description,
			Language:    "en-us",
		},
	}
}

// FormatTime renders a timestamp the way RSS readers expect. The input is
// normalized to UTC so encoding is independent of the local timezone.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// Parse decodes an RSS document from r.
func Parse(r io.Reader) (Document, error) {
	decoder := xml.NewDecoder(r)
	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Encode serializes the document with the XML header and stable two-space
// indentation. Output is deterministic for identical documents.
func Encode(doc Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
