package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"twm/pkg/categorizer"
)

// ContentType tags a payload. It covers the six task categories plus
// documents, which are written by hand and never generated.
type ContentType string

const (
	TypeText         = ContentType(categorizer.CategoryText)
	TypeTable        = ContentType(categorizer.CategoryTable)
	TypePresentation = ContentType(categorizer.CategoryPresentation)
	TypePodcast      = ContentType(categorizer.CategoryPodcast)
	TypeImage        = ContentType(categorizer.CategoryImage)
	TypeVideo        = ContentType(categorizer.CategoryVideo)
	TypeDocument     ContentType = "document"
)

// ParseContentType validates a content type string.
func ParseContentType(s string) (ContentType, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(TypeDocument)) {
		return TypeDocument, nil
	}
	c, err := categorizer.ParseCategory(s)
	if err != nil {
		return "", err
	}
	return ContentType(c), nil
}

// Payload is the generated content for one content type. The set of
// implementations is closed: only the types in this file satisfy it.
type Payload interface {
	Type() ContentType
	isPayload()
}

type TextPayload struct {
	Content string `json:"content"`
}

type TablePayload struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type Slide struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PresentationPayload struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

type PodcastPayload struct {
	Title    string `json:"title"`
	Script   string `json:"script"`
	AudioURL string `json:"audioUrl,omitempty"`
}

type ImagePayload struct {
	ImageURL    string `json:"imageUrl"`
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

type VideoPayload struct {
	VideoURL    string `json:"videoUrl"`
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

// DocumentPayload is a hand-written document saved from the editor.
type DocumentPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (TextPayload) Type() ContentType         { return TypeText }
func (TablePayload) Type() ContentType        { return TypeTable }
func (PresentationPayload) Type() ContentType { return TypePresentation }
func (PodcastPayload) Type() ContentType      { return TypePodcast }
func (ImagePayload) Type() ContentType        { return TypeImage }
func (VideoPayload) Type() ContentType        { return TypeVideo }
func (DocumentPayload) Type() ContentType     { return TypeDocument }

func (TextPayload) isPayload()         {}
func (TablePayload) isPayload()        {}
func (PresentationPayload) isPayload() {}
func (PodcastPayload) isPayload()      {}
func (ImagePayload) isPayload()        {}
func (VideoPayload) isPayload()        {}
func (DocumentPayload) isPayload()     {}

// DecodePayload unmarshals raw JSON into the payload variant named by t.
func DecodePayload(t ContentType, raw json.RawMessage) (Payload, error) {
	var (
		p   Payload
		err error
	)
	switch t {
	case TypeText:
		var v TextPayload
		err = json.Unmarshal(raw, &v)
		p = v
	case TypeTable:
		var v TablePayload
		err = json.Unmarshal(raw, &v)
		p = v
	case TypePresentation:
		var v PresentationPayload
		err = json.Unmarshal(raw, &v)
		p = v
	case TypePodcast:
		var v PodcastPayload
		err = json.Unmarshal(raw, &v)
		p = v
	case TypeImage:
		var v ImagePayload
		err = json.Unmarshal(raw, &v)
		p = v
	case TypeVideo:
		var v VideoPayload
		err = json.Unmarshal(raw, &v)
		p = v
	case TypeDocument:
		var v DocumentPayload
		err = json.Unmarshal(raw, &v)
		p = v
	default:
		return nil, fmt.Errorf("decode payload: %w: %q", categorizer.ErrUnknownCategory, t)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", t, err)
	}
	return p, nil
}

// PrimaryText returns the main body text of a payload: the content of text
// and document payloads, the script of a podcast, the slide contents of a
// presentation and the description of media payloads. Tables have none.
func PrimaryText(p Payload) string {
	switch v := p.(type) {
	case TextPayload:
		return v.Content
	case DocumentPayload:
		return v.Content
	case PodcastPayload:
		return v.Script
	case PresentationPayload:
		if len(v.Slides) == 0 {
			return v.Title
		}
		return v.Slides[0].Content
	case ImagePayload:
		return v.Description
	case VideoPayload:
		return v.Description
	case TablePayload:
		return ""
	}
	return ""
}
