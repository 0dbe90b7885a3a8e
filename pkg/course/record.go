// Package course defines the normalized, platform-agnostic course record
// returned by every adapter.
package course

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/coursepeek/coursepeek/internal/normalize"
)

// Record is the single output entity of a scrape. Platform and URL are
// always set; every other field is best-effort and may be empty when the
// page did not expose it.
type Record struct {
	Title        string    `json:"title,omitempty" yaml:"title,omitempty"`
	Platform     string    `json:"platform" yaml:"platform"`
	URL          string    `json:"url" yaml:"url"`
	Organization string    `json:"organization,omitempty" yaml:"organization,omitempty"`
	Brief        string    `json:"brief,omitempty" yaml:"brief,omitempty"`
	Programme    Programme `json:"programme" yaml:"programme"`
	// Duration is the total effort encoded as "HH:MM", following the
	// hours:minutes convention the catalog platforms publish.
	Duration    string               `json:"durationMinutes,omitempty" yaml:"durationMinutes,omitempty"`
	Instructors []string             `json:"instructors,omitempty" yaml:"instructors,omitempty"`
	Languages   []normalize.Language `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// Section is one titled group of syllabus items in an outlined programme.
type Section struct {
	Title string
	Items []string
}

// Programme holds the course syllabus in one of two shapes: a flat ordered
// item list, or a two-level outline of section title to items. Both shapes
// preserve on-page order; which one an adapter produces depends on how the
// platform structures its syllabus.
type Programme struct {
	Items    []string
	Sections []Section
}

// Flat builds the list-shaped programme.
func Flat(items []string) Programme {
	return Programme{Items: items}
}

// Outline builds the section-shaped programme.
func Outline(sections []Section) Programme {
	return Programme{Sections: sections}
}

// IsZero reports whether no syllabus content was found.
func (p Programme) IsZero() bool {
	return len(p.Items) == 0 && len(p.Sections) == 0
}

// MarshalJSON encodes the flat shape as an array and the outline shape as
// an object keyed by section title, preserving section order.
func (p Programme) MarshalJSON() ([]byte, error) {
	if len(p.Sections) > 0 {
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, s := range p.Sections {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(s.Title)
			if err != nil {
				return nil, err
			}
			items, err := json.Marshal(s.Items)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(items)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	if len(p.Items) > 0 {
		return json.Marshal(p.Items)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts both shapes. Object keys are read in document
// order so a round trip keeps the outline sequence intact.
func (p *Programme) UnmarshalJSON(data []byte) error {
	*p = Programme{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &p.Items)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		title, ok := tok.(string)
		if !ok {
			return fmt.Errorf("programme: unexpected key %v", tok)
		}
		var items []string
		if err := dec.Decode(&items); err != nil {
			return err
		}
		p.Sections = append(p.Sections, Section{Title: title, Items: items})
	}
	return nil
}

// MarshalYAML mirrors the JSON shapes for the YAML output writer.
func (p Programme) MarshalYAML() (any, error) {
	if len(p.Sections) > 0 {
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, s := range p.Sections {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: s.Title}
			valNode := &yaml.Node{}
			if err := valNode.Encode(s.Items); err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valNode)
		}
		return node, nil
	}
	if len(p.Items) > 0 {
		return p.Items, nil
	}
	return nil, nil
}
