// Package recommend turns the free-form text returned by the recommendation
// endpoint into a typed model.
package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// IntroductionKey is the reserved key holding the leading summary line
const IntroductionKey = "Introduction"

var fencedJSON = regexp.MustCompile("(?s)```json(.*?)```")

// Item is one recommended place
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// Category is a named list of recommendations, in response order
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Model is the structured recommendation response
type Model struct {
	Introduction string     `json:"introduction,omitempty"`
	Categories   []Category `json:"categories"`
}

// Category returns the named category
func (m *Model) Category(name string) (Category, bool) {
	for _, c := range m.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Status tells the caller which of the three outcomes Parse produced
type Status string

const (
	StatusOK        Status = "ok"
	StatusEmpty     Status = "empty"
	StatusMalformed Status = "malformed"
)

// Result is the outcome of Parse
type Result struct {
	Status Status
	Model  *Model
	// Err describes why a block was Malformed
	Err error
}

// Parse extracts the first ```json fenced block from raw and structures it.
// No block yields StatusEmpty; a block that is not a JSON object of
// category arrays yields StatusMalformed. Parse has no side effects.
func Parse(raw string) Result {
	match := fencedJSON.FindStringSubmatch(raw)
	if match == nil || match[1] == "" {
		return Result{Status: StatusEmpty}
	}

	model, err := decodeModel(strings.TrimSpace(match[1]))
	if err != nil {
		return Result{Status: StatusMalformed, Err: err}
	}
	return Result{Status: StatusOK, Model: model}
}

func decodeModel(body string) (*Model, error) {
	dec := json.NewDecoder(strings.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read recommendations: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("recommendations must be a JSON object")
	}

	model := &Model{Categories: []Category{}}
	index := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read category name: %w", err)
		}
		key := keyTok.(string)

		if key == IntroductionKey {
			if err := dec.Decode(&model.Introduction); err != nil {
				return nil, fmt.Errorf("decode %s: %w", IntroductionKey, err)
			}
			continue
		}

		var items []Item
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode category %q: %w", key, err)
		}
		if items == nil {
			items = []Item{}
		}
		// a repeated key keeps its first position and its last value
		if i, ok := index[key]; ok {
			model.Categories[i].Items = items
			continue
		}
		index[key] = len(model.Categories)
		model.Categories = append(model.Categories, Category{Name: key, Items: items})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read recommendations: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after recommendations object")
	}
	return model, nil
}
