// internal/registry/catalog.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apierrors "activity-service/internal/common/errors"
)

// Catalog is the on-disk seed format: a versioned list of activities.
type Catalog struct {
	Version    string         `json:"version"`
	Activities []CatalogEntry `json:"activities"`
}

type CatalogEntry struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

const catalogSchema = `{
  "type": "object",
  "required": ["activities"],
  "properties": {
    "version": {"type": "string"},
    "activities": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "description", "schedule", "max_participants", "participants"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "schedule": {"type": "string"},
          "max_participants": {"type": "integer", "minimum": 1},
          "participants": {
            "type": "array",
            "items": {"type": "string"}
          }
        }
      }
    }
  }
}`

// LoadCatalog reads and validates a catalog file and builds a registry
// from it. The file replaces the built-in seed wholesale.
func LoadCatalog(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, apierrors.NewCatalogInvalid(err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, apierrors.NewCatalogInvalid(strings.Join(msgs, "; "))
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	r := New()
	for _, entry := range catalog.Activities {
		participants := entry.Participants
		if participants == nil {
			participants = []string{}
		}
		if err := r.Add(entry.Name, Activity{
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
			Participants:    participants,
		}); err != nil {
			return nil, apierrors.NewCatalogInvalid(err.Error())
		}
	}
	return r, nil
}
