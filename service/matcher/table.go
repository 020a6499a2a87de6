package matcher

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// LoadCoOccurrence builds a provider from a YAML adjacency document of the
// form `skill: [adjacent, ...]`, read through the afs abstraction so that
// deployments can ship their own table on any supported scheme.
func LoadCoOccurrence(ctx context.Context, URL string) (*CoOccurrence, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read co-occurrence table %s: %w", URL, err)
	}
	var raw map[string][]string
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal co-occurrence table %s: %w", URL, err)
	}
	return NewCoOccurrenceWith(raw)
}
