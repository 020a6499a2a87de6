package matcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentgrid/allocator/model/skill"
)

func TestLoadCoOccurrence(t *testing.T) {
	dir := t.TempDir()
	URL := filepath.Join(dir, "table.yaml")
	data := []byte(`
welding:
  - fabrication
soldering:
  - electrical
  - networking
`)
	assert.NoError(t, os.WriteFile(URL, data, 0644))

	provider, err := LoadCoOccurrence(context.Background(), URL)
	assert.NoError(t, err)

	required, _ := skill.ParseSet("soldering")
	suggested, err := provider.Suggest(context.Background(), required)
	assert.NoError(t, err)
	assert.Equal(t, []skill.Skill{"electrical", "networking"}, suggested.Sorted())
}

func TestLoadCoOccurrenceMissing(t *testing.T) {
	_, err := LoadCoOccurrence(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
