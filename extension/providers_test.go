package extension

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentgrid/allocator/model/skill"
	"github.com/talentgrid/allocator/service/matcher"
)

func TestProviders(t *testing.T) {
	providers := NewProviders()

	assert.NotNil(t, providers.Lookup("nop"))
	assert.NotNil(t, providers.Lookup("cooccurrence"))
	assert.Nil(t, providers.Lookup("unknown"))

	providers.Register("custom", matcher.Nop{})
	custom := providers.Lookup("custom")
	assert.NotNil(t, custom)

	required, _ := skill.ParseSet("welding")
	suggested, err := custom.Suggest(context.Background(), required)
	assert.NoError(t, err)
	assert.Equal(t, 0, suggested.Len())
}

func TestTypes(t *testing.T) {
	types := NewTypes()
	assert.NotNil(t, types.Lookup("Employee"))
	assert.NotNil(t, types.Lookup("Assignment"))
}
