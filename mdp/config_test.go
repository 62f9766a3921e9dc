package mdp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDomain_Valid(t *testing.T) {
	d := DefaultDomain()
	require.NoError(t, d.Validate())
	assert.Equal(t, 4, d.NumActions())
	assert.Equal(t, 4, d.NumContents())
	// 4^4 configurations × 2 tasks × 3 items
	assert.Equal(t, 256*2*3, d.NumStates())
}

func TestDomainValidate_ActionSlotMismatch(t *testing.T) {
	d := DefaultDomain()
	d.Rewards = []float64{1, 2}
	err := d.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestDomainValidate_DistanceSlotMismatch(t *testing.T) {
	d := DefaultDomain()
	d.Distances = d.Distances[:3]
	assert.True(t, errors.Is(d.Validate(), ErrConfig))
}

func TestDomainValidate_DuplicateItem(t *testing.T) {
	d := DefaultDomain()
	d.Items = []string{"red", "red", "blue"}
	assert.True(t, errors.Is(d.Validate(), ErrConfig))
}

func TestDomainValidate_EmptySentinelCollidesWithItem(t *testing.T) {
	d := DefaultDomain()
	d.Items = []string{"red", "empty", "blue"}
	assert.True(t, errors.Is(d.Validate(), ErrConfig))
}

func TestDomainValidate_TaskDomain(t *testing.T) {
	d := DefaultDomain()
	d.Tasks = []string{"store"}
	assert.True(t, errors.Is(d.Validate(), ErrConfig))

	d.Tasks = []string{"store", "store"}
	assert.True(t, errors.Is(d.Validate(), ErrConfig))
}

func TestLoadDomain_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domain.yaml")
	spec := `
slots: 2
empty: empty
items: [red, blue]
tasks: [store, restore]
rewards: [2, 1]
distances: [1, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))

	d, err := LoadDomain(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Slots)
	assert.Equal(t, []string{"red", "blue"}, d.Items)
	assert.Equal(t, []float64{1, 2}, d.Distances)
}

func TestLoadDomain_InvalidRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domain.yaml")
	spec := `
slots: 3
empty: empty
items: [red]
tasks: [store, restore]
rewards: [1]
distances: [1]
`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))

	_, err := LoadDomain(path)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestContentItemRoundTrip(t *testing.T) {
	d := DefaultDomain()
	for i := range d.Items {
		it := Item(i)
		c := ContentOf(it)
		assert.NotEqual(t, Empty, c)
		assert.Equal(t, it, ItemOf(c))
		assert.Equal(t, d.Items[i], d.ContentName(c))
	}
	assert.Equal(t, "empty", d.ContentName(Empty))
}
