package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvenanceSetAddHas(t *testing.T) {
	p := NewProvenanceSet()
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Has(FieldFullName))

	p.Add(FieldFullName)
	p.Add(FieldEmail)
	p.Add(FieldFullName) // idempotent

	assert.Equal(t, 2, p.Len())
	assert.True(t, p.Has(FieldFullName))
	assert.True(t, p.Has(FieldEmail))
	assert.False(t, p.Has(FieldAboutMe))
}

func TestProvenanceSetMarshalSorted(t *testing.T) {
	p := NewProvenanceSet()
	p.Add(FieldPhone)
	p.Add(FieldEmail)
	p.Add(FieldCurrentRole)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `["currentRole","email","phone"]`, string(data))
}

func TestProvenanceSetMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewProvenanceSet())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestProvenanceSetUnmarshal(t *testing.T) {
	var p ProvenanceSet
	require.NoError(t, json.Unmarshal([]byte(`["email","fullName"]`), &p))
	assert.Equal(t, 2, p.Len())
	assert.True(t, p.Has(FieldEmail))
	assert.True(t, p.Has(FieldFullName))

	assert.Error(t, json.Unmarshal([]byte(`"not-an-array"`), &p))
}

func TestProvenanceSetFieldsSorted(t *testing.T) {
	p := NewProvenanceSet()
	p.Add(FieldTechnicalSkills)
	p.Add(FieldBlogURL)
	assert.Equal(t, []string{FieldBlogURL, FieldTechnicalSkills}, p.Fields())
}
