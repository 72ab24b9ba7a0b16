package designsys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_PreservesOrder(t *testing.T) {
	reg, err := NewRegistry([]Token{
		{Name: "zeta", Mandatory: true, MatchPatterns: []string{"z"}},
		{Name: "alpha", Mandatory: true, MatchPatterns: []string{"a"}},
	})
	require.NoError(t, err)
	tokens := reg.Tokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, "zeta", tokens[0].Name)
	assert.Equal(t, "alpha", tokens[1].Name)
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]Token{
		{Name: "primary-color", Mandatory: true, MatchPatterns: []string{"#6366f1"}},
		{Name: "primary-color", Mandatory: false, MatchPatterns: []string{"#000"}},
	})
	require.ErrorContains(t, err, "duplicate token")
}

func TestNewRegistry_RejectsMandatoryWithoutPatterns(t *testing.T) {
	_, err := NewRegistry([]Token{
		{Name: "primary-color", Mandatory: true},
	})
	require.ErrorContains(t, err, "no match patterns")
}

func TestNewRegistry_TokensReturnsCopy(t *testing.T) {
	reg, err := NewRegistry([]Token{
		{Name: "primary-color", Mandatory: true, MatchPatterns: []string{"#6366f1"}},
	})
	require.NoError(t, err)
	got := reg.Tokens()
	got[0].Name = "mutated"
	again, ok := reg.Lookup("primary-color")
	require.True(t, ok)
	assert.Equal(t, "primary-color", again.Name)
}

func TestChecksum_TracksContent(t *testing.T) {
	a, err := NewRegistry([]Token{{Name: "x", Mandatory: true, MatchPatterns: []string{"1"}}})
	require.NoError(t, err)
	b, err := NewRegistry([]Token{{Name: "x", Mandatory: true, MatchPatterns: []string{"1"}}})
	require.NoError(t, err)
	c, err := NewRegistry([]Token{{Name: "x", Mandatory: true, MatchPatterns: []string{"2"}}})
	require.NoError(t, err)

	assert.Equal(t, a.Checksum(), b.Checksum())
	assert.NotEqual(t, a.Checksum(), c.Checksum())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	body := `[
  {"name": "primary-color", "mandatory": true, "matchPattern": ["#6366f1"]},
  {"name": "font-family", "mandatory": false, "matchPattern": ["Inter"]}
]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	reg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	tok, ok := reg.Lookup("primary-color")
	require.True(t, ok)
	assert.True(t, tok.Mandatory)
	assert.Equal(t, []string{"#6366f1"}, tok.MatchPatterns)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse([]byte(`{"not": "a list"}`))
	require.ErrorContains(t, err, "decode token list")
}

func TestDefault_HasMandatoryPrimaryColor(t *testing.T) {
	reg := Default()
	tok, ok := reg.Lookup("primary-color")
	require.True(t, ok)
	assert.True(t, tok.Mandatory)
	assert.NotEmpty(t, reg.Values()["primary-color"])
}
