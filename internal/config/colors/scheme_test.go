package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPreset(t *testing.T) {
	assert.Equal(t, "monochrome", GetPreset("monochrome").Preset)
	assert.Equal(t, "default", GetPreset("default").Preset)
	assert.Equal(t, "default", GetPreset("").Preset)
	assert.Equal(t, "default", GetPreset("neon").Preset)
}

func TestApplyDefaults_KeepsOverrides(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()

	assert.Equal(t, "#123456", scheme.Accent)
	assert.Equal(t, Monochrome().ColumnBorder, scheme.ColumnBorder)
	assert.True(t, scheme.IsMonochrome())
}

func TestApplyDefaults_EmptyUsesDefault(t *testing.T) {
	var scheme ColorScheme
	scheme.ApplyDefaults()

	assert.Equal(t, *Default(), scheme)
}

func TestMergeFrom(t *testing.T) {
	scheme := *Default()
	scheme.MergeFrom(ColorScheme{Accent: "#FF0000", Delete: "#00FF00"})

	assert.Equal(t, "#FF0000", scheme.Accent)
	assert.Equal(t, "#00FF00", scheme.Delete)
	assert.Equal(t, Default().Create, scheme.Create, "unset values are untouched")
}
