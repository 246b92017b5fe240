package pongo

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

func TestTemplateRendererRender(t *testing.T) {
	t.Parallel()

	r := NewTemplateRenderer()

	out, err := r.Render(`Bonjour {{ nom }}`, map[string]any{"nom": "CROU"})
	require.NoError(t, err)
	assert.Equal(t, "Bonjour CROU", out)
}

func TestTemplateRendererParseError(t *testing.T) {
	t.Parallel()

	r := NewTemplateRenderer()

	_, err := r.Render(`{% if %}`, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ErrTemplateCompile))
}

func TestTemplateRendererExecuteError(t *testing.T) {
	t.Parallel()

	r := NewTemplateRenderer()

	_, err := r.Render(`{% sum_by rows by "amount" %}`, map[string]any{"rows": "pas une liste"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, constant.ErrTemplateCompile))
}

func TestTemplateRendererConcurrent(t *testing.T) {
	t.Parallel()

	r := NewTemplateRenderer()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()

			out, err := r.Render(`{{ v }}`, map[string]any{"v": "ok"})
			assert.NoError(t, err)
			assert.Equal(t, "ok", out)
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}
}
