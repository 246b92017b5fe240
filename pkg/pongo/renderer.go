package pongo

import (
	"github.com/flosch/pongo2/v6"
	"github.com/pkg/errors"

	"github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

// TemplateRenderer compiles a template source against a context. It keeps
// no state between calls and is safe for concurrent use.
type TemplateRenderer struct{}

// NewTemplateRenderer creates a TemplateRenderer.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{}
}

// Render compiles source and executes it against ctx. Both parse and
// execution failures surface as a wrapped template-compile error.
func (r *TemplateRenderer) Render(source string, ctx map[string]any) (string, error) {
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return "", errors.Wrap(constant.ErrTemplateCompile, err.Error())
	}

	out, err := tpl.Execute(pongo2.Context(ctx))
	if err != nil {
		return "", errors.Wrap(constant.ErrTemplateCompile, err.Error())
	}

	return out, nil
}
