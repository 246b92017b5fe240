package bootstrap

import (
	"time"

	"github.com/roufai-ne/crou-management-system-sub010/internal/report"
	"github.com/roufai-ne/crou-management-system-sub010/internal/report/document"
	"github.com/roufai-ne/crou-management-system-sub010/internal/report/flattable"
	"github.com/roufai-ne/crou-management-system-sub010/internal/report/templates"
	"github.com/roufai-ne/crou-management-system-sub010/internal/report/workbook"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/pdf"

	"go.uber.org/zap"
)

// Engine owns the generator facade and the browser renderer behind it.
// Callers must Close it to release the Chrome allocator.
type Engine struct {
	Generator     *report.Generator
	Logger        *zap.SugaredLogger
	RenderTimeout time.Duration

	renderer *pdf.Renderer
}

// InitEngine wires the full generation stack: template registry, pongo
// compiler, browser renderer, the three backends, and the facade on top.
func InitEngine(cfg *Config, logger *zap.SugaredLogger) *Engine {
	registry := templates.NewRegistry()
	renderer := pdf.NewRenderer(logger)

	documentBackend := document.NewBackend(registry, renderer, logger)
	workbookBackend := workbook.NewBackend(logger)
	flatTableBackend := flattable.NewBackend(logger)

	generator := report.NewGenerator(documentBackend, workbookBackend, flatTableBackend, logger)

	return &Engine{
		Generator:     generator,
		Logger:        logger,
		RenderTimeout: cfg.Browser.RenderTimeout(),
		renderer:      renderer,
	}
}

// Close releases the renderer resources. Safe to call more than once.
func (e *Engine) Close() {
	e.renderer.Close()
}
