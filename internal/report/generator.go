// Package report exposes the generation facade: it validates a request,
// selects a backend by output kind, supplies the formatter, and always
// returns a typed result instead of letting errors escape the boundary.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	cn "github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/format"
	"github.com/roufai-ne/crou-management-system-sub010/pkg/model"
)

// Backend is one rendering strategy behind the generation contract.
type Backend interface {
	Generate(ctx context.Context, cfg model.ReportConfig, data model.ReportData, f *format.Formatter) ([]byte, error)
}

// Generator is the facade in front of the rendering backends. It is the
// only layer allowed to convert backend errors into a result value.
type Generator struct {
	validate  *validator.Validate
	document  Backend
	workbook  Backend
	flatTable Backend
	logger    *zap.SugaredLogger
}

// NewGenerator wires the facade over the three backends.
func NewGenerator(document, workbook, flatTable Backend, logger *zap.SugaredLogger) *Generator {
	return &Generator{
		validate:  validator.New(),
		document:  document,
		workbook:  workbook,
		flatTable: flatTable,
		logger:    logger,
	}
}

// Generate validates the request, dispatches to the backend matching the
// requested output kind, and wraps the outcome into a ReportResult. The
// caller owns the result; the engine retains nothing across calls.
func (g *Generator) Generate(ctx context.Context, cfg model.ReportConfig, data model.ReportData) model.ReportResult {
	start := time.Now()

	if err := g.Validate(cfg); err != nil {
		g.logger.Warnw("report request rejected", "error", err)

		return model.ReportResult{
			Success: false,
			Error:   err.Error(),
			Metadata: model.ResultMetadata{
				GeneratedAt: data.GeneratedAt,
				Duration:    time.Since(start),
			},
		}
	}

	backend := g.backendFor(cfg.OutputKind)

	f := format.New(format.Config{
		Locale:   cfg.Options.Locale,
		Currency: cfg.Options.Currency,
		Timezone: cfg.Options.Timezone,
	})

	buf, err := backend.Generate(ctx, cfg, data, f)

	result := model.ReportResult{
		Metadata: model.ResultMetadata{
			GeneratedAt: data.GeneratedAt,
			Duration:    time.Since(start),
			RecordCount: data.RecordCount(),
		},
	}

	if err != nil {
		g.logger.Errorw("report generation failed",
			"domain", cfg.Domain, "output_kind", cfg.OutputKind, "error", err)

		result.Error = err.Error()

		return result
	}

	result.Success = true
	result.Data = buf
	result.Size = len(buf)
	result.Filename = buildFilename(cfg, data)
	result.MimeType = cn.MimeType(cfg.OutputKind)

	g.logger.Infow("report generated",
		"domain", cfg.Domain,
		"output_kind", cfg.OutputKind,
		"size", result.Size,
		"records", result.Metadata.RecordCount,
		"duration", result.Metadata.Duration)

	return result
}

// Validate is the gate before dispatch: domain, output kind and tenant
// must be present, and a custom period needs both bounds. No partial work
// happens on rejection.
func (g *Generator) Validate(cfg model.ReportConfig) error {
	if err := g.validate.Struct(cfg); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "OutputKind":
				if fe.Tag() == "oneof" {
					return fmt.Errorf("%w: %q", cn.ErrInvalidOutputKind, cfg.OutputKind)
				}
			case "Domain":
				return fmt.Errorf("%w: report domain is required", cn.ErrMissingDomain)
			case "TenantID":
				return fmt.Errorf("%w: tenant identifier is required", cn.ErrMissingTenantID)
			}
		}

		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}

		return fmt.Errorf("%w: %s", cn.ErrMissingRequiredFields, strings.Join(fields, ", "))
	}

	if cfg.Period.IsCustom() && (cfg.Period.Start == nil || cfg.Period.End == nil) {
		return fmt.Errorf("%w: custom period requires both start and end", cn.ErrInvalidCustomPeriod)
	}

	return nil
}

func (g *Generator) backendFor(outputKind string) Backend {
	switch outputKind {
	case cn.OutputWorkbook:
		return g.workbook
	case cn.OutputFlatTable:
		return g.flatTable
	default:
		return g.document
	}
}

// buildFilename yields a unique, sortable artifact name:
// <domain>-<tenant>-<timestamp>-<short id>.<ext>.
func buildFilename(cfg model.ReportConfig, data model.ReportData) string {
	return fmt.Sprintf("%s-%s-%s-%s.%s",
		cn.NormalizeDomain(cfg.Domain),
		cfg.TenantID,
		data.GeneratedAt.UTC().Format("20060102_150405"),
		uuid.NewString()[:8],
		cn.FileExtension(cfg.OutputKind),
	)
}
