package constant

import (
	"errors"
)

// Standardized engine error codes.
var (
	ErrMissingRequiredFields = errors.New("RPT-0001")
	ErrInvalidOutputKind     = errors.New("RPT-0002")
	ErrMissingTenantID       = errors.New("RPT-0003")
	ErrMissingDomain         = errors.New("RPT-0004")
	ErrInvalidCustomPeriod   = errors.New("RPT-0005")
	ErrDocumentGeneration    = errors.New("RPT-0006")
	ErrWorkbookGeneration    = errors.New("RPT-0007")
	ErrFlatTableGeneration   = errors.New("RPT-0008")
	ErrRendererClosed        = errors.New("RPT-0009")
	ErrTemplateCompile       = errors.New("RPT-0010")
)
