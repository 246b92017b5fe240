package constant

import "time"

// PDF rendering constants. Page geometry is A4 portrait with fixed margins;
// header and footer bands print inside the top and bottom margins.
const (
	PDFMinValidSizeBytes  = 1000
	PDFLargeHTMLThreshold = 500 * 1024 // 500 KB
	PDFBytesPerKB         = 1024
	PDFRenderSettleDelay  = 500 * time.Millisecond
	PDFPaperWidthInches   = 8.27
	PDFPaperHeightInches  = 11.69
	PDFMarginTopInches    = 0.6
	PDFMarginBottomInches = 0.6
	PDFMarginSideInches   = 0.4
	PDFFilePermissions    = 0o600
	PDFDefaultTimeout     = 90 * time.Second
	PDFChromeHeapSizeMB   = "512"
)
