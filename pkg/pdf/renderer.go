// Package pdf drives a headless Chrome process to paginate HTML into PDF
// buffers. One Renderer owns at most one browser process, created lazily on
// first use and reused across calls; each call opens its own tab so
// concurrent renders do not corrupt each other. Close is a caller
// obligation: an unclosed Renderer leaks the Chrome process.
package pdf

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	cn "github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

// PageOptions controls pagination geometry and the running header/footer
// bands. Header and footer templates may carry the Chrome print
// placeholders (pageNumber, totalPages, date) as class-tagged spans.
type PageOptions struct {
	WidthInches        float64
	HeightInches       float64
	MarginTopInches    float64
	MarginBottomInches float64
	MarginSideInches   float64
	Landscape          bool
	HeaderHTML         string
	FooterHTML         string
}

// A4Portrait returns the engine's fixed page geometry.
func A4Portrait() PageOptions {
	return PageOptions{
		WidthInches:        cn.PDFPaperWidthInches,
		HeightInches:       cn.PDFPaperHeightInches,
		MarginTopInches:    cn.PDFMarginTopInches,
		MarginBottomInches: cn.PDFMarginBottomInches,
		MarginSideInches:   cn.PDFMarginSideInches,
	}
}

// Renderer wraps one long-lived Chrome process. The zero value is not
// usable; construct with NewRenderer.
type Renderer struct {
	logger *zap.SugaredLogger

	mu          sync.Mutex
	allocCtx    context.Context
	allocCancel context.CancelFunc
	closed      bool
}

// NewRenderer creates a Renderer. The Chrome process is not started until
// the first Render call.
func NewRenderer(logger *zap.SugaredLogger) *Renderer {
	return &Renderer{logger: logger}
}

// acquireAllocator lazily starts the shared Chrome process and returns its
// allocator context.
func (r *Renderer) acquireAllocator() (context.Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, cn.ErrRendererClosed
	}

	if r.allocCtx == nil {
		r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), chromeOptions()...)
		r.logger.Infow("started headless renderer process")
	}

	return r.allocCtx, nil
}

// chromeOptions returns Chrome flags tuned for PDF generation in
// memory-limited containers.
func chromeOptions() []chromedp.ExecAllocatorOption {
	return []chromedp.ExecAllocatorOption{
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-plugins", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-backgrounding-occluded-windows", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-features", "TranslateUI,site-per-process"),
		chromedp.Flag("disable-software-rasterizer", true),
		chromedp.Flag("max-old-space-size", cn.PDFChromeHeapSizeMB),
		chromedp.Flag("js-flags", "--max-old-space-size="+cn.PDFChromeHeapSizeMB),
	}
}

// Render paginates html into a PDF buffer. Each call opens a fresh tab
// against the shared process and closes it on completion, so Render is
// safe to call concurrently. The ctx deadline bounds the whole render;
// after a timeout the caller should Close and recreate the Renderer to
// avoid a corrupted surface.
func (r *Renderer) Render(ctx context.Context, html string, opts PageOptions) ([]byte, error) {
	htmlSizeKB := float64(len(html)) / cn.PDFBytesPerKB
	r.logger.Infow("starting PDF render", "html_size_kb", htmlSizeKB)

	if len(html) > cn.PDFLargeHTMLThreshold {
		r.logger.Warnw("large HTML detected, render may be slow", "html_size_kb", htmlSizeKB)
	}

	allocCtx, err := r.acquireAllocator()
	if err != nil {
		return nil, err
	}

	tmpFileName, err := r.createTempHTMLFile(html)
	if err != nil {
		return nil, err
	}

	defer func() {
		if rmErr := os.Remove(tmpFileName); rmErr != nil {
			r.logger.Errorw("failed to remove temp file", "file", tmpFileName, "error", rmErr)
		}
	}()

	// One tab per call; the surface dies with this context, the process
	// survives.
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	renderCtx := tabCtx
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithDeadline(tabCtx, deadline)

		defer cancel()
	}

	buf, err := r.printToPDF(renderCtx, tmpFileName, opts)
	if err != nil {
		r.logRenderError(renderCtx, err)
		return nil, err
	}

	if len(buf) < cn.PDFMinValidSizeBytes {
		r.logger.Errorw("generated PDF too small, likely empty", "size", len(buf))
		return nil, errors.Errorf("generated PDF is too small (%d bytes), likely empty", len(buf))
	}

	r.logger.Infow("PDF rendered", "size", len(buf))

	return buf, nil
}

// createTempHTMLFile writes html to a temp file for file:// navigation.
func (r *Renderer) createTempHTMLFile(html string) (string, error) {
	tmpFile, err := os.CreateTemp("", "report-*.html")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp HTML file")
	}

	tmpFileName := tmpFile.Name()

	if err := tmpFile.Close(); err != nil {
		r.logger.Warnw("failed to close temp file", "file", tmpFileName, "error", err)
	}

	if err := os.WriteFile(tmpFileName, []byte(html), cn.PDFFilePermissions); err != nil {
		_ = os.Remove(tmpFileName)

		return "", errors.Wrap(err, "failed to write HTML to temp file")
	}

	return tmpFileName, nil
}

// printToPDF navigates the tab to the temp file and prints it with the
// requested geometry and header/footer bands.
func (r *Renderer) printToPDF(ctx context.Context, htmlFilePath string, opts PageOptions) ([]byte, error) {
	fileURL := "file://" + filepath.ToSlash(htmlFilePath)

	var buf []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(cn.PDFRenderSettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(opts.Landscape).
				WithPaperWidth(opts.WidthInches).
				WithPaperHeight(opts.HeightInches).
				WithMarginTop(opts.MarginTopInches).
				WithMarginBottom(opts.MarginBottomInches).
				WithMarginLeft(opts.MarginSideInches).
				WithMarginRight(opts.MarginSideInches)

			if opts.HeaderHTML != "" || opts.FooterHTML != "" {
				params = params.
					WithDisplayHeaderFooter(true).
					WithHeaderTemplate(opts.HeaderHTML).
					WithFooterTemplate(opts.FooterHTML)
			}

			var err error
			buf, _, err = params.Do(ctx)

			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return buf, nil
}

// logRenderError distinguishes timeouts and cancellations from crashes.
func (r *Renderer) logRenderError(ctx context.Context, err error) {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		r.logger.Errorw("PDF render timeout", "error", err)
	case errors.Is(ctx.Err(), context.Canceled):
		r.logger.Errorw("PDF render canceled", "error", err)
	default:
		r.logger.Errorw("PDF render failed", "error", err)
	}
}

// Close tears down the Chrome process. Renders in flight fail; subsequent
// Render calls return ErrRendererClosed. Close is idempotent.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.closed = true

	if r.allocCancel != nil {
		r.allocCancel()
		r.allocCtx = nil
		r.allocCancel = nil
		r.logger.Infow("renderer process closed")
	}
}

// IsHealthy reports whether the renderer can still accept work.
func (r *Renderer) IsHealthy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return !r.closed
}
