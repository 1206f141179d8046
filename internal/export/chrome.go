package export

import (
	"context"
	"fmt"
	"os"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-builder/internal/logging"
)

// ChromeOptions configures the headless browser.
type ChromeOptions struct {
	ExecPath    string  // Chrome binary; falls back to CHROME_PATH, then chromedp's lookup
	ScaleFactor float64 // device pixel ratio for screenshots
	Width       int64   // viewport width in CSS pixels
	Height      int64
}

// ChromeBrowser prints and screenshots pages with a headless Chrome started
// per call. Requires Chrome/Chromium to be installed on the system.
type ChromeBrowser struct {
	opts ChromeOptions
}

// NewChromeBrowser creates a ChromeBrowser, filling unset options.
func NewChromeBrowser(opts ChromeOptions) *ChromeBrowser {
	if opts.ExecPath == "" {
		opts.ExecPath = os.Getenv("CHROME_PATH")
	}
	if opts.ScaleFactor <= 0 {
		opts.ScaleFactor = 2
	}
	if opts.Width <= 0 {
		opts.Width = 1024
	}
	if opts.Height <= 0 {
		opts.Height = 1400
	}
	return &ChromeBrowser{opts: opts}
}

// PrintToPDF loads html and prints it on A4 with backgrounds.
func (b *ChromeBrowser) PrintToPDF(ctx context.Context, html string) ([]byte, error) {
	var pdf []byte
	err := b.run(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		// A4: 210mm x 297mm -> inches: 8.27 x 11.69
		pdf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(8.27).
			WithPaperHeight(11.69).
			WithPreferCSSPageSize(true).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Screenshot loads html and captures the node matching selector as PNG.
func (b *ChromeBrowser) Screenshot(ctx context.Context, html, selector string) ([]byte, error) {
	var shot []byte
	err := b.run(ctx, html,
		chromedp.EmulateViewport(b.opts.Width, b.opts.Height, chromedp.EmulateScale(b.opts.ScaleFactor)),
		chromedp.Screenshot(selector, &shot, chromedp.NodeVisible, chromedp.ByQuery),
	)
	if err != nil {
		return nil, err
	}
	return shot, nil
}

func (b *ChromeBrowser) run(ctx context.Context, html string, actions ...chromedp.Action) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if b.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.opts.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	logging.Debug("starting headless browser", "exec", b.opts.ExecPath)

	tasks := chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	tasks = append(tasks, actions...)

	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("browser rendering failed: %w", err)
	}
	return nil
}
