// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package report

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	"github.com/l3montree-dev/pentestpro/shared"
)

const (
	// A4 in inches. PrintToPDF wants inches, the rest of the pipeline
	// thinks in millimeters.
	a4WidthInch  = 8.27
	a4HeightInch = 11.69
	mmPerInch    = 25.4

	// Hard ceiling for a single conversion. Reports are a few MB of
	// mostly static HTML, so this is a safety net, not a tuning knob.
	convertTimeout = 5 * time.Minute
)

// DefaultPDFOptions is the fixed layout of the standard report: A4 portrait
// with print margins matching the embedded template's @page rule.
func DefaultPDFOptions() shared.PDFOptions {
	return shared.PDFOptions{
		MarginTopMM:    18,
		MarginBottomMM: 20,
		MarginLeftMM:   14,
		MarginRightMM:  14,
		FooterHTML: `<div style="width:100%;font-size:7pt;color:#888;text-align:center;">` +
			`Confidential &mdash; page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`,
	}
}

// ChromePDFConverter renders HTML to PDF through a headless Chrome instance
// spawned per conversion.
type ChromePDFConverter struct{}

func NewChromePDFConverter() *ChromePDFConverter {
	return &ChromePDFConverter{}
}

func (c *ChromePDFConverter) Convert(ctx context.Context, html string, opts shared.PDFOptions) ([]byte, error) {
	allocatorOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, convertTimeout)
	defer cancelTimeout()

	var pdf []byte
	err := chromedp.Run(timeoutCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(opts.Landscape).
				WithPaperWidth(a4WidthInch).
				WithPaperHeight(a4HeightInch).
				WithMarginTop(opts.MarginTopMM / mmPerInch).
				WithMarginBottom(opts.MarginBottomMM / mmPerInch).
				WithMarginLeft(opts.MarginLeftMM / mmPerInch).
				WithMarginRight(opts.MarginRightMM / mmPerInch)
			if opts.FooterHTML != "" {
				params = params.
					WithDisplayHeaderFooter(true).
					WithHeaderTemplate("<span></span>").
					WithFooterTemplate(opts.FooterHTML)
			}
			buf, _, err := params.Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not convert report to pdf")
	}
	return pdf, nil
}
