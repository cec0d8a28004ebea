// Package document renders label batches into a print-ready PDF.
//
// The document renderer is the second consumer of layout.Layout: where the
// preview package converts zone percentages into screen pixels, this one
// converts them into print points (pt = px x 72/96) and draws with gopdf.
// Both start from the same layout and the same reference DPI, so a zone at
// 20% from the top lands at the identical relative position on screen and
// on paper.
//
// Pagination follows the sheet template: recipients fill a cols x rows
// grid left to right, top to bottom, one page after another. The layout is
// computed once per (template, options) combination and every cell
// re-derives its rectangles from it; cells never get individual layouts.
//
// Failure isolation: a logo that cannot be embedded is logged and skipped
// for that label, never fatal. An empty recipient batch produces a valid
// single-blank-page document.
package document
