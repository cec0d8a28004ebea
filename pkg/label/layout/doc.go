// Package layout is the deterministic geometry solver at the core of
// labelpress. It converts a small set of user-facing options (label
// dimensions, logo and return-address visibility, scale factors,
// alignment) into an exact, non-overlapping placement of visual zones
// (logo, return address, destination address, branding footer) on a
// physical label.
//
// # Model
//
// [Calculate] is a pure function: (dimensions, options, line counts) in,
// [Layout] out. It performs no I/O and no rendering, and allocates fresh
// output on every call, so concurrent use needs no coordination.
//
// All geometry is expressed in percentages of the label size plus font
// metrics in reference pixels (see the units package). Renderers convert
// those percentages into screen pixels or print points; because both start
// from the same Layout and the same reference DPI, their relative
// geometry is identical.
//
// # Zone order
//
// Zones stack top to bottom in a fixed, non-reorderable sequence: padding,
// logo, return address, destination (vertically centered in whatever room
// remains), branding pinned to the bottom. The return address can sit in
// the left or right half; that is the only permitted horizontal overlap.
//
// # Overflow
//
// When the reserved content is taller than the label, Calculate shrinks
// the logo by 25% per pass, at most four passes, then reports any
// remaining overflow through [Layout.HasOverflow] and a note in
// [Layout.Description]. Overflow is a diagnostic, never an error: a batch
// export proceeds and the content is allowed to spill visually.
package layout
