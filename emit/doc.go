// Package emit writes a solved model's variable assignment to a
// destination path (§4.6), falling back to a fixed backup filename when
// the destination cannot be opened, and renders an SVG floor-plan preview
// of a compressed-model solution (§6.4 supplement).
package emit
