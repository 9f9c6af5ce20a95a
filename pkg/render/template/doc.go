// Package template defines the rendering seam the form components use to turn
// fragment data into markup. Concrete engines live in subpackages.
package template
