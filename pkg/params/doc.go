// Package params implements the parameter substitution engine that fills a
// cloned template element with values produced for one Markdown construct.
//
// Template authors route values with marker attributes:
//
//	data-decor-content="text"          element content receives parameter "text"
//	data-decor-attribute-href="url"    attribute href receives parameter "url"
//
// Parameters nobody routed fall back to the root element using their default
// destination. Markers are left in place so rendered output keeps its template
// provenance.
package params
