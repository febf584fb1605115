// internal/report/mount.go
package report

import "html/template"

// CommentRegion is the region holding a dataset's annotation.
const CommentRegion = "commentSection"

// TableRegion names the region holding the table of variant.
func TableRegion(variant string) string { return variant + "Table" }

// StatsRegion names the region holding the stats panel of variant.
func StatsRegion(variant string) string { return variant + "Stats" }

// Mount is an output target whose whole content is replaced on every render.
type Mount interface {
	Replace(content template.HTML)
}

// Toggle is implemented by mounts that can be shown or hidden.
type Toggle interface {
	SetActive(active bool)
}

// Region is an in-memory Mount.
type Region struct {
	content template.HTML
	active  bool
}

// Replace discards the previous content.
func (r *Region) Replace(content template.HTML) { r.content = content }

// SetActive marks the region visible or hidden.
func (r *Region) SetActive(active bool) { r.active = active }

// Content returns the current content.
func (r *Region) Content() template.HTML { return r.content }

// Active reports whether the region is visible.
func (r *Region) Active() bool { return r.active }

// Page owns a set of named regions.
type Page struct {
	regions map[string]*Region
}

// NewPage returns an empty page.
func NewPage() *Page {
	return &Page{regions: map[string]*Region{}}
}

// Region returns the region named id, creating it on first use.
func (p *Page) Region(id string) *Region {
	r, ok := p.regions[id]
	if !ok {
		r = &Region{}
		p.regions[id] = r
	}
	return r
}

// Content returns the content of region id, empty if it was never written.
func (p *Page) Content(id string) template.HTML {
	if r, ok := p.regions[id]; ok {
		return r.content
	}
	return ""
}
