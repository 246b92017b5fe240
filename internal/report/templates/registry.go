// Package templates holds the layout templates the document backend
// compiles, one per report domain, all conforming to the same slot
// contract: institutional header, report info, optional summary, section
// loop, footer.
package templates

import (
	"fmt"
	"sort"

	cn "github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

// Registry maps report domains to layout template sources.
type Registry struct {
	templates map[string]string
}

// NewRegistry builds the registry with every known domain registered.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]string, len(domainSpecs))}

	for domain, spec := range domainSpecs {
		r.templates[domain] = buildTemplate(spec)
	}

	return r
}

// Get returns the template source for a domain. An unknown domain resolves
// to the financial template; this fallback is policy, not a defect, so a
// requested domain always renders something.
func (r *Registry) Get(domain string) string {
	return r.templates[cn.NormalizeDomain(domain)]
}

// Has reports whether the domain has its own registered template.
func (r *Registry) Has(domain string) bool {
	_, ok := r.templates[domain]
	return ok
}

// Domains returns all registered domains in sorted order.
func (r *Registry) Domains() []string {
	domains := make([]string, 0, len(r.templates))
	for domain := range r.templates {
		domains = append(domains, domain)
	}

	sort.Strings(domains)

	return domains
}

// PrintHeaderHTML returns the Chrome print header band. Print templates
// use inline styles only; Chrome ignores external CSS here.
func PrintHeaderHTML(tenantName string) string {
	return fmt.Sprintf(`<div style="width: 100%%; font-size: 8px; color: #777; padding: 0 0.4in; display: flex; justify-content: space-between;">
  <span>%s</span><span>%s</span>
</div>`, cn.InstitutionName, tenantName)
}

// PrintFooterHTML returns the Chrome print footer band carrying the
// page-number and total-pages placeholders.
func PrintFooterHTML() string {
	return `<div style="width: 100%; font-size: 8px; color: #777; padding: 0 0.4in; text-align: center;">
  Page <span class="pageNumber"></span> / <span class="totalPages"></span>
</div>`
}
