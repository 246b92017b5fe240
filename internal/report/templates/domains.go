package templates

import (
	cn "github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

// domainSpec is one domain's variant of the shared slot layout.
type domainSpec struct {
	label  string
	accent string
	note   string
}

var domainSpecs = map[string]domainSpec{
	cn.DomainFinancial: {
		label:  "Rapport financier",
		accent: "#1f4e79",
	},
	cn.DomainStock: {
		label:  "Rapport de stock",
		accent: "#7a2e1f",
		note:   "Les articles dont la quantité est inférieure au seuil d'alerte sont signalés ALERTE.",
	},
	cn.DomainHousing: {
		label:  "Rapport d'hébergement",
		accent: "#1f6e4a",
	},
	cn.DomainTransport: {
		label:  "Rapport de transport",
		accent: "#8a6d1f",
	},
	cn.DomainWorkflow: {
		label:  "Rapport des validations",
		accent: "#4a3b7a",
		note:   "Les pourcentages d'avancement sont calculés sur les étapes terminées.",
	},
	cn.DomainDashboard: {
		label:  "Tableau de bord",
		accent: "#1f5e7a",
	},
	cn.DomainAudit: {
		label:  "Journal d'audit",
		accent: "#5a5a5a",
	},
}

// DomainLabel returns the French heading for a domain, applying the
// financial fallback for unknown domains.
func DomainLabel(domain string) string {
	return domainSpecs[cn.NormalizeDomain(domain)].label
}
