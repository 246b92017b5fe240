package format

// Closed lookup tables for enumerated values. Unknown keys pass through
// unchanged so an unrecognized status still renders, just unlocalized.

var statusLabels = map[string]string{
	"pending":     "En attente",
	"in_progress": "En cours",
	"approved":    "Approuvé",
	"validated":   "Validé",
	"rejected":    "Rejeté",
	"completed":   "Terminé",
	"cancelled":   "Annulé",
	"draft":       "Brouillon",
	"active":      "Actif",
	"inactive":    "Inactif",
	"paid":        "Payé",
	"unpaid":      "Impayé",
	"available":   "Disponible",
	"occupied":    "Occupé",
	"maintenance": "En maintenance",
	"alert":       "ALERTE",
	"normal":      "NORMAL",
}

var priorityLabels = map[string]string{
	"low":    "Basse",
	"medium": "Moyenne",
	"high":   "Haute",
	"urgent": "Urgente",
}

var roleLabels = map[string]string{
	"admin":      "Administrateur",
	"director":   "Directeur",
	"manager":    "Gestionnaire",
	"accountant": "Comptable",
	"agent":      "Agent",
	"driver":     "Chauffeur",
	"student":    "Étudiant",
}

var trendGlyphs = map[string]string{
	"up":     "▲",
	"down":   "▼",
	"stable": "●",
}
