package analysis

import "strings"

// rule pairs a keyword set with the category it selects. Keywords mix
// English and French stems because the captured narratives are bilingual.
type rule struct {
	keywords []string
	category string
}

// Rules are evaluated top to bottom and the first match wins, so category
// assignment is deterministic and order-sensitive, not a best-match search.
var opportunityRules = []rule{
	{[]string{"automat", "robot", "script", "api", "integration", "automatique", "robotisation"}, "Process Automation"},
	{[]string{"optim", "efficien", "streamlin", "simplif", "optimisation", "efficacité", "simplification"}, "Process Optimization"},
	{[]string{"cost", "reduc", "sav", "budget", "coût", "réduction", "économie"}, "Cost Reduction"},
	{[]string{"time", "speed", "fast", "quick", "temps", "vitesse", "rapide", "accélération"}, "Time Savings"},
	{[]string{"qualit", "accurac", "error", "mistake", "qualité", "précision", "erreur"}, "Quality Improvement"},
	{[]string{"communic", "collabor", "team", "coordin", "communication", "collaboration", "équipe", "coordination"}, "Communication & Collaboration"},
	{[]string{"tool", "software", "system", "platform", "outil", "logiciel", "système", "plateforme"}, "Tool & System Improvement"},
	{[]string{"train", "skill", "knowledge", "learn", "formation", "compétence", "connaissance", "apprentissage"}, "Training & Knowledge"},
	{[]string{"risk", "safet", "complian", "govern", "risque", "sécurité", "conformité", "gouvernance"}, "Risk & Compliance"},
	{[]string{"template", "modèle", "standard", "standardisation", "standardization"}, "Templates & Standards"},
	{[]string{"product", "produit", "créateur", "creator", "configuration"}, "Product & Configuration"},
}

var issueRules = []rule{
	{[]string{"error", "bug", "fail", "break", "crash", "erreur", "échec", "panne"}, "System Errors"},
	{[]string{"delay", "slow", "wait", "bottleneck", "queue", "retard", "lent", "attendre", "goulot"}, "Delays & Bottlenecks"},
	{[]string{"miss", "forget", "overlook", "lost", "misplace", "oublie", "perdu", "manque", "oublié"}, "Missing Information"},
	{[]string{"confus", "unclear", "vague", "ambiguous", "imprécis"}, "Unclear Processes"},
	{[]string{"duplic", "repeat", "redundant", "waste", "duplication", "répétition", "redondant", "gaspillage"}, "Duplication & Waste"},
	{[]string{"communic", "misunderstand", "conflict", "disagreement", "communication", "malentendu", "conflit"}, "Communication Issues"},
	{[]string{"skill", "train", "knowledge", "expertise", "compétence", "formation", "connaissance"}, "Skill Gaps"},
	{[]string{"tool", "software", "system", "platform", "outil", "logiciel", "système"}, "Tool & System Issues"},
	{[]string{"cost", "expens", "budget", "overrun", "coût", "dépense"}, "Cost Issues"},
	{[]string{"qualit", "defect", "inconsist", "variance", "qualité", "défaut", "incohérence"}, "Quality Issues"},
	{[]string{"manuel", "manual", "automat", "automatique", "automatization"}, "Manual vs Automation Issues"},
	{[]string{"risque", "risk", "danger", "dangerous", "sécurité", "security"}, "Risk & Safety Issues"},
	{[]string{"temps", "time", "perte", "loss", "gaspillage"}, "Time & Efficiency Issues"},
	{[]string{"production", "manufacturing", "fabrication", "planification", "planning"}, "Production & Planning Issues"},
}

// CategorizeOpportunity maps a free-text improvement narrative to one label
// of the opportunity taxonomy, falling back to "Other Improvements".
func CategorizeOpportunity(text string) string {
	return categorize(text, opportunityRules, "Other Improvements")
}

// CategorizeIssue maps a free-text issue narrative to one label of the
// issue taxonomy, falling back to "Other Issues".
func CategorizeIssue(text string) string {
	return categorize(text, issueRules, "Other Issues")
}

func categorize(text string, rules []rule, fallback string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return fallback
}
