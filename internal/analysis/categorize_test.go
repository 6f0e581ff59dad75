package analysis

import "testing"

func TestCategorizeOpportunity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "english automation", text: "We could automate this with a script", want: "Process Automation"},
		{name: "french automation", text: "Robotisation de la saisie des factures", want: "Process Automation"},
		{name: "optimization", text: "Streamline the approval flow", want: "Process Optimization"},
		{name: "cost", text: "Réduction des coûts d'impression", want: "Cost Reduction"},
		{name: "training", text: "Better training material for new hires", want: "Training & Knowledge"},
		{name: "templates", text: "Créer un modèle de soumission", want: "Templates & Standards"},
		{name: "no match", text: "Rien à signaler", want: "Other Improvements"},
		{name: "empty", text: "", want: "Other Improvements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeOpportunity(tt.text); got != tt.want {
				t.Errorf("CategorizeOpportunity(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCategorizeOpportunity_FirstMatchWins(t *testing.T) {
	// Mentions both an API (rule 1) and cost savings (rule 3); the earlier
	// rule must win regardless of how many later keywords also match.
	got := CategorizeOpportunity("An API integration would reduce cost")
	if got != "Process Automation" {
		t.Errorf("first matching rule should win, got %q", got)
	}
}

func TestCategorizeIssue(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "system error", text: "The export crashes every Friday", want: "System Errors"},
		{name: "french delay", text: "Retard fréquent quand le stock est en rupture", want: "Delays & Bottlenecks"},
		{name: "missing info", text: "Shipping labels get lost between teams", want: "Missing Information"},
		// "manque" matches the earlier missing-information rule even though
		// "formation" would match the skill-gap rule further down.
		{name: "order sensitive", text: "Manque de formation sur Prextra", want: "Missing Information"},
		{name: "manual work", text: "Everything is manual double entry", want: "Manual vs Automation Issues"},
		{name: "no match", text: "xyz", want: "Other Issues"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeIssue(tt.text); got != tt.want {
				t.Errorf("CategorizeIssue(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
