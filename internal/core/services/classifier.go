package services

import (
	"strings"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
)

// minTermLength is the shortest description the classifier will attempt to
// classify; anything shorter is too ambiguous.
const minTermLength = 3

// keywordEntry maps a category to the lowercase substrings that suggest it.
// Slice order is the tie-break priority: the first entry with a matching
// keyword wins.
type keywordEntry struct {
	CategoryID string
	Keywords   []string
}

// categoryKeywords is the static fallback dictionary used when no historical
// transaction matches a description.
var categoryKeywords = []keywordEntry{
	{CategoryID: "mercado", Keywords: []string{"mercado", "supermercado", "atacadao", "atacadão", "hortifruti", "padaria", "sacolao", "açougue", "acougue"}},
	{CategoryID: "alimentacao", Keywords: []string{"ifood", "restaurante", "lanchonete", "delivery", "pizzaria", "hamburg", "uber eats", "rappi"}},
	{CategoryID: "transporte", Keywords: []string{"uber", "99app", "99 ", "taxi", "táxi", "combustivel", "combustível", "gasolina", "posto", "metro", "metrô", "onibus", "ônibus", "estacionamento", "pedagio", "pedágio"}},
	{CategoryID: "assinaturas", Keywords: []string{"netflix", "spotify", "prime", "disney", "hbo", "max", "assinatura", "icloud", "google one", "youtube premium"}},
	{CategoryID: "saude", Keywords: []string{"farmacia", "farmácia", "drogaria", "hospital", "clinica", "clínica", "consulta", "plano de saude", "plano de saúde", "dentista", "exame"}},
	{CategoryID: "moradia", Keywords: []string{"aluguel", "condominio", "condomínio", "energia", "luz", "agua", "água", "internet", "iptu", "gas", "gás"}},
	{CategoryID: "lazer", Keywords: []string{"cinema", "bar ", "show", "ingresso", "viagem", "hotel", "airbnb", "jogo", "steam"}},
	{CategoryID: "educacao", Keywords: []string{"curso", "faculdade", "escola", "livraria", "udemy", "alura", "mensalidade"}},
	{CategoryID: "investimentos", Keywords: []string{"rendimento", "dividendo", "juros", "resgate", "tesouro", "cdb"}},
	{CategoryID: "salario", Keywords: []string{"salario", "salário", "pagamento", "folha", "pro-labore", "prolabore", "remuneracao", "remuneração"}},
}

// SuggestCategoryID maps a free-text description to a category identifier.
// It first looks for the most recent historical transaction whose description
// contains the term or is contained in it (most recent habit wins), then
// falls back to the keyword dictionary. An empty result means no suggestion,
// which callers must treat as a valid outcome.
//
// The history slice is never reordered or mutated: the recency scan is a
// single pass tracking the best CreatedAt seen so far.
func SuggestCategoryID(description string, history []domain.Transaction) string {
	term := strings.ToLower(strings.TrimSpace(description))
	if len([]rune(term)) < minTermLength {
		return ""
	}

	var (
		bestCategory  string
		bestCreatedAt time.Time
	)
	for i := range history {
		h := &history[i]
		if h.CategoryID == "" {
			continue
		}
		desc := strings.ToLower(strings.TrimSpace(h.Description))
		if desc == "" {
			continue
		}
		// Bidirectional substring match: captures both "more specific" and
		// "more general" repeat entries.
		if !strings.Contains(desc, term) && !strings.Contains(term, desc) {
			continue
		}
		if h.CreatedAt.After(bestCreatedAt) {
			bestCreatedAt = h.CreatedAt
			bestCategory = h.CategoryID
		}
	}
	if bestCategory != "" {
		return bestCategory
	}

	for _, entry := range categoryKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(term, kw) {
				return entry.CategoryID
			}
		}
	}

	return ""
}
