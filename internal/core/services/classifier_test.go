package services_test

import (
	"testing"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func historyEntry(description, categoryID string, createdAt time.Time) domain.Transaction {
	return domain.Transaction{
		Description: description,
		CategoryID:  categoryID,
		CreatedAt:   createdAt,
	}
}

func TestSuggestCategoryID_HistoryContainsTerm(t *testing.T) {
	history := []domain.Transaction{
		historyEntry("Uber Eats", "alimentacao", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	// "Uber" is a substring of the historical "Uber Eats"; the habit wins
	// over the keyword dictionary, which would map "uber" to transporte.
	assert.Equal(t, "alimentacao", services.SuggestCategoryID("Uber", history))
}

func TestSuggestCategoryID_TermContainsHistory(t *testing.T) {
	history := []domain.Transaction{
		historyEntry("Uber Eats", "alimentacao", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, "alimentacao", services.SuggestCategoryID("Uber Eats Trip", history))
}

func TestSuggestCategoryID_MostRecentHabitWins(t *testing.T) {
	history := []domain.Transaction{
		historyEntry("Padaria do Zé", "mercado", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
		historyEntry("Padaria do Zé", "alimentacao", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)),
		historyEntry("Padaria do Zé", "lazer", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, "alimentacao", services.SuggestCategoryID("padaria do zé", history))
}

func TestSuggestCategoryID_DoesNotMutateHistory(t *testing.T) {
	history := []domain.Transaction{
		historyEntry("Mercado A", "mercado", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		historyEntry("Mercado B", "mercado", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		historyEntry("Mercado C", "mercado", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}
	original := make([]domain.Transaction, len(history))
	copy(original, history)

	services.SuggestCategoryID("mercado", history)

	assert.Equal(t, original, history)
}

func TestSuggestCategoryID_KeywordFallback(t *testing.T) {
	assert.Equal(t, "transporte", services.SuggestCategoryID("UBER TRIP 1234", nil))
	assert.Equal(t, "assinaturas", services.SuggestCategoryID("NETFLIX.COM", nil))
	assert.Equal(t, "mercado", services.SuggestCategoryID("Supermercado Pão de Açúcar", nil))
}

func TestSuggestCategoryID_NoSuggestion(t *testing.T) {
	assert.Empty(t, services.SuggestCategoryID("transferência recebida", nil))
}

func TestSuggestCategoryID_TooShort(t *testing.T) {
	history := []domain.Transaction{
		historyEntry("ab", "mercado", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	assert.Empty(t, services.SuggestCategoryID("ab", history))
	assert.Empty(t, services.SuggestCategoryID("  a  ", history))
}

func TestSuggestCategoryID_SkipsUncategorizedHistory(t *testing.T) {
	history := []domain.Transaction{
		historyEntry("Farmácia São João", "", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		historyEntry("Farmácia São João", "saude", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, "saude", services.SuggestCategoryID("farmácia são joão", history))
}
