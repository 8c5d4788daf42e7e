package dto

import (
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
)

// BackupMarker is the fixed marker string identifying an export document.
const BackupMarker = "financas-app"

// BackupDocument bundles all four persisted lists for export/import round-trips.
type BackupDocument struct {
	Transactions []domain.Transaction          `json:"transactions"`
	Patrimony    []domain.PatrimonyTransaction `json:"patrimony"`
	Categories   []domain.Category             `json:"categories"`
	Batches      []domain.ImportBatch          `json:"batches"`
	ExportedAt   time.Time                     `json:"exportedAt"`
	App          string                        `json:"app"`
}
