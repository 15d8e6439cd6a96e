package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelqg/painel-vendas/internal/models"
)

// Dataset identifica uma carga: cada upload substitui o conjunto anterior por
// inteiro e ganha um novo ID.
type Dataset struct {
	LoadID    uuid.UUID `json:"loadId"`
	LoadedAt  time.Time `json:"loadedAt"`
	Registros int       `json:"registros"`
}

// MemoryStore guarda os três conjuntos de registros da sessão. Não há banco:
// a vida útil dos dados é a da carga, trocada atomicamente a cada upload.
type MemoryStore struct {
	mu sync.RWMutex

	vendas     []models.SalesRecord
	vendasInfo Dataset

	ads     []models.AdMetricRecord
	adsInfo Dataset

	parceria     []models.PartnershipDayRecord
	parceriaInfo Dataset
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func newDataset(n int) Dataset {
	return Dataset{LoadID: uuid.New(), LoadedAt: time.Now().UTC(), Registros: n}
}

// ReplaceSales troca o conjunto de vendas por inteiro.
func (s *MemoryStore) ReplaceSales(recs []models.SalesRecord) Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendas = recs
	s.vendasInfo = newDataset(len(recs))
	return s.vendasInfo
}

func (s *MemoryStore) Sales() ([]models.SalesRecord, Dataset) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SalesRecord, len(s.vendas))
	copy(out, s.vendas)
	return out, s.vendasInfo
}

// ReplaceAds troca o conjunto de linhas do Meta Ads por inteiro.
func (s *MemoryStore) ReplaceAds(recs []models.AdMetricRecord) Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ads = recs
	s.adsInfo = newDataset(len(recs))
	return s.adsInfo
}

func (s *MemoryStore) Ads() ([]models.AdMetricRecord, Dataset) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AdMetricRecord, len(s.ads))
	copy(out, s.ads)
	return out, s.adsInfo
}

// ReplacePartnership troca os dias de parceria por inteiro.
func (s *MemoryStore) ReplacePartnership(recs []models.PartnershipDayRecord) Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parceria = recs
	s.parceriaInfo = newDataset(len(recs))
	return s.parceriaInfo
}

func (s *MemoryStore) Partnership() ([]models.PartnershipDayRecord, Dataset) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PartnershipDayRecord, len(s.parceria))
	copy(out, s.parceria)
	return out, s.parceriaInfo
}
