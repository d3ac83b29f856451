package entity

import "github.com/shopspring/decimal"

// Treatment represents a bookable medical service with a fixed duration
// and price, tied to a required specialty. Static read-only catalog.
type Treatment struct {
	ID                      string          `json:"id"`
	Nome                    string          `json:"nome"`
	Descricao               string          `json:"descricao"`
	Duracao                 int             `json:"duracao"` // minutes
	Preco                   decimal.Decimal `json:"preco"`
	EspecialidadeNecessaria string          `json:"especialidadeNecessaria"`
	MedicosDisponiveis      []string        `json:"medicosDisponiveis"`
}
