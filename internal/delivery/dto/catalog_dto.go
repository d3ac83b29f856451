package dto

import "github.com/shopspring/decimal"

type DoctorResponse struct {
	ID                    string   `json:"id"`
	Nome                  string   `json:"nome"`
	CRM                   string   `json:"crm"`
	Especialidade         string   `json:"especialidade"`
	Email                 string   `json:"email"`
	Telefone              string   `json:"telefone"`
	TratamentosOferecidos []string `json:"tratamentosOferecidos"`
	Avaliacao             float64  `json:"avaliacoes,omitempty"`
}

type TreatmentResponse struct {
	ID                      string          `json:"id"`
	Nome                    string          `json:"nome"`
	Descricao               string          `json:"descricao"`
	Duracao                 int             `json:"duracao"`
	Preco                   decimal.Decimal `json:"preco"`
	EspecialidadeNecessaria string          `json:"especialidadeNecessaria"`
	MedicosDisponiveis      []string        `json:"medicosDisponiveis"`
}
