package entity

// Doctor represents a catalog entry for a medico. The catalog is static
// and read-only at runtime.
type Doctor struct {
	ID                    string   `json:"id"`
	Nome                  string   `json:"nome"`
	CRM                   string   `json:"crm"`
	Especialidade         string   `json:"especialidade"`
	Email                 string   `json:"email"`
	Telefone              string   `json:"telefone"`
	TratamentosOferecidos []string `json:"tratamentosOferecidos"`
	Avaliacao             float64  `json:"avaliacoes,omitempty"`
}

// OffersTreatment reports whether the doctor offers the given treatment.
func (d *Doctor) OffersTreatment(tratamentoID string) bool {
	for _, id := range d.TratamentosOferecidos {
		if id == tratamentoID {
			return true
		}
	}
	return false
}
