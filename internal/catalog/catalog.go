package catalog

import (
	"strings"

	"videvida-booking-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Catalog holds the static doctor and treatment directories. Both are
// fixed at construction and read-only at runtime.
type Catalog struct {
	doctors    []entity.Doctor
	treatments []entity.Treatment
}

// New returns the catalog seeded with the clinic's doctor and treatment
// directory.
func New() *Catalog {
	return &Catalog{
		doctors:    defaultDoctors(),
		treatments: defaultTreatments(),
	}
}

// Doctors returns the full doctor directory.
func (c *Catalog) Doctors() []entity.Doctor {
	return c.doctors
}

// Treatments returns the full treatment directory.
func (c *Catalog) Treatments() []entity.Treatment {
	return c.treatments
}

// DoctorByID returns the doctor with the given id, or nil.
func (c *Catalog) DoctorByID(id string) *entity.Doctor {
	for i := range c.doctors {
		if c.doctors[i].ID == id {
			return &c.doctors[i]
		}
	}
	return nil
}

// TreatmentByID returns the treatment with the given id, or nil.
func (c *Catalog) TreatmentByID(id string) *entity.Treatment {
	for i := range c.treatments {
		if c.treatments[i].ID == id {
			return &c.treatments[i]
		}
	}
	return nil
}

// DoctorsBySpecialty filters doctors by case-insensitive specialty
// substring.
func (c *Catalog) DoctorsBySpecialty(especialidade string) []entity.Doctor {
	needle := strings.ToLower(especialidade)
	var out []entity.Doctor
	for _, d := range c.doctors {
		if strings.Contains(strings.ToLower(d.Especialidade), needle) {
			out = append(out, d)
		}
	}
	return out
}

// DoctorsByTreatment returns the doctors eligible for the given
// treatment. Unknown treatment ids yield an empty result.
func (c *Catalog) DoctorsByTreatment(tratamentoID string) []entity.Doctor {
	t := c.TreatmentByID(tratamentoID)
	if t == nil {
		return nil
	}
	var out []entity.Doctor
	for _, d := range c.doctors {
		for _, id := range t.MedicosDisponiveis {
			if d.ID == id {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// TreatmentsByDoctor returns the treatments the given doctor offers.
func (c *Catalog) TreatmentsByDoctor(medicoID string) []entity.Treatment {
	d := c.DoctorByID(medicoID)
	if d == nil {
		return nil
	}
	var out []entity.Treatment
	for _, t := range c.treatments {
		if d.OffersTreatment(t.ID) {
			out = append(out, t)
		}
	}
	return out
}

// TreatmentsBySpecialty filters treatments by case-insensitive required
// specialty substring.
func (c *Catalog) TreatmentsBySpecialty(especialidade string) []entity.Treatment {
	needle := strings.ToLower(especialidade)
	var out []entity.Treatment
	for _, t := range c.treatments {
		if strings.Contains(strings.ToLower(t.EspecialidadeNecessaria), needle) {
			out = append(out, t)
		}
	}
	return out
}

func defaultDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:                    "1",
			Nome:                  "Dr. João Silva",
			CRM:                   "12345-SP",
			Especialidade:         "Cardiologia",
			Email:                 "joao.silva@videvida.com",
			Telefone:              "(11) 99999-9999",
			TratamentosOferecidos: []string{"consulta-cardiologica", "eletrocardiograma"},
			Avaliacao:             4.8,
		},
		{
			ID:                    "2",
			Nome:                  "Dra. Maria Santos",
			CRM:                   "67890-SP",
			Especialidade:         "Dermatologia",
			Email:                 "maria.santos@videvida.com",
			Telefone:              "(11) 88888-8888",
			TratamentosOferecidos: []string{"consulta-dermatologica", "tratamento-acne"},
			Avaliacao:             4.9,
		},
		{
			ID:                    "3",
			Nome:                  "Dr. Carlos Oliveira",
			CRM:                   "11111-SP",
			Especialidade:         "Ortopedia",
			Email:                 "carlos.oliveira@videvida.com",
			Telefone:              "(11) 77777-7777",
			TratamentosOferecidos: []string{"consulta-ortopedica", "fisioterapia"},
			Avaliacao:             4.7,
		},
	}
}

func defaultTreatments() []entity.Treatment {
	return []entity.Treatment{
		{
			ID:                      "consulta-cardiologica",
			Nome:                    "Consulta Cardiológica",
			Descricao:               "Consulta completa com cardiologista",
			Duracao:                 60,
			Preco:                   decimal.NewFromInt(150),
			EspecialidadeNecessaria: "Cardiologia",
			MedicosDisponiveis:      []string{"1"},
		},
		{
			ID:                      "eletrocardiograma",
			Nome:                    "Eletrocardiograma",
			Descricao:               "Exame de eletrocardiograma com interpretação",
			Duracao:                 30,
			Preco:                   decimal.NewFromInt(80),
			EspecialidadeNecessaria: "Cardiologia",
			MedicosDisponiveis:      []string{"1"},
		},
		{
			ID:                      "consulta-dermatologica",
			Nome:                    "Consulta Dermatológica",
			Descricao:               "Avaliação dermatológica completa",
			Duracao:                 45,
			Preco:                   decimal.NewFromInt(120),
			EspecialidadeNecessaria: "Dermatologia",
			MedicosDisponiveis:      []string{"2"},
		},
		{
			ID:                      "tratamento-acne",
			Nome:                    "Tratamento de Acne",
			Descricao:               "Protocolo completo para tratamento de acne",
			Duracao:                 60,
			Preco:                   decimal.NewFromInt(200),
			EspecialidadeNecessaria: "Dermatologia",
			MedicosDisponiveis:      []string{"2"},
		},
		{
			ID:                      "consulta-ortopedica",
			Nome:                    "Consulta Ortopédica",
			Descricao:               "Avaliação ortopédica e diagnóstico",
			Duracao:                 50,
			Preco:                   decimal.NewFromInt(140),
			EspecialidadeNecessaria: "Ortopedia",
			MedicosDisponiveis:      []string{"3"},
		},
		{
			ID:                      "fisioterapia",
			Nome:                    "Sessão de Fisioterapia",
			Descricao:               "Sessão de fisioterapia especializada",
			Duracao:                 45,
			Preco:                   decimal.NewFromInt(100),
			EspecialidadeNecessaria: "Ortopedia",
			MedicosDisponiveis:      []string{"3"},
		},
	}
}
