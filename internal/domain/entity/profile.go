package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Address holds the nested endereco block of a patient profile.
type Address struct {
	CEP         string `gorm:"type:varchar(10)" json:"cep"`
	Logradouro  string `gorm:"type:varchar(255)" json:"logradouro"`
	Numero      string `gorm:"type:varchar(20)" json:"numero"`
	Complemento string `gorm:"type:varchar(100)" json:"complemento,omitempty"`
	Bairro      string `gorm:"type:varchar(100)" json:"bairro"`
	Cidade      string `gorm:"type:varchar(100)" json:"cidade"`
	Estado      string `gorm:"type:varchar(2)" json:"estado"`
}

// MedicalData holds optional clinical information. Persisted as a JSONB
// column in database mode.
type MedicalData struct {
	TipoSanguineo     string   `json:"tipoSanguineo,omitempty"`
	Alergias          []string `json:"alergias,omitempty"`
	MedicamentosEmUso []string `json:"medicamentosEmUso,omitempty"`
	CondicoesMedicas  []string `json:"condicoesMedicas,omitempty"`
	ConvenioMedico    string   `json:"convenioMedico,omitempty"`
	NumeroConvenio    string   `json:"numeroConvenio,omitempty"`
}

// Value implements driver.Valuer for JSONB storage.
func (m MedicalData) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *MedicalData) Scan(value interface{}) error {
	if value == nil {
		*m = MedicalData{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, m)
}

// Profile is the per-user extended identity record. IsProfileComplete is
// derived: it must always equal the result of ValidateProfile at the
// moment of the last write.
type Profile struct {
	ID                string       `gorm:"type:varchar(80);primaryKey" json:"id"`
	UserID            string       `gorm:"type:varchar(64);uniqueIndex;not null" json:"userId"`
	Nome              string       `gorm:"type:varchar(255)" json:"nome"`
	Email             string       `gorm:"type:varchar(255)" json:"email"`
	Telefone          string       `gorm:"type:varchar(20)" json:"telefone,omitempty"`
	CPF               string       `gorm:"type:varchar(14)" json:"cpf,omitempty"`
	DataNascimento    string       `gorm:"type:varchar(10)" json:"dataNascimento,omitempty"`
	Endereco          Address      `gorm:"embedded;embeddedPrefix:endereco_" json:"endereco"`
	DadosMedicos      *MedicalData `gorm:"type:jsonb" json:"dadosMedicos,omitempty"`
	IsProfileComplete bool         `gorm:"not null;default:false" json:"isProfileComplete"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}

// RequiredProfileFields is the fixed list of dotted field paths a profile
// must fill before it counts as complete.
var RequiredProfileFields = []string{
	"nome",
	"email",
	"telefone",
	"cpf",
	"dataNascimento",
	"endereco.cep",
	"endereco.logradouro",
	"endereco.numero",
	"endereco.bairro",
	"endereco.cidade",
	"endereco.estado",
}

// ProfileValidation is the result of checking a profile against the
// required-field list.
type ProfileValidation struct {
	IsValid              bool     `json:"is_valid"`
	MissingFields        []string `json:"missing_fields"`
	CompletionPercentage int      `json:"completion_percentage"`
}

// ValidateProfile checks every required field path, treating empty and
// whitespace-only strings as missing. Applied uniformly on load and on
// every update.
func ValidateProfile(p *Profile) ProfileValidation {
	missing := []string{}
	for _, field := range RequiredProfileFields {
		if strings.TrimSpace(p.fieldValue(field)) == "" {
			missing = append(missing, field)
		}
	}

	total := len(RequiredProfileFields)
	percentage := int(math.Round(float64(total-len(missing)) / float64(total) * 100))

	return ProfileValidation{
		IsValid:              len(missing) == 0,
		MissingFields:        missing,
		CompletionPercentage: percentage,
	}
}

func (p *Profile) fieldValue(path string) string {
	switch path {
	case "nome":
		return p.Nome
	case "email":
		return p.Email
	case "telefone":
		return p.Telefone
	case "cpf":
		return p.CPF
	case "dataNascimento":
		return p.DataNascimento
	case "endereco.cep":
		return p.Endereco.CEP
	case "endereco.logradouro":
		return p.Endereco.Logradouro
	case "endereco.numero":
		return p.Endereco.Numero
	case "endereco.bairro":
		return p.Endereco.Bairro
	case "endereco.cidade":
		return p.Endereco.Cidade
	case "endereco.estado":
		return p.Endereco.Estado
	}
	return ""
}
