package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeProfile() *Profile {
	return &Profile{
		ID:             "profile_1",
		UserID:         "1",
		Nome:           "João Silva",
		Email:          "paciente@email.com",
		Telefone:       "(11) 99999-9999",
		CPF:            "123.456.789-00",
		DataNascimento: "1990-01-15",
		Endereco: Address{
			CEP:        "01310-100",
			Logradouro: "Avenida Paulista",
			Numero:     "1000",
			Bairro:     "Bela Vista",
			Cidade:     "São Paulo",
			Estado:     "SP",
		},
	}
}

func TestValidateProfileComplete(t *testing.T) {
	v := ValidateProfile(completeProfile())

	assert.True(t, v.IsValid)
	assert.Empty(t, v.MissingFields)
	assert.Equal(t, 100, v.CompletionPercentage)
}

func TestValidateProfileMissingFields(t *testing.T) {
	p := completeProfile()
	p.Telefone = ""
	p.Endereco.Cidade = ""

	v := ValidateProfile(p)

	assert.False(t, v.IsValid)
	assert.Equal(t, []string{"telefone", "endereco.cidade"}, v.MissingFields)
	assert.Equal(t, 82, v.CompletionPercentage) // round(9/11*100)
}

func TestValidateProfileWhitespaceOnlyCountsAsMissing(t *testing.T) {
	p := completeProfile()
	p.CPF = "   "
	p.Endereco.CEP = "\t"

	v := ValidateProfile(p)

	assert.False(t, v.IsValid)
	assert.Contains(t, v.MissingFields, "cpf")
	assert.Contains(t, v.MissingFields, "endereco.cep")
}

func TestValidateProfileEmpty(t *testing.T) {
	v := ValidateProfile(&Profile{})

	assert.False(t, v.IsValid)
	assert.Len(t, v.MissingFields, len(RequiredProfileFields))
	assert.Equal(t, 0, v.CompletionPercentage)
}
