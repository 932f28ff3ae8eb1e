package certificate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/application/dto"
	"github.com/jhoicas/Garancia-api/internal/domain"
	"github.com/jhoicas/Garancia-api/internal/infrastructure/memory"
)

func TestSettings_ValoresPorDefecto(t *testing.T) {
	uc := certificate.NewSettingsUseCase(memory.NewSettingsStore())

	got, err := uc.Get(context.Background(), testCompanyID)
	require.NoError(t, err)

	assert.Equal(t, []string{"7884"}, got.ExcludeProductIDs)
	assert.Empty(t, got.ExcludeNameSubstrings)
	assert.Equal(t, "1", got.DefaultWarrantyPeriod)
}

func TestSettings_GuardarLimpiaListas(t *testing.T) {
	uc := certificate.NewSettingsUseCase(memory.NewSettingsStore())

	_, err := uc.Save(context.Background(), testCompanyID, dto.UpdateWarrantySettingsRequest{
		ExcludeProductIDs:     []string{" 7884 ", "9001", "", "9001"},
		ExcludeNameSubstrings: []string{"Transport", "  ", "Shërbim"},
		DefaultWarrantyPeriod: "24 muaj",
	})
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, []string{"7884", "9001"}, got.ExcludeProductIDs)
	assert.Equal(t, []string{"Transport", "Shërbim"}, got.ExcludeNameSubstrings)
	assert.Equal(t, "24", got.DefaultWarrantyPeriod)
}

func TestSettings_ListaVaciaVuelveAlProductoPorDefecto(t *testing.T) {
	uc := certificate.NewSettingsUseCase(memory.NewSettingsStore())

	got, err := uc.Save(context.Background(), testCompanyID, dto.UpdateWarrantySettingsRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{"7884"}, got.ExcludeProductIDs)
	assert.Equal(t, "1", got.DefaultWarrantyPeriod)
}

func TestSettings_PeriodoNoNumerico(t *testing.T) {
	uc := certificate.NewSettingsUseCase(memory.NewSettingsStore())

	_, err := uc.Save(context.Background(), testCompanyID, dto.UpdateWarrantySettingsRequest{
		DefaultWarrantyPeriod: "dos años",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettings_SufijoEnMayusculasNoSeElimina(t *testing.T) {
	uc := certificate.NewSettingsUseCase(memory.NewSettingsStore())

	_, err := uc.Save(context.Background(), testCompanyID, dto.UpdateWarrantySettingsRequest{
		DefaultWarrantyPeriod: "12 Muaj",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettings_PorEmpresa(t *testing.T) {
	uc := certificate.NewSettingsUseCase(memory.NewSettingsStore())

	_, err := uc.Save(context.Background(), "company-a", dto.UpdateWarrantySettingsRequest{DefaultWarrantyPeriod: "36"})
	require.NoError(t, err)

	other, err := uc.Get(context.Background(), "company-b")
	require.NoError(t, err)
	assert.Equal(t, "1", other.DefaultWarrantyPeriod)
}

func TestSettings_SinEmpresa(t *testing.T) {
	uc := certificate.NewSettingsUseCase(memory.NewSettingsStore())

	_, err := uc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
