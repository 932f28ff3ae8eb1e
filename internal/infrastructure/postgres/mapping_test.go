package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Garancia-api/internal/domain/entity"
	"github.com/jhoicas/Garancia-api/internal/domain/warranty"
)

func TestWarrantyFromColumns(t *testing.T) {
	raw := "24 Muaj"
	empty := ""

	assert.Equal(t, warranty.ExplicitNone(), warrantyFromColumns(&raw, true), "disabled prevalece sobre el valor")
	assert.Equal(t, warranty.Unset(), warrantyFromColumns(nil, false))
	assert.Equal(t, warranty.Provided("24 Muaj"), warrantyFromColumns(&raw, false))
	assert.Equal(t, warranty.Provided(""), warrantyFromColumns(&empty, false))
}

func TestSettingsFromValues_ClavesAusentesPorDefecto(t *testing.T) {
	s := settingsFromValues(map[string]string{})

	assert.Equal(t, entity.DefaultWarrantySettings(), s)
}

func TestSettingsFromValues(t *testing.T) {
	s := settingsFromValues(map[string]string{
		entity.SettingExcludeProductIDs:     "7884, 9001,,",
		entity.SettingExcludeNameSubstrings: "Transport,Shërbim",
		entity.SettingDefaultWarrantyPeriod: " 12 ",
	})

	assert.Equal(t, []string{"7884", "9001"}, s.ExcludeProductIDs)
	assert.Equal(t, []string{"Transport", "Shërbim"}, s.ExcludeNameSubstrings)
	assert.Equal(t, "12", s.DefaultWarrantyPeriod)
}

func TestSettingsFromValues_ListaDeIDsVaciaVuelveAlDefecto(t *testing.T) {
	s := settingsFromValues(map[string]string{entity.SettingExcludeProductIDs: " , "})

	assert.Equal(t, []string{entity.DefaultExcludedProductID}, s.ExcludeProductIDs)
}

func TestSettingsToValues_IdaYVuelta(t *testing.T) {
	in := &entity.WarrantySettings{
		ExcludeProductIDs:     []string{"7884", "9001"},
		ExcludeNameSubstrings: []string{"Montim"},
		DefaultWarrantyPeriod: "6",
	}

	assert.Equal(t, in, settingsFromValues(settingsToValues(in)))
}
