package entity_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

func TestComplianceSettings_Unmarshal(t *testing.T) {
	var s entity.ComplianceSettings
	require.NoError(t, json.Unmarshal([]byte(`{"gdpr":true,"retention":0.1,"big":12345678901234567890.5,"region":"eu"}`), &s))

	assert.Equal(t, true, s["gdpr"])
	assert.Equal(t, "eu", s["region"])
	ret, ok := s["retention"].(decimal.Decimal)
	require.True(t, ok)
	assert.Equal(t, "0.1", ret.String())
	big, ok := s["big"].(decimal.Decimal)
	require.True(t, ok)
	assert.Equal(t, "12345678901234567890.5", big.String(), "sin pérdida de precisión")
}

func TestComplianceSettings_NullEsMapaVacio(t *testing.T) {
	var s entity.ComplianceSettings
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestComplianceSettings_RechazaTiposNoAdmitidos(t *testing.T) {
	for _, in := range []string{`{"a":null}`, `{"a":[1]}`, `{"a":{"b":1}}`, `[1,2]`, `"texto"`} {
		var s entity.ComplianceSettings
		err := json.Unmarshal([]byte(in), &s)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, domain.ErrValidation), in)
	}
}

func TestComplianceSettings_MarshalOrdenadoYNumerosSinComillas(t *testing.T) {
	s := entity.ComplianceSettings{
		"z":   "last",
		"a":   decimal.RequireFromString("1.50"),
		"m":   false,
		"int": 3,
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"int":3,"m":false,"z":"last"}`, string(data))
	assert.Equal(t, `{"a":1.5,"int":3,"m":false,"z":"last"}`, string(data))
}

func TestComplianceSettings_Validate(t *testing.T) {
	assert.NoError(t, entity.ComplianceSettings{"ok": true}.Validate())
	assert.NoError(t, entity.ComplianceSettings(nil).Validate())

	err := entity.ComplianceSettings{"bad": struct{}{}}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "compliance_settings.bad must be a boolean, number or string", err.Error())
}

func TestClientStatus_Valid(t *testing.T) {
	assert.True(t, entity.ClientStatusActive.Valid())
	assert.True(t, entity.ClientStatusInactive.Valid())
	assert.False(t, entity.ClientStatus("archived").Valid())
	assert.False(t, entity.ClientStatus("").Valid())
}
