package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/domain"
)

// ComplianceSettings mapa abierto de requisito -> valor. Los valores solo pueden ser
// bool, número (decimal.Decimal, conserva la representación exacta) o texto.
type ComplianceSettings map[string]any

// UnmarshalJSON decodifica un objeto JSON validando el tipo de cada valor.
// null equivale a un mapa vacío.
func (s *ComplianceSettings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ComplianceSettings{}
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Wrap(domain.ErrValidation, "compliance_settings must be an object", err)
	}
	out := make(ComplianceSettings, len(raw))
	for key, msg := range raw {
		v, err := decodeComplianceValue(msg)
		if err != nil {
			return domain.Wrap(domain.ErrValidation,
				fmt.Sprintf("compliance_settings.%s must be a boolean, number or string", key), err)
		}
		out[key] = v
	}
	*s = out
	return nil
}

func decodeComplianceValue(msg json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case bool, string:
		return t, nil
	case json.Number:
		return decimal.NewFromString(t.String())
	default:
		return nil, fmt.Errorf("tipo no soportado %T", v)
	}
}

// MarshalJSON emite los números sin comillas y con claves ordenadas.
func (s ComplianceSettings) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := encodeComplianceValue(s[k])
		if err != nil {
			return nil, domain.Wrap(domain.ErrValidation,
				fmt.Sprintf("compliance_settings.%s must be a boolean, number or string", k), err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeComplianceValue(v any) ([]byte, error) {
	switch t := v.(type) {
	case bool, string:
		return json.Marshal(t)
	case decimal.Decimal:
		return []byte(t.String()), nil
	case int:
		return []byte(decimal.NewFromInt(int64(t)).String()), nil
	case int64:
		return []byte(decimal.NewFromInt(t).String()), nil
	case float64:
		return []byte(decimal.NewFromFloat(t).String()), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return nil, err
		}
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("tipo no soportado %T", v)
	}
}

// Validate comprueba que todos los valores tengan un tipo admitido.
func (s ComplianceSettings) Validate() error {
	_, err := s.MarshalJSON()
	return err
}
