package cli

import (
	"github.com/francoispqt/gojay"
	"github.com/xy-planning-network/unitconv/convert"
)

// conversionJSON encodes a convert.Conversion with the same keys the HTTP API uses.
type conversionJSON convert.Conversion

func (c *conversionJSON) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("initNum", c.InitNum)
	enc.StringKey("initUnit", c.InitUnit.String())
	enc.Float64Key("returnNum", c.ReturnNum)
	enc.StringKey("returnUnit", c.ReturnUnit.String())
	enc.StringKey("string", c.String)
}

func (c *conversionJSON) IsNil() bool { return c == nil }

// failureJSON reports an input that did not convert.
type failureJSON struct {
	input string
	msg   string
}

func (f *failureJSON) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("input", f.input)
	enc.StringKey("error", f.msg)
}

func (f *failureJSON) IsNil() bool { return f == nil }

// unitJSON describes a unit with the same keys the HTTP API uses.
type unitJSON struct {
	unit convert.Unit
}

func (u unitJSON) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("unit", u.unit.String())
	enc.StringKey("name", u.unit.DisplayName())
	enc.StringKey("pair", u.unit.Pair().String())
	enc.Float64Key("rate", u.unit.Rate())
	enc.BoolKey("metric", u.unit.IsMetric())
}

func (unitJSON) IsNil() bool { return false }

// unitsJSON encodes a list of units as a JSON array.
type unitsJSON []convert.Unit

func (us unitsJSON) MarshalJSONArray(enc *gojay.Encoder) {
	for _, u := range us {
		enc.Object(unitJSON{u})
	}
}

func (us unitsJSON) IsNil() bool { return us == nil }
