package rollup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariance(t *testing.T) {
	v, pct := Variance(100000, 60000)
	assert.Equal(t, 40000.0, v)
	require.True(t, pct.Valid)
	assert.Equal(t, 40.0, pct.Value)
}

func TestVariance_ZeroBudgetUndefined(t *testing.T) {
	v, pct := Variance(0, 60000)
	assert.Equal(t, -60000.0, v)
	assert.False(t, pct.Valid)
	assert.Equal(t, "—", pct.String())
}

func TestMarginPct_ZeroRevenueUndefined(t *testing.T) {
	// Пустой месяц: маржа не определена, это не 0 и не -100
	m := MarginPct(0, 0)
	assert.False(t, m.Valid)
	assert.NotEqual(t, Pct(0), m)
	assert.NotEqual(t, Pct(-100), m)
}

func TestMarginPct(t *testing.T) {
	m := MarginPct(1000, 800)
	require.True(t, m.Valid)
	assert.InDelta(t, 20.0, m.Value, 1e-9)
	assert.Equal(t, "20.0%", m.String())
}

func TestPercent_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Defined   Percent
		Undefined Percent
	}{Defined: Pct(12.5), Undefined: UndefinedPct})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Defined":12.5,"Undefined":null}`, string(b))
}
