package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMulThresholdAlgo(t *testing.T) {
	cases := []struct {
		x, y int
		want MulAlgo
	}{
		{10, 10, MulSchoolbook},
		{79, 1000, MulSchoolbook},
		{80, 80, MulKaratsuba},
		{239, 239, MulKaratsuba},
		{240, 240, MulToomCook},
		{80, 300, MulToomCook},
	}
	for _, c := range cases {
		got := MulThresholdAlgo(c.x, c.y)
		require.Equalf(t, c.want, got, "MulThresholdAlgo(%d,%d)", c.x, c.y)
	}
}

func TestDivThresholdAlgo(t *testing.T) {
	require.Equal(t, DivKnuth, DivThresholdAlgo(100, 79))
	require.Equal(t, DivKnuth, DivThresholdAlgo(100, 90))
	require.Equal(t, DivBurnikelZiegler, DivThresholdAlgo(200, 100))
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	promReg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(promReg))

	reg.ObserveMul(10, 500)
	reg.ObserveDiv(200, 100)
	stop := reg.Timer("modpow")
	stop()

	metricFamilies, err := promReg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, metricFamilies)
}

func TestRegistryDoubleRegisterFails(t *testing.T) {
	reg := NewRegistry()
	promReg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(promReg))
	require.Error(t, reg.Register(promReg))
}
