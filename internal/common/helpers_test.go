package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wei(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad test integer " + s)
	}
	return n
}

func TestEtherToWei(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.5", "1500000000000000000"},
		{"0.5", "500000000000000000"},
		{"2", "2000000000000000000"},
		{".25", "250000000000000000"},
		{"3.", "3000000000000000000"},
		{" 1.0 ", "1000000000000000000"},
		{"0.000000000000000001", "1"},
		{"123456789.123456789123456789", "123456789123456789123456789"},
	}
	for _, tc := range cases {
		got, err := EtherToWei(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got.String(), tc.in)
	}
}

func TestEtherToWei_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1.2.3", "-1", "+1", "1e18", ".", "0.0000000000000000001", "1,5"} {
		_, err := EtherToWei(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestWeiToEther(t *testing.T) {
	assert.Equal(t, "0.0", WeiToEther(big.NewInt(0)))
	assert.Equal(t, "0.0", WeiToEther(nil))
	assert.Equal(t, "2.0", WeiToEther(wei("2000000000000000000")))
	assert.Equal(t, "1.5", WeiToEther(wei("1500000000000000000")))
	assert.Equal(t, "0.000000000000000001", WeiToEther(big.NewInt(1)))
	assert.Equal(t, "-0.5", WeiToEther(wei("-500000000000000000")))
}

func TestEtherRoundTrip(t *testing.T) {
	for _, in := range []string{"1.5", "0.5", "2.0", "0.000000000000000001", "98765.432109876543210987"} {
		w, err := EtherToWei(in)
		require.NoError(t, err)
		assert.Equal(t, in, WeiToEther(w))
	}
}

func TestCompareEtherAmounts(t *testing.T) {
	cmp, err := CompareEtherAmounts("1.5", "1.50")
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)

	cmp, err = CompareEtherAmounts("0.1", "1")
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = CompareEtherAmounts("10", "9.999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	_, err = CompareEtherAmounts("x", "1")
	assert.Error(t, err)
}
