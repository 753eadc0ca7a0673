package finvault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionParse(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := NewCondition("sigs", "ed25519", data)

	ext, typ, gotData, err := c.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, data, gotData)
	assert.NoError(t, c.Validate())

	// data may contain any bytes, including separators and newlines
	tricky := NewCondition("sigs", "ed25519", []byte("a/b\nc"))
	_, _, gotData, err = tricky.Parse()
	require.NoError(t, err)
	assert.Equal(t, []byte("a/b\nc"), gotData)

	bad := Condition("noslashes")
	assert.Error(t, bad.Validate())
	_, _, _, err = bad.Parse()
	assert.Error(t, err)
}

func TestConditionAddress(t *testing.T) {
	a := NewCondition("sigs", "ed25519", []byte{1, 2, 3})
	b := NewCondition("sigs", "ed25519", []byte{1, 2, 4})

	assert.NoError(t, a.Address().Validate())
	assert.Len(t, []byte(a.Address()), AddressLength)
	// distinct conditions map to distinct addresses
	assert.False(t, a.Address().Equals(b.Address()))
	// and the mapping is stable
	assert.True(t, a.Address().Equals(a.Address()))
}

func TestAddressValidate(t *testing.T) {
	assert.Error(t, Address(nil).Validate())
	assert.Error(t, Address{1, 2, 3}.Validate())
	assert.NoError(t, Address(make([]byte, AddressLength)).Validate())
}

func TestParseAddress(t *testing.T) {
	addr := NewCondition("test", "mock", []byte{1}).Address()

	cases := map[string]struct {
		enc     string
		want    Address
		wantErr bool
	}{
		"bare hex":     {enc: addr.String(), want: addr},
		"hex prefix":   {enc: "hex:" + addr.String(), want: addr},
		"cond prefix":  {enc: "cond:test/mock/\x01", want: addr},
		"broken hex":   {enc: "zz", wantErr: true},
		"bad length":   {enc: "0102", wantErr: true},
		"bad format":   {enc: "base64:AAAA", wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAddress(tc.enc)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equals(got))
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := NewCondition("test", "mock", []byte{7}).Address()

	raw, err := addr.MarshalJSON()
	require.NoError(t, err)

	var got Address
	require.NoError(t, got.UnmarshalJSON(raw))
	assert.True(t, addr.Equals(got))

	require.NoError(t, got.UnmarshalJSON([]byte(`""`)))
	assert.Nil(t, got)
}

func TestContextHeight(t *testing.T) {
	ctx := context.Background()

	_, ok := GetHeight(ctx)
	assert.False(t, ok)

	ctx = WithHeight(ctx, 144)
	height, ok := GetHeight(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(144), height)
}

func TestContextChainID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetChainID(ctx))

	ctx = WithChainID(ctx, "test-chain-1")
	assert.Equal(t, "test-chain-1", GetChainID(ctx))

	assert.Panics(t, func() {
		WithChainID(ctx, "no")
	})
}
