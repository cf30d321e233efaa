package token

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbardi/namada/core/types/address"
)

func TestAmountText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Amount
		wantErr bool
	}{
		{name: "zero", text: "0", want: 0},
		{name: "typical balance", text: "123000000", want: 123000000},
		{name: "max uint64", text: "18446744073709551615", want: 18446744073709551615},
		{name: "empty", text: "", wantErr: true},
		{name: "negative", text: "-5", wantErr: true},
		{name: "not a number", text: "tokens", wantErr: true},
		{name: "decimal point", text: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := a.UnmarshalText([]byte(tt.text))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, a)
			require.Equal(t, tt.text, a.String())
		})
	}
}

func TestAmountJSON(t *testing.T) {
	out, err := json.Marshal(Amount(123000000))
	require.NoError(t, err)
	require.Equal(t, `"123000000"`, string(out))

	var quoted Amount
	require.NoError(t, json.Unmarshal([]byte(`"77"`), &quoted))
	require.Equal(t, Amount(77), quoted)

	var bare Amount
	require.NoError(t, json.Unmarshal([]byte(`77`), &bare))
	require.Equal(t, Amount(77), bare)

	var bad Amount
	require.Error(t, json.Unmarshal([]byte(`"77x"`), &bad))
}

func TestAmountBytes(t *testing.T) {
	src := Amount(123000000)

	data, err := src.EncodeToBytes()
	require.NoError(t, err)
	require.Len(t, data, AmountByteLength)

	var decoded Amount
	require.NoError(t, decoded.DecodeFromBytes(data))
	require.Equal(t, src, decoded)

	require.Error(t, decoded.DecodeFromBytes(data[:4]))
	require.Error(t, decoded.DecodeFromBytes(nil))
}

func TestBalanceKeys(t *testing.T) {
	var tokenHash, ownerHash [address.HashLength]byte
	tokenHash[0] = 1
	ownerHash[0] = 2

	tok := address.NewEstablished(tokenHash)
	owner := address.NewImplicit(ownerHash)

	key := BalanceKey(tok, owner)
	require.Equal(t, 3, key.Len())
	require.Equal(t, "#"+tok.String()+"/balance/#"+owner.String(), key.String())

	require.True(t, key.HasPrefix(BalancePrefix(tok)))
	require.False(t, key.HasPrefix(BalancePrefix(owner)))
}
