package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockHeightText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    BlockHeight
		wantErr bool
	}{
		{name: "zero", text: "0", want: 0},
		{name: "plain", text: "42", want: 42},
		{name: "max uint64", text: "18446744073709551615", want: 18446744073709551615},
		{name: "empty", text: "", wantErr: true},
		{name: "negative", text: "-1", wantErr: true},
		{name: "signed", text: "+1", wantErr: true},
		{name: "trailing junk", text: "12x", wantErr: true},
		{name: "overflow", text: "18446744073709551616", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h BlockHeight
			err := h.UnmarshalText([]byte(tt.text))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, h)
			require.Equal(t, tt.text, h.String())
		})
	}
}

func TestEpochText(t *testing.T) {
	var e Epoch
	require.NoError(t, e.UnmarshalText([]byte("7")))
	require.Equal(t, Epoch(7), e)

	text, err := e.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "7", string(text))

	require.Error(t, e.UnmarshalText([]byte("seven")))
}
