package mock_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbardi/namada/core/types/address"
	"github.com/nbardi/namada/core/types/storage"
	"github.com/nbardi/namada/mock"
)

func TestStorageReadWrite(t *testing.T) {
	st := mock.NewStorage()
	key := storage.MustParseKey("a/b")

	v, err := st.Read(key)
	require.NoError(t, err)
	require.Nil(t, v)

	st.Set(key, []byte{1, 2})
	v, err = st.Read(key)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, v)

	// The store keeps its own copy.
	v[0] = 9
	v, err = st.Read(key)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, v)

	st.Delete(key)
	v, err = st.Read(key)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestStorageCommitHistory(t *testing.T) {
	st := mock.NewStorage()
	key := storage.MustParseKey("a/b")
	require.Equal(t, storage.BlockHeight(0), st.Height())

	st.Set(key, []byte("v1"))
	h1 := st.Commit()
	require.Equal(t, storage.BlockHeight(1), h1)

	st.Set(key, []byte("v2"))
	h2 := st.Commit()
	require.Equal(t, storage.BlockHeight(2), h2)
	require.Equal(t, h2, st.Height())

	v, err := st.ReadAtHeight(key, h1)
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)

	v, err = st.ReadAtHeight(key, h2)
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	// Zero height reads the working state, committed or not.
	st.Set(key, []byte("v3"))
	v, err = st.ReadAtHeight(key, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("v3"), v)

	_, err = st.ReadAtHeight(key, 99)
	require.ErrorContains(t, err, "no state committed")
}

func TestStorageHas(t *testing.T) {
	st := mock.NewStorage()
	key := storage.MustParseKey("a/b")

	has, err := st.Has(key)
	require.NoError(t, err)
	require.False(t, has)

	st.Set(key, nil)
	has, err = st.Has(key)
	require.NoError(t, err)
	require.True(t, has)
}

func TestStorageIterPrefix(t *testing.T) {
	st := mock.NewStorage()
	st.Set(storage.MustParseKey("acc/b"), []byte{2})
	st.Set(storage.MustParseKey("acc/a"), []byte{1})
	st.Set(storage.MustParseKey("acc/a/deep"), []byte{3})
	st.Set(storage.MustParseKey("accx/c"), []byte{4})

	values, err := st.IterPrefix(storage.MustParseKey("acc"))
	require.NoError(t, err)
	require.Len(t, values, 3)
	require.Equal(t, "acc/a", values[0].Key.String())
	require.Equal(t, "acc/a/deep", values[1].Key.String())
	require.Equal(t, "acc/b", values[2].Key.String())

	values, err = st.IterPrefix(storage.MustParseKey("ac"))
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestStorageProof(t *testing.T) {
	st := mock.NewStorage()
	key := storage.MustParseKey("a/b")

	ops, err := st.Proof(key, []byte{1}, 0)
	require.NoError(t, err)
	require.Len(t, ops.Ops, 1)
	require.Equal(t, "mock/existence", ops.Ops[0].Type)
	require.Equal(t, []byte(key.String()), ops.Ops[0].Key)
	require.Equal(t, []byte{1}, ops.Ops[0].Data)

	ops, err = st.Proof(key, nil, 0)
	require.NoError(t, err)
	require.Equal(t, "mock/absence", ops.Ops[0].Type)

	_, err = st.Proof(key, []byte{1}, 5)
	require.ErrorContains(t, err, "no state committed")
}

func TestStorageChainMetadata(t *testing.T) {
	st := mock.NewStorage()

	st.SetEpoch(12)
	require.Equal(t, storage.Epoch(12), st.Epoch())

	native := address.NewInternal("nam")
	st.SetNativeToken(native)
	require.Equal(t, native, st.NativeToken())
}
