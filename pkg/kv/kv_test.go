package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTest(t)
	require.NoError(t, s.Set("k", []byte(`{"a":1}`)))

	val, found, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte(`{"a":1}`), val)
}

func TestGetAbsentKey(t *testing.T) {
	s := openTest(t)
	val, found, err := s.Get("missing")
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, val)
}

func TestSetOverwrites(t *testing.T) {
	s := openTest(t)
	require.NoError(t, s.Set("k", []byte("v1")))
	require.NoError(t, s.Set("k", []byte("v2")))

	val, found, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("v2"), val)
}

func TestDelete(t *testing.T) {
	s := openTest(t)
	require.NoError(t, s.Set("k", []byte("v")))
	require.NoError(t, s.Delete("k"))

	_, found, err := s.Get("k")
	require.NoError(t, err)
	require.False(t, found)

	// deleting an absent key is fine
	require.NoError(t, s.Delete("k"))
}

func TestEmptyKeyRejected(t *testing.T) {
	s := openTest(t)
	require.Error(t, s.Set("", []byte("v")))
	_, _, err := s.Get("")
	require.Error(t, err)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(Options{})
	require.Error(t, err)
}
