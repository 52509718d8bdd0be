package tab_test

import (
	"testing"

	"github.com/leighmacdonald/hearth/internal/tab"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaults(t *testing.T) {
	store := tab.NewStore()
	require.Equal(t, tab.Home, store.Active())
	require.Equal(t, uint64(0), store.Revision())

	active, err := store.Handle().Active()
	require.NoError(t, err)
	require.Equal(t, tab.Home, active)
}

func TestStoreSetActive(t *testing.T) {
	store := tab.NewStore()
	var seen []tab.Tab
	unsubscribe := store.Subscribe(func(next tab.Tab) { seen = append(seen, next) })

	require.NoError(t, store.SetActive(tab.Chat))
	require.Equal(t, tab.Chat, store.Active())

	// Same value is accepted and still notifies.
	require.NoError(t, store.SetActive(tab.Chat))
	require.Equal(t, tab.Chat, store.Active())
	require.Equal(t, uint64(2), store.Revision())
	require.Equal(t, []tab.Tab{tab.Chat, tab.Chat}, seen)

	unsubscribe()
	require.NoError(t, store.SetActive(tab.Settings))
	require.Len(t, seen, 2)
}

func TestStoreRejectsInvalid(t *testing.T) {
	store := tab.NewStore()
	require.NoError(t, store.SetActive(tab.Community))

	require.ErrorIs(t, store.SetActive(tab.Tab(42)), tab.ErrInvalidTab)
	require.ErrorIs(t, store.SetActive(tab.Tab(-1)), tab.ErrInvalidTab)
	require.Equal(t, tab.Community, store.Active())
	require.Equal(t, uint64(1), store.Revision())
}

func TestUnboundHandle(t *testing.T) {
	var handle tab.Handle
	require.False(t, handle.Bound())

	_, err := handle.Active()
	require.ErrorIs(t, err, tab.ErrNoStoreBound)
	require.ErrorIs(t, handle.SetActive(tab.Chat), tab.ErrNoStoreBound)
	_, errRev := handle.Revision()
	require.ErrorIs(t, errRev, tab.ErrNoStoreBound)
}

func TestClosedStore(t *testing.T) {
	store := tab.NewStore()
	handle := store.Handle()
	require.True(t, handle.Bound())

	store.Close()
	require.False(t, handle.Bound())
	_, err := handle.Active()
	require.ErrorIs(t, err, tab.ErrNoStoreBound)
	require.ErrorIs(t, store.SetActive(tab.Chat), tab.ErrNoStoreBound)
}

func TestParse(t *testing.T) {
	for _, known := range tab.All() {
		parsed, err := tab.Parse(known.String())
		require.NoError(t, err)
		require.Equal(t, known, parsed)
	}

	parsed, err := tab.Parse(" Settings ")
	require.NoError(t, err)
	require.Equal(t, tab.Settings, parsed)

	_, errBad := tab.Parse("profile")
	require.ErrorIs(t, errBad, tab.ErrInvalidTab)
	require.Equal(t, "tab(9)", tab.Tab(9).String())
}
