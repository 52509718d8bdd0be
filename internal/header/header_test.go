package header_test

import (
	"testing"

	"github.com/leighmacdonald/hearth/internal/header"
	"github.com/leighmacdonald/hearth/internal/tab"
	"github.com/stretchr/testify/require"
)

func TestCaption(t *testing.T) {
	cases := []struct {
		tab     tab.Tab
		caption string
		mark    bool
	}{
		{tab.Home, "Good morning!", true},
		{tab.Community, "What's going on", true},
		{tab.Chat, "Notifications", true},
		{tab.Notifications, "Notifications", true},
		{tab.Settings, "Settings", false},
		{tab.Tab(99), "", true},
	}

	for _, testCase := range cases {
		caption := header.Caption(testCase.tab)
		require.Equal(t, testCase.caption, caption, testCase.tab.String())
		require.Equal(t, testCase.mark, header.ShowDecorativeMark(caption), testCase.tab.String())
	}
}

func TestHeaderFollowsStore(t *testing.T) {
	store := tab.NewStore()
	hdr := header.New(store.Handle())

	caption, err := hdr.Caption()
	require.NoError(t, err)
	require.Equal(t, "Good morning!", caption)

	require.NoError(t, store.SetActive(tab.Chat))
	caption, _ = hdr.Caption()
	require.Equal(t, "Notifications", caption)

	require.NoError(t, store.SetActive(tab.Notifications))
	caption, _ = hdr.Caption()
	require.Equal(t, "Notifications", caption)

	require.NoError(t, store.SetActive(tab.Settings))
	mark, errMark := hdr.ShowDecorativeMark()
	require.NoError(t, errMark)
	require.False(t, mark)
}

func TestHeaderMemoizes(t *testing.T) {
	store := tab.NewStore()
	hdr := header.New(store.Handle())

	for range 3 {
		_, err := hdr.Caption()
		require.NoError(t, err)
	}
	require.Equal(t, 1, hdr.Derivations())

	require.NoError(t, store.SetActive(tab.Home))
	_, _ = hdr.Caption()
	require.Equal(t, 1, hdr.Derivations())

	require.NoError(t, store.SetActive(tab.Community))
	_, _ = hdr.Caption()
	require.Equal(t, 2, hdr.Derivations())
}

func TestHeaderUnbound(t *testing.T) {
	hdr := header.New(tab.Handle{})
	caption, err := hdr.Caption()
	require.ErrorIs(t, err, tab.ErrNoStoreBound)
	require.Empty(t, caption)

	_, errMark := hdr.ShowDecorativeMark()
	require.ErrorIs(t, errMark, tab.ErrNoStoreBound)
}
