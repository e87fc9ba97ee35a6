package notify_test

import (
	"errors"
	"testing"

	"mcl/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	urls []string
	msgs []string
	err  error
}

func (f *fakeSender) Send(url, message string) error {
	f.urls = append(f.urls, url)
	f.msgs = append(f.msgs, message)
	return f.err
}

func TestCenterPublishOrder(t *testing.T) {
	center := notify.NewCenter()

	var got []string
	center.Subscribe(func(n notify.Notification) {
		got = append(got, n.Title)
	})

	center.Info("first", "a")
	center.Success("second", "b")
	center.Error("third", "c")

	assert.Equal(t, []string{"first", "second", "third"}, got)

	history := center.History()
	require.Len(t, history, 3)
	assert.Equal(t, notify.LevelInfo, history[0].Level)
	assert.Equal(t, notify.LevelSuccess, history[1].Level)
	assert.Equal(t, notify.LevelError, history[2].Level)

	latest, ok := center.Latest()
	require.True(t, ok)
	assert.Equal(t, "third", latest.Title)
}

func TestCenterLatestEmpty(t *testing.T) {
	center := notify.NewCenter()
	_, ok := center.Latest()
	assert.False(t, ok)
}

func TestCenterForwarding(t *testing.T) {
	center := notify.NewCenter()
	sender := &fakeSender{}
	center.SetForwarding(sender, "discord://token@channel")

	center.Error("Launch failed", "backend unreachable")

	require.Len(t, sender.msgs, 1)
	assert.Equal(t, "discord://token@channel", sender.urls[0])
	assert.Contains(t, sender.msgs[0], "[error] Launch failed")
	assert.Contains(t, sender.msgs[0], "backend unreachable")
}

func TestCenterForwardFailureDoesNotBlockPublish(t *testing.T) {
	center := notify.NewCenter()
	center.SetForwarding(&fakeSender{err: errors.New("boom")}, "discord://bad")

	center.Info("still works", "message survives send failures")

	history := center.History()
	require.Len(t, history, 1)
	assert.Equal(t, "still works", history[0].Title)
}

type fakeRecorder struct {
	levels []string
}

func (f *fakeRecorder) RecordNotification(level, title, message string) error {
	f.levels = append(f.levels, level)
	return nil
}

func TestCenterRecordsHistory(t *testing.T) {
	center := notify.NewCenter()
	rec := &fakeRecorder{}
	center.SetRecorder(rec)

	center.Info("a", "x")
	center.Error("b", "y")

	assert.Equal(t, []string{"info", "error"}, rec.levels)
}
