package logger

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log := New()

	require.NotNil(t, log)
	require.NotNil(t, log.Entry)
	assert.Same(t, logrus.StandardLogger(), log.Entry.Logger)
}

func TestWithField(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	New().WithField("team_id", "abc").Info("Created team 'Platform'")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Created team 'Platform'", entry.Message)
	assert.Equal(t, "abc", entry.Data["team_id"])
}

func TestWithFields(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	New().WithFields(map[string]interface{}{
		"member_id": "m1",
		"team_id":   "t1",
	}).Info("Assigned member to team")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, "m1", entry.Data["member_id"])
	assert.Equal(t, "t1", entry.Data["team_id"])
}

func TestWithError(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	cause := errors.New("connection refused")
	New().WithError(cause).Warn("database ping failed")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, cause, entry.Data[logrus.ErrorKey])
}

func TestChainingPreservesEarlierFields(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	New().
		WithField("project_id", "p1").
		WithField("team_id", "t1").
		Info("Removed team from project")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, "p1", entry.Data["project_id"])
	assert.Equal(t, "t1", entry.Data["team_id"])
}
