package jobs_test

import (
	"errors"
	"testing"

	"bakery/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingJob struct {
	name     string
	startErr error
	events   *[]string
}

func (j recordingJob) Start() error {
	*j.events = append(*j.events, "start "+j.name)
	return j.startErr
}

func (j recordingJob) Stop() {
	*j.events = append(*j.events, "stop "+j.name)
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	var events []string
	m := jobs.NewJobManager(discardLogger(),
		recordingJob{name: "a", events: &events},
		recordingJob{name: "b", events: &events},
	)

	require.NoError(t, m.StartAll())
	m.StopAll()
	// stopping twice does nothing
	m.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
}

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	m := jobs.NewJobManager(discardLogger(),
		recordingJob{name: "a", events: &events},
		recordingJob{name: "b", startErr: boom, events: &events},
		recordingJob{name: "c", events: &events},
	)

	err := m.StartAll()

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start a", "start b", "stop a"}, events)
}
