// File: game/session_manager_test.go
package game

import (
	"testing"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnManager(t *testing.T, maxSessions int) (*bollywood.Engine, *bollywood.PID) {
	t.Helper()
	engine := bollywood.NewEngine()
	t.Cleanup(func() { engine.Shutdown(time.Second) })
	cfg := utils.DefaultConfig()
	cfg.Seed = TestSeed
	pid := engine.Spawn(bollywood.NewProps(NewSessionManagerProducer(engine, SessionManagerArgs{
		Config:      cfg,
		MaxSessions: maxSessions,
		ManualTicks: true,
	})))
	require.NotNil(t, pid)
	return engine, pid
}

func createSession(t *testing.T, engine *bollywood.Engine, manager *bollywood.PID, sink FrameSink) SessionCreated {
	t.Helper()
	reply, err := engine.Ask(manager, CreateSession{Sink: sink}, time.Second)
	require.NoError(t, err)
	created, ok := reply.(SessionCreated)
	require.True(t, ok, "reply was %T", reply)
	return created
}

func listSessions(t *testing.T, engine *bollywood.Engine, manager *bollywood.PID) []SessionSummary {
	t.Helper()
	reply, err := engine.Ask(manager, ListSessions{}, time.Second)
	require.NoError(t, err)
	list, ok := reply.([]SessionSummary)
	require.True(t, ok, "reply was %T", reply)
	return list
}

func TestSessionManager_CreateListEnd(t *testing.T) {
	engine, manager := spawnManager(t, 4)

	first := createSession(t, engine, manager, &MockFrameSink{})
	second := createSession(t, engine, manager, &MockFrameSink{})
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)
	require.NotNil(t, first.PID)

	list := listSessions(t, engine, manager)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(1), list[0].ID)
	assert.Equal(t, first.PID.String(), list[0].PID)
	assert.Equal(t, StateStart, list[0].Snapshot.State)

	engine.Send(manager, EndSession{ID: first.ID}, nil)
	require.Eventually(t, func() bool { return !engine.Alive(first.PID) }, time.Second, 5*time.Millisecond)
	list = listSessions(t, engine, manager)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestSessionManager_MaxSessions(t *testing.T) {
	engine, manager := spawnManager(t, 1)
	createSession(t, engine, manager, nil)

	_, err := engine.Ask(manager, CreateSession{}, time.Second)
	assert.ErrorIs(t, err, ErrTooManySessions)
}

func TestSessionManager_ForgetsFailedSessions(t *testing.T) {
	engine, manager := spawnManager(t, 1)
	sink := &MockFrameSink{}
	created := createSession(t, engine, manager, sink)

	sink.Fail()
	engine.Send(created.PID, Tick{}, nil)
	require.Eventually(t, func() bool {
		reply, err := engine.Ask(manager, ListSessions{}, time.Second)
		list, _ := reply.([]SessionSummary)
		return err == nil && len(list) == 0
	}, time.Second, 10*time.Millisecond)

	// The slot is free again.
	createSession(t, engine, manager, &MockFrameSink{})
}

func TestSessionManager_ListsBlockedSessionsAsBusy(t *testing.T) {
	engine, manager := spawnManager(t, 4)
	sink := NewBlockingFrameSink()
	t.Cleanup(sink.Release)
	stuck := createSession(t, engine, manager, sink)
	healthy := createSession(t, engine, manager, &MockFrameSink{})

	engine.Send(stuck.PID, Tick{}, nil)
	select {
	case <-sink.Entered():
	case <-time.After(time.Second):
		t.Fatal("session never wrote a frame")
	}

	start := time.Now()
	list := listSessions(t, engine, manager)
	assert.Less(t, time.Since(start), 4*snapshotTimeout, "sessions are asked concurrently")
	require.Len(t, list, 2)
	assert.Equal(t, stuck.ID, list[0].ID)
	assert.True(t, list[0].Busy)
	assert.Equal(t, healthy.ID, list[1].ID)
	assert.False(t, list[1].Busy)
	assert.Equal(t, StateStart, list[1].Snapshot.State)

	sink.Release()
	require.Eventually(t, func() bool {
		reply, err := engine.Ask(manager, ListSessions{}, time.Second)
		list, _ := reply.([]SessionSummary)
		return err == nil && len(list) == 2 && !list[0].Busy
	}, time.Second, 10*time.Millisecond)
}

func TestSessionManager_StopsSessionsOnShutdown(t *testing.T) {
	engine, manager := spawnManager(t, 4)
	created := createSession(t, engine, manager, nil)

	engine.Stop(manager)
	require.Eventually(t, func() bool {
		return !engine.Alive(manager) && !engine.Alive(created.PID)
	}, time.Second, 5*time.Millisecond)
}

func TestSessionManager_UnknownMessage(t *testing.T) {
	engine, manager := spawnManager(t, 1)
	_, err := engine.Ask(manager, 42, time.Second)
	assert.Error(t, err)
}
