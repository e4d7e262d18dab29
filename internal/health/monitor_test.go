package health

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error { return f.err }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMonitor_NilPingerStaysDisconnected(t *testing.T) {
	m := NewMonitor(nil, testLogger())
	m.probe()

	if m.Connected() {
		t.Error("monitor without a database should report disconnected")
	}
}

func TestMonitor_ProbeTransitions(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(p, testLogger())

	m.probe()
	if !m.Connected() {
		t.Fatal("healthy ping should report connected")
	}

	p.err = errors.New("connection refused")
	m.probe()
	if m.Connected() {
		t.Fatal("failed ping should report disconnected")
	}

	p.err = nil
	m.probe()
	if !m.Connected() {
		t.Fatal("recovered ping should report connected again")
	}
}

func TestMonitor_StartStop(t *testing.T) {
	m := NewMonitor(&fakePinger{}, testLogger())

	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !m.Connected() {
		t.Error("Start should run an immediate probe")
	}
	m.Stop()
}
