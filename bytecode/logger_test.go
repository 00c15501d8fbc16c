package bytecode

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))

	enc := NewEncoderWithDefaults()
	enc.Push(Return())
	if _, err := enc.Finish(); err != nil {
		t.Fatal(err)
	}
	if logs.Len() == 0 {
		t.Error("expected encoder to log through the package logger")
	}
}

func TestSetLogger_Nil(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}

	enc := NewEncoderWithDefaults()
	enc.Push(Return())
	if _, err := enc.Finish(); err != nil {
		t.Fatal(err)
	}
}
