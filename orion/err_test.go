package orion

import (
	"errors"
	"testing"
)

func TestHandleNil(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Handle(nil) panicked: %v", r)
		}
	}()

	Handle(nil, "create surface")
}

func TestHandlePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r != `create surface "main": boom` {
			t.Errorf("recovered %v, expected formatted message", r)
		}
	}()

	Handle(errors.New("boom"), "create surface %q", "main")
	t.Error("Handle should not return")
}
