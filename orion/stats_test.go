package orion

import (
	"testing"
	"time"
)

func TestFrameTimesTick(t *testing.T) {
	var ft FrameTimes

	start := time.Unix(0, 0)

	var reports int
	for idx := 0; idx < 120; idx++ {
		if ft.tickAt(start.Add(time.Duration(idx) * 10 * time.Millisecond)) {
			reports++
		}
	}

	if ft.FrameCount != 120 {
		t.Errorf("FrameCount = %d, expected 120", ft.FrameCount)
	}

	if reports != 2 {
		t.Errorf("Tick reported %d times, expected 2", reports)
	}

	if ft.Delta != 10*time.Millisecond {
		t.Errorf("Delta = %v, expected 10ms", ft.Delta)
	}

	if ft.AverageDuration != 10*time.Millisecond {
		t.Errorf("AverageDuration = %v, expected 10ms", ft.AverageDuration)
	}

	if fps := ft.FPS(); fps < 99.9 || fps > 100.1 {
		t.Errorf("FPS() = %v, expected 100", fps)
	}
}

func TestFrameTimesMax(t *testing.T) {
	var ft FrameTimes

	now := time.Unix(0, 0)
	ft.tickAt(now)

	now = now.Add(5 * time.Millisecond)
	ft.tickAt(now)

	now = now.Add(50 * time.Millisecond)
	ft.tickAt(now)

	now = now.Add(5 * time.Millisecond)
	ft.tickAt(now)

	if ft.MaxDuration != 50*time.Millisecond {
		t.Errorf("MaxDuration = %v, expected 50ms", ft.MaxDuration)
	}
}

func TestFrameTimesFPSWithoutFrames(t *testing.T) {
	var ft FrameTimes

	if fps := ft.FPS(); fps != 0 {
		t.Errorf("FPS() without frames = %v, expected 0", fps)
	}
}
