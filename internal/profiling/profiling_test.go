package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestCountersAndReset(t *testing.T) {
	ResetFrame()
	Count("faces", 3)
	Count("faces", 4)
	Count("chunks.built", 1)
	if got := Counters()["faces"]; got != 7 {
		t.Fatalf("faces = %d, want 7", got)
	}
	if got := CounterLine(); got != "chunks.built=1 faces=7" {
		t.Fatalf("CounterLine = %q", got)
	}
	ResetFrame()
	if len(Counters()) != 0 || len(Snapshot()) != 0 {
		t.Fatal("ResetFrame left data behind")
	}
}

func TestTrackAndTopN(t *testing.T) {
	ResetFrame()
	stop := Track("slow")
	time.Sleep(2 * time.Millisecond)
	stop()
	Track("fast")()

	top := TopN(1)
	if !strings.HasPrefix(top, "slow:") || !strings.HasSuffix(top, "ms") {
		t.Fatalf("TopN(1) = %q", top)
	}
	if parts := strings.Split(TopN(10), ", "); len(parts) != 2 {
		t.Fatalf("TopN(10) = %v", parts)
	}
}

func TestFormatMs(t *testing.T) {
	tests := map[time.Duration]string{
		0:                       "0ms",
		2 * time.Millisecond:    "2ms",
		1500 * time.Microsecond: "1.5ms",
	}
	for d, want := range tests {
		if got := formatMs(d); got != want {
			t.Errorf("formatMs(%v) = %q, want %q", d, got, want)
		}
	}
}
