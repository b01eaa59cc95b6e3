package hardware

import "testing"

func TestDetectMemoryKb(t *testing.T) {
	cases := []struct {
		base uint32
		want uint32
	}{
		{0, 131072},
		{640, 131712},
		{2048, 133120},
		{65535, 196607},
	}

	for _, c := range cases {
		mem := FixtureMemory{BaseMemoryAddr: c.base}
		if got := DetectMemoryKb(mem); got != c.want {
			t.Fatalf("DetectMemoryKb(base=%d) = %d, want %d", c.base, got, c.want)
		}
	}
}

func TestUptimeSeconds(t *testing.T) {
	cases := []struct {
		ticks uint32
		want  uint32
	}{
		{0, 0},
		{17, 0}, // truncates, not rounds
		{18, 1},
		{1800, 100},
		{4294967295, 238609294},
	}

	for _, c := range cases {
		mem := FixtureMemory{TickCounterAddr: c.ticks}
		if got := UptimeSeconds(mem); got != c.want {
			t.Fatalf("UptimeSeconds(ticks=%d) = %d, want %d", c.ticks, got, c.want)
		}
	}
}

func TestSplitUptime(t *testing.T) {
	t.Run("components", func(t *testing.T) {
		h, m, s := SplitUptime(100)
		if h != 0 || m != 1 || s != 40 {
			t.Fatalf("SplitUptime(100) = %d,%d,%d, want 0,1,40", h, m, s)
		}
	})

	t.Run("recomposes", func(t *testing.T) {
		for _, u := range []uint32{0, 1, 59, 60, 3599, 3600, 3661, 86400, 4294967295} {
			h, m, s := SplitUptime(u)
			if h*3600+m*60+s != u {
				t.Fatalf("SplitUptime(%d) = %d,%d,%d does not recompose", u, h, m, s)
			}
			if m >= 60 || s >= 60 {
				t.Fatalf("SplitUptime(%d) = %d,%d,%d has out-of-range component", u, h, m, s)
			}
		}
	})
}
