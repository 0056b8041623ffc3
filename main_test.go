package main

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/shurcooL/triangle/spin"
)

func TestVertexData(t *testing.T) {
	b := vertexData(spin.DefaultTriangle())
	if got, want := len(b), 3*2*4; got != want {
		t.Fatalf("len(vertexData) = %d, want %d", got, want)
	}
	want := []float32{-0.5, -0.5, 0, -0.5, 0.5, 0.25}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
		if got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestNextFrame(t *testing.T) {
	const interval = 10 * time.Millisecond
	last := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		now  time.Duration // Since last.
		want time.Duration // Since last.
	}{
		{0, interval},
		{3 * time.Millisecond, interval},
		{interval - 1, interval},
		{interval, 2 * interval},
		{35 * time.Millisecond, 4 * interval},
		{-time.Second, interval},
	}
	for _, tc := range tests {
		got := nextFrame(last, last.Add(tc.now), interval)
		if want := last.Add(tc.want); !got.Equal(want) {
			t.Errorf("nextFrame at +%v = +%v, want +%v", tc.now, got.Sub(last), tc.want)
		}
	}
}

func TestFrameInterval(t *testing.T) {
	if got, want := frameInterval, 16666666*time.Nanosecond; got != want {
		t.Errorf("frameInterval = %v, want %v", got, want)
	}
}

func TestPacerWait(t *testing.T) {
	const interval = 5 * time.Millisecond
	start := time.Now()
	p := newPacer(interval, start)
	for i := 0; i < 3; i++ {
		p.Wait()
	}
	if elapsed := time.Since(start); elapsed < 3*interval {
		t.Errorf("3 frames took %v, want at least %v", elapsed, 3*interval)
	}
	if d := p.last.Sub(start); d%interval != 0 {
		t.Errorf("pacer drifted off the frame grid by %v", d%interval)
	}
}

func TestCheckFlags(t *testing.T) {
	tests := []struct {
		width, height int
		step          float64
		ok            bool
	}{
		{640, 480, spin.DefaultStep, true},
		{640, 480, -0.01, true},
		{640, 480, 0, true},
		{0, 480, spin.DefaultStep, false},
		{640, -1, spin.DefaultStep, false},
		{640, 480, math.NaN(), false},
		{640, 480, math.Inf(1), false},
		{640, 480, math.Inf(-1), false},
	}
	for _, tc := range tests {
		err := checkFlags(tc.width, tc.height, tc.step)
		if got := err == nil; got != tc.ok {
			t.Errorf("checkFlags(%d, %d, %v) = %v, want ok %v", tc.width, tc.height, tc.step, err, tc.ok)
		}
	}
}
