// Package sensor reads device orientation from a Linux IIO accelerometer
package sensor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/invite/core"
	"github.com/lixenwraith/invite/event"
	"github.com/lixenwraith/invite/intro"
	"github.com/lixenwraith/invite/parameter"
)

// ErrNoDevice is returned when no accelerometer exposes raw axis channels
var ErrNoDevice = errors.New("sensor: no iio accelerometer")

// Accel is one accelerometer sample in m/s²
type Accel struct {
	X, Y, Z float64
}

// IIO implements intro.OrientationProbe over sysfs
// Readings are posted to the scheduler goroutine and dispatched there
type IIO struct {
	Root     string
	Interval time.Duration

	post   func(func())
	events *event.Dispatcher
	device string
}

// NewIIO creates a probe rooted at root; an empty root uses the system sysfs path
func NewIIO(root string, post func(func()), events *event.Dispatcher) *IIO {
	if root == "" {
		root = parameter.IIODeviceRoot
	}
	return &IIO{
		Root:     root,
		Interval: parameter.OrientationPollInterval,
		post:     post,
		events:   events,
	}
}

// findDevice returns the first device directory with an x-axis raw channel
func (s *IIO) findDevice() (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.Root, "iio:device*"))
	if err != nil {
		return "", err
	}
	for _, dir := range matches {
		if _, err := os.Stat(filepath.Join(dir, "in_accel_x_raw")); err == nil {
			return dir, nil
		}
	}
	return "", ErrNoDevice
}

// Capability probes the device: readable is granted, present but unreadable is available
func (s *IIO) Capability() intro.Capability {
	dir, err := s.findDevice()
	if err != nil {
		return intro.CapabilityUnavailable
	}
	s.device = dir
	if _, err := ReadAccel(dir); err != nil {
		return intro.CapabilityAvailable
	}
	return intro.CapabilityGranted
}

// RequestPermission re-probes the device; sysfs has no grant flow of its own
func (s *IIO) RequestPermission() bool {
	return s.Capability() == intro.CapabilityGranted
}

// Enable starts a polling goroutine; the returned func stops it and is idempotent
func (s *IIO) Enable() (disable func()) {
	if s.device == "" {
		if dir, err := s.findDevice(); err == nil {
			s.device = dir
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	dir, interval := s.device, s.Interval

	core.Go(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ev := event.Event{Type: event.Orientation}
				if a, err := ReadAccel(dir); err == nil {
					ev.Gamma, ev.Beta = a.Angles()
					ev.HasAngles = true
				}
				s.post(func() {
					if ctx.Err() == nil {
						s.events.Dispatch(ev)
					}
				})
			}
		}
	})
	return cancel
}

// ReadAccel reads and scales the three axis channels of the device in dir
func ReadAccel(dir string) (Accel, error) {
	if dir == "" {
		return Accel{}, ErrNoDevice
	}
	var raw [3]float64
	for i, axis := range [...]string{"x", "y", "z"} {
		v, err := readFloat(filepath.Join(dir, "in_accel_"+axis+"_raw"))
		if err != nil {
			return Accel{}, err
		}
		scale, err := axisScale(dir, axis)
		if err != nil {
			return Accel{}, err
		}
		raw[i] = v * scale
	}
	return Accel{X: raw[0], Y: raw[1], Z: raw[2]}, nil
}

// axisScale prefers the per-axis scale, then the shared one, then 1
func axisScale(dir, axis string) (float64, error) {
	for _, name := range []string{"in_accel_" + axis + "_scale", "in_accel_scale"} {
		v, err := readFloat(filepath.Join(dir, name))
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return 0, err
		}
	}
	return 1, nil
}

func readFloat(path string) (float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil {
		return 0, fmt.Errorf("sensor: %s: %w", filepath.Base(path), err)
	}
	return v, nil
}

// Angles converts gravity into tilt degrees: gamma is left-right in [-90, 90],
// beta is front-back in [-180, 180]; a device lying flat face up reads (0, 0)
func (a Accel) Angles() (gamma, beta float64) {
	const deg = 180 / math.Pi
	beta = math.Atan2(a.Y, a.Z) * deg
	gamma = math.Atan2(-a.X, math.Hypot(a.Y, a.Z)) * deg
	return gamma, beta
}
