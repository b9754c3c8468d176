package seqcore

import (
	"math"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// SCLogInit initializes a spacecraft's structured logger, writing
// logfmt lines tagged with the spacecraft's name.
func SCLogInit(name string) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "spacecraft", name)
	return klog
}

// Spacecraft is a stateful subject: its OrbitState, Time and FuelMass
// change as event effects run, and a SequenceManager snapshots and
// restores them between solver evaluations (see manager.go). History is
// deliberately excluded from the snapshot — it is an append-only record
// of everything that happened, not state to roll back.
type Spacecraft struct {
	Name     string
	OrbitState
	Time     time.Time
	Origin   CelestialObject
	DryMass  float64
	FuelMass float64

	RecordHistory bool
	History       *History

	logger kitlog.Logger
}

// NewSpacecraft returns a spacecraft at the given orbital state and
// epoch, with history recording enabled.
func NewSpacecraft(name string, state OrbitState, origin CelestialObject, epoch time.Time, dryMass, fuelMass float64) *Spacecraft {
	sc := &Spacecraft{
		Name:          name,
		OrbitState:    state,
		Time:          epoch,
		Origin:        origin,
		DryMass:       dryMass,
		FuelMass:      fuelMass,
		RecordHistory: true,
		History:       NewHistory(),
		logger:        SCLogInit(name),
	}
	sc.recordIfEnabled()
	return sc
}

// Mass returns the spacecraft's current mass in kilograms. Never
// returns a non-positive value: a spacecraft that has burned through
// its fuel still masses at least its dry mass.
func (sc *Spacecraft) Mass() float64 {
	m := sc.DryMass + sc.FuelMass
	if m < sc.DryMass {
		m = sc.DryMass
	}
	return m
}

// LogInfo logs the spacecraft's current orbital state.
func (sc *Spacecraft) LogInfo() {
	sc.logger.Log("level", "info", "subsys", "astro", "time", sc.Time, "repr", sc.Repr, "fuel(kg)", sc.FuelMass)
}

// recordIfEnabled appends the spacecraft's current state to its History
// when RecordHistory is set.
func (sc *Spacecraft) recordIfEnabled() {
	if sc.RecordHistory && sc.History != nil {
		sc.History.Record(HistoryEntry{Time: sc.Time, OrbitState: sc.OrbitState, FuelMass: sc.FuelMass})
	}
}

// spacecraftSnapshot is the portion of Spacecraft a SequenceManager
// rolls back between solver evaluations. History is excluded by
// construction: it has no field here to restore.
type spacecraftSnapshot struct {
	orbit    OrbitState
	time     time.Time
	fuelMass float64
}

// Snapshot implements Stateful.
func (sc *Spacecraft) Snapshot() interface{} {
	return spacecraftSnapshot{orbit: sc.OrbitState, time: sc.Time, fuelMass: sc.FuelMass}
}

// Restore implements Stateful.
func (sc *Spacecraft) Restore(snap interface{}) {
	s := snap.(spacecraftSnapshot)
	sc.OrbitState = s.orbit
	sc.Time = s.time
	sc.FuelMass = s.fuelMass
}

// ApplyBurn consumes propellant per the rocket equation for a Δv of the
// given magnitude (km/s) at the given specific impulse (s), and records
// the resulting state when history recording is enabled.
func (sc *Spacecraft) ApplyBurn(dvNorm, isp float64) {
	const g0 = 9.80665e-3 // km/s^2, matches the km/s Δv convention used throughout this package
	massBefore := sc.Mass()
	massAfter := massBefore * math.Exp(-dvNorm/(isp*g0))
	consumed := massBefore - massAfter
	sc.FuelMass -= consumed
	sc.recordIfEnabled()
}
