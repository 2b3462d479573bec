package drill

import (
	"math/rand"

	"autodrill/internal/domain/world"
)

// DepositGrid is the map-wide deep resource layer. SetAt with a count of zero
// clears the cell.
type DepositGrid interface {
	KindAt(c world.Cell) (world.ResourceKind, bool)
	CountAt(c world.Cell) int
	SetAt(c world.Cell, kind world.ResourceKind, count int)
}

type BaseResourceProvider interface {
	BaseResource() (world.ResourceKind, bool)
}

type Placer interface {
	PlaceNear(stack world.ItemStack, pos world.Cell) bool
}

type PowerSignal interface {
	IsPowered(d *Drill) bool
}

// SiblingRegistry finds other drills on the map and flips their operation switch.
type SiblingRegistry interface {
	FirstDrillAt(c world.Cell) (*Drill, bool)
	SetActive(d *Drill, on bool)
}

type Notifier interface {
	Notify(n Notification)
}

// Rand is satisfied by *math/rand.Rand.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Env is the map a drill lives on. All drills of a map share one Env.
type Env struct {
	Bounds   world.Bounds
	Grid     DepositGrid
	Base     BaseResourceProvider
	Placer   Placer
	Power    PowerSignal
	Siblings SiblingRegistry
	Notifier Notifier
	Rand     Rand
}

var fallbackRand = rand.New(rand.NewSource(1))

func (e *Env) rng() Rand {
	if e == nil || e.Rand == nil {
		return fallbackRand
	}
	return e.Rand
}

func (e *Env) baseResource() (world.ResourceKind, bool) {
	if e == nil || e.Base == nil {
		return world.ResourceKind{}, false
	}
	return e.Base.BaseResource()
}

func (e *Env) notify(n Notification) {
	if e == nil || e.Notifier == nil {
		return
	}
	e.Notifier.Notify(n)
}

func (e *Env) place(stack world.ItemStack, pos world.Cell) bool {
	if e == nil || e.Placer == nil {
		return false
	}
	return e.Placer.PlaceNear(stack, pos)
}
