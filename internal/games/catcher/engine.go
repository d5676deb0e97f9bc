// Package catcher implements Cat Catcher: the player runs along the floor
// catching falling cats, and catching enough of them wins the round.
//
// The gameplay rules live in Controller, which talks to the simulation only
// through the Engine interface. Game adapts Controller to an arcade.World and
// to the platform-facing registry.Game contract.
package catcher

import "github.com/vovakirdan/cat-catcher/internal/core"

// Handle identifies an entity created through an Engine. Zero is never a
// valid handle.
type Handle int

// Kind is the type of entity to create.
type Kind int

const (
	KindPlayer Kind = iota
	KindCat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCat:
		return "cat"
	default:
		return "unknown"
	}
}

// Edge is a side of the world bounds.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Animation names the player animation to play.
type Animation string

const (
	AnimLeft  Animation = "left"
	AnimRight Animation = "right"
	AnimTurn  Animation = "turn" // Facing the camera, standing still
)

// AnimationFor returns the animation matching a horizontal direction.
func AnimationFor(d core.Direction) Animation {
	switch d {
	case core.DirectionLeft:
		return AnimLeft
	case core.DirectionRight:
		return AnimRight
	default:
		return AnimTurn
	}
}

// Scene names a scene the engine can switch to.
type Scene string

const (
	SceneMenu Scene = "menu"
	SceneMain Scene = "main"
)

// TextSlot identifies an on-screen text the controller writes to.
type TextSlot int

const (
	SlotScore  TextSlot = iota // "Score: N" in the top-left corner
	SlotBanner                 // Centered win banner
)

// Engine is everything the gameplay rules need from the simulation.
// Spawn and destroy requests take effect immediately.
type Engine interface {
	CreateEntity(kind Kind, x, y float64) Handle
	DestroyEntity(h Handle)
	SetVelocity(h Handle, vx, vy float64)
	SetPosition(h Handle, x, y float64)
	PlayAnimation(h Handle, anim Animation)

	// PauseSimulation freezes physics; no overlap or bounds events follow.
	PauseSimulation()
	// TransitionScene leaves the current scene.
	TransitionScene(scene Scene)
	// RestartScene rebuilds the current scene from scratch.
	RestartScene()

	PollDirectionalInput() core.Direction
	Display(slot TextSlot, text string)

	PlayWidth() float64
	PlayHeight() float64
}
