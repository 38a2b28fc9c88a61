package archetypes

import (
	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Input,
		components.Progress,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.Body,
		components.Platform,
		components.Tween,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Body,
		components.Enemy,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Body,
		components.Pickup,
		components.Object,
	)
	Lens = newArchetype(
		tags.Lens,
		components.Body,
		components.Trigger,
		components.Object,
	)
	BossPart = newArchetype(
		tags.BossPart,
		components.Body,
		components.Trigger,
		components.Object,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Body,
		components.Trigger,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
