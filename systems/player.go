package systems

import (
	"fmt"

	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/shared/motion"
	"github.com/automoto/pixelfall/systems/factory"
	"github.com/automoto/pixelfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PhysicsParams converts the physics config into integrator parameters.
func PhysicsParams() motion.Params {
	return motion.Params{
		MoveSpeed:          cfg.Physics.MoveSpeed,
		JumpVelocity:       cfg.Physics.JumpVelocity,
		DoubleJumpStrength: cfg.Physics.DoubleJumpStrength,
		TerminalVelocity:   cfg.Physics.TerminalVelocity,
		ConveyorSpeed:      cfg.Physics.ConveyorSpeed,
		DoubleJumpCharges:  cfg.Physics.DoubleJumpCharges,
	}
}

func UpdatePlayer(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	var dying []*donburi.Entry
	transitioned := false
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		// Frozen in place while the death timer runs.
		if e.HasComponent(components.Death) {
			return
		}

		player := components.Player.Get(e)
		input := components.Input.Get(e)
		in := motion.Input{
			Left:  input.Action(cfg.ActionMoveLeft).Pressed,
			Right: input.Action(cfg.ActionMoveRight).Pressed,
			Jump:  input.Action(cfg.ActionJump).Pressed,
		}

		prev := level.World.Active()
		outcome, err := motion.Step(level.World, player.Actor, in, PhysicsParams())
		if err != nil {
			// A broken screen cannot be simulated.
			panic(fmt.Sprintf("player step on screen %d: %v", prev.ID, err))
		}
		player.LastOutcome = outcome
		syncObject(e, player.X, player.Y)

		switch {
		case outcome == motion.Died:
			dying = append(dying, e)
		case outcome == motion.Transitioned:
			transitioned = true
		case input.Action(cfg.ActionRespawn).JustPressed:
			player.Dead = true
			dying = append(dying, e)
		}
	})

	// Entities are added and removed outside the query.
	if transitioned {
		factory.DespawnScreenObjects(ecs)
		factory.SpawnScreenObjects(ecs, level.World.Active())
		markBodiesMoved(ecs)
	}
	for _, e := range dying {
		startDeath(e)
	}
}
