package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Direction float64 // -1 or 1
	Speed     float64
	FallSpeed float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
