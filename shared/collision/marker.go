package collision

// Marker is the value stored per raster pixel. Each marker other than
// MarkerNone stands for exactly one Flag, so a sampled marker is enough to
// recover its category.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerSolid
	MarkerDeadly
	MarkerTransitionE
	MarkerTransitionN
	MarkerTransitionW
	MarkerTransitionS
	MarkerConveyorE
	MarkerConveyorN
	MarkerConveyorW
	MarkerConveyorS
	MarkerInteractable
	MarkerBoss
	MarkerBossfightTrigger
	MarkerSaveTile
	MarkerLens
	MarkerTrigger
	markerCount
)

// palette maps every marker to the flag it was painted for.
var palette = [markerCount]Flag{
	MarkerSolid:            FlagSolid,
	MarkerDeadly:           FlagDeadly,
	MarkerTransitionE:      FlagTransitionE,
	MarkerTransitionN:      FlagTransitionN,
	MarkerTransitionW:      FlagTransitionW,
	MarkerTransitionS:      FlagTransitionS,
	MarkerConveyorE:        FlagConveyorE,
	MarkerConveyorN:        FlagConveyorN,
	MarkerConveyorW:        FlagConveyorW,
	MarkerConveyorS:        FlagConveyorS,
	MarkerInteractable:     FlagInteractable,
	MarkerBoss:             FlagBoss,
	MarkerBossfightTrigger: FlagBossfightTrigger,
	MarkerSaveTile:         FlagSaveTile,
	MarkerLens:             FlagLens,
	MarkerTrigger:          FlagTrigger,
}

// MarkerFor returns the marker used to paint f. Only single flags that are
// part of the palette have one.
func MarkerFor(f Flag) (Marker, bool) {
	if f == FlagNone {
		return MarkerNone, false
	}
	for m := MarkerSolid; m < markerCount; m++ {
		if palette[m] == f {
			return m, true
		}
	}
	return MarkerNone, false
}

// Table is a set of accepted marker to flag mappings. Markers missing from a
// table read as FlagNone.
type Table struct {
	flags [markerCount]Flag
	all   Flag
}

// NewTable accepts the palette entries for the given flags.
func NewTable(accept ...Flag) *Table {
	t := &Table{}
	for _, f := range accept {
		m, ok := MarkerFor(f)
		if !ok {
			continue
		}
		t.flags[m] = f
		t.all |= f
	}
	return t
}

// Flag resolves a sampled marker.
func (t *Table) Flag(m Marker) Flag {
	if m >= markerCount {
		return FlagNone
	}
	return t.flags[m]
}

// Flags is every flag the table can produce.
func (t *Table) Flags() Flag {
	return t.all
}

// DefaultTable holds the physical categories every movement query uses.
var DefaultTable = NewTable(
	FlagSolid,
	FlagDeadly,
	FlagTransitionE, FlagTransitionN, FlagTransitionW, FlagTransitionS,
	FlagConveyorE, FlagConveyorN, FlagConveyorW, FlagConveyorS,
	FlagBoss,
	FlagBossfightTrigger,
	FlagSaveTile,
)

// InteractableTable resolves the non-physical trigger categories. It is only
// consulted when a caller passes it explicitly.
var InteractableTable = NewTable(
	FlagInteractable,
	FlagLens,
	FlagTrigger,
)
