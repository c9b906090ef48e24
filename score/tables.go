package score

// Tsu bonus tables for the classic 6×12, pop-at-four rule set.
//
//	ChainPowerTsu[i]  – chain power of the (i+1)-th step, i = chain depth
//	ColorBonusTsu[n]  – n distinct colours cleared in one step
//	GroupBonusTsu[s]  – one group of s tiles (11 and above share the last entry)
//
// The slices are shared; use the Clone helpers before modifying them.
var (
	ChainPowerTsu = []uint64{0, 8, 16, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 480, 512}
	ColorBonusTsu = []uint64{0, 0, 3, 6, 12, 24}
	GroupBonusTsu = []uint64{0, 0, 0, 0, 0, 2, 3, 4, 5, 6, 7, 10}
)

// Tables groups the three lookup tables the standard formula needs besides
// the per-tile counts.
type Tables struct {
	ChainPower []uint64 `yaml:"chain_power"`
	ColorBonus []uint64 `yaml:"color_bonus"`
	GroupBonus []uint64 `yaml:"group_bonus"`
}

// TsuTables returns a private copy of the Tsu tables.
func TsuTables() Tables {
	return Tables{
		ChainPower: Clone(ChainPowerTsu),
		ColorBonus: Clone(ColorBonusTsu),
		GroupBonus: Clone(GroupBonusTsu),
	}
}

// Clone copies a table.
func Clone(table []uint64) []uint64 {
	if table == nil {
		return nil
	}
	out := make([]uint64, len(table))
	copy(out, table)

	return out
}
