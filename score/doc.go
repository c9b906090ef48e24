// Package score turns a set of cleared groups into a number.
//
// A Scorer is a pure function of (board, cleared groups): no state, no side
// effects, so scorers compose freely.
//
// Primitives:
//
//	Zero            – always 0
//	Const(v)        – always v
//	PiecesCleared   – sum of group sizes
//	ColorBonusTable – table[number of distinct first-tile colours]
//	GroupBonusTable – Σ table[len(g)] over groups the board considers
//
// Standard formula (five scorers):
//
//	base       = 10·pieces_cleared + point_bonus
//	multiplier = chain_power + color_bonus + group_bonus
//	total      = base · multiplier
//
// Table lookups never fail: an index past the end reads the last entry and
// an empty table reads 0 (see Lookup).
//
// Tsu tables (ChainPowerTsu, ColorBonusTsu, GroupBonusTsu) hold the bonus
// values of the classic four-to-pop falling puzzle rule set.
package score
