package decode

// The four 12-byte sub-blocks of a party record's encrypted region hold the
// growth, attacks, EVs/condition and misc field groups, shuffled into one of
// 24 physical orders selected by PID mod 24. Only the growth and attacks
// groups are decoded here, so only their slot positions are tabled. Kept as
// data rather than branching logic so the tables can be audited against the
// known reference orderings (GAEM, GAME, GEAM, ... MEAG).
var growthSlot = [24]int{
	0, 0, 0, 0, 0, 0,
	1, 1, 2, 3, 2, 3,
	1, 1, 2, 3, 2, 3,
	1, 1, 2, 3, 2, 3,
}

var attacksSlot = [24]int{
	1, 1, 2, 3, 2, 3,
	0, 0, 0, 0, 0, 0,
	2, 3, 1, 1, 3, 2,
	2, 3, 1, 1, 3, 2,
}
