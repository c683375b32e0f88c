package smd

// e24Series базовый ряд E24 (одна декада)
var e24Series = [24]float64{
	1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
	3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
}

// e96Values значения кодов EIA-96: индекс i соответствует коду i+1.
var e96Values = [96]int{
	100, 102, 105, 107, 110, 113, 115, 118, 121, 124, 127, 130,
	133, 137, 140, 143, 147, 150, 154, 158, 162, 165, 169, 174,
	178, 182, 187, 191, 196, 200, 205, 210, 215, 221, 226, 232,
	237, 243, 249, 255, 261, 267, 274, 280, 287, 294, 301, 309,
	316, 324, 332, 340, 348, 357, 365, 374, 383, 392, 402, 412,
	422, 432, 442, 453, 464, 475, 487, 499, 511, 523, 536, 549,
	562, 576, 590, 604, 619, 634, 649, 665, 681, 698, 715, 732,
	750, 768, 787, 806, 825, 845, 866, 887, 909, 931, 953, 976,
}

type e96Multiplier struct {
	letter byte
	value  float64
}

// e96Multipliers буквенные множители в порядке возрастания
var e96Multipliers = [9]e96Multiplier{
	{'Z', 0.001}, {'Y', 0.01}, {'X', 0.1},
	{'A', 1}, {'B', 10}, {'C', 100},
	{'D', 1000}, {'E', 10000}, {'F', 100000},
}

func e96MultiplierFor(letter byte) (float64, bool) {
	for _, m := range e96Multipliers {
		if m.letter == letter {
			return m.value, true
		}
	}
	return 0, false
}
