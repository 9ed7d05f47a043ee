package maze

import "strings"

// defaultBoard is the built-in level
const defaultBoard = `#####################
#o........#........o#
#.###.###.#.###.###.#
#...................#
#.###.#.#####.#.###.#
#.....#...#...#.....#
#####.###.#.###.#####
#####.#a b c d#.#####
#####.# ## ## #.#####
#####.# #0 1# #.#####
#####.# #2 3# #.#####
#####.# ##### #.#####
#####.#       #.#####
#####.#.#####.#.#####
#.........P.........#
#.###.###.#.###.###.#
#o..#...........#..o#
###.#.#.#####.#.#.###
#.....#...#...#.....#
#.#######.#.#######.#
#...................#
#####################
`

// Default returns the built-in layout
func Default() *Layout {
	l, err := Parse(strings.NewReader(defaultBoard))
	if err != nil {
		panic("maze: built-in board is invalid: " + err.Error())
	}
	return l
}
