package render

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

var headGlyphs = map[types.Direction][2]rune{
	types.Up:    {'▲', '▲'},
	types.Down:  {'▼', '▼'},
	types.Left:  {'◀', '█'},
	types.Right: {'█', '▶'},
}

// CellGlyphs returns the two terminal columns used to draw segment i
func CellGlyphs(body entity.Body, i int) [2]rune {
	if i == 0 {
		if g, ok := headGlyphs[body[i].Direction]; ok {
			return g
		}
	}

	r := SegmentRadius(body, i, 2)
	switch {
	case r.TL > 0 && r.BL > 0:
		return [2]rune{'▐', '█'}
	case r.TR > 0 && r.BR > 0:
		return [2]rune{'█', '▌'}
	case r.TL > 0 && r.TR > 0:
		return [2]rune{'▄', '▄'}
	case r.BL > 0 && r.BR > 0:
		return [2]rune{'▀', '▀'}
	case r.TL > 0:
		return [2]rune{'╭', '█'}
	case r.TR > 0:
		return [2]rune{'█', '╮'}
	case r.BR > 0:
		return [2]rune{'█', '╯'}
	case r.BL > 0:
		return [2]rune{'╰', '█'}
	}
	return [2]rune{'█', '█'}
}
