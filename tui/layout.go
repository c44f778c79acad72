package tui

// popupMargin is the minimum distance popups keep from the screen edge.
const popupMargin = 2

// Center returns a centered surface of the given size within outer.
func Center(outer Surface, w, h int) Surface {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}

// SplitH splits a surface horizontally by ratios. Ratios are normalized if
// they do not sum to 1; the last slice absorbs rounding remainder.
func SplitH(s Surface, ratios ...float64) []Surface {
	if len(ratios) == 0 {
		return nil
	}
	var sum float64
	for _, r := range ratios {
		sum += r
	}
	if sum <= 0 {
		sum = 1
	}

	out := make([]Surface, len(ratios))
	x := 0
	remaining := s.W
	for i, r := range ratios {
		var w int
		if i == len(ratios)-1 {
			w = remaining
		} else {
			w = int(float64(s.W)*r/sum + 0.5)
			if w > remaining {
				w = remaining
			}
		}
		out[i] = s.Sub(x, 0, w, s.H)
		x += w
		remaining -= w
	}
	return out
}

// SplitV splits a surface vertically by ratios.
func SplitV(s Surface, ratios ...float64) []Surface {
	if len(ratios) == 0 {
		return nil
	}
	var sum float64
	for _, r := range ratios {
		sum += r
	}
	if sum <= 0 {
		sum = 1
	}

	out := make([]Surface, len(ratios))
	y := 0
	remaining := s.H
	for i, r := range ratios {
		var h int
		if i == len(ratios)-1 {
			h = remaining
		} else {
			h = int(float64(s.H) * r / sum)
			if h > remaining {
				h = remaining
			}
		}
		out[i] = s.Sub(0, y, s.W, h)
		y += h
		remaining -= h
	}
	return out
}

// SplitHFixed splits with a fixed left width, rest to the right.
func SplitHFixed(s Surface, leftW int) (left, right Surface) {
	if leftW > s.W {
		leftW = s.W
	}
	if leftW < 0 {
		leftW = 0
	}
	return s.Sub(0, 0, leftW, s.H), s.Sub(leftW, 0, s.W-leftW, s.H)
}

// SplitVFixed splits with a fixed top height, rest to the bottom.
func SplitVFixed(s Surface, topH int) (top, bottom Surface) {
	if topH > s.H {
		topH = s.H
	}
	if topH < 0 {
		topH = 0
	}
	return s.Sub(0, 0, s.W, topH), s.Sub(0, topH, s.W, s.H-topH)
}

// PopupArea returns a centered popup surface of the preferred size,
// constrained to the screen with a margin on each side.
func PopupArea(screen Surface, w, h int) Surface {
	if max := screen.W - popupMargin*2; w > max {
		w = max
	}
	if max := screen.H - popupMargin*2; h > max {
		h = max
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Center(screen, w, h)
}

// AnchoredArea positions a popup near an anchor cell: centered on the
// anchor column, below the anchor row when there is room, above otherwise.
// Useful for dropdowns and context menus.
func AnchoredArea(screen Surface, w, h, anchorX, anchorY int) Surface {
	if max := screen.W - popupMargin*2; w > max {
		w = max
	}
	if max := screen.H - popupMargin*2; h > max {
		h = max
	}

	x := anchorX - w/2
	if x < popupMargin {
		x = popupMargin
	}
	if x+w > screen.W-popupMargin {
		x = screen.W - popupMargin - w
	}

	y := anchorY + 1
	if y+h > screen.H-popupMargin {
		y = anchorY - h - 1
		if y < popupMargin {
			y = popupMargin
		}
	}
	return screen.Sub(x, y, w, h)
}
