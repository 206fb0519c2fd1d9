package render

// Viewport is a window onto a map, in cells.
type Viewport struct {
	CamX, CamY   int // top-left map coordinate
	ViewW, ViewH int // viewport size in cells
}

// NewViewport centres a viewW x viewH window on (centerX, centerY), clamped
// to map edges. A window larger than the map shrinks to the map.
func NewViewport(centerX, centerY, viewW, viewH, mapW, mapH int) Viewport {
	viewW = min(viewW, mapW)
	viewH = min(viewH, mapH)

	camX := centerX - viewW/2
	camY := centerY - viewH/2

	// Clamp to map edges
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	if camX+viewW > mapW {
		camX = max(mapW-viewW, 0)
	}
	if camY+viewH > mapH {
		camY = max(mapH-viewH, 0)
	}

	return Viewport{
		CamX:  camX,
		CamY:  camY,
		ViewW: viewW,
		ViewH: viewH,
	}
}

// Full is a viewport covering a whole w x h map.
func Full(w, h int) Viewport {
	return Viewport{ViewW: w, ViewH: h}
}

// Contains reports whether the map cell (x, y) is inside the viewport.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.CamX && x < v.CamX+v.ViewW && y >= v.CamY && y < v.CamY+v.ViewH
}

// WorldToScreen converts map coordinates to screen coordinates (1-based).
// Returns -1,-1 if the position is outside the viewport.
func (v Viewport) WorldToScreen(wx, wy int) (int, int) {
	if !v.Contains(wx, wy) {
		return -1, -1
	}
	return wx - v.CamX + 1, wy - v.CamY + 1
}
