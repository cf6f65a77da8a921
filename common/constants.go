package common

const (
	// BaseWidth and BaseHeight are the logical screen size. The grid cell side
	// equals BaseWidth.
	BaseWidth  = 1280
	BaseHeight = 720

	// TileSize is the side of a standard block.
	TileSize = 40
)
