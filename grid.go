package photowall

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrNoImages is returned when a grid is built from an empty image list.
	ErrNoImages = errors.New("photowall: image list is empty")
	// ErrInvalidGridSize is returned for a non-positive lattice size.
	ErrInvalidGridSize = errors.New("photowall: grid size must be positive")
	// ErrInvalidSpacing is returned for a non-positive or non-finite spacing.
	ErrInvalidSpacing = errors.New("photowall: spacing must be positive and finite")
)

// ImageRef identifies one entry of the externally supplied image list,
// typically a path relative to the asset directory.
type ImageRef string

// TileID is the index of a tile in generation order. The lattice is walked
// column by column: X in the outer loop, Y in the inner loop.
type TileID int

// NoTile is the TileID of the empty selection.
const NoTile TileID = -1

// Tile is one immutable lattice cell.
type Tile struct {
	ID TileID

	// Col and Row are zero-based lattice indices in [0, size).
	Col, Row int

	// Coord is the lattice coordinate. For a lattice of size N it covers the
	// half-open range [-N/2, N/2) in steps of one; odd sizes produce
	// half-integer coordinates.
	Coord Vec2

	// Base is the rest position, Coord * spacing in the Z=0 plane.
	Base Vec3

	Image      ImageRef
	ImageIndex int
}

// Grid is the tile lattice produced by BuildGrid. It is never mutated after
// construction.
type Grid struct {
	size    int
	spacing float64
	images  []ImageRef
	tiles   []Tile
}

// BuildGrid lays out size*size tiles spaced spacing apart and assigns each
// one an image by tiling images cyclically along the lattice diagonals:
//
//	image = images[(x + y + size) mod len(images)]
//
// The result depends only on its inputs.
func BuildGrid(images []ImageRef, size int, spacing float64) (*Grid, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, size)
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSpacing, spacing)
	}

	g := &Grid{
		size:    size,
		spacing: spacing,
		images:  slices.Clone(images),
		tiles:   make([]Tile, 0, size*size),
	}
	half := float64(size) / 2
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			x := float64(col) - half
			y := float64(row) - half
			// x + y + size == col + row, which keeps the index integral for
			// odd sizes too.
			idx := (col + row) % len(images)
			g.tiles = append(g.tiles, Tile{
				ID:         TileID(len(g.tiles)),
				Col:        col,
				Row:        row,
				Coord:      Vec2{x, y},
				Base:       Vec3{x * spacing, y * spacing, 0},
				Image:      images[idx],
				ImageIndex: idx,
			})
		}
	}
	return g, nil
}

// Tiles returns the tiles in generation order. The returned slice MUST NOT be
// mutated.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

// Len returns the number of tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Size returns the lattice edge length.
func (g *Grid) Size() int {
	return g.size
}

// Spacing returns the distance between neighboring tile centers.
func (g *Grid) Spacing() float64 {
	return g.spacing
}

// Images returns the image list the grid was built from.
func (g *Grid) Images() []ImageRef {
	return g.images
}

// Contains reports whether id names a tile of this grid.
func (g *Grid) Contains(id TileID) bool {
	return id >= 0 && int(id) < len(g.tiles)
}

// Tile returns the tile with the given id.
func (g *Grid) Tile(id TileID) (Tile, bool) {
	if !g.Contains(id) {
		return Tile{}, false
	}
	return g.tiles[id], true
}

// TileAt returns the tile at the given zero-based lattice indices.
func (g *Grid) TileAt(col, row int) (Tile, bool) {
	if col < 0 || col >= g.size || row < 0 || row >= g.size {
		return Tile{}, false
	}
	return g.tiles[col*g.size+row], true
}

// TileAtCoord returns the tile whose lattice coordinate is (x, y).
func (g *Grid) TileAtCoord(x, y float64) (Tile, bool) {
	half := float64(g.size) / 2
	col := x + half
	row := y + half
	if col != math.Trunc(col) || row != math.Trunc(row) {
		return Tile{}, false
	}
	return g.TileAt(int(col), int(row))
}

// GridBuilder memoizes BuildGrid for a fixed size and spacing. The grid is
// rebuilt only when the image list changes.
type GridBuilder struct {
	Size    int
	Spacing float64

	cached *Grid
}

// Build returns the grid for images, reusing the previous result when the
// image list and parameters are unchanged.
func (b *GridBuilder) Build(images []ImageRef) (*Grid, error) {
	if c := b.cached; c != nil && c.size == b.Size && c.spacing == b.Spacing &&
		slices.Equal(c.images, images) {
		return c, nil
	}
	g, err := BuildGrid(images, b.Size, b.Spacing)
	if err != nil {
		return nil, err
	}
	b.cached = g
	return g, nil
}
