// Package compiler turns a parsed Tiled map into renderable chunk
// meshes and a data-only object graph. Compilation is pure CPU work: it
// reads the shared immutable map description and produces a fresh
// artifact, so repeated compiles of the same asset are independent.
//
// TMX parsing itself is github.com/lafriks/go-tiled's job; the compiler
// consumes its *tiled.Map.
package compiler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lafriks/go-tiled"
	math2 "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"

	"github.com/automoto/tilemesh/gamemath"
)

const (
	// DefaultChunkWidth and DefaultChunkHeight give the chunk extent in
	// tiles when no option overrides it.
	DefaultChunkWidth  = 32
	DefaultChunkHeight = 32

	defaultObjectZBase    = 15.0
	defaultObjectZDivisor = 2000.0
)

var (
	// ErrInfiniteMap rejects streamed/infinite tile grids; only dense
	// finite grids are supported.
	ErrInfiniteMap = errors.New("compiler: infinite maps are not supported")
	// ErrMissingTilesetImage rejects tilesets declared without a source
	// image (image-collection tilesets).
	ErrMissingTilesetImage = errors.New("compiler: tileset has no source image")
	// ErrUnsupportedShape rejects object shapes that cannot derive a
	// transform under the map's orientation.
	ErrUnsupportedShape = errors.New("compiler: unsupported object shape for orientation")
)

// LayerMesh tags an assembled mesh with its layer and tileset identity
// keys.
type LayerMesh struct {
	LayerIndex int
	TilesetGID uint32
	Mesh       *Mesh
}

// Map is the compiled artifact: chunked layers, assembled meshes, the
// object graph and declared texture dependencies. It is owned by the
// compiler and handed by value to the reconciler and the renderer; the
// compiler never mutates it after Compile returns.
type Map struct {
	Source *tiled.Map
	Layers []Layer
	Meshes []LayerMesh
	Groups []ObjectGroup

	TileSize math2.Vec2

	// AssetDependencies lists every tileset image path, resolved
	// relative to the map file. TilesetImages holds the same paths
	// keyed by tileset identity, unresolved (relative to the map
	// folder), for hosts that load through an fs.FS rooted there.
	AssetDependencies []string
	TilesetImages     map[uint32]string

	// ObjectTilesets is the set of tileset keys referenced by at least
	// one object; those need a sprite atlas, not just a quad material.
	ObjectTilesets map[uint32]struct{}

	gids           GidTable
	objectZBase    float64
	objectZDivisor float64
}

// Option configures compilation.
type Option func(*options)

type options struct {
	chunkWidth     int
	chunkHeight    int
	objectZBase    float64
	objectZDivisor float64
	log            *zap.Logger
}

// WithChunkSize overrides the chunk extent in tiles.
func WithChunkSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.chunkWidth = width
		}
		if height > 0 {
			o.chunkHeight = height
		}
	}
}

// WithObjectZBias overrides the Z margin objects sit in front of their
// layer, and the Y divisor that staggers paint order within it.
func WithObjectZBias(base, yDivisor float64) Option {
	return func(o *options) {
		o.objectZBase = base
		if yDivisor != 0 {
			o.objectZDivisor = yDivisor
		}
	}
}

// WithLogger routes advisory diagnostics (such as overlapping gid
// ranges) to the given logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Compile builds the full artifact for one map. It fails, publishing
// nothing, on infinite grids, unsupported orientations, tilesets without
// images, and object shapes unsupported for the orientation.
//
// Tileset-layers are built concurrently: each (layer, tileset) pair
// reads only the shared input and writes only its own output slot.
func Compile(m *tiled.Map, opts ...Option) (*Map, error) {
	o := options{
		chunkWidth:     DefaultChunkWidth,
		chunkHeight:    DefaultChunkHeight,
		objectZBase:    defaultObjectZBase,
		objectZDivisor: defaultObjectZDivisor,
		log:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if m.Infinite {
		return nil, ErrInfiniteMap
	}
	switch m.Orientation {
	case gamemath.OrientationOrthogonal, gamemath.OrientationIsometric:
	default:
		return nil, fmt.Errorf("%w: %q", gamemath.ErrUnsupportedOrientation, m.Orientation)
	}
	for _, ts := range m.Tilesets {
		if ts.Image == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingTilesetImage, ts.Name)
		}
	}

	gids := NewGidTable(m.Tilesets, o.log)

	groups, objectTilesets := buildObjectGroups(m, gids)
	if err := validateObjects(m, groups); err != nil {
		return nil, err
	}

	deps := make([]string, 0, len(m.Tilesets))
	images := make(map[uint32]string, len(m.Tilesets))
	for _, ts := range m.Tilesets {
		deps = append(deps, m.GetFileFullPath(ts.Image.Source))
		images[ts.FirstGID] = ts.Image.Source
	}

	var visible []*tiled.Layer
	for _, layer := range m.Layers {
		if layer.Visible {
			visible = append(visible, layer)
		}
	}

	layers := make([]Layer, len(visible))
	var wg sync.WaitGroup
	for li, layer := range visible {
		layers[li].TilesetLayers = make([]TilesetLayer, len(m.Tilesets))
		for ti, ts := range m.Tilesets {
			wg.Add(1)
			go func(slot *TilesetLayer, layer *tiled.Layer, ts *tiled.Tileset) {
				defer wg.Done()
				*slot = buildTilesetLayer(m, layer, ts, o.chunkWidth, o.chunkHeight)
			}(&layers[li].TilesetLayers[ti], layer, ts)
		}
	}
	wg.Wait()

	var meshes []LayerMesh
	for li := range layers {
		for ti := range layers[li].TilesetLayers {
			tl := &layers[li].TilesetLayers[ti]
			for x := range tl.Chunks {
				for y := range tl.Chunks[x] {
					if mesh := assembleChunk(&tl.Chunks[x][y], tl); mesh != nil {
						meshes = append(meshes, LayerMesh{
							LayerIndex: li,
							TilesetGID: tl.TilesetGID,
							Mesh:       mesh,
						})
					}
				}
			}
		}
	}

	return &Map{
		Source:            m,
		Layers:            layers,
		Meshes:            meshes,
		Groups:            groups,
		TileSize:          math2.Vec2{X: float64(m.TileWidth), Y: float64(m.TileHeight)},
		AssetDependencies: deps,
		TilesetImages:     images,
		ObjectTilesets:    objectTilesets,
		gids:              gids,
		objectZBase:       o.objectZBase,
		objectZDivisor:    o.objectZDivisor,
	}, nil
}

// Gids exposes the gid table built for this map.
func (m *Map) Gids() GidTable {
	return m.gids
}

// Tileset returns the source tileset identified by its first gid.
func (m *Map) Tileset(firstGID uint32) (*tiled.Tileset, bool) {
	for _, ts := range m.Source.Tilesets {
		if ts.FirstGID == firstGID {
			return ts, true
		}
	}
	return nil, false
}

// Center returns origin shifted so the map's midpoint lands on the
// origin's translation.
func (m *Map) Center(origin gamemath.Transform) gamemath.Transform {
	mid := math2.Vec2{X: float64(m.Source.Width) / 2, Y: float64(m.Source.Height) / 2}
	center, err := gamemath.Project(m.Source.Orientation, mid, m.TileSize.X, m.TileSize.Y)
	if err != nil {
		// Orientation was validated at compile time.
		return origin
	}
	t := origin
	t.Translation.X -= center.X * origin.Scale.X
	t.Translation.Y -= center.Y * origin.Scale.Y
	return t
}
