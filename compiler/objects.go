package compiler

import (
	"fmt"

	"github.com/lafriks/go-tiled"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/tilemesh/gamemath"
)

// ShapeKind discriminates the supported Tiled object shapes.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeEllipse
	ShapePolyline
	ShapePolygon
	ShapePoint
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeEllipse:
		return "ellipse"
	case ShapePolyline:
		return "polyline"
	case ShapePolygon:
		return "polygon"
	case ShapePoint:
		return "point"
	default:
		return "unknown"
	}
}

// Shape is an object's geometry payload. Width/Height apply to rects and
// ellipses; Points (local to the object position) to polylines and
// polygons.
type Shape struct {
	Kind   ShapeKind
	Width  float64
	Height float64
	Points []math2.Vec2
}

// ObjectGroup is one compiled object layer.
type ObjectGroup struct {
	Name    string
	Opacity float64
	Visible bool
	Objects []Object
}

// Object is a placed shape or tile sprite. An object whose gid resolves
// into a known tileset carries a tileset key and local sprite index; an
// unresolved object is a pure shape, never a sprite.
type Object struct {
	Shape    Shape
	Props    tiled.Properties
	Position math2.Vec2
	Name     string
	Visible  bool
	ID       uint32
	GID      uint32

	tilesetGID  uint32
	spriteIndex uint32
	resolved    bool
}

func newObject(o *tiled.Object, gids GidTable) Object {
	obj := Object{
		Shape:    objectShape(o),
		Props:    o.Properties,
		Position: math2.Vec2{X: o.X, Y: o.Y},
		Name:     o.Name,
		Visible:  o.Visible,
		ID:       o.ID,
		GID:      o.GID,
	}
	if firstGID, ok := gids.Resolve(o.GID); ok {
		obj.tilesetGID = firstGID
		obj.spriteIndex = o.GID - firstGID
		obj.resolved = true
	}
	return obj
}

func objectShape(o *tiled.Object) Shape {
	switch {
	case len(o.Ellipses) > 0:
		return Shape{Kind: ShapeEllipse, Width: o.Width, Height: o.Height}
	case len(o.Polygons) > 0:
		return Shape{Kind: ShapePolygon, Points: shapePoints(o.Polygons[0].Points)}
	case len(o.PolyLines) > 0:
		return Shape{Kind: ShapePolyline, Points: shapePoints(o.PolyLines[0].Points)}
	case o.Width == 0 && o.Height == 0 && o.GID == 0:
		return Shape{Kind: ShapePoint}
	default:
		return Shape{Kind: ShapeRect, Width: o.Width, Height: o.Height}
	}
}

func shapePoints(pts *tiled.Points) []math2.Vec2 {
	if pts == nil {
		return nil
	}
	out := make([]math2.Vec2, len(*pts))
	for i, p := range *pts {
		out[i] = math2.Vec2{X: p.X, Y: p.Y}
	}
	return out
}

// IsShape reports whether the object is a pure shape rather than a tile
// sprite.
func (o *Object) IsShape() bool {
	return !o.resolved
}

// TilesetGID returns the first gid of the tileset the object's gid maps
// into, if any.
func (o *Object) TilesetGID() (uint32, bool) {
	return o.tilesetGID, o.resolved
}

// SpriteIndex returns the tileset-local sprite index (gid - first gid),
// if the object is a tile sprite.
func (o *Object) SpriteIndex() (uint32, bool) {
	return o.spriteIndex, o.resolved
}

// Dimensions returns the object's extent. Polylines, polygons and points
// report a unit extent, matching the debug-box convention.
func (o *Object) Dimensions() math2.Vec2 {
	switch o.Shape.Kind {
	case ShapeRect, ShapeEllipse:
		return math2.Vec2{X: o.Shape.Width, Y: o.Shape.Height}
	default:
		return math2.Vec2{X: 1, Y: 1}
	}
}

// buildObjectGroups converts every object group, resolving gids through
// the table, and collects the set of tileset keys referenced by at least
// one object. The host needs that set to know which tilesets require a
// sprite atlas rather than a single quad material.
func buildObjectGroups(m *tiled.Map, gids GidTable) ([]ObjectGroup, map[uint32]struct{}) {
	groups := make([]ObjectGroup, 0, len(m.ObjectGroups))
	referenced := make(map[uint32]struct{})

	for _, og := range m.ObjectGroups {
		group := ObjectGroup{
			Name:    og.Name,
			Opacity: float64(og.Opacity),
			Visible: og.Visible,
			Objects: make([]Object, 0, len(og.Objects)),
		}
		for _, o := range og.Objects {
			obj := newObject(o, gids)
			if firstGID, ok := obj.TilesetGID(); ok {
				referenced[firstGID] = struct{}{}
			}
			group.Objects = append(group.Objects, obj)
		}
		groups = append(groups, group)
	}
	return groups, referenced
}

// validateObjects enforces the shape/orientation support matrix up
// front so no half-built artifact is ever published: rects and ellipses
// derive a transform only under orthogonal orientation.
func validateObjects(m *tiled.Map, groups []ObjectGroup) error {
	if m.Orientation == gamemath.OrientationOrthogonal {
		return nil
	}
	for gi := range groups {
		for oi := range groups[gi].Objects {
			o := &groups[gi].Objects[oi]
			switch o.Shape.Kind {
			case ShapeRect, ShapeEllipse:
				return fmt.Errorf("%w: %s object %q in group %q under %s orientation",
					ErrUnsupportedShape, o.Shape.Kind, o.Name, groups[gi].Name, m.Orientation)
			}
		}
	}
	return nil
}

// ObjectTransform derives an object's world transform from the map
// origin. Shape objects anchor at their top-left corner, tile sprites at
// their bottom-left corner (pass the sprite's tile scale); both are then
// offset by half their extent. The final Z sits a fixed margin in front
// of the tile layer, perturbed by the object's Y so objects lower on
// screen paint in front within their layer.
func (m *Map) ObjectTransform(o *Object, origin gamemath.Transform, tileScale *gamemath.Vec3) (gamemath.Transform, error) {
	t := origin

	switch o.Shape.Kind {
	case ShapeRect, ShapeEllipse:
		if m.Source.Orientation != gamemath.OrientationOrthogonal {
			return t, fmt.Errorf("%w: %s object under %s orientation",
				ErrUnsupportedShape, o.Shape.Kind, m.Source.Orientation)
		}
		offset := math2.Vec2{X: o.Position.X, Y: -o.Position.Y}
		dims := o.Dimensions()
		if tileScale == nil {
			offset.X += dims.X / 2
			offset.Y += -dims.Y / 2
		} else {
			offset.X += dims.X / 2
			offset.Y += dims.Y / 2
			t.Scale = t.Scale.Mul(*tileScale)
		}
		offset.X *= origin.Scale.X
		offset.Y *= origin.Scale.Y
		t.Translation.X += offset.X
		t.Translation.Y += offset.Y
		t.Translation.Z += m.objectZBase - offset.Y/m.objectZDivisor
	default:
		// Polylines, polygons and points keep the map transform;
		// their geometry is carried in the shape payload.
	}
	return t, nil
}
