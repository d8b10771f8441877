package compiler

import (
	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"
)

// GidTable maps every global tile id to the first gid of its owning
// tileset. The first gid doubles as the tileset's stable identity key
// throughout the compiled artifact and the reconciler registry.
type GidTable map[uint32]uint32

// NewGidTable builds the table from the map's tilesets in declaration
// order. Gid ranges are expected to be disjoint; when they are not, the
// first registration wins and a warning is logged. That is best-effort
// behavior, not a correctness guarantee.
func NewGidTable(tilesets []*tiled.Tileset, log *zap.Logger) GidTable {
	table := make(GidTable)
	for _, ts := range tilesets {
		count := uint32(ts.TileCount)
		if count == 0 {
			count = 1
		}
		overlaps := 0
		for gid := ts.FirstGID; gid < ts.FirstGID+count; gid++ {
			if _, taken := table[gid]; taken {
				overlaps++
				continue
			}
			table[gid] = ts.FirstGID
		}
		if overlaps > 0 {
			log.Warn("tileset gid range overlaps an earlier tileset, earlier mapping kept",
				zap.String("tileset", ts.Name),
				zap.Uint32("firstGID", ts.FirstGID),
				zap.Int("overlappingGids", overlaps))
		}
	}
	return table
}

// Resolve returns the first gid of the tileset owning gid. The second
// return is false when the gid belongs to no known tileset; gid 0 (the
// empty cell) always resolves false.
func (t GidTable) Resolve(gid uint32) (uint32, bool) {
	firstGID, ok := t[gid]
	return firstGID, ok
}
