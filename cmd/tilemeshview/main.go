// Command tilemeshview compiles a TMX map and renders its chunk meshes
// and objects in an ebiten window. Arrow keys pan, the mouse wheel
// zooms, F1 toggles debug boxes for shape objects.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"

	"github.com/automoto/tilemesh/compiler"
	"github.com/automoto/tilemesh/components"
	"github.com/automoto/tilemesh/config"
	"github.com/automoto/tilemesh/logger"
	"github.com/automoto/tilemesh/reconcile"
	"github.com/automoto/tilemesh/render"
	"github.com/automoto/tilemesh/systems"
	"github.com/automoto/tilemesh/systems/factory"
)

type game struct {
	ecs      *ecs.ECS
	batch    *reconcile.Batch
	textures *render.TextureLoader
	mapEntry *donburi.Entry
	mapName  string
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		tm := components.TileMap.Get(g.mapEntry)
		tm.Debug.Enabled = !tm.Debug.Enabled
	}

	systems.ProcessChangedMaps(g.ecs, g.batch, g.textures, logger.Log)
	g.batch.Reset()
	g.ecs.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.ecs.Draw(screen)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %.0f fps", g.mapName, ebiten.ActualFPS()), 4, 4)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to config.yaml")
		mapPath    = flag.String("map", "", "path to the .tmx map (overrides config)")
		debug      = flag.Bool("debug", false, "show debug boxes for shape objects")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *mapPath != "" {
		cfg.Viewer.Map = *mapPath
	}
	if cfg.Viewer.Map == "" {
		return fmt.Errorf("no map given: pass -map or set viewer.map in the config")
	}
	if *debug {
		cfg.Debug.Enabled = true
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	defer logger.Sync()

	tiledMap, err := tiled.LoadFile(cfg.Viewer.Map)
	if err != nil {
		return fmt.Errorf("load TMX %s: %w", cfg.Viewer.Map, err)
	}

	compiled, err := compiler.Compile(tiledMap,
		compiler.WithChunkSize(cfg.Compiler.ChunkWidth, cfg.Compiler.ChunkHeight),
		compiler.WithObjectZBias(cfg.Objects.ZAboveLayer, cfg.Objects.ZYDivisor),
		compiler.WithLogger(logger.Log),
	)
	if err != nil {
		return fmt.Errorf("compile %s: %w", cfg.Viewer.Map, err)
	}
	logger.Log.Info("map compiled",
		zap.String("map", cfg.Viewer.Map),
		zap.Int("layers", len(compiled.Layers)),
		zap.Int("meshes", len(compiled.Meshes)),
		zap.Int("objectGroups", len(compiled.Groups)),
		zap.Strings("dependencies", compiled.AssetDependencies))

	world := ecs.NewECS(donburi.NewWorld())
	world.AddSystem(systems.UpdateCamera)
	world.AddSystem(systems.UpdateObjects)
	world.AddRenderer(config.LayerMap, systems.DrawChunks)
	world.AddRenderer(config.LayerObjects, systems.DrawObjects)

	factory.CreateCamera(world, math2.Vec2{})
	factory.CreateSpace(world,
		tiledMap.Width*tiledMap.TileWidth, tiledMap.Height*tiledMap.TileHeight, 16, 16)

	id := reconcile.MapID(cfg.Viewer.Map)
	g := &game{
		ecs:      world,
		batch:    reconcile.NewBatch(),
		textures: render.NewTextureLoader(os.DirFS(filepath.Dir(cfg.Viewer.Map))),
		mapName:  filepath.Base(cfg.Viewer.Map),
	}
	g.mapEntry = factory.CreateTileMap(world, id, compiled,
		reconcile.ObjectKeyID, cfg.Debug, cfg.Viewer.Centered)
	g.batch.Created(id)

	ebiten.SetWindowSize(cfg.Viewer.Width, cfg.Viewer.Height)
	ebiten.SetWindowTitle(cfg.Viewer.Title)
	return ebiten.RunGame(g)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
