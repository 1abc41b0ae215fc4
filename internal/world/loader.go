package world

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"chunkwalk/internal/platform"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed schema/world.schema.json
var worldSchemaJSON string

// WorldDocument is the authored description of a world: optional generated rooms and
// any number of letter stamps applied on top, in order.
type WorldDocument struct {
	Name     string        `yaml:"name"`
	Generate *GenerateSpec `yaml:"generate"`
	Stamps   []Stamp       `yaml:"stamps"`
}

type GenerateSpec struct {
	ScreenWidth  uint32 `yaml:"screen_width"`
	ScreenHeight uint32 `yaml:"screen_height"`
	ScreensX     uint32 `yaml:"screens_x"`
	ScreensY     uint32 `yaml:"screens_y"`
	OriginX      uint32 `yaml:"origin_x"`
	OriginY      uint32 `yaml:"origin_y"`
}

// Stamp is a block of catalog letters. Rows are written top to bottom, so the last row
// lands on OriginY. A space leaves the tile underneath untouched.
type Stamp struct {
	Name    string   `yaml:"name"`
	OriginX uint32   `yaml:"origin_x"`
	OriginY uint32   `yaml:"origin_y"`
	Rows    []string `yaml:"rows"`
}

type stampCell struct {
	x, y uint32
	code TileCode
}

// Loader turns world documents into Worlds.
type Loader struct {
	fileIO  platform.FileIO
	catalog *TileCatalog
	params  Params
	logger  logrus.FieldLogger
	schema  *jsonschema.Schema
}

// NewLoader creates a loader. The schema is compiled once here.
func NewLoader(fileIO platform.FileIO, catalog *TileCatalog, params Params, logger logrus.FieldLogger) (*Loader, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world params: %w", err)
	}
	schema, err := jsonschema.CompileString("world.schema.json", worldSchemaJSON)
	if err != nil {
		return nil, fmt.Errorf("compile world schema: %w", err)
	}
	if catalog == nil {
		catalog = DefaultTileCatalog()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Loader{
		fileIO:  fileIO,
		catalog: catalog,
		params:  params,
		logger:  logger,
		schema:  schema,
	}, nil
}

// LoadWorld reads, validates and builds the world document at path.
func (l *Loader) LoadWorld(ctx context.Context, path string) (*World, error) {
	start := time.Now()
	data, err := l.fileIO.ReadEntireFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file %s: %w", path, err)
	}
	doc, err := l.ParseWorldDocument(data)
	if err != nil {
		return nil, fmt.Errorf("world file %s: %w", path, err)
	}
	w, err := l.BuildWorld(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("world file %s: %w", path, err)
	}
	stats := w.Stats(ctx)
	l.logger.WithFields(logrus.Fields{
		"path":    path,
		"name":    doc.Name,
		"stamps":  len(doc.Stamps),
		"chunks":  stats.Chunks,
		"blocked": stats.Blocked,
		"elapsed": time.Since(start),
	}).Info("world loaded")
	return w, nil
}

// ParseWorldDocument decodes yaml and checks it against the world schema.
func (l *Loader) ParseWorldDocument(data []byte) (*WorldDocument, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse world document: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	// the validator wants JSON-shaped values
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("world document is not plain data: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(js, &generic); err != nil {
		return nil, fmt.Errorf("world document is not plain data: %w", err)
	}
	if err := l.schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("world document invalid: %w", err)
	}

	var doc WorldDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode world document: %w", err)
	}
	return &doc, nil
}

// BuildWorld generates rooms, decodes every stamp concurrently and applies them in
// document order.
func (l *Loader) BuildWorld(ctx context.Context, doc *WorldDocument) (*World, error) {
	b, err := NewBuilder(l.params)
	if err != nil {
		return nil, err
	}
	if gen := doc.Generate; gen != nil {
		rg := NewRoomGenerator(gen.ScreensX, gen.ScreensY)
		if gen.ScreenWidth != 0 {
			rg.ScreenWidth = gen.ScreenWidth
		}
		if gen.ScreenHeight != 0 {
			rg.ScreenHeight = gen.ScreenHeight
		}
		rg.OriginX, rg.OriginY = gen.OriginX, gen.OriginY
		if err := rg.Generate(b); err != nil {
			return nil, fmt.Errorf("generate rooms: %w", err)
		}
		l.logger.WithFields(logrus.Fields{
			"screens_x": rg.ScreensX,
			"screens_y": rg.ScreensY,
		}).Debug("rooms generated")
	}

	decoded := make([][]stampCell, len(doc.Stamps))
	g, gctx := errgroup.WithContext(ctx)
	for i := range doc.Stamps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cells, err := l.decodeStamp(doc.Stamps[i])
			if err != nil {
				return fmt.Errorf("stamp %d %q: %w", i, doc.Stamps[i].Name, err)
			}
			decoded[i] = cells
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, cells := range decoded {
		for _, c := range cells {
			if err := b.SetTile(c.x, c.y, c.code); err != nil {
				return nil, fmt.Errorf("stamp %d %q: %w", i, doc.Stamps[i].Name, err)
			}
		}
	}
	return b.Build()
}

func (l *Loader) decodeStamp(s Stamp) ([]stampCell, error) {
	var cells []stampCell
	height := uint32(len(s.Rows))
	for i, row := range s.Rows {
		absY := s.OriginY + (height - 1 - uint32(i))
		col := uint32(0)
		for _, r := range row {
			absX := s.OriginX + col
			col++
			if r == ' ' {
				continue
			}
			code, ok := l.catalog.CodeForLetter(r)
			if !ok {
				return nil, fmt.Errorf("row %d column %d: unknown tile letter %q", i+1, col, r)
			}
			cells = append(cells, stampCell{x: absX, y: absY, code: code})
		}
	}
	return cells, nil
}
