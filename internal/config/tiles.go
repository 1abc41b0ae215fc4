package config

// TileConfig is the root of the tile catalog file.
type TileConfig struct {
	TileData map[string]TileData `yaml:"tiles"`
}

// TileData describes one tile code. Passability is not configurable: code 0 is the only
// passable tile, every other code blocks movement.
type TileData struct {
	Name   string `yaml:"name"`
	Code   uint32 `yaml:"code"`
	Letter string `yaml:"letter"`
	Color  [3]int `yaml:"color"`
}
