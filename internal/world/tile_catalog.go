package world

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"chunkwalk/internal/config"
	"chunkwalk/internal/platform"

	"gopkg.in/yaml.v3"
)

// TileCatalog maps the letters used in world documents to tile codes and carries the
// display data (name, colour) hosts need. It never decides passability; that is a
// property of the code alone.
type TileCatalog struct {
	tileData     map[string]*config.TileData
	codeToKey    map[TileCode]string
	letterToCode map[rune]TileCode
	codeToLetter map[TileCode]rune
}

func NewTileCatalog() *TileCatalog {
	return &TileCatalog{
		tileData:     make(map[string]*config.TileData),
		codeToKey:    make(map[TileCode]string),
		letterToCode: make(map[rune]TileCode),
		codeToLetter: make(map[TileCode]rune),
	}
}

// DefaultTileCatalog returns the built-in tile set used when no tiles file is configured.
func DefaultTileCatalog() *TileCatalog {
	tc := NewTileCatalog()
	err := tc.LoadTileData(config.TileConfig{TileData: map[string]config.TileData{
		"empty": {Name: "Floor", Code: uint32(TileEmpty), Letter: ".", Color: [3]int{40, 40, 48}},
		"wall":  {Name: "Wall", Code: uint32(TileWall), Letter: "#", Color: [3]int{200, 200, 200}},
		"rock":  {Name: "Rock", Code: uint32(TileRock), Letter: "o", Color: [3]int{120, 100, 80}},
		"water": {Name: "Water", Code: uint32(TileWater), Letter: "~", Color: [3]int{40, 90, 200}},
	}})
	if err != nil {
		panic("world: default tile catalog invalid: " + err.Error())
	}
	return tc
}

// LoadTileConfig loads the catalog from a yaml file.
func (tc *TileCatalog) LoadTileConfig(fileIO platform.FileIO, filename string) error {
	data, err := fileIO.ReadEntireFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read tile config file: %w", err)
	}

	var tileConfig config.TileConfig
	if err := yaml.Unmarshal(data, &tileConfig); err != nil {
		return fmt.Errorf("failed to parse tile config: %w", err)
	}
	return tc.LoadTileData(tileConfig)
}

// LoadTileData replaces the catalog contents. Code 0 must be present, and codes and
// letters must be unique.
func (tc *TileCatalog) LoadTileData(tileConfig config.TileConfig) error {
	tileData := make(map[string]*config.TileData, len(tileConfig.TileData))
	codeToKey := make(map[TileCode]string)
	letterToCode := make(map[rune]TileCode)
	codeToLetter := make(map[TileCode]rune)

	for _, key := range sortedKeys(tileConfig.TileData) {
		data := tileConfig.TileData[key]
		code := TileCode(data.Code)
		if other, dup := codeToKey[code]; dup {
			return fmt.Errorf("tiles %q and %q share code %d", other, key, code)
		}
		if utf8.RuneCountInString(data.Letter) != 1 {
			return fmt.Errorf("tile %q: letter must be a single character, got %q", key, data.Letter)
		}
		letter, _ := utf8.DecodeRuneInString(data.Letter)
		if other, dup := letterToCode[letter]; dup {
			return fmt.Errorf("tile %q reuses letter %q of code %d", key, data.Letter, other)
		}
		tileCopy := data
		tileData[key] = &tileCopy
		codeToKey[code] = key
		letterToCode[letter] = code
		codeToLetter[code] = letter
	}
	if _, ok := codeToKey[TileEmpty]; !ok {
		return fmt.Errorf("tile catalog has no passable tile with code %d", TileEmpty)
	}

	tc.tileData = tileData
	tc.codeToKey = codeToKey
	tc.letterToCode = letterToCode
	tc.codeToLetter = codeToLetter
	return nil
}

func sortedKeys(m map[string]config.TileData) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CodeForLetter resolves a world document letter.
func (tc *TileCatalog) CodeForLetter(letter rune) (TileCode, bool) {
	code, ok := tc.letterToCode[letter]
	return code, ok
}

// LetterForCode returns the letter for a code, '?' for codes the catalog does not know.
func (tc *TileCatalog) LetterForCode(code TileCode) rune {
	if letter, ok := tc.codeToLetter[code]; ok {
		return letter
	}
	return '?'
}

// GetTileData returns the configuration data for a tile code
func (tc *TileCatalog) GetTileData(code TileCode) *config.TileData {
	key, ok := tc.codeToKey[code]
	if !ok {
		return nil
	}
	return tc.tileData[key]
}

func (tc *TileCatalog) Name(code TileCode) string {
	if data := tc.GetTileData(code); data != nil {
		return data.Name
	}
	return fmt.Sprintf("tile %d", code)
}

// Color returns the tile colour. Unknown codes get magenta so they stand out.
func (tc *TileCatalog) Color(code TileCode) [3]int {
	if data := tc.GetTileData(code); data != nil {
		return data.Color
	}
	return [3]int{255, 0, 255}
}

// Codes lists every catalogued code in ascending order.
func (tc *TileCatalog) Codes() []TileCode {
	codes := make([]TileCode, 0, len(tc.codeToKey))
	for code := range tc.codeToKey {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
