// Package catalog loads the static weapon and mod data
package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
)

//go:embed assets/guns.json assets/mods.json
var assets embed.FS

const (
	weaponsFile = "guns"
	modsFile    = "mods"
)

// Format is the encoding of a catalog file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", gserr.InvalidArgument(fmt.Sprintf("unsupported catalog file %q", path))
	}
}

// LoadEmbedded returns the catalog compiled into the binary
func LoadEmbedded() (*weapons.Catalog, error) {
	guns, err := assets.ReadFile("assets/" + weaponsFile + ".json")
	if err != nil {
		return nil, gserr.Wrap(err, "failed to read embedded weapons")
	}
	mods, err := assets.ReadFile("assets/" + modsFile + ".json")
	if err != nil {
		return nil, gserr.Wrap(err, "failed to read embedded mods")
	}

	return decodeCatalog(guns, FormatJSON, mods, FormatJSON)
}

// LoadDir reads guns.{json,yaml,yml} and mods.{json,yaml,yml} from dir
func LoadDir(dir string) (*weapons.Catalog, error) {
	gunsPath, err := findFile(dir, weaponsFile)
	if err != nil {
		return nil, err
	}
	modsPath, err := findFile(dir, modsFile)
	if err != nil {
		return nil, err
	}

	guns, err := os.ReadFile(gunsPath)
	if err != nil {
		return nil, gserr.Wrapf(err, "failed to read %s", gunsPath)
	}
	mods, err := os.ReadFile(modsPath)
	if err != nil {
		return nil, gserr.Wrapf(err, "failed to read %s", modsPath)
	}

	gunsFormat, err := FormatFromPath(gunsPath)
	if err != nil {
		return nil, err
	}
	modsFormat, err := FormatFromPath(modsPath)
	if err != nil {
		return nil, err
	}

	return decodeCatalog(guns, gunsFormat, mods, modsFormat)
}

// DecodeWeapons reads a weapon list
func DecodeWeapons(r io.Reader, format Format) ([]*weapons.Weapon, error) {
	var result []*weapons.Weapon
	if err := decode(r, format, &result); err != nil {
		return nil, gserr.Wrap(err, "failed to decode weapons")
	}
	return result, nil
}

// DecodeMods reads a mod list
func DecodeMods(r io.Reader, format Format) ([]*weapons.WeaponMod, error) {
	var result []*weapons.WeaponMod
	if err := decode(r, format, &result); err != nil {
		return nil, gserr.Wrap(err, "failed to decode mods")
	}
	return result, nil
}

func decodeCatalog(guns []byte, gunsFormat Format, mods []byte, modsFormat Format) (*weapons.Catalog, error) {
	weaponList, err := DecodeWeapons(bytes.NewReader(guns), gunsFormat)
	if err != nil {
		return nil, err
	}
	modList, err := DecodeMods(bytes.NewReader(mods), modsFormat)
	if err != nil {
		return nil, err
	}

	return &weapons.Catalog{
		Weapons: weaponList,
		Mods:    modList,
	}, nil
}

func decode(r io.Reader, format Format, target any) error {
	switch format {
	case FormatJSON:
		return json.NewDecoder(r).Decode(target)
	case FormatYAML:
		err := yaml.NewDecoder(r).Decode(target)
		if err == io.EOF {
			// empty document
			return nil
		}
		return err
	default:
		return gserr.InvalidArgument(fmt.Sprintf("unsupported catalog format %q", format))
	}
}

func findFile(dir, name string) (string, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", gserr.NotFoundf("no %s catalog file in %s", name, dir)
}
