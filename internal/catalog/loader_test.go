package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/gunsmith/internal/catalog"
	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
)

const yamlGuns = `
- id: pipe-gun
  name: Pipe Gun
  ammo: ".38"
  type: Small Guns
  damageRating: 3
  damageType: Physical
  firerate: 2
  range: 0
  weight: 2
  cost: 30
  rarity: 0
  compatibleMods:
    Barrel: [long-pistol-barrel]
- id: combat-knife
  name: Combat Knife
  ammo: na
  type: Melee Weapons
  damageRating: 3
  damageType: Physical
  firerate: null
  range: null
  weight: 1
  cost: 25
  rarity: 1
`

const yamlMods = `
- id: long-pistol-barrel
  name: Long Barrel
  namePrefix: Long
  type: Small Guns
  slot: Barrel
  rangeMod: 1
  weightMod: 0.5
`

func TestLoadEmbedded(t *testing.T) {
	c, err := catalog.LoadEmbedded()
	require.NoError(t, err)

	assert.Len(t, c.Weapons, 12)
	assert.Len(t, c.Mods, 22)
	assert.NoError(t, catalog.Validate(c))

	pistol, ok := c.Weapon("10mm-pistol")
	require.True(t, ok)
	assert.Equal(t, "10mm Pistol", pistol.Name)
	assert.Equal(t, weapons.WeaponTypeSmall, pistol.Type)
	require.NotNil(t, pistol.Range)
	assert.Equal(t, weapons.GunRangeClose, *pistol.Range)
	assert.True(t, pistol.HasQuality("reliable"))

	knife, ok := c.Weapon("combat-knife")
	require.True(t, ok)
	assert.Nil(t, knife.FireRate)
	assert.True(t, knife.IsMelee())
}

func TestLoadDir_YAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guns.yaml"), []byte(yamlGuns), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mods.yml"), []byte(yamlMods), 0o600))

	c, err := catalog.LoadDir(dir)
	require.NoError(t, err)
	require.NoError(t, catalog.Validate(c))

	require.Len(t, c.Weapons, 2)
	assert.Equal(t, "pipe-gun", c.Weapons[0].ID)
	assert.Equal(t, []string{"long-pistol-barrel"}, c.Weapons[0].CompatibleMods[weapons.WeaponModSlotBarrel])
	assert.Nil(t, c.Weapons[1].Range)

	require.Len(t, c.Mods, 1)
	mod := c.Mods[0]
	assert.Equal(t, "Long Pipe Gun", mod.PrefixedName("Pipe Gun"))
	require.NotNil(t, mod.WeightMod)
	assert.InDelta(t, 0.5, *mod.WeightMod, 0.0001)
	assert.Nil(t, mod.DamageMod)
}

func TestLoadDir_MixedFormats(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guns.yaml"), []byte(yamlGuns), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mods.json"),
		[]byte(`[{"id":"long-pistol-barrel","name":"Long Barrel","type":"Small Guns","slot":"Barrel"}]`), 0o600))

	c, err := catalog.LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, c.Weapons, 2)
	assert.Len(t, c.Mods, 1)
}

func TestLoadDir_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guns.yaml"), []byte(yamlGuns), 0o600))

	_, err := catalog.LoadDir(dir)
	require.Error(t, err)
	assert.True(t, gserr.IsNotFound(err))
}

func TestDecodeWeapons_Malformed(t *testing.T) {
	_, err := catalog.DecodeWeapons(strings.NewReader(`{"id": `), catalog.FormatJSON)
	assert.Error(t, err)

	_, err = catalog.DecodeWeapons(strings.NewReader(`[]`), catalog.Format("toml"))
	assert.True(t, gserr.IsInvalidArgument(err))
}

func TestDecodeMods_EmptyYAML(t *testing.T) {
	mods, err := catalog.DecodeMods(strings.NewReader(""), catalog.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, mods)
}

func TestFormatFromPath(t *testing.T) {
	testCases := []struct {
		path     string
		expected catalog.Format
		wantErr  bool
	}{
		{path: "guns.json", expected: catalog.FormatJSON},
		{path: "/data/mods.YAML", expected: catalog.FormatYAML},
		{path: "mods.yml", expected: catalog.FormatYAML},
		{path: "guns.csv", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			format, err := catalog.FormatFromPath(tc.path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, format)
		})
	}
}
