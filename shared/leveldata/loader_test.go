package leveldata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/platcore/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="9">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="144" width="160" height="16"/>
  <object id="2" x="32" y="64" width="48" height="0">
   <properties>
    <property name="ywave" value="sin"/>
    <property name="amplitude" type="float" value="0.05"/>
   </properties>
  </object>
  <object id="3" x="96" y="32" width="32" height="0">
   <properties>
    <property name="patrolX" type="float" value="4"/>
    <property name="patrolSec" type="float" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Ladders">
  <object id="4" x="104" y="80" width="16" height="64"/>
 </objectgroup>
 <objectgroup id="3" name="Items">
  <object id="5" class="food" x="24" y="120" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="4" name="Actors">
  <object id="6" name="hero" x="40" y="128" width="0" height="0"/>
  <object id="7" name="thrower" x="8" y="128" width="0" height="0"/>
  <object id="8" x="152" y="128" width="0" height="0"/>
 </objectgroup>
</map>
`

func writeMap(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	return dir
}

func TestLoadLevel(t *testing.T) {
	dir := writeMap(t, "demo.tmx", testMap)

	level, err := LoadLevel(os.DirFS(dir), "demo.tmx")
	require.NoError(t, err)

	assert.Equal(t, "demo", level.Name)
	assert.Equal(t, 10, level.Width)
	assert.Equal(t, 10, level.Height)

	require.Len(t, level.Platforms, 3)
	floor := level.Platforms[0]
	assert.Equal(t, PlatformSpawn{X: 0, Y: 0, Width: 10, Height: 1}, floor)
	assert.False(t, floor.Hovers())
	assert.False(t, floor.Patrols())

	hover := level.Platforms[1]
	assert.Equal(t, 2.0, hover.X)
	assert.Equal(t, 6.0, hover.Y)
	assert.Equal(t, 3, hover.Width)
	assert.Zero(t, hover.Height)
	assert.Equal(t, gamemath.WaveSin, hover.YWave)
	assert.Equal(t, gamemath.WaveNone, hover.XWave)
	assert.InDelta(t, 0.05, hover.Amplitude, 1e-12)
	assert.True(t, hover.Hovers())

	patrol := level.Platforms[2]
	assert.Equal(t, 8.0, patrol.Y)
	assert.Equal(t, 4.0, patrol.PatrolX)
	assert.True(t, patrol.Patrols())

	assert.Equal(t, []LadderSpawn{{X: 7, Y: 1, Height: 4}}, level.Ladders)
	assert.Equal(t, []ItemSpawn{{X: 2, Y: 2, Type: "food"}}, level.Items)

	require.Len(t, level.Actors, 3)
	assert.Equal(t, ActorSpawn{Name: "thrower", X: 0.5, Y: 2}, level.Actors[0])
	assert.Equal(t, ActorSpawn{Name: "hero", X: 2.5, Y: 2}, level.Actors[1])
	assert.Equal(t, "actor-8", level.Actors[2].Name)
}

func TestLoadLevelRejectsUnknownWave(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="0" width="16" height="0">
   <properties>
    <property name="xwave" value="square"/>
   </properties>
  </object>
 </objectgroup>
</map>
`
	dir := writeMap(t, "bad.tmx", body)

	_, err := LoadLevel(os.DirFS(dir), "bad.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "square")
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel(os.DirFS(t.TempDir()), "nope.tmx")
	assert.Error(t, err)
}
