package assets

// Emoji constants used as entity glyphs.
const (
	GlyphPlayer      = "🧍"
	GlyphPlayerHit   = "😖"
	GlyphChaser      = "🧟"
	GlyphSpitter     = "🦂"
	GlyphBroodmother = "🕷️"
	GlyphExit        = "🚪"
	GlyphLantern     = "🏮"
	GlyphFlare       = "🧨"
	GlyphLure        = "🔔"
	GlyphBlade       = "🗡️"
	GlyphGoo         = "🟢"
	GlyphPuddle      = "🟩"

	GlyphPickupDamage   = "💢"
	GlyphPickupFireRate = "⚡"
	GlyphPickupShield   = "🛡️"
	GlyphPickupInvis    = "🫥"
	GlyphPickupPoints   = "💰"
)

// Tiles holds the glyphs used to draw terrain at each memory level.
// Emoji render with their own colors, so remembered-but-fading terrain
// uses distinct darker glyphs instead of a terminal FG tint.
type Tiles struct {
	Wall     string // currently lit wall
	Floor    string // currently lit floor
	DimWall  string // remembered wall, fading from memory
	DimFloor string // remembered floor, fading from memory
}

// LevelThemes cycles with the level number so deeper runs keep a fresh look.
var LevelThemes = []Tiles{
	{Wall: "🌲", Floor: "🟫", DimWall: "🌑", DimFloor: "🔲"},
	{Wall: "🪨", Floor: "🟨", DimWall: "🌑", DimFloor: "🔲"},
	{Wall: "🧱", Floor: "⬜", DimWall: "🌑", DimFloor: "🔲"},
	{Wall: "🌵", Floor: "🟧", DimWall: "🌑", DimFloor: "🔲"},
	{Wall: "🧊", Floor: "❄️", DimWall: "🌑", DimFloor: "🔲"},
}

// ThemeFor returns the tile theme for a 1-indexed level.
func ThemeFor(level int) Tiles {
	if level < 1 {
		level = 1
	}
	return LevelThemes[(level-1)%len(LevelThemes)]
}

// TitleLore is shown one line at a time on the title screen.
var TitleLore = []string{
	"The fog eats what the light forgets.",
	"Every lantern you leave behind is a promise to come back.",
	"The door is always there. Finding it twice is the trick.",
	"Out past the torchlight, something is counting your steps.",
}
