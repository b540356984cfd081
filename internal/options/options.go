// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Frontends lists the supported frontend names.
var Frontends = []string{FrontendSDL, FrontendTerminal, FrontendHeadless}

// Parameters contains file path options.
type Parameters struct {
	Input string `arg:"positional" usage:"program image to run"`
	Wav   string `flag:"wav" usage:"record the tone to this WAV file"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"frontend" usage:"frontend: sdl, terminal, headless" default:"sdl"`
	Rate     int    `flag:"rate" usage:"instructions per second" default:"500"`
	Scale    int    `flag:"scale" usage:"window pixel size of the sdl frontend" default:"20"`
	Cycles   uint64 `flag:"cycles" usage:"instruction budget of the headless frontend, 0 for unlimited" default:"10000"`
	Seed     uint64 `flag:"seed" usage:"random seed for RND, 0 for time based"`
	List     bool   `flag:"list" usage:"print an instruction listing of the program instead of running it"`
	Mute     bool   `flag:"mute" usage:"disable audio playback"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}
