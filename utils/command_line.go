package utils

import (
	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML file with sample settings",
	}
	backendFlag = &cli.StringFlag{
		Name:  "backend",
		Usage: "Window backend (sdl2 or glfw)",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "Window width in screen coordinates",
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "Window height in screen coordinates",
	}
	samplesFlag = &cli.IntFlag{
		Name:  "samples",
		Usage: "Samples per pixel of the window framebuffer (0 disables multisampling, unset leaves it to the sample)",
	}
	vsyncFlag = &cli.BoolFlag{
		Name:  "vsync",
		Usage: "Synchronize buffer swaps with the display refresh",
	}
	assetsFlag = &cli.StringFlag{
		Name:  "assets",
		Usage: "Directory textures and models are loaded from",
	}
	fallbackFlag = &cli.BoolFlag{
		Name:  "fallback-textures",
		Usage: "Substitute a checkerboard for missing texture files",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error)",
	}
	saveImagesFlag = &cli.BoolFlag{
		Name:  "save-images",
		Usage: "Save the first frame as <sample>.png",
	}
	screenshotDirFlag = &cli.StringFlag{
		Name:  "screenshot-dir",
		Usage: "Directory screenshots are written to",
	}
	framesFlag = &cli.IntFlag{
		Name:  "frames",
		Usage: "Exit after this many frames (0 runs until the window closes)",
	}
)

var sampleFlags = []cli.Flag{
	configFlag,
	backendFlag,
	widthFlag,
	heightFlag,
	samplesFlag,
	vsyncFlag,
	assetsFlag,
	fallbackFlag,
	logLevelFlag,
	saveImagesFlag,
	screenshotDirFlag,
	framesFlag,
}

// newApp builds the command line for a sample. action receives the
// configuration after the config file and flags have been applied.
func newApp(name string, action func(cfg Config) error) *cli.App {
	return &cli.App{
		Name:            name,
		Usage:           "OpenGL sample " + name,
		HideHelpCommand: true,
		Flags:           sampleFlags,
		Action: func(ctx *cli.Context) error {
			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}
			return action(cfg)
		},
	}
}

func configFromContext(ctx *cli.Context) (Config, error) {
	cfg := DefaultConfig()

	if path := ctx.String(configFlag.Name); path != "" {
		if err := LoadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	// Only flags given on the command line override the file.
	if ctx.IsSet(backendFlag.Name) {
		cfg.Backend = ctx.String(backendFlag.Name)
	}
	if ctx.IsSet(widthFlag.Name) {
		cfg.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Height = ctx.Int(heightFlag.Name)
	}
	if ctx.IsSet(samplesFlag.Name) {
		cfg.Samples = ctx.Int(samplesFlag.Name)
	}
	if ctx.IsSet(vsyncFlag.Name) {
		cfg.VSync = ctx.Bool(vsyncFlag.Name)
	}
	if ctx.IsSet(assetsFlag.Name) {
		cfg.AssetDir = ctx.String(assetsFlag.Name)
	}
	if ctx.IsSet(fallbackFlag.Name) {
		cfg.FallbackTextures = ctx.Bool(fallbackFlag.Name)
	}
	if ctx.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = ctx.String(logLevelFlag.Name)
	}
	if ctx.IsSet(saveImagesFlag.Name) {
		cfg.SaveImages = ctx.Bool(saveImagesFlag.Name)
	}
	if ctx.IsSet(screenshotDirFlag.Name) {
		cfg.ScreenshotDir = ctx.String(screenshotDirFlag.Name)
	}
	if ctx.IsSet(framesFlag.Name) {
		cfg.Frames = ctx.Int(framesFlag.Name)
	}

	return cfg, cfg.validate()
}
