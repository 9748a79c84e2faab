package prefs

import "github.com/retrocores/retrocores/paths"

// Config holds the runtime-tunable knobs shared by both cores and the
// scheduler.
type Config struct {
	disk *Disk

	// Chip8BatchSize is the number of CHIP-8 instructions executed per
	// scheduler tick.
	Chip8BatchSize Int

	// Chip8TargetIPS documents the intended instructions-per-second rate;
	// it does not itself throttle execution, the batch size does.
	Chip8TargetIPS Int

	// Chip8RandomSeed seeds the CXNN random stream. Zero means "use the
	// current time", i.e. non-reproducible.
	Chip8RandomSeed Int

	// GameBoyCyclesPerTick caps how many CPU T-states the scheduler will
	// spend per tick before giving up on a ready frame.
	GameBoyCyclesPerTick Int

	// DriftResyncMillis is the scheduler's threshold, in milliseconds,
	// before it abandons drift compensation and resyncs to now.
	DriftResyncMillis Int
}

// NewConfig returns a Config with every value set to its documented
// default, backed by a Disk at the standard resource path.
func NewConfig() (*Config, error) {
	dsk, err := NewDisk(paths.ResourcePath("prefs.txt"))
	if err != nil {
		return nil, err
	}

	c := &Config{disk: dsk}

	_ = c.Chip8BatchSize.Set(9)
	_ = c.Chip8TargetIPS.Set(540)
	_ = c.Chip8RandomSeed.Set(0)
	_ = c.GameBoyCyclesPerTick.Set(70224 / 4)
	_ = c.DriftResyncMillis.Set(250)

	if err := dsk.Add("chip8.batchsize", &c.Chip8BatchSize); err != nil {
		return nil, err
	}
	if err := dsk.Add("chip8.targetips", &c.Chip8TargetIPS); err != nil {
		return nil, err
	}
	if err := dsk.Add("chip8.randomseed", &c.Chip8RandomSeed); err != nil {
		return nil, err
	}
	if err := dsk.Add("gameboy.cyclespertick", &c.GameBoyCyclesPerTick); err != nil {
		return nil, err
	}
	if err := dsk.Add("scheduler.driftresyncmillis", &c.DriftResyncMillis); err != nil {
		return nil, err
	}

	return c, nil
}

// Load reads saved preferences from disk, if present, overwriting defaults.
func (c *Config) Load() error {
	return c.disk.Load(false)
}

// Save writes the current preferences to disk.
func (c *Config) Save() error {
	return c.disk.Save()
}
