package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"

	genesis "github.com/u1krsh/GenesisEngine"
	"github.com/u1krsh/GenesisEngine/level"
	"github.com/u1krsh/GenesisEngine/player"
)

// settings contains everything configurable for a headless simulation run.
type settings struct {
	Simulation struct {
		TickRate  int
		LevelDir  string
		Level     string
		StatsSecs int
	}
	Sentry struct {
		DSN string
	}
	Movement player.Config
}

func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.DebugLevel

	conf, err := readSettings(log)
	if err != nil {
		log.Fatalln(err)
	}

	if conf.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: conf.Sentry.DSN}); err != nil {
			log.Fatalf("unable to start sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	engine := genesis.New(log, conf.Simulation.TickRate)
	engine.Configure(conf.Movement)

	registry := level.NewRegistry()
	if err := loadLevels(registry, conf.Simulation.LevelDir); err != nil {
		log.Fatalln(err)
	}
	log.Infof("loaded %d level(s) from %s", registry.Len(), conf.Simulation.LevelDir)

	start := registry.First()
	if conf.Simulation.Level != "" {
		l, ok := registry.Get(conf.Simulation.Level)
		if !ok {
			log.Fatalf("level %q not found in %s", conf.Simulation.Level, conf.Simulation.LevelDir)
		}
		start = l
	}
	if start == nil {
		log.Fatalf("no levels found in %s", conf.Simulation.LevelDir)
	}
	engine.QueueLevel(start)

	watcher, err := level.Watch(log, conf.Simulation.LevelDir)
	if err != nil {
		log.Fatalf("unable to watch level directory: %v", err)
	}
	defer watcher.Close()

	run(log, engine, watcher, conf)
}

// run drives the engine in real time until interrupted. The player holds a
// constant forward input so the simulation actually exercises the level.
func run(log *logrus.Logger, engine *genesis.Engine, watcher *level.Watcher, conf settings) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	engine.Player().SetMoveInput(mgl32.Vec3{0, 0, 1})

	statsEvery := time.Duration(conf.Simulation.StatsSecs) * time.Second
	if statsEvery <= 0 {
		statsEvery = 5 * time.Second
	}
	stats := time.NewTicker(statsEvery)
	defer stats.Stop()

	frame := time.NewTicker(time.Second / time.Duration(genesis.DefaultTickRate))
	defer frame.Stop()

	last := time.Now()
	for {
		select {
		case <-interrupt:
			log.Info("shutting down")
			return
		case l := <-watcher.Updates():
			current := engine.CurrentLevel()
			if current == nil || l.Name == current.Name {
				engine.QueueLevel(l)
			}
		case <-stats.C:
			mean, stdDev := engine.TickStats()
			pos := engine.Player().Position()
			log.Infof("tick %d: pos=(%.2f, %.2f, %.2f) tickTime=%.3fms (±%.3fms)",
				engine.TickCount(), pos.X(), pos.Y(), pos.Z(), mean, stdDev)
		case now := <-frame.C:
			engine.Advance(float32(now.Sub(last).Seconds()))
			last = now
		}
	}
}

func loadLevels(registry *level.Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read level directory: %v", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		l, err := level.Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("load level %s: %v", entry.Name(), err)
		}
		registry.Put(l)
	}
	return nil
}

// readSettings reads the configuration from the genesis.toml file, or creates
// the file if it does not yet exist.
func readSettings(log *logrus.Logger) (settings, error) {
	c := defaultSettings()
	if _, err := os.Stat("genesis.toml"); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default settings: %v", err)
		}
		if err := os.WriteFile("genesis.toml", data, 0644); err != nil {
			return c, fmt.Errorf("create default settings: %v", err)
		}
		log.Info("created default genesis.toml")
		return c, nil
	}
	data, err := os.ReadFile("genesis.toml")
	if err != nil {
		return c, fmt.Errorf("read settings: %v", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode settings: %v", err)
	}
	return c, nil
}

func defaultSettings() settings {
	var c settings
	c.Simulation.TickRate = genesis.DefaultTickRate
	c.Simulation.LevelDir = "levels"
	c.Simulation.StatsSecs = 5
	c.Movement = player.DefaultConfig()
	return c
}
