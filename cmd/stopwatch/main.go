// Command stopwatch walks a stopwatch through its whole lifecycle:
// start, split, unsplit, suspend, resume, stop. It prints the state and
// the current reading at every tick, so the live/frozen distinction is
// visible (the reading freezes while split or suspended).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/import-this/lynx/stopwatch"
)

// Config controls the pacing of the demo.
type Config struct {
	// TickRate is the interval between printed readings.
	TickRate time.Duration `yaml:"tick_rate"`
	// PhaseTicks is the number of ticks spent in each lifecycle phase.
	PhaseTicks int `yaml:"phase_ticks"`
}

func defaultConfig() Config {
	return Config{
		TickRate:   500 * time.Millisecond,
		PhaseTicks: 4,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if cfg.TickRate <= 0 || cfg.PhaseTicks <= 0 {
		return cfg, fmt.Errorf("%s: tick_rate and phase_ticks must be positive", path)
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	sw := stopwatch.New()
	if err := sw.Start(); err != nil {
		log.Fatal(err)
	}

	phases := []struct {
		name string
		op   func() error
	}{
		{"split", sw.Split},
		{"unsplit", sw.Unsplit},
		{"suspend", sw.Suspend},
		{"resume", sw.Resume},
		{"stop", sw.Stop},
	}

	ticker := time.NewTicker(cfg.TickRate)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticks := 0
	phase := 0
	for {
		select {
		case <-ticker.C:
			fmt.Printf("[%-9s] %s\n", sw.State(), sw)
			ticks++
			if ticks%cfg.PhaseTicks != 0 {
				continue
			}
			if phase == len(phases) {
				fmt.Println("Demo complete. Final reading:", sw)
				return
			}
			p := phases[phase]
			if err := p.op(); err != nil {
				fmt.Printf("%s error: %v\n", p.name, err)
			} else {
				fmt.Printf("--- %s ---\n", p.name)
			}
			phase++
		case <-sig:
			fmt.Println("\nShutting down gracefully...")
			return
		}
	}
}
