// guideplay plays a Markdown teaching guide as an interactive terminal
// course: parsed steps, embedded quizzes, combo streaks and unlockable
// achievements.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/solhart/guideplay/audio"
	"github.com/solhart/guideplay/config"
	"github.com/solhart/guideplay/course"
	"github.com/solhart/guideplay/feedback"
	"github.com/solhart/guideplay/store"
	"github.com/solhart/guideplay/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	noAudio := flag.Bool("no-audio", false, "disable feedback tones")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: guideplay [flags] <guide.md>")
		os.Exit(2)
	}

	if err := run(*configPath, flag.Arg(0), *noAudio); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, guidePath string, noAudio bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(guidePath)
	if err != nil {
		return fmt.Errorf("read guide: %w", err)
	}
	c, err := course.Build(string(raw))
	if err != nil {
		return fmt.Errorf("build course from %s: %w", guidePath, err)
	}

	// Progress persistence is best effort: fall back to memory when the
	// database cannot be opened.
	var kv store.KV
	if sqlite, err := store.OpenSQLite(cfg.Storage.Path); err != nil {
		log.Printf("open %s: %v, progress will not persist", cfg.Storage.Path, err)
		kv = store.NewMemory()
	} else {
		kv = sqlite
	}
	defer kv.Close()

	var sound feedback.SoundPlayer
	if cfg.Audio.Enabled && !noAudio {
		player := audio.NewPlayer(cfg.Audio.Volume)
		if err := player.Init(); err != nil {
			// The course is fully playable without sound.
			log.Printf("audio init failed: %v", err)
		} else {
			sound = player
			defer player.Close()
		}
	}

	return tui.New(c, kv, sound).Run()
}
