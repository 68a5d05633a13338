package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/duckpond/quackchat/internal/assets"
	"github.com/duckpond/quackchat/internal/audio"
	"github.com/duckpond/quackchat/internal/config"
	"github.com/duckpond/quackchat/internal/dialogue"
	"github.com/duckpond/quackchat/internal/logging"
	"github.com/duckpond/quackchat/internal/script"
	"github.com/duckpond/quackchat/internal/tui"
)

var (
	playScript   string
	playMute     bool
	playNoAudio  bool
	playTheme    string
	playAssets   string
	playSpeakerA string
	playSpeakerB string
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVar(&playScript, "script", "", "script name or path to a script file (default: built-in savings lesson)")
	playCmd.Flags().BoolVar(&playMute, "mute", false, "start with audio muted")
	playCmd.Flags().BoolVar(&playNoAudio, "no-audio", false, "disable the audio backend entirely")
	playCmd.Flags().StringVar(&playTheme, "theme", "", "color theme (default, high-contrast)")
	playCmd.Flags().StringVar(&playAssets, "assets-dir", "", "directory with avatar and background art")
	playCmd.Flags().StringVar(&playSpeakerA, "speaker-a", "", "display name for persona A")
	playCmd.Flags().StringVar(&playSpeakerB, "speaker-b", "", "display name for persona B")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a scripted conversation",
	Long:  "Play a scripted conversation in the terminal. Click or press space to advance, pick options when they appear.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("play requires an interactive terminal")
		}

		// Console logs would bleed through the alt screen. Without an explicit
		// log file they go nowhere.
		if rootLogFile == "" && cfg.Log.File == "" {
			logging.Setup(cfg.Log.Level, io.Discard)
		}
		logger := logging.Component("play")

		applyPlayFlags(cfg)

		ref := playScript
		if len(args) == 1 {
			ref = args[0]
		}
		s, err := resolveScript(ref, cfg.ScriptsDir)
		if err != nil {
			return err
		}
		overrideSpeakerNames(s, playSpeakerA, playSpeakerB)

		mute := config.NewMuteSwitch(cfg.Audio.Muted)

		var player *audio.Player
		if cfg.Audio.Enabled {
			player = audio.NewPlayer(mute.Muted, cfg.Audio.Volume, logging.Component("audio"))
			if err := player.Init(); err != nil {
				return fmt.Errorf("init audio: %w", err)
			}
		}

		widget := tui.Config{
			Script:   s,
			Settings: *cfg,
			Mute:     mute,
			Player:   player,
			Assets:   assets.NewResolver(cfg.Assets.Dir, logging.Component("assets")),
			Recorder: dialogue.NewLogRecorder(logging.Component("playback")),
			Logger:   logger,
			OnExit: func() {
				logger.Info().Msg("playback widget closed")
			},
		}

		logger.Info().Str("script", s.Name).Int("steps", s.Len()).Msg("starting playback")
		return tui.Run(widget)
	},
}

func applyPlayFlags(cfg *config.Config) {
	if playMute {
		cfg.Audio.Muted = true
	}
	if playNoAudio {
		cfg.Audio.Enabled = false
	}
	if playTheme != "" {
		cfg.TUI.Theme = playTheme
	}
	if playAssets != "" {
		cfg.Assets.Dir = playAssets
	}
}

// overrideSpeakerNames writes flag-supplied display names into the script,
// beating any names the script itself defines.
func overrideSpeakerNames(s *script.Script, nameA, nameB string) {
	if nameA == "" && nameB == "" {
		return
	}
	if s.Speakers == nil {
		s.Speakers = make(map[script.Speaker]string, 2)
	}
	if nameA != "" {
		s.Speakers[script.SpeakerA] = nameA
	}
	if nameB != "" {
		s.Speakers[script.SpeakerB] = nameB
	}
}

// resolveScript finds the script to play: an explicit file path, a name among
// the discovered scripts, or the built-in default.
func resolveScript(ref, scriptsDir string) (*script.Script, error) {
	if ref == "" {
		return script.Default()
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return script.Load(ref)
	}

	all, err := script.LoadAll(scriptsDir)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.Name == ref {
			return s, nil
		}
	}
	return nil, fmt.Errorf("script %q not found (try 'quackchat scripts')", ref)
}
