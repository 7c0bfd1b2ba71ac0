// verify_beep plays the click beep from the command line, without
// opening a window. Useful for checking the synthesizer and the audio
// device independent of the UI.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/chime/pkg/config"
	"github.com/decker502/chime/pkg/game"
)

var (
	freq     = flag.Float64("freq", 0, "beep frequency in Hz (0 = theme default)")
	duration = flag.Float64("duration", 0, "beep duration in seconds (0 = theme default)")
	repeat   = flag.Int("repeat", 1, "number of beeps to play")
)

func main() {
	flag.Parse()

	theme, err := config.LoadTheme()
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify_beep: %v\n", err)
		os.Exit(1)
	}

	f := theme.Tone.Frequency
	if *freq > 0 {
		f = *freq
	}
	d := theme.Tone.Duration
	if *duration > 0 {
		d = *duration
	}

	audioContext := audio.NewContext(config.AudioSampleRate)
	audioManager := game.NewAudioManager(audioContext, nil)

	for i := 0; i < *repeat; i++ {
		if !audioManager.PlayBeep(f, d) {
			fmt.Fprintln(os.Stderr, "verify_beep: beep not queued (audio unavailable?)")
			os.Exit(1)
		}
		fmt.Printf("beep %d: %.0f Hz for %.2fs at %d Hz output\n",
			i+1, f, d, audioContext.SampleRate())
		time.Sleep(time.Duration(d*float64(time.Second)) + 150*time.Millisecond)
	}
}
