// Command gatedemo runs the drum gate end to end on a synthetic percussion
// signal and prints before/after level statistics.
//
// For each selected drum class it synthesizes a sequence of decaying hits in
// the class's focus band over a constant bleed floor, asks the analyzer for
// threshold and release suggestions, configures the gate with them, and
// processes the signal.
//
// Usage:
//
//	gatedemo [flags] [class-name ...]
//
// Without arguments it runs all known drum classes.
//
// Examples:
//
//	gatedemo kick snare
//	gatedemo -rate 48000 -dur 4 kick
//	gatedemo -threshold -20 -release 0.12 hihat
//	gatedemo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-drumgate/analyze"
	"github.com/cwbudde/algo-drumgate/drum"
	"github.com/cwbudde/algo-drumgate/dsp/gate"
	"github.com/cwbudde/algo-drumgate/dsp/signal"
	"github.com/cwbudde/algo-drumgate/stats/amplitude"
)

type classEntry struct {
	name  string
	class drum.Class
	hitHz float64
	decay float64
}

var registry = []classEntry{
	{"kick", drum.Kick, 60, 18},
	{"snare", drum.Snare, 200, 28},
	{"toms", drum.Toms, 120, 22},
	{"hihat", drum.HiHat, 7000, 60},
	{"tambourine", drum.Tambourine, 6000, 55},
	{"claps", drum.Claps, 1200, 40},
}

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	dur := flag.Float64("dur", 2.0, "signal duration in seconds")
	bleed := flag.Float64("bleed", 0.04, "bleed floor amplitude (linear)")
	attack := flag.Float64("attack", 0.0015, "gate attack time in seconds")
	threshold := flag.Float64("threshold", math.NaN(), "manual threshold in dB (default: auto-suggest)")
	release := flag.Float64("release", math.NaN(), "manual release in seconds (default: auto-suggest)")
	list := flag.Bool("list", false, "list available class names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gatedemo [flags] [class-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Gates a synthetic percussion signal and prints level statistics.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, runs all drum classes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gatedemo kick snare\n")
		fmt.Fprintf(os.Stderr, "  gatedemo -rate 48000 -dur 4 kick\n")
		fmt.Fprintf(os.Stderr, "  gatedemo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching drum classes\n")
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Class\tThr [dB]\tRel [s]\tSource\tIn Peak/RMS [dB]\tOut Peak/RMS [dB]\tFloor Drop [dB]\n")
	fmt.Fprintf(tw, "-----\t--------\t-------\t------\t----------------\t-----------------\t---------------\n")

	for _, e := range entries {
		if err := runClass(tw, e, *rate, *dur, *bleed, *attack, *threshold, *release); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			os.Exit(1)
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []classEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]classEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []classEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown class %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func runClass(tw *tabwriter.Writer, e classEntry, rate, dur, bleed, attack, manualThr, manualRel float64) error {
	profile := drum.ProfileFor(e.class)

	samples, err := synthesize(e, rate, dur, bleed)
	if err != nil {
		return err
	}

	settings := gate.Settings{ThresholdDB: manualThr, Attack: attack, Release: manualRel, Active: true}
	source := "manual"

	if math.IsNaN(manualThr) || math.IsNaN(manualRel) {
		snap, _ := analyze.Snapshot(samples, profile, rate)
		sugg, ok := analyze.Suggest(analyze.WindowPeaks(samples, 0), profile, &snap)
		if !ok {
			return fmt.Errorf("analyzer found no usable contrast")
		}

		source = "auto"
		settings.AutoApplied = true
		if math.IsNaN(settings.ThresholdDB) {
			settings.ThresholdDB = sugg.ThresholdDB
		}
		if math.IsNaN(settings.Release) {
			settings.Release = 0.12
			if sugg.HasRelease {
				settings.Release = sugg.Release
			}
		}
	}

	engine := gate.NewEngine()
	if !engine.Reconfigure(settings, rate, profile) {
		return fmt.Errorf("gate rejected configuration")
	}

	buf := make([]float32, len(samples))
	for i, v := range samples {
		buf[i] = float32(v)
	}
	engine.ProcessFloat32([][]float32{buf})

	processed := make([]float64, len(buf))
	for i, v := range buf {
		processed[i] = float64(v)
	}

	in := amplitude.Summarize(samples)
	out := amplitude.Summarize(processed)

	// Floor drop: attenuation of the quiet tail between hits.
	inFloor := amplitude.Percentile(amplitude.Sorted(analyze.WindowPeaks(samples, 0)), 20)
	outFloor := amplitude.Percentile(amplitude.Sorted(analyze.WindowPeaks(processed, 0)), 20)

	floorDrop := math.Inf(1)
	if inFloor > 0 && outFloor > 0 {
		floorDrop = 20 * math.Log10(inFloor/outFloor)
	}

	fmt.Fprintf(tw, "%s\t%.1f\t%.2f\t%s\t%.1f / %.1f\t%.1f / %.1f\t%.1f\n",
		e.name,
		settings.ThresholdDB,
		settings.Release,
		source,
		in.PeakDB, in.RMSDB,
		out.PeakDB, out.RMSDB,
		floorDrop,
	)

	return nil
}

// synthesize builds dur seconds of audio: four decaying sine hits per second
// at the class's focus frequency over a constant noise floor.
func synthesize(e classEntry, rate, dur, bleed float64) ([]float64, error) {
	n := int(rate * dur)
	g := signal.NewGenerator(rate)

	out, err := g.WhiteNoise(bleed, n)
	if err != nil {
		return nil, err
	}

	period := int(rate / 4)
	if period < 1 {
		period = 1
	}

	hit, err := g.DecayingSine(e.hitHz, 0.9, e.decay, period)
	if err != nil {
		return nil, err
	}

	for start := 0; start < n; start += period {
		signal.MixAt(out, hit, start)
	}

	return out, nil
}
