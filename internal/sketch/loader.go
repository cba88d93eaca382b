package sketch

import (
	"context"
	"fmt"
	"log"
	"strings"

	"spatialsketch/internal/audio"
	"spatialsketch/internal/samples"
)

// LoadResult is delivered exactly once when asset loading finishes.
type LoadResult struct {
	Samples []samples.Descriptor
	Sources []*Source
	Err     error
}

// Loader fetches the manifest, selects samples and builds the source set.
type Loader struct {
	Manifest   string
	Count      int
	AudioRange float64
	Autostart  bool
	Rand       *samples.Rand
	// Voices returns the factory used for the loaded manifest.
	Voices  func(ctx context.Context, m *samples.Manifest) VoiceFactory
	Verbose bool
}

// Start runs Load in a goroutine. The returned channel yields one result.
func (l Loader) Start(ctx context.Context) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		ch <- l.Load(ctx)
	}()
	return ch
}

// Load runs the whole pipeline synchronously. Failures are logged and
// returned with an empty source set.
func (l Loader) Load(ctx context.Context) LoadResult {
	m, err := samples.LoadManifest(ctx, l.Manifest)
	if err != nil {
		log.Printf("error loading manifest %s: %v", l.Manifest, err)
		return LoadResult{Err: err}
	}
	log.Printf("manifest %s: %d samples", l.Manifest, len(m.Samples))
	if l.Verbose {
		for _, d := range m.Samples {
			log.Printf("  %-8s %s", d.Family, d.ID)
		}
	}

	selected, err := samples.Select(l.Count, m, l.Rand)
	if err != nil {
		log.Printf("select samples: %v", err)
		return LoadResult{Err: err}
	}
	ids := make([]string, len(selected))
	for i, d := range selected {
		ids[i] = d.ID
	}
	log.Printf("selected samples: [%s]", strings.Join(ids, ", "))

	sources, err := BuildSources(l.Count, l.AudioRange, selected, l.Autostart, l.Rand, l.Voices(ctx, m))
	if err != nil {
		log.Printf("%v", err)
		return LoadResult{Samples: selected, Err: err}
	}
	if l.Verbose {
		for i, s := range sources {
			log.Printf("  source %d at %v: %s", i, s.Coordinate(), s.SampleID())
		}
	}
	return LoadResult{Samples: selected, Sources: sources}
}

// MixerVoices creates voices on mixer, decoding each distinct sample once.
// A sample that cannot be fetched or decoded plays silence.
func MixerVoices(mixer *audio.Mixer) func(ctx context.Context, m *samples.Manifest) VoiceFactory {
	return func(ctx context.Context, m *samples.Manifest) VoiceFactory {
		cache := make(map[string]*audio.Buffer)
		return func(id samples.Descriptor) (Player, Panner, error) {
			buf, ok := cache[id.ID]
			if !ok {
				var err error
				buf, err = fetchBuffer(ctx, m.Resolve(id.ID))
				if err != nil {
					log.Printf("error loading sample %s: %v", id.ID, err)
				} else {
					log.Printf("loaded %s (%.2fs at %d Hz)", id.ID, buf.Duration(), buf.SampleRate)
				}
				cache[id.ID] = buf
			}
			v, err := mixer.NewVoice(buf)
			if err != nil {
				return nil, nil, err
			}
			return v, v, nil
		}
	}
}

func fetchBuffer(ctx context.Context, location string) (*audio.Buffer, error) {
	data, err := samples.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	buf, err := audio.Decode(data, samples.Ext(location))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", samples.ErrAssetLoad, location, err)
	}
	return buf, nil
}
