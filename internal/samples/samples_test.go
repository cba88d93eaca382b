package samples

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDescriptorFamily(t *testing.T) {
	tests := []struct {
		id   string
		want Family
	}{
		{"assets/samples/Gitarre_01.mp3", FamilyGitarre},
		{"Klavier_soft_02.wav", FamilyKlavier},
		{"a/b/Weitere_x.mp3", FamilyWeitere},
		{"https://example.com/s/Klavier_3.mp3?v=2", FamilyKlavier},
		{"Gitarre/Bass_01.mp3", FamilyOther},
		{"assets/Drums_01.mp3", FamilyOther},
		{"noprefix.mp3", FamilyOther},
		{"", FamilyOther},
	}
	for _, tc := range tests {
		if got := ParseDescriptor(tc.id).Family; got != tc.want {
			t.Fatalf("ParseDescriptor(%q).Family = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func testManifest(primary, other int) *Manifest {
	var ids []Descriptor
	fams := []string{"Gitarre", "Klavier", "Weitere"}
	for i := 0; i < primary; i++ {
		ids = append(ids, ParseDescriptor("samples/"+fams[i%3]+"_"+string(rune('a'+i))+".mp3"))
	}
	for i := 0; i < other; i++ {
		ids = append(ids, ParseDescriptor("samples/Perc_"+string(rune('a'+i))+".mp3"))
	}
	return &Manifest{Samples: ids}
}

func TestSelectFamilyConstraint(t *testing.T) {
	m := testManifest(3, 9)
	for count := 1; count <= 10; count++ {
		for seed := uint64(0); seed < 1000; seed++ {
			got, err := Select(count, m, NewRand(seed))
			if err != nil {
				t.Fatalf("count=%d seed=%d: %v", count, seed, err)
			}
			if len(got) != count {
				t.Fatalf("count=%d seed=%d: len=%d", count, seed, len(got))
			}
			if !got[0].Family.Primary() {
				t.Fatalf("count=%d seed=%d: slot 0 %q is not primary", count, seed, got[0].ID)
			}
			for i, d := range got[1:] {
				if d.Family.Primary() {
					t.Fatalf("count=%d seed=%d: slot %d %q is primary", count, seed, i+1, d.ID)
				}
			}
		}
	}
}

func TestSelectInsufficientSamples(t *testing.T) {
	tests := []struct {
		name  string
		m     *Manifest
		count int
	}{
		{"no primary", testManifest(0, 5), 3},
		{"no other", testManifest(2, 0), 2},
		{"empty", testManifest(0, 0), 1},
		{"nil manifest", nil, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Select(tc.count, tc.m, NewRand(1))
			if !errors.Is(err, ErrInsufficientSamples) {
				t.Fatalf("err = %v, want ErrInsufficientSamples", err)
			}
			var ise *InsufficientSamplesError
			if !errors.As(err, &ise) || ise.Requested != tc.count {
				t.Fatalf("err = %#v, want InsufficientSamplesError for %d", err, tc.count)
			}
		})
	}
}

func TestSelectSinglePrimaryOnlyManifest(t *testing.T) {
	got, err := Select(1, testManifest(1, 0), NewRand(7))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Family != FamilyGitarre {
		t.Fatalf("got %v", got)
	}
}

func TestSelectOneOtherServesManySources(t *testing.T) {
	got, err := Select(10, testManifest(1, 1), NewRand(3))
	if err != nil {
		t.Fatal(err)
	}
	for i, d := range got[1:] {
		if d != got[1] {
			t.Fatalf("slot %d = %v, want the only other sample", i+1, d)
		}
	}
}

func TestInsufficientSamplesMessage(t *testing.T) {
	tests := []struct {
		err  *InsufficientSamplesError
		want string
	}{
		{&InsufficientSamplesError{Requested: 10, Primary: 1, Other: 0}, "10 sources need at least 1 primary and 1 other sample"},
		{&InsufficientSamplesError{Requested: 1, Primary: 0, Other: 4}, "1 sources need at least 1 primary sample"},
	}
	for _, tc := range tests {
		msg := tc.err.Error()
		if !strings.Contains(msg, tc.want) {
			t.Fatalf("Error() = %q, want it to contain %q", msg, tc.want)
		}
		if strings.Contains(msg, "need 9") {
			t.Fatalf("Error() = %q still asks for one other sample per source", msg)
		}
	}
}

func TestSelectInvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Select(n, testManifest(3, 3), NewRand(1)); !errors.Is(err, ErrInvalidCount) {
			t.Fatalf("Select(%d) err = %v, want ErrInvalidCount", n, err)
		}
	}
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(`{"samples":["a/Gitarre_1.mp3","a/Perc_2.mp3"]}`), "assets/samples.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Samples) != 2 || m.Samples[0].Family != FamilyGitarre || m.Samples[1].Family != FamilyOther {
		t.Fatalf("samples = %+v", m.Samples)
	}

	for _, bad := range []string{`{`, `{"other":[]}`, `[]`} {
		if _, err := ParseManifest([]byte(bad), ""); !errors.Is(err, ErrAssetLoad) {
			t.Fatalf("ParseManifest(%q) err = %v, want ErrAssetLoad", bad, err)
		}
	}
}

func TestLoadManifestFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "samples.json")
	if err := os.WriteFile(p, []byte(`{"samples":["sounds/Klavier_1.wav"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadManifest(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "sounds", "Klavier_1.wav")
	if got := m.Resolve(m.Samples[0].ID); got != want {
		t.Fatalf("Resolve = %q, want %q", got, want)
	}

	if _, err := LoadManifest(context.Background(), filepath.Join(dir, "missing.json")); !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("missing file err = %v, want ErrAssetLoad", err)
	}
}

func TestLoadManifestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assets/samples.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"samples":["snd/Weitere_1.mp3"]}`))
	}))
	defer srv.Close()

	m, err := LoadManifest(context.Background(), srv.URL+"/assets/samples.json")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.Resolve(m.Samples[0].ID), srv.URL+"/assets/snd/Weitere_1.mp3"; got != want {
		t.Fatalf("Resolve = %q, want %q", got, want)
	}

	if _, err := LoadManifest(context.Background(), srv.URL+"/nope.json"); !errors.Is(err, ErrAssetLoad) {
		t.Fatalf("404 err = %v, want ErrAssetLoad", err)
	}
}

func TestExt(t *testing.T) {
	tests := map[string]string{
		"a/b/Gitarre_1.MP3":               ".mp3",
		"https://x.org/s/Klavier.wav?x=1": ".wav",
		"noext":                           "",
	}
	for in, want := range tests {
		if got := Ext(in); got != want {
			t.Fatalf("Ext(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRandRangeF(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 10000; i++ {
		v := r.RangeF(-15, 15)
		if v < -15 || v >= 15 {
			t.Fatalf("RangeF out of bounds: %g", v)
		}
	}
	if got := r.RangeF(3, 3); got != 3 {
		t.Fatalf("empty range = %g", got)
	}
	if got := r.Intn(0); got != 0 {
		t.Fatalf("Intn(0) = %d", got)
	}
}
