// --- START OF FINAL REVISED FILE pkg/converter/script/script.go ---
package script

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/liuzl/gocc"
)

// Profile names an OpenCC conversion direction. The value is passed to gocc
// verbatim, so it must match one of the dictionaries gocc ships.
type Profile string

const (
	// ProfileS2TWP converts Simplified Chinese to Traditional Chinese (Taiwan) with regional idioms.
	ProfileS2TWP Profile = "s2twp"
	// ProfileTW2SP converts Traditional Chinese (Taiwan) with regional idioms to Simplified Chinese.
	ProfileTW2SP Profile = "tw2sp"
	// ProfileS2T converts Simplified Chinese to generic Traditional Chinese.
	ProfileS2T Profile = "s2t"
	// ProfileT2S converts generic Traditional Chinese to Simplified Chinese.
	ProfileT2S Profile = "t2s"
	ProfileS2TW Profile = "s2tw"
	ProfileTW2S Profile = "tw2s"
	ProfileS2HK Profile = "s2hk"
	ProfileHK2S Profile = "hk2s"
	ProfileT2TW Profile = "t2tw"
	ProfileT2HK Profile = "t2hk"
)

// DefaultProfile is Simplified to Taiwan Traditional with phrase conversion.
const DefaultProfile = ProfileS2TWP

var profileDescriptions = map[Profile]string{
	ProfileS2TWP: "Simplified -> Traditional (Taiwan, with phrases)",
	ProfileTW2SP: "Traditional (Taiwan, with phrases) -> Simplified",
	ProfileS2T:   "Simplified -> Traditional",
	ProfileT2S:   "Traditional -> Simplified",
	ProfileS2TW:  "Simplified -> Traditional (Taiwan)",
	ProfileTW2S:  "Traditional (Taiwan) -> Simplified",
	ProfileS2HK:  "Simplified -> Traditional (Hong Kong)",
	ProfileHK2S:  "Traditional (Hong Kong) -> Simplified",
	ProfileT2TW:  "Traditional -> Traditional (Taiwan)",
	ProfileT2HK:  "Traditional -> Traditional (Hong Kong)",
}

// ErrUnknownProfile is returned by ParseProfile for names outside the supported set.
var ErrUnknownProfile = errors.New("unknown conversion profile")

// Profiles returns every supported profile, most common directions first.
func Profiles() []Profile {
	return []Profile{
		ProfileS2TWP, ProfileTW2SP, ProfileS2T, ProfileT2S,
		ProfileS2TW, ProfileTW2S, ProfileS2HK, ProfileHK2S,
		ProfileT2TW, ProfileT2HK,
	}
}

// ParseProfile validates a profile name. Matching ignores case and
// surrounding whitespace; an optional ".json" suffix (the OpenCC config file
// name) is accepted.
func ParseProfile(name string) (Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.TrimSuffix(normalized, ".json")
	p := Profile(normalized)
	if _, ok := profileDescriptions[p]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownProfile, name, joinProfiles())
	}
	return p, nil
}

// Description returns a short human-readable label for the profile.
func (p Profile) Description() string {
	if d, ok := profileDescriptions[p]; ok {
		return d
	}
	return string(p)
}

func joinProfiles() string {
	names := make([]string, 0, len(profileDescriptions))
	for _, p := range Profiles() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// --- Transformer ---

// Transformer converts a whole text from one Chinese script variant to
// another. Implementations are treated as pure functions over full file
// contents and must be safe to call repeatedly from a single goroutine.
type Transformer interface {
	Convert(text string) (string, error)
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(text string) (string, error)

// Convert implements Transformer.
func (f TransformerFunc) Convert(text string) (string, error) { return f(text) }

// openCC is the gocc-backed Transformer.
type openCC struct {
	profile Profile
	cc      *gocc.OpenCC
}

var (
	openCCMu    sync.Mutex
	openCCCache = map[Profile]*gocc.OpenCC{}
)

// NewOpenCC returns a Transformer backed by github.com/liuzl/gocc for the
// given profile. Dictionaries are loaded once per profile and shared.
func NewOpenCC(profile Profile) (Transformer, error) {
	p, err := ParseProfile(string(profile))
	if err != nil {
		return nil, err
	}

	openCCMu.Lock()
	defer openCCMu.Unlock()
	if cc, ok := openCCCache[p]; ok {
		return &openCC{profile: p, cc: cc}, nil
	}
	cc, err := gocc.New(string(p))
	if err != nil {
		return nil, fmt.Errorf("loading OpenCC dictionaries for %q: %w", p, err)
	}
	openCCCache[p] = cc
	return &openCC{profile: p, cc: cc}, nil
}

// Convert implements Transformer.
func (o *openCC) Convert(text string) (string, error) {
	out, err := o.cc.Convert(text)
	if err != nil {
		return "", fmt.Errorf("opencc %s: %w", o.profile, err)
	}
	return out, nil
}

// --- END OF FINAL REVISED FILE pkg/converter/script/script.go ---
