package platform

import "strings"

// Platform tags a scheduled post and its analytics row with one of the six
// destinations the dashboard knows about.
type Platform string

const (
	TikTok    Platform = "tiktok"
	YouTube   Platform = "youtube"
	Instagram Platform = "instagram"
	Facebook  Platform = "facebook"
	LinkedIn  Platform = "linkedin"
	Threads   Platform = "threads"
)

type Info struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

var infos = map[Platform]Info{
	TikTok:    {Name: "TikTok", Color: "#000000"},
	YouTube:   {Name: "YouTube", Color: "#FF0000"},
	Instagram: {Name: "Instagram", Color: "#E1306C"},
	Facebook:  {Name: "Facebook", Color: "#1877F2"},
	LinkedIn:  {Name: "LinkedIn", Color: "#0A66C2"},
	Threads:   {Name: "Threads", Color: "#333333"},
}

var ordered = []Platform{TikTok, YouTube, Instagram, Facebook, LinkedIn, Threads}

// All returns the platforms in display order.
func All() []Platform {
	out := make([]Platform, len(ordered))
	copy(out, ordered)
	return out
}

// Normalize lowercases a user-supplied tag and reports whether it names a
// known platform.
func Normalize(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	_, ok := infos[p]
	return p, ok
}

func (p Platform) Info() Info {
	return infos[p]
}

func (p Platform) Name() string {
	return infos[p].Name
}

func (p Platform) Color() string {
	return infos[p].Color
}
