package chess

import "sort"

// TagName represents the index of a PGN tag written to game records.
type TagName int

const (
	AnnotatorTag TagName = iota
	BlackTag
	DateTag
	EventTag
	FENTag
	PlyCountTag
	ResultTag
	RoundTag
	SetupTag
	SiteTag
	TerminationTag
	TimeControlTag
	WhiteTag
	NumberOfTags // Sentinel, must be last
)

// TagNameStrings maps tag indices to their string representations.
var TagNameStrings = map[TagName]string{
	AnnotatorTag:   "Annotator",
	BlackTag:       "Black",
	DateTag:        "Date",
	EventTag:       "Event",
	FENTag:         "FEN",
	PlyCountTag:    "PlyCount",
	ResultTag:      "Result",
	RoundTag:       "Round",
	SetupTag:       "SetUp",
	SiteTag:        "Site",
	TerminationTag: "Termination",
	TimeControlTag: "TimeControl",
	WhiteTag:       "White",
}

// StringToTagName maps tag strings to their indices.
var StringToTagName map[string]TagName

func init() {
	StringToTagName = make(map[string]TagName)
	for tag, name := range TagNameStrings {
		StringToTagName[name] = tag
	}
}

// String returns the tag name as written in game records.
func (t TagName) String() string {
	return TagNameStrings[t]
}

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// OrderedTagNames returns the seven-tag roster first, in roster order, then
// every other tag present in tags alphabetically.
func OrderedTagNames(tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for _, name := range SevenTagRoster {
		if _, ok := tags[name]; ok {
			names = append(names, name)
		}
	}
	var rest []string
	for name := range tags {
		if !IsSevenTagRosterTag(name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
