package chess

// Well-known tag names read by presentation and replay code.
const (
	TagEvent  = "Event"
	TagSite   = "Site"
	TagDate   = "Date"
	TagRound  = "Round"
	TagWhite  = "White"
	TagBlack  = "Black"
	TagResult = "Result"
	TagFEN    = "FEN"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	TagEvent,
	TagSite,
	TagDate,
	TagRound,
	TagWhite,
	TagBlack,
	TagResult,
}

// MissingRosterTags returns the seven-tag-roster names absent from g, in
// roster order.
func MissingRosterTags(g *Game) []string {
	var missing []string
	for _, t := range SevenTagRoster {
		if !g.HasTag(t) {
			missing = append(missing, t)
		}
	}
	return missing
}
