package chess

// GameTermination is the result token that ends a game's movetext.
type GameTermination int

const (
	WhiteWins GameTermination = iota
	BlackWins
	DrawnGame
	Unknown
)

var terminationText = [...]string{
	WhiteWins: "1-0",
	BlackWins: "0-1",
	DrawnGame: "1/2-1/2",
	Unknown:   "*",
}

// String returns the movetext token for the termination.
func (t GameTermination) String() string {
	if t >= 0 && int(t) < len(terminationText) {
		return terminationText[t]
	}
	return "*"
}

// ParseTermination maps a termination token to its value.
func ParseTermination(s string) (GameTermination, bool) {
	for t, text := range terminationText {
		if text == s {
			return GameTermination(t), true
		}
	}
	return Unknown, false
}

// TagPair is a single [Name "Value"] entry.
type TagPair struct {
	Name  string
	Value string
}

// Game represents a complete parsed game.
type Game struct {
	// Tags in the order they were written. Duplicates are kept.
	Tags []TagPair

	// Comment preceding the first move, if any.
	Comment *string

	// The main line.
	Moves []GameMove

	Termination GameTermination
}

// Tag returns the value of the first tag called name. Names are case-sensitive.
func (g *Game) Tag(name string) (string, bool) {
	for _, t := range g.Tags {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	v, _ := g.Tag(name)
	return v
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tag(name)
	return ok
}

// White returns the White player name.
func (g *Game) White() string {
	return g.GetTag(TagWhite)
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.GetTag(TagBlack)
}

// Event returns the event name.
func (g *Game) Event() string {
	return g.GetTag(TagEvent)
}

// Site returns the site name.
func (g *Game) Site() string {
	return g.GetTag(TagSite)
}

// Date returns the date string.
func (g *Game) Date() string {
	return g.GetTag(TagDate)
}

// Round returns the round string.
func (g *Game) Round() string {
	return g.GetTag(TagRound)
}

// Result returns the value of the Result tag. This may differ from the
// termination token.
func (g *Game) Result() string {
	return g.GetTag(TagResult)
}

// FEN returns the starting position if present.
func (g *Game) FEN() string {
	return g.GetTag(TagFEN)
}

// PlyCount returns the number of half-moves in the main line.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// MainLine returns the main line as a MoveSequence.
func (g *Game) MainLine() MoveSequence {
	return MoveSequence{Comment: g.Comment, Moves: g.Moves}
}

// Depth returns the deepest level of variation nesting in the game.
func (g *Game) Depth() int {
	return g.MainLine().Depth()
}
