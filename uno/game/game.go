package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card"
	"github.com/ratel-online/unoflip/uno/card/color"
	"github.com/ratel-online/unoflip/uno/event"
)

// Game owns the state of one match. It is not safe for concurrent use:
// every call runs to completion before the next one is accepted.
type Game struct {
	seats     []*Player
	players   *PlayerIterator
	deck      *Deck
	pile      *Pile
	observers *event.Emitter

	topCard       card.Card
	currentColour color.Color
	currentRank   card.Rank

	phase     Phase
	status    event.Status
	skipped   map[int]bool
	challenge bool
	dontAsk   bool
	seeding   bool
	winner    *Player

	pendingChallenge bool
	accusedGuilty    bool
}

func New(deck *Deck) *Game {
	return &Game{
		seats:     make([]*Player, 0, consts.MaxPlayers),
		deck:      deck,
		pile:      deck.Pile(),
		observers: event.NewEmitter(),
		phase:     PhaseSetup,
		status:    event.StatusStandard,
		skipped:   make(map[int]bool),
	}
}

func (g *Game) Subscribe(observer event.Observer) {
	g.observers.AddObserver(observer)
}

func (g *Game) Unsubscribe(observer event.Observer) {
	g.observers.RemoveObserver(observer)
}

func (g *Game) AddPlayer(name string) (*Player, error) {
	if g.phase != PhaseSetup {
		return nil, consts.ErrorsGameStarted
	}
	if len(g.seats) >= consts.MaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	if name == "" {
		return nil, consts.ErrorsPlayerNameInvalid
	}
	for _, seated := range g.seats {
		if seated.Name() == name {
			return nil, consts.ErrorsPlayerNameInvalid
		}
	}
	player := NewPlayer(name)
	g.seats = append(g.seats, player)
	return player, nil
}

// Start deals handSize cards to every player and seeds the top card.
func (g *Game) Start(handSize int) (event.Notification, error) {
	if g.phase != PhaseSetup {
		return event.Notification{}, consts.ErrorsGameStarted
	}
	if len(g.seats) < consts.MinPlayers || len(g.seats) > consts.MaxPlayers {
		return event.Notification{}, consts.ErrorsGamePlayersInvalid
	}
	if handSize < 1 || handSize > consts.MaxHandSize {
		return event.Notification{}, consts.ErrorsInputInvalid
	}
	g.players = newPlayerIterator(g.seats)
	for _, player := range g.seats {
		if _, err := player.Draw(handSize, g.deck); err != nil {
			return event.Notification{}, err
		}
	}

	top, err := g.takeSeedCard()
	if err != nil {
		return event.Notification{}, err
	}
	g.pile.Add(top)
	g.phase = PhaseAwaitingPlay
	g.status = event.StatusStandard
	if err := g.seed(top); err != nil {
		return event.Notification{}, err
	}
	log.Infof("[Game] round started with %d players, first card %s\n", len(g.seats), top)
	return g.emit(), nil
}

// takeSeedCard draws the first top card. A WildDrawTwo goes back to the
// deck since nobody may be forced to draw before their first turn.
func (g *Game) takeSeedCard() (card.Card, error) {
	top, err := g.deck.TakeCard()
	for attempts := 0; err == nil && top.Rank() == card.WildDrawTwo; attempts++ {
		if attempts > g.deck.Size() {
			return nil, consts.ErrorsDeckExhausted
		}
		g.deck.PutCard(top)
		top, err = g.deck.TakeCard()
	}
	return top, err
}

func (g *Game) seed(top card.Card) error {
	switch top.Rank() {
	case card.Reverse:
		g.place(top)
		g.players.Reverse()
		return nil
	case card.Wild:
		g.seeding = true
	}
	return handlerFor(top.Rank()).Apply(g, top)
}

// PlayCard plays the card at index from the acting player's hand, or
// draws when index is consts.DrawCardIndex.
func (g *Game) PlayCard(index int) (event.Notification, error) {
	if err := g.checkRunning(); err != nil {
		return event.Notification{}, err
	}
	if g.phase != PhaseAwaitingPlay {
		return g.report(event.StatusTurnFinished), nil
	}
	if index == consts.DrawCardIndex {
		return g.selfDraw()
	}

	player := g.players.Current()
	candidate, err := player.Hand().Card(index)
	if err != nil {
		return event.Notification{}, err
	}
	handler := handlerFor(candidate.Rank())
	if candidate.Rank() != card.WildDrawTwo && !handler.Validate(candidate, g.Table()) {
		return g.report(event.StatusInvalidCard), nil
	}

	played, err := player.Hand().Play(index)
	if err != nil {
		return event.Notification{}, err
	}
	g.pile.Add(played)
	if player.Hand().Empty() {
		if err := g.win(player, played); err != nil {
			return event.Notification{}, err
		}
		return g.emit(), nil
	}

	g.phase = PhaseTurnComplete
	g.status = event.StatusStandard
	if err := handler.Apply(g, played); err != nil {
		return event.Notification{}, err
	}
	return g.emit(), nil
}

// Draw is the draw action of the acting player.
func (g *Game) Draw() (event.Notification, error) {
	return g.PlayCard(consts.DrawCardIndex)
}

func (g *Game) selfDraw() (event.Notification, error) {
	if g.HasPlayableCard() {
		return g.report(event.StatusPlayableCard), nil
	}
	if err := handlerFor(card.SelfDraw).Apply(g, nil); err != nil {
		return event.Notification{}, err
	}
	g.phase = PhaseTurnComplete
	g.status = event.StatusStandard
	return g.emit(), nil
}

// HasPlayableCard reports whether the acting player holds a card matching
// the current colour or rank.
func (g *Game) HasPlayableCard() bool {
	if g.players == nil {
		return false
	}
	return g.players.Current().Hand().Matches(g.currentColour, g.currentRank)
}

// ChooseColour sets the colour of the wild card the acting player just
// played.
func (g *Game) ChooseColour(c color.Color) (event.Notification, error) {
	if err := g.checkRunning(); err != nil {
		return event.Notification{}, err
	}
	if g.phase != PhaseAwaitingColour {
		return event.Notification{}, consts.ErrorsPhaseInvalid
	}
	if c == color.None {
		return g.report(event.StatusInvalidCard), nil
	}

	g.currentColour = c
	g.topCard = card.NewColoredCard(g.topCard, c)
	g.pile.ReplaceTop(g.topCard)
	g.status = event.StatusStandard
	switch {
	case g.seeding:
		g.seeding = false
		g.phase = PhaseAwaitingPlay
	case g.pendingChallenge:
		g.dontAsk = false
		g.phase = PhaseChallengePending
		g.status = event.StatusChallengePending
	default:
		g.phase = PhaseTurnComplete
	}
	return g.emit(), nil
}

// ResolveChallenge settles a WildDrawTwo once the next player decided
// whether to challenge it.
func (g *Game) ResolveChallenge(challenge bool) (event.Notification, error) {
	if err := g.checkRunning(); err != nil {
		return event.Notification{}, err
	}
	if g.phase != PhaseChallengePending {
		return event.Notification{}, consts.ErrorsPhaseInvalid
	}

	accused := g.players.CurrentIndex()
	challenger := g.players.NextIndex()
	switch {
	case !challenge:
		if err := g.drawFor(challenger, consts.WildDrawTwoAmount); err != nil {
			return event.Notification{}, err
		}
		g.skip(challenger)
		g.status = event.StatusStandard
	case g.accusedGuilty:
		if err := g.drawFor(accused, consts.ChallengeGuiltyDraws); err != nil {
			return event.Notification{}, err
		}
		g.status = event.StatusChallengeGuilty
	default:
		if err := g.drawFor(challenger, consts.ChallengeInnocentDraws); err != nil {
			return event.Notification{}, err
		}
		g.skip(challenger)
		g.status = event.StatusChallengeInnocent
	}
	g.challenge = challenge
	g.dontAsk = true
	g.pendingChallenge = false
	g.accusedGuilty = false
	g.phase = PhaseTurnComplete
	return g.emit(), nil
}

// NextTurn hands the turn to the next player once the acting player has
// played or drawn.
func (g *Game) NextTurn() (event.Notification, error) {
	if err := g.checkRunning(); err != nil {
		return event.Notification{}, err
	}
	if g.phase != PhaseTurnComplete {
		return g.report(event.StatusCannotSkipTurn), nil
	}
	g.advance()
	return g.emit(), nil
}

// skip makes seat lose its next turn.
func (g *Game) skip(seat int) {
	g.skipped[seat] = true
}

// advance steps the turn, passing over skipped seats as the turn reaches
// them. A skip left by the first card stays with its seat across a
// reverse.
func (g *Game) advance() {
	g.players.Next()
	for g.skipped[g.players.CurrentIndex()] {
		delete(g.skipped, g.players.CurrentIndex())
		g.players.Next()
	}
	g.status = event.StatusStandard
	g.phase = PhaseAwaitingPlay
}

func (g *Game) win(player *Player, played card.Card) error {
	next := g.players.NextIndex()
	switch played.Rank() {
	case card.DrawOne:
		if err := g.drawFor(next, consts.DrawOneAmount); err != nil {
			return err
		}
	case card.WildDrawTwo:
		if err := g.drawFor(next, consts.WildDrawTwoAmount); err != nil {
			return err
		}
	}
	g.topCard = played
	g.currentRank = played.Rank()
	if !played.Rank().IsWild() {
		g.currentColour = played.Color()
	}

	score := 0
	g.players.ForEach(func(_ int, other *Player) {
		if other != player {
			score += other.Hand().Score()
		}
	})
	player.score = score
	g.winner = player
	g.skipped = make(map[int]bool)
	g.phase = PhaseRoundOver
	g.status = event.StatusWinner
	log.Infof("[Game] %s won the round with %d points\n", player.Name(), score)
	return nil
}

func (g *Game) place(played card.Card) {
	g.topCard = played
	g.currentColour = played.Color()
	g.currentRank = played.Rank()
}

func (g *Game) placeWild(played card.Card) {
	g.topCard = played
	g.currentColour = color.None
	g.currentRank = played.Rank()
	g.phase = PhaseAwaitingColour
}

func (g *Game) drawFor(index int, amount int) error {
	player := g.players.Get(index)
	if _, err := player.Draw(amount, g.deck); err != nil {
		log.Errorf("[Game] %s could not draw %d card(s): %v\n", player.Name(), amount, err)
		return err
	}
	return nil
}

func (g *Game) checkRunning() error {
	switch g.phase {
	case PhaseSetup:
		return consts.ErrorsGameNotStarted
	case PhaseRoundOver:
		return consts.ErrorsRoundOver
	}
	return nil
}

// report records a rule violation. Only the status changes.
func (g *Game) report(status event.Status) event.Notification {
	g.status = status
	return g.emit()
}

func (g *Game) emit() event.Notification {
	notification := g.Notification()
	g.observers.Emit(notification)
	return notification
}

// Notification describes the current state for observers.
func (g *Game) Notification() event.Notification {
	notification := event.Notification{
		Status: g.status,
		Text:   g.status.String(),
		Wild:   g.currentRank.IsWild(),
		Phase:  g.phase.String(),
	}
	if g.status == event.StatusWinner && g.winner != nil {
		notification.Text = event.WinnerText(g.winner.Name())
	}
	if g.topCard != nil {
		notification.TopCard = g.topCard.String()
	}
	if g.players != nil {
		current := g.players.Current()
		notification.PlayerName = current.Name()
		notification.Player = current.String()
	}
	return notification
}

func (g *Game) Table() Table {
	return Table{Color: g.currentColour, Rank: g.currentRank}
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Status() event.Status {
	return g.status
}

// TurnFinished is true once the acting player has played or drawn.
func (g *Game) TurnFinished() bool {
	return g.phase != PhaseSetup && g.phase != PhaseAwaitingPlay
}

func (g *Game) CurrentTurn() int {
	if g.players == nil {
		return 0
	}
	return g.players.CurrentIndex()
}

func (g *Game) NextPlayerIndex() int {
	if g.players == nil {
		return 0
	}
	return g.players.NextIndex()
}

func (g *Game) Clockwise() bool {
	if g.players == nil {
		return true
	}
	return g.players.Clockwise()
}

func (g *Game) SkipPending() bool {
	return len(g.skipped) > 0
}

func (g *Game) Challenge() bool {
	return g.challenge
}

func (g *Game) DontAsk() bool {
	return g.dontAsk
}

func (g *Game) TopCard() card.Card {
	return g.topCard
}

func (g *Game) CurrentColour() color.Color {
	return g.currentColour
}

func (g *Game) CurrentRank() card.Rank {
	return g.currentRank
}

func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.seats))
	copy(players, g.seats)
	return players
}

func (g *Game) Player(index int) (*Player, error) {
	if index < 0 || index >= len(g.seats) {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	return g.seats[index], nil
}

func (g *Game) CurrentPlayer() *Player {
	if g.players == nil {
		return nil
	}
	return g.players.Current()
}

func (g *Game) Winner() *Player {
	return g.winner
}

func (g *Game) Deck() *Deck {
	return g.deck
}
