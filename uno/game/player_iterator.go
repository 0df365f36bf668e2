package game

// PlayerIterator pairs the seated players with the turn order.
type PlayerIterator struct {
	players []*Player
	cycler  *Cycler
}

func newPlayerIterator(players []*Player) *PlayerIterator {
	return &PlayerIterator{
		players: players,
		cycler:  NewCycler(len(players)),
	}
}

func (i *PlayerIterator) Get(index int) *Player {
	return i.players[index]
}

func (i *PlayerIterator) Current() *Player {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) CurrentIndex() int {
	return i.cycler.Current()
}

func (i *PlayerIterator) NextIndex() int {
	return i.cycler.Peek()
}

func (i *PlayerIterator) ForEach(function func(index int, player *Player)) {
	for index, player := range i.players {
		function(index, player)
	}
}

func (i *PlayerIterator) Len() int {
	return len(i.players)
}

func (i *PlayerIterator) Next() *Player {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

func (i *PlayerIterator) Clockwise() bool {
	return i.cycler.Clockwise()
}
