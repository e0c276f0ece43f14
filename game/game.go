package game

import (
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// StepResult describes what a single tick did
type StepResult int

const (
	StepIdle     StepResult = iota // not playing, nothing happened
	StepMoved                      // plain translation
	StepAte                        // head reached the fruit, body grew
	StepCollided                   // head ran into the body, game over
)

var stepNames = [...]string{"idle", "moved", "ate", "collided"}

func (r StepResult) String() string {
	if r < StepIdle || r > StepCollided {
		return "unknown"
	}
	return stepNames[r]
}

// Settings fixes the board and the fruit glyphs for a game
type Settings struct {
	Sizes   types.Sizes
	Palette []string
}

// DefaultSettings is a 30x30 board with the standard fruit palette
func DefaultSettings() Settings {
	return Settings{Sizes: types.DefaultSizes(), Palette: entity.DefaultPalette}
}

// State is everything a renderer needs to paint one frame
type State struct {
	ID         string
	Body       entity.Body
	Moves      []types.Direction
	Fruit      entity.Fruit
	IsPlaying  bool
	IsGameOver bool
	Score      int
	BestScore  int
}

// Clone returns a copy that shares no slices with s
func (s State) Clone() State {
	out := s
	out.Body = s.Body.Clone()
	out.Moves = append([]types.Direction(nil), s.Moves...)
	return out
}

// InitialBody is the three-segment snake every game starts with
func InitialBody() entity.Body {
	return entity.Body{
		entity.NewBlock(5, 1, types.Right),
		entity.NewBlock(4, 1, types.Right),
		entity.NewBlock(3, 1, types.Right),
	}
}

// Game owns the authoritative state and is the only thing that mutates it
type Game struct {
	settings     Settings
	state        State
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	scores       *manager.ScoreKeeper
}

func NewGame(settings Settings, foodMgr *manager.FoodManager, scores *manager.ScoreKeeper) *Game {
	g := &Game{
		settings:     settings,
		collisionMgr: manager.NewCollisionManager(),
		foodMgr:      foodMgr,
		scores:       scores,
	}
	g.Reset()
	return g
}

// Settings returns the board configuration
func (g *Game) Settings() Settings {
	return g.settings
}

// State returns a snapshot of the current state
func (g *Game) State() State {
	return g.state.Clone()
}

// Reset replaces the state with a fresh idle game. The best score is read
// again from storage so updates made elsewhere are honoured.
func (g *Game) Reset() {
	body := InitialBody()
	g.state = State{
		ID:        uuid.New().String(),
		Body:      body,
		Moves:     []types.Direction{types.Right},
		Fruit:     g.foodMgr.PlaceFruit(body, g.settings.Sizes.Pixels(), g.settings.Palette),
		BestScore: g.scores.LoadBestScore(),
	}
	glog.Infof("Game %s ready, best score %d", g.state.ID, g.state.BestScore)
}

// Start marks the game as playing. Returns false once the game is over.
func (g *Game) Start() bool {
	if g.state.IsGameOver {
		return false
	}
	g.state.IsPlaying = true
	return true
}

// TogglePlay pauses a running game or resumes a paused one and returns the
// new playing flag. A finished game stays finished.
func (g *Game) TogglePlay() bool {
	if g.state.IsGameOver {
		return false
	}
	g.state.IsPlaying = !g.state.IsPlaying
	return g.state.IsPlaying
}

// Playing reports whether steps currently advance the snake
func (g *Game) Playing() bool {
	return g.state.IsPlaying && !g.state.IsGameOver
}

// Over reports whether the snake has collided with itself
func (g *Game) Over() bool {
	return g.state.IsGameOver
}

// EnqueueDirection buffers a turn. A direction equal to the last queued one
// (or the current heading when nothing is queued), or its reverse, is dropped.
func (g *Game) EnqueueDirection(d types.Direction) bool {
	if d < types.Up || d > types.Left {
		return false
	}

	last := g.state.Body.Head().Direction
	if n := len(g.state.Moves); n > 0 {
		last = g.state.Moves[n-1]
	}
	if d == last || d == types.Opposite(last) {
		return false
	}

	g.state.Moves = append(g.state.Moves, d)
	return true
}

// Step advances the snake by one cell
func (g *Game) Step() StepResult {
	s := &g.state
	if !s.IsPlaying || s.IsGameOver {
		return StepIdle
	}
	sizes := g.settings.Sizes

	direction := s.Body.Head().Direction
	if len(s.Moves) > 0 {
		direction = s.Moves[0]
		s.Moves = s.Moves[1:]
	}

	head := entity.Advance(direction, s.Body.Head(), sizes)
	body := s.Body.Move(head)
	glog.V(2).Infof("Game %s: %v to (%d,%d)", s.ID, direction, head.X, head.Y)

	// Collided with self
	if g.collisionMgr.IsSelfCollision(body) {
		s.Body = body
		s.IsPlaying = false
		s.IsGameOver = true
		glog.Infof("Game %s over, score %d", s.ID, s.Score)
		return StepCollided
	}

	// Collided with fruit
	if g.collisionMgr.IsFoodCollision(head.Position, s.Fruit) {
		body = body.Grow(sizes)

		previousBest := s.BestScore
		s.Score++
		if s.Score > s.BestScore {
			s.BestScore = s.Score
		}
		if s.Score >= previousBest {
			if err := g.scores.SaveBestScore(s.Score); err != nil {
				glog.Errorf("Game %s: %v", s.ID, err)
			}
		}

		s.Body = body
		s.Fruit = g.foodMgr.PlaceFruit(body, sizes.Pixels(), g.settings.Palette)
		glog.V(2).Infof("Game %s: ate, score %d, fruit at (%d,%d)", s.ID, s.Score, s.Fruit.X, s.Fruit.Y)
		return StepAte
	}

	s.Body = body
	return StepMoved
}
