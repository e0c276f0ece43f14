package manager

import (
	"encoding/json"

	"gridsnake/storage"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// BestScoreKey is the storage slot holding the best score
const BestScoreKey = "snake-best-score"

// ScoreKeeper reads and writes the persisted best score
type ScoreKeeper struct {
	store storage.Store
	key   string
}

func NewScoreKeeper(store storage.Store) *ScoreKeeper {
	return &ScoreKeeper{store: store, key: BestScoreKey}
}

// LoadBestScore returns the stored best score, or 0 when the slot is
// missing, unreadable or not an integer.
func (sk *ScoreKeeper) LoadBestScore() int {
	data, ok, err := sk.store.Get(sk.key)
	if err != nil {
		glog.Warningf("Could not read best score: %v", err)
		return 0
	}
	if !ok {
		return 0
	}

	var best int
	if err := json.Unmarshal(data, &best); err != nil {
		glog.Warningf("Ignoring unparsable best score %q: %v", data, err)
		return 0
	}
	return best
}

// SaveBestScore writes score to the slot
func (sk *ScoreKeeper) SaveBestScore(score int) error {
	data, err := json.Marshal(score)
	if err != nil {
		return errors.Wrap(err, "encode best score")
	}
	if err := sk.store.Set(sk.key, data); err != nil {
		return errors.Wrapf(err, "save best score %d", score)
	}
	return nil
}
