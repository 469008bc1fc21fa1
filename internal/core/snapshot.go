package core

// Mode governs how elapsed real time maps onto the snapshot.
type Mode string

const (
	ModeWork    Mode = "WORK"
	ModePlay    Mode = "PLAY"
	ModeNothing Mode = "NOTHING"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeWork, ModePlay, ModeNothing:
		return true
	default:
		return false
	}
}

// Quest is a user-defined, repeatable source of play time. Immutable after
// creation; deleting it does not touch inventory entries claimed from it.
type Quest struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	RewardMinutes int    `json:"rewardMinutes"`
}

// InventoryItem is a banked quest reward. Title and minutes are copied from
// the quest at claim time, so the quest may be deleted afterwards.
type InventoryItem struct {
	ID        string `json:"id"`
	QuestID   string `json:"questId"`
	Title     string `json:"title"`
	Minutes   int    `json:"minutes"`
	CreatedAt int64  `json:"createdAt"`
}

// Snapshot is the complete timer/reward state for one user at one instant.
// The json tags are the persisted document shape; seconds are float64 so
// fractional accrual survives long catch-up deltas.
type Snapshot struct {
	WorkElapsedSeconds float64         `json:"workElapsedSeconds"`
	PlayBalanceSeconds float64         `json:"playBalanceSeconds"`
	Mode               Mode            `json:"mode"`
	LastTickTimestamp  int64           `json:"lastTickTimestamp"`
	Quests             []Quest         `json:"quests"`
	Inventory          []InventoryItem `json:"inventory"`
}

// NewSnapshot returns the fresh default state anchored at the given instant.
func NewSnapshot(nowMillis int64) Snapshot {
	return Snapshot{
		Mode:              ModeNothing,
		LastTickTimestamp: nowMillis,
	}
}

// Clone returns a deep copy. Snapshot is passed by value everywhere, but the
// quest and inventory slices share backing arrays until cloned.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Quests != nil {
		out.Quests = make([]Quest, len(s.Quests))
		copy(out.Quests, s.Quests)
	}
	if s.Inventory != nil {
		out.Inventory = make([]InventoryItem, len(s.Inventory))
		copy(out.Inventory, s.Inventory)
	}
	return out
}

func (s Snapshot) QuestByID(id string) (Quest, bool) {
	for _, q := range s.Quests {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}
