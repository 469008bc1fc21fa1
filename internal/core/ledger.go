package core

import (
	"strings"

	"github.com/google/uuid"
)

// AddQuest appends a new quest with a fresh id. The title must be non-empty
// after trimming and the reward must be a positive number of minutes.
func AddQuest(s Snapshot, title string, rewardMinutes int) (Snapshot, Quest, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return s, Quest{}, ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if rewardMinutes <= 0 {
		return s, Quest{}, ValidationError{Field: "reward", Reason: "must be a positive number of minutes"}
	}

	q := Quest{
		ID:            uuid.NewString(),
		Title:         title,
		RewardMinutes: rewardMinutes,
	}
	s = s.Clone()
	s.Quests = append(s.Quests, q)
	return s, q, nil
}

// DeleteQuest removes the quest with the given id. Absent ids are a no-op,
// and inventory entries claimed from the quest are kept.
func DeleteQuest(s Snapshot, id string) Snapshot {
	for i, q := range s.Quests {
		if q.ID == id {
			s = s.Clone()
			s.Quests = append(s.Quests[:i], s.Quests[i+1:]...)
			return s
		}
	}
	return s
}

// ClaimQuest banks the quest's reward as a new inventory item. The title and
// minutes are copied, decoupling the item from the quest's later fate.
// Claiming the same quest repeatedly is allowed; each claim is independent.
func ClaimQuest(s Snapshot, questID string, nowMillis int64) (Snapshot, InventoryItem, error) {
	q, ok := s.QuestByID(questID)
	if !ok {
		return s, InventoryItem{}, ErrQuestNotFound
	}

	item := InventoryItem{
		ID:        uuid.NewString(),
		QuestID:   q.ID,
		Title:     q.Title,
		Minutes:   q.RewardMinutes,
		CreatedAt: nowMillis,
	}
	s = s.Clone()
	s.Inventory = append(s.Inventory, item)
	return s, item, nil
}

// Redeem removes the selected inventory items and credits their summed
// minutes to the play balance, all in one step. Ids not present in the
// inventory are silently ignored; an empty or all-unknown selection changes
// nothing. The returned count is the number of minutes credited.
func Redeem(s Snapshot, ids []string) (Snapshot, int) {
	if len(ids) == 0 {
		return s, 0
	}
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	totalMinutes := 0
	kept := make([]InventoryItem, 0, len(s.Inventory))
	for _, item := range s.Inventory {
		if selected[item.ID] {
			totalMinutes += item.Minutes
			continue
		}
		kept = append(kept, item)
	}
	if totalMinutes == 0 && len(kept) == len(s.Inventory) {
		return s, 0
	}

	s = s.Clone()
	s.Inventory = kept
	s.PlayBalanceSeconds += float64(totalMinutes) * 60
	return s, totalMinutes
}
