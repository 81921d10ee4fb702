package models

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ConditionKind names the stat a title condition tests. Conditions are plain
// data rather than code so the catalog stays serializable and testable.
type ConditionKind string

const (
	ConditionLevelAtLeast           ConditionKind = "level_at_least"
	ConditionStreakAtLeast          ConditionKind = "streak_at_least"
	ConditionHabitsCompletedAtLeast ConditionKind = "habits_completed_at_least"
	ConditionFocusMinutesAtLeast    ConditionKind = "focus_minutes_at_least"
)

// TitleCondition is a single threshold test over UserStats.
type TitleCondition struct {
	Kind      ConditionKind `json:"kind"`
	Threshold int           `json:"threshold"`
}

// HeroicTitle is a static catalog entry for an unlockable cosmetic title.
type HeroicTitle struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Rarity      Rarity         `json:"rarity"`
	Condition   TitleCondition `json:"condition"`
}
