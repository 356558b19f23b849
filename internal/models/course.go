package models

type Course struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Duration     string   `json:"duration"`
	Modules      []string `json:"modules"`
	PointsReward int      `json:"points_reward"`
}

type Badge struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	PointsRequired int    `json:"points_required"`
}

type TeamRank struct {
	Name     string `json:"name"`
	Members  int    `json:"members"`
	Points   int    `json:"points"`
	Position int    `json:"position"`
}

type IndividualRank struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	Points   int    `json:"points"`
	Position int    `json:"position"`
}
