package models

type CreateTeamRequest struct {
	EventSlug string `json:"event_slug" validate:"required"`
	TeamName  string `json:"team_name" validate:"required,min=2,max=60"`
}

type JoinTeamRequest struct {
	TeamCode string `json:"team_code" validate:"required"`
}

type TeamResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Code      string   `json:"code"`
	EventSlug string   `json:"event_slug"`
	LeaderID  uint     `json:"leader_id"`
	Members   []string `json:"members"`
	MaxSize   int      `json:"max_size"`
}
